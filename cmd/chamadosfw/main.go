package main

import (
	"log"

	"chamadosfw/logger"
	"chamadosfw/pkg/cmd"
)

func main() {
	defer logger.Sync()

	fwCmd, err := cmd.New()
	if err != nil {
		log.Fatal(err)
	}

	if err := fwCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
