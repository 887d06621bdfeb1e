package config

import (
	"github.com/spf13/cobra"

	"chamadosfw/internal/config"
	initcmd "chamadosfw/pkg/cmd/config/init"
)

func NewConfigCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage chamadosfw configuration",
	}

	cmd.AddCommand(initcmd.NewConfigInitCmd(cfg))
	return cmd
}
