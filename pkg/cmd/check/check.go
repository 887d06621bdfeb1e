package check

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"chamadosfw/internal/cmdutil"
	"chamadosfw/internal/config"
	"chamadosfw/internal/probe"
)

func NewCheckCmd(cfg config.Config) *cobra.Command {
	var port uint

	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Check whether the server port is listening and reachable",
		Example: "chamadosfw check --port 8000",
		Run: func(cmd *cobra.Command, args []string) {
			cmdutil.StartLoading(fmt.Sprintf("probing port %d...", port))
			defer cmdutil.StopLoading()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			result, err := probe.Port(ctx, port)
			if err != nil {
				cmdutil.PrintE(err.Error())
				return
			}

			if !result.Listening {
				cmdutil.PrintW(fmt.Sprintf("Nothing is listening on port %d. Is the Programa Chamados server running?", port))
				return
			}
			if !result.Reachable {
				cmdutil.PrintW(fmt.Sprintf("A process (pid %d) is listening on port %d but a loopback connection failed.", result.PID, port))
				return
			}
			cmdutil.PrintS(fmt.Sprintf("Port %d is listening (pid %d) and accepting connections.", port, result.PID))
		},
	}

	cmd.Flags().UintVarP(&port, "port", "p", cfg.Port, "The TCP port to probe. e.g --port 8000")
	return cmd
}
