package rules

import (
	"github.com/spf13/cobra"

	"chamadosfw/internal/service"
	"chamadosfw/pkg/cmd/rules/list"
)

func NewRulesCmd(svc service.PortAllower) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect the firewall rules managed by this tool",
	}

	cmd.AddCommand(list.NewListRulesCmd(svc))
	return cmd
}
