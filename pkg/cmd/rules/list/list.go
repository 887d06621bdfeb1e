package list

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"chamadosfw/internal/cmdutil"
	"chamadosfw/internal/service"
	"chamadosfw/internal/types"
)

func NewListRulesCmd(svc service.PortAllower) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List managed rules",
		Long:  "List every firewall rule this tool has created, with the state recorded on the last run",
		Run: func(cmd *cobra.Command, args []string) {
			cmdutil.StartLoading("Working...")
			defer cmdutil.StopLoading()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			managed, err := svc.ListRules(ctx)
			if err != nil {
				cmdutil.PrintE(err.Error())
				return
			}

			header := table.Row{"Name", "Port", "Protocol", "Direction", "Action", "Profiles", "Enabled", "Time Created"}
			tw := table.NewWriter()
			tw.AppendHeader(header)
			for _, next := range managed {
				profiles := lo.Map(next.Profiles, func(p types.Profile, _ int) string {
					return p.String()
				})
				row := table.Row{
					next.DisplayName,
					next.Port,
					next.Protocol,
					next.Direction,
					next.Action,
					strings.Join(profiles, ", "),
					fmt.Sprintf("%t", next.Enabled),
					next.CreatedAt.Format("02-01-2006"),
				}
				tw.AppendRow(row)
				tw.AppendSeparator()
			}
			cmdutil.Print("")
			cmdutil.Print(tw.Render())
		},
	}
}
