package cmd

import (
	"github.com/spf13/cobra"

	"chamadosfw/internal/config"
	"chamadosfw/internal/database"
	"chamadosfw/internal/firewall"
	"chamadosfw/internal/service"
	"chamadosfw/logger"
	"chamadosfw/pkg/cmd/allow"
	"chamadosfw/pkg/cmd/check"
	configcmd "chamadosfw/pkg/cmd/config"
	"chamadosfw/pkg/cmd/rules"
	"chamadosfw/pkg/cmd/watch"
)

func New() (*cobra.Command, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if err := logger.Init(cfg.LogMode); err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	ruleRepo := database.NewRuleRepository(db)
	svc := service.NewPortAllower(ruleRepo, firewall.NewManager())

	cmd := &cobra.Command{
		Use:           "chamadosfw",
		Short:         "chamadosfw - keeps the host firewall open for the Programa Chamados server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(allow.NewAllowCmd(svc, cfg))
	cmd.AddCommand(rules.NewRulesCmd(svc))
	cmd.AddCommand(check.NewCheckCmd(cfg))
	cmd.AddCommand(watch.NewWatchCmd(svc, cfg))
	cmd.AddCommand(configcmd.NewConfigCmd(cfg))
	return cmd, nil
}
