package watch

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chamadosfw/internal/cmdutil"
	"chamadosfw/internal/config"
	"chamadosfw/internal/service"
	"chamadosfw/internal/types"
	"chamadosfw/logger"
)

func NewWatchCmd(svc service.PortAllower, cfg config.Config) *cobra.Command {
	param := &types.EnsureParams{}
	var every time.Duration
	var cronExpression string

	cmd := &cobra.Command{
		Use:     "watch",
		Short:   "Keep re-asserting the firewall rule on a schedule",
		Long:    "Run the allow operation immediately and then on a fixed interval or cron schedule, so a rule someone disables or edits by hand is put back. Stop with Ctrl-C.",
		Example: "chamadosfw watch --every 5m",
		RunE: func(cmd *cobra.Command, args []string) error {
			var jobDef gocron.JobDefinition
			if cronExpression != "" {
				if _, err := cron.ParseStandard(cronExpression); err != nil {
					return fmt.Errorf("invalid cron expression %q: %w", cronExpression, err)
				}
				jobDef = gocron.CronJob(cronExpression, false)
			} else {
				jobDef = gocron.DurationJob(every)
			}

			scheduler, err := gocron.NewScheduler(
				gocron.WithLimitConcurrentJobs(1, gocron.LimitModeReschedule))
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			_, err = scheduler.NewJob(jobDef,
				gocron.NewTask(func() {
					result, err := svc.EnsurePortAccess(ctx, *param)
					if err != nil {
						logger.Error("failed to re-assert firewall rule",
							zap.String("rule", param.RuleName),
							zap.Error(err))
						return
					}
					if result.Outcome == types.EnsureOutcomeCreated {
						logger.Warn("firewall rule was missing and has been re-created",
							zap.String("rule", result.Rule.DisplayName),
							zap.Uint("port", result.Rule.Port))
					}
				}),
				gocron.WithStartAt(gocron.WithStartImmediately()))
			if err != nil {
				return err
			}

			scheduler.Start()
			cmdutil.Print(fmt.Sprintf("Watching firewall rule %q for port %d. Ctrl-C to stop.", param.RuleName, param.Port))

			<-ctx.Done()
			return scheduler.Shutdown()
		},
	}

	cmd.Flags().UintVarP(&param.Port, "port", "p", cfg.Port, "The TCP port to keep allowed")
	cmd.Flags().StringVarP(&param.RuleName, "rule-name", "n", cfg.RuleName, "The display name identifying the managed rule")
	cmd.Flags().DurationVarP(&every, "every", "e", 5*time.Minute, "Interval between re-assertions. e.g --every 5m")
	cmd.Flags().StringVarP(&cronExpression, "cron", "c", "", "Cron schedule overriding --every. e.g --cron '*/10 * * * *'")
	return cmd
}
