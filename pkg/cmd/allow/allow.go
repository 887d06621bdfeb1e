package allow

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"chamadosfw/internal/cmdutil"
	"chamadosfw/internal/config"
	"chamadosfw/internal/service"
	"chamadosfw/internal/types"
)

func NewAllowCmd(svc service.PortAllower, cfg config.Config) *cobra.Command {
	mValidator := validator.New(validator.WithRequiredStructEnabled())
	param := &types.EnsureParams{}

	cmd := &cobra.Command{
		Use:     "allow",
		Short:   "Ensure an enabled inbound rule allows the server port",
		Long:    "Ensure exactly one enabled inbound TCP allow rule exists for the given port, across the Domain, Private and Public network profiles. The rule is created on the first run and updated in place on every run after that.",
		Example: "chamadosfw allow --port 8000",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := mValidator.Struct(param); err != nil {
				var vError validator.ValidationErrors
				if errors.As(err, &vError) {
					for _, nextErr := range vError {
						cmdutil.PrintE(fmt.Sprintf("Invalid value input for: %s", nextErr.Field()))
					}
				}
				return err
			}

			cmdutil.Print(fmt.Sprintf("Verificando regra de firewall para a porta %d...", param.Port))

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			result, err := svc.EnsurePortAccess(ctx, *param)
			if err != nil {
				return err
			}

			switch result.Outcome {
			case types.EnsureOutcomeCreated:
				cmdutil.PrintS(fmt.Sprintf("Regra de firewall criada e habilitada para a porta %d.", result.Rule.Port))
			case types.EnsureOutcomeUpdated:
				cmdutil.PrintS(fmt.Sprintf("Regra de firewall existente atualizada para liberar a porta %d.", result.Rule.Port))
			}
			return nil
		},
	}

	cmd.Flags().UintVarP(&param.Port, "port", "p", cfg.Port, "The TCP port to allow inbound access to. e.g --port 8000")
	cmd.Flags().StringVarP(&param.RuleName, "rule-name", "n", cfg.RuleName, "The display name identifying the managed rule")
	return cmd
}
