package initcmd

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"chamadosfw/internal/cmdutil"
	"chamadosfw/internal/config"
)

func NewConfigInitCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Short:   "Write a .chamadosfw.yml for this directory",
		Long:    "Interactively set the port, rule name and registry path used by subsequent runs in this directory",
		Example: "chamadosfw config init",
		Run: func(cmd *cobra.Command, args []string) {
			portPrompt := createPortPrompt(cfg)
			portValue, err := portPrompt.Run()
			if err != nil {
				cmdutil.PrintE(err.Error())
				return
			}

			namePrompt := createRuleNamePrompt(cfg)
			name, err := namePrompt.Run()
			if err != nil {
				cmdutil.PrintE(err.Error())
				return
			}

			dbPrompt := createDatabasePathPrompt(cfg)
			dbPath, err := dbPrompt.Run()
			if err != nil {
				cmdutil.PrintE(err.Error())
				return
			}

			port, err := strconv.ParseUint(portValue, 10, 32)
			if err != nil {
				cmdutil.PrintE(err.Error())
				return
			}

			cfg.Port = uint(port)
			cfg.RuleName = name
			cfg.DatabasePath = dbPath
			if err := config.Save(cfg); err != nil {
				cmdutil.PrintE(fmt.Sprintf("Failed to save config: %s", err.Error()))
				return
			}

			cmdutil.PrintS(fmt.Sprintf("Configuration written to %s", config.Path))
		},
	}
}

func createPortPrompt(cfg config.Config) promptui.Prompt {
	return promptui.Prompt{
		Label:   "Server port",
		Default: strconv.Itoa(int(cfg.Port)),
		Validate: func(input string) error {
			if _, err := strconv.ParseUint(input, 10, 32); err != nil {
				return fmt.Errorf("%s is not a valid port number", input)
			}
			return nil
		},
	}
}

func createRuleNamePrompt(cfg config.Config) promptui.Prompt {
	return promptui.Prompt{
		Label:   "Firewall rule name",
		Default: cfg.RuleName,
		Validate: func(input string) error {
			if len(input) == 0 {
				return fmt.Errorf("rule name must not be empty")
			}
			return nil
		},
	}
}

func createDatabasePathPrompt(cfg config.Config) promptui.Prompt {
	return promptui.Prompt{
		Label:   "Rule registry path",
		Default: cfg.DatabasePath,
	}
}
