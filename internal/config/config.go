package config

import (
	"os"
	"strconv"

	"chamadosfw/internal/types"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// Path is the optional per-directory config file, written by
	// `chamadosfw config init`.
	Path = ".chamadosfw.yml"

	defaultDatabasePath = "/var/chamadosfw/rules.db"
)

type Config struct {
	// Port the Programa Chamados server listens on.
	Port uint `yaml:"port"`

	// RuleName is the display name the managed rule is keyed on.
	RuleName string `yaml:"ruleName"`

	// DatabasePath locates the sqlite rule registry.
	DatabasePath string `yaml:"databasePath"`

	LogMode string `yaml:"logMode"`
}

// Load resolves the configuration: built-in defaults, then the optional
// .chamadosfw.yml in the working directory, then environment variables
// (a .env file is honored when present).
func Load() (Config, error) {
	_ = godotenv.Load()

	c := Config{
		Port:         types.DefaultPort,
		RuleName:     types.DefaultRuleName,
		DatabasePath: defaultDatabasePath,
		LogMode:      "development",
	}

	value, err := os.ReadFile(Path)
	if err == nil {
		if err := yaml.Unmarshal(value, &c); err != nil {
			return c, err
		}
	} else if !os.IsNotExist(err) {
		return c, err
	}

	if v := os.Getenv("CHAMADOSFW_PORT"); v != "" {
		port, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return c, err
		}
		c.Port = uint(port)
	}
	if v := os.Getenv("CHAMADOSFW_RULE_NAME"); v != "" {
		c.RuleName = v
	}
	if v := os.Getenv("CHAMADOSFW_DB_PATH"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("CHAMADOSFW_LOG_MODE"); v != "" {
		c.LogMode = v
	}

	return c, nil
}

// Save writes the config file used by subsequent runs in this directory.
func Save(c Config) error {
	value, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(Path, value, 0o644)
}
