package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Output         string `yaml:"output"`
	VerifyMaxItems int    `yaml:"verify_max_items"`
	LogLevel       string `yaml:"log_level"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long:  "Create the configuration directory and a default config.yaml if none exists.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir := a.cfg.GetString(cfgKeyConfigDir)
			if err := os.MkdirAll(configDir, 0o755); err != nil {
				return sysErr(fmt.Errorf("create config directory: %w", err))
			}

			path := filepath.Join(configDir, configFileExt)
			created, err := writeConfigIfMissing(path)
			if err != nil {
				return sysErr(fmt.Errorf("write config: %w", err))
			}

			if created {
				fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Config already exists at", path)
			}
			return nil
		},
	}
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether a file was written.
func writeConfigIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	cfg := configFile{
		Output:         outputText,
		VerifyMaxItems: defaultVerifyMaxItems,
		LogLevel:       defaultLogLevel,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
