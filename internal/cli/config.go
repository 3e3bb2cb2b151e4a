package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "ARRANGE"

	cfgKeyOutput         = "output"
	cfgKeyVerifyMaxItems = "verify_max_items"
	cfgKeyLogLevel       = "log_level"
	cfgKeyConfigDir      = "config_dir"

	outputText = "text"
	outputJSON = "json"

	defaultVerifyMaxItems = 8
	defaultLogLevel       = "info"
)

// loadConfig reads config.yaml from configDir using Viper. A missing file is
// not an error; defaults and ARRANGE_* environment variables still apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyOutput, outputText)
	v.SetDefault(cfgKeyVerifyMaxItems, defaultVerifyMaxItems)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if out := v.GetString(cfgKeyOutput); out != outputText && out != outputJSON {
		return nil, fmt.Errorf("config %s: unknown output %q", cfgKeyOutput, out)
	}
	return v, nil
}
