package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the application configuration, loaded hierarchically:
// defaults, then an optional config file, then UBB_* environment variables.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Output struct {
		Indent int `mapstructure:"indent" yaml:"indent"`
	} `mapstructure:"output" yaml:"output"`

	Classifier struct {
		// RulesFile optionally overrides the built-in ordered keyword rules
		// for the transaction type classifier.
		RulesFile string `mapstructure:"rules_file" yaml:"rules_file"`
	} `mapstructure:"classifier" yaml:"classifier"`
}

// InitializeConfig loads the configuration with Viper's hierarchical
// resolution. A missing config file is not an error.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.ubb-extract")
	v.AddConfigPath(".ubb-extract")
	v.AddConfigPath(".")

	v.SetEnvPrefix("UBB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.indent", 2)
	v.SetDefault("classifier.rules_file", "")
}

func validateConfig(config *Config) error {
	switch strings.ToLower(config.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unsupported log level: %s", config.Log.Level)
	}

	switch strings.ToLower(config.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", config.Log.Format)
	}

	if config.Output.Indent < 0 || config.Output.Indent > 8 {
		return fmt.Errorf("output indent must be between 0 and 8, got %d", config.Output.Indent)
	}

	return nil
}
