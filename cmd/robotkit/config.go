package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the CLI configuration, read from flags, ROBOTKIT_* environment
// variables and an optional robotkit.yaml.
type Config struct {
	Model    string `mapstructure:"model" validate:"omitempty,file"`
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogJSON  bool   `mapstructure:"log_json"`
	Trace    bool   `mapstructure:"trace"`

	// Vars are substituted into the model file, which is a Go template.
	Vars map[string]string `mapstructure:"vars"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{LogLevel: "warn"}
}

var validate = validator.New()

// loadConfig merges defaults, the config file, the environment and the flags
// of cmd, in increasing precedence, and validates the result.
func loadConfig(cmd *cobra.Command, cfgFile string) (Config, error) {
	v := viper.New()
	defaults := Defaults()
	v.SetDefault("model", defaults.Model)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_json", defaults.LogJSON)
	v.SetDefault("trace", defaults.Trace)
	v.SetDefault("vars", map[string]string{})

	v.SetEnvPrefix("ROBOTKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		"model":     "model",
		"log_level": "log-level",
		"log_json":  "log-json",
		"trace":     "trace",
		"vars":      "set",
	} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return Config{}, fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("robotkit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}
