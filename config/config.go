package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Input       string `mapstructure:"input"`
	Prompt      string `mapstructure:"prompt"`
	LogLevel    string `mapstructure:"log-level"`
	LogFile     string `mapstructure:"log-file"`
	LogFormat   string `mapstructure:"log-format"`
	MetricsAddr string `mapstructure:"metrics-addr"`
}

var envNames = map[string]string{
	"input":        "SOCIAL_INPUT",
	"prompt":       "SOCIAL_PROMPT",
	"log-level":    "LOG_LEVEL",
	"log-file":     "LOG_FILE",
	"log-format":   "LOG_FORMAT",
	"metrics-addr": "METRICS_ADDR",
}

// Load reads envFile (a missing file is not an error), then the environment,
// then any flags that were set explicitly. Later sources win.
func Load(envFile string, flags *pflag.FlagSet) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("error loading %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetDefault("input", "")
	v.SetDefault("prompt", "> ")
	v.SetDefault("log-level", "warn")
	v.SetDefault("log-file", "")
	v.SetDefault("log-format", "text")
	v.SetDefault("metrics-addr", "")

	for key, env := range envNames {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("error binding %s: %w", env, err)
		}
	}
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("error binding flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}
