// Package config loads optional defaults from a .renamer.yaml file so that
// frequently used settings don't have to be repeated on every invocation.
package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Defaults struct {
		Extension           string
		Padding             int
		AutoPadding         bool `mapstructure:"auto_padding"`
		IncludeOriginalName bool `mapstructure:"include_original_name"`
	}
	Logging struct {
		Level string
	}
}

// Load reads .renamer.yaml from the current directory or the home directory.
// A missing file is not an error; the built-in defaults apply.
func Load() (*Config, error) {
	viper.SetConfigName(".renamer")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")

	viper.SetDefault("defaults.extension", "")
	viper.SetDefault("defaults.padding", 3)
	viper.SetDefault("defaults.auto_padding", true)
	viper.SetDefault("defaults.include_original_name", false)
	viper.SetDefault("logging.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
