package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings is the resolved configuration for one run.
// Precedence: flags, PACONT_* environment, config file, defaults.
type Settings struct {
	MaxDepth          int
	IncludeErrors     bool
	OutputInformation bool
	Copy              bool
	Exclude           []string
	Gitignore         bool
	Tokens            bool
	Model             string
	Verbose           bool
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"max_depth":          "max-depth",
	"include_errors":     "include-errors",
	"output_information": "output-information",
	"copy":               "copy",
	"exclude":            "exclude",
	"gitignore":          "gitignore",
	"tokens":             "tokens",
	"model":              "model",
	"verbose":            "verbose",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// initConfig wires the environment and reads the config file, if any, and
// returns the file used. An explicit cfgFile must exist; otherwise
// $HOME/.config/pacont/config.* and ./config.* are searched in that order.
func initConfig(v *viper.Viper, cfgFile string) (string, error) {
	v.SetEnvPrefix("PACONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "pacont"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("error reading config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

func loadSettings(v *viper.Viper) (Settings, error) {
	s := Settings{
		MaxDepth:          v.GetInt("max_depth"),
		IncludeErrors:     v.GetBool("include_errors"),
		OutputInformation: v.GetBool("output_information"),
		Copy:              v.GetBool("copy"),
		Exclude:           v.GetStringSlice("exclude"),
		Gitignore:         v.GetBool("gitignore"),
		Tokens:            v.GetBool("tokens"),
		Model:             v.GetString("model"),
		Verbose:           v.GetBool("verbose"),
	}
	if s.MaxDepth < 0 {
		return Settings{}, fmt.Errorf("max depth must be non-negative, got %d", s.MaxDepth)
	}
	return s, nil
}
