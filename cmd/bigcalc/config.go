package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	bigmath "github.com/deveel/deveel-math-sub001"
)

// config holds the defaults loaded from the TOML file; flags override it.
type config struct {
	Precision int    `toml:"precision"`
	Rounding  string `toml:"rounding"`
}

func defaultConfig() config {
	return config{Precision: 0, Rounding: "half-even"}
}

// loadConfig reads the config at path, or at ~/.bigcalc.toml when path is
// empty. A missing default file yields the built-in defaults; a missing
// explicit file is an error.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".bigcalc.toml")
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return defaultConfig(), nil
		}
		return config{}, err
	}
	return cfg, nil
}

// resolveContext combines the config file and command-line flags into the
// rounding context used by decimal commands.
func resolveContext(cmd *cobra.Command) (bigmath.Context, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return bigmath.Context{}, err
	}
	prec, _ := cmd.Flags().GetInt("precision")
	if prec < 0 {
		prec = cfg.Precision
	}
	name, _ := cmd.Flags().GetString("rounding")
	if name == "" {
		name = cfg.Rounding
	}
	mode, err := bigmath.ParseRoundingMode(name)
	if err != nil {
		return bigmath.Context{}, err
	}
	return bigmath.NewContext(prec, mode)
}
