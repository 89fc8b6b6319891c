package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fileConfig is the optional on-disk configuration loaded from
// ~/.config/tagtree/config.yaml (or --config). Flags explicitly set on
// the command line always win over the file.
type fileConfig struct {
	Format     string `yaml:"format"`
	Pretty     bool   `yaml:"pretty"`
	DepthLimit int    `yaml:"depth_limit"`
}

func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tagtree", "config.yaml"), nil
}

// initConfig loads the config file (if any) and fills in any persistent
// flag the user did not explicitly set on the command line.
func initConfig(cmd *cobra.Command) error {
	logger = newLogger()

	path := flagConfig
	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			return nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}

	flags := cmd.Flags()
	if cfg.Format != "" && !flags.Changed("format") {
		flagFormat = cfg.Format
	}
	if !flags.Changed("pretty") {
		flagPretty = cfg.Pretty
	}
	if cfg.DepthLimit > 0 && !flags.Changed("depth-limit") {
		flagDepthLimit = cfg.DepthLimit
	}
	return nil
}
