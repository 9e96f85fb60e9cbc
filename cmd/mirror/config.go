package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mirror/internal/config"
)

// effective mirrors config.Config with YAML keys for printing.
type effective struct {
	Cache struct {
		Size int `yaml:"size"`
	} `yaml:"cache"`
	Log struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`
	Clone struct {
		Profile string `yaml:"profile,omitempty"`
	} `yaml:"clone"`
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long:  "Load mirror.yaml (or --config) with MIRROR_ environment overrides and print the result as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			var e effective
			e.Cache.Size = cfg.Cache.Size
			e.Log.Level = cfg.Log.Level
			e.Log.Development = cfg.Log.Development
			e.Clone.Profile = cfg.Clone.Profile

			data, err := yaml.Marshal(&e)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
