package cmd

import (
	"fmt"

	"golang-netreconcile/internal/pkg/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "golang-netreconcile",
	Short: "golang-netreconcile converges host network topology to a declared set of networks",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// loadConfig loads, validates and completes the configuration file.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}
