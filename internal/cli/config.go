// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"fmt"

	"github.com/coredds/go-enigma-core/internal/session"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or display machine configurations",
}

var configRandomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print a cryptographically random machine configuration as JSON",
	RunE:  runConfigRandom,
}

var configDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the classic reference machine configuration as JSON",
	RunE:  runConfigDefault,
}

func init() {
	configCmd.AddCommand(configRandomCmd)
	configCmd.AddCommand(configDefaultCmd)
}

func runConfigRandom(cmd *cobra.Command, args []string) error {
	cfg, err := session.RandomConfig()
	if err != nil {
		return fmt.Errorf("generating random configuration: %w", err)
	}
	return printConfig(cmd, cfg)
}

func runConfigDefault(cmd *cobra.Command, args []string) error {
	return printConfig(cmd, session.DefaultConfig())
}

func printConfig(cmd *cobra.Command, cfg session.Config) error {
	data, err := session.Save(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
