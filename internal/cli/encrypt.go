// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt text through the cipher engine",
	Long: `Encrypt text through the cipher engine (§4.A), using the classic
reference configuration (rotors III, II, I, reflector B, offsets 0,0,0) or a
machine configuration loaded with --config.

Non-letter characters pass through unchanged, matching the application
FSM's behavior of only handing uppercase letters to the engine.`,
	RunE: runEncrypt,
}

func init() {
	encryptCmd.Flags().StringP("text", "t", "", "Text to encrypt")
	encryptCmd.Flags().StringP("config", "c", "", "Machine configuration JSON file")
	encryptCmd.MarkFlagRequired("text")
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	engine, err := buildEngine(cfg)
	if err != nil {
		return fmt.Errorf("initializing cipher engine: %w", err)
	}

	out, err := runText(engine, text)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
