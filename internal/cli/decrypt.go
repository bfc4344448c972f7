// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt text through the cipher engine",
	Long: `Decrypt ciphertext through the cipher engine. The Enigma cipher is
reciprocal: decrypting is running the same engine, from the same initial
configuration, over the ciphertext (§8 scenario 4).`,
	RunE: runDecrypt,
}

func init() {
	decryptCmd.Flags().StringP("text", "t", "", "Text to decrypt")
	decryptCmd.Flags().StringP("config", "c", "", "Machine configuration JSON file")
	decryptCmd.MarkFlagRequired("text")
}

func runDecrypt(cmd *cobra.Command, args []string) error {
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
