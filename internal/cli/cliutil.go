// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/coredds/go-enigma-core/internal/cipher"
	"github.com/coredds/go-enigma-core/internal/session"
	"github.com/spf13/cobra"
)

// loadConfig resolves the --config flag to a session.Config, falling back
// to the classic reference configuration (session.DefaultConfig) when no
// path is given.
func loadConfig(cmd *cobra.Command) (session.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return session.DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return session.Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return session.Load(data)
}

// buildEngine constructs and initializes a cipher.Engine from cfg.
func buildEngine(cfg session.Config) (*cipher.Engine, error) {
	e, err := cipher.New()
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(e); err != nil {
		return nil, err
	}
	return e, nil
}

// runText encrypts every A-Z letter in text with e, in order, skipping (and
// preserving in the output) anything outside the cipher's alphabet, as the
// application FSM's key-draining loop does (§4.F): only uppercase letters
// reach the engine.
func runText(e *cipher.Engine, text string) (string, error) {
	var out strings.Builder
	for _, c := range strings.ToUpper(text) {
		if c < 'A' || c > 'Z' {
			out.WriteRune(c)
			continue
		}
		enc, err := e.Encrypt(c)
		if err != nil {
			return "", fmt.Errorf("encrypting %q: %w", c, err)
		}
		out.WriteRune(enc)
	}
	return out.String(), nil
}
