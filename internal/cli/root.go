// Package cli provides the command-line interface for the Enigma machine
// simulator.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	enigmacore "github.com/coredds/go-enigma-core"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "enigma-core",
	Short: "A PS/2-keyboard-driven Enigma machine simulator",
	Long: `enigma-core is a software simulator of a physical, three-rotor Enigma
machine built around a PS/2 keyboard driver, a GPIO plugboard scanner, a
rotary-encoder rotor selector, and a small cooperative application state
machine.

The CLI drives the cipher engine and the application FSM directly for
testing and demonstration, in place of the real keyboard and GPIO hardware.

Examples:
  enigma-core encrypt --text "HELLOWORLD"
  enigma-core decrypt --text "ILBDAAMTAZ"
  enigma-core config random
  enigma-core demo --text "HELLOWORLD"`,
	Version: enigmacore.GetVersion(),
}

// Execute runs the root command and handles errors.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(demoCmd)
}
