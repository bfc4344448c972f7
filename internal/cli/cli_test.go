// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"bytes"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute(%v) error: %v\noutput: %s", args, err, out.String())
	}
	return out.String()
}

func TestEncrypt_Scenario1(t *testing.T) {
	got := strings.TrimSpace(runCommand(t, "encrypt", "--text", "A"))
	if got != "B" {
		t.Errorf("encrypt A = %q, want %q", got, "B")
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	cipherText := strings.TrimSpace(runCommand(t, "encrypt", "--text", "HELLOWORLD"))
	if cipherText != "ILBDAAMTAZ" {
		t.Fatalf("encrypt HELLOWORLD = %q, want ILBDAAMTAZ", cipherText)
	}
	plainText := strings.TrimSpace(runCommand(t, "decrypt", "--text", cipherText))
	if plainText != "HELLOWORLD" {
		t.Errorf("decrypt %q = %q, want HELLOWORLD", cipherText, plainText)
	}
}

func TestConfigDefault_IsValidJSON(t *testing.T) {
	out := runCommand(t, "config", "default")
	if !strings.Contains(out, `"rotor_choice"`) {
		t.Errorf("config default output missing rotor_choice field: %s", out)
	}
}

func TestConfigRandom_Runs(t *testing.T) {
	out := runCommand(t, "config", "random")
	if !strings.Contains(out, `"reflector_choice"`) {
		t.Errorf("config random output missing reflector_choice field: %s", out)
	}
}

func TestDemo_EncryptsText(t *testing.T) {
	got := strings.TrimSpace(runCommand(t, "demo", "--text", "A"))
	if !strings.HasSuffix(got, "B") {
		t.Errorf("demo --text A output = %q, want it to end in %q", got, "B")
	}
}
