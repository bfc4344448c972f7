// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"fmt"
	"strings"

	"github.com/coredds/go-enigma-core/internal/cipher"
	"github.com/coredds/go-enigma-core/internal/display"
	"github.com/coredds/go-enigma-core/internal/fsm"
	"github.com/coredds/go-enigma-core/internal/hal"
	"github.com/coredds/go-enigma-core/internal/plugboard"
	"github.com/coredds/go-enigma-core/internal/rotary"
	"github.com/coredds/go-enigma-core/internal/session"
	"github.com/spf13/cobra"
)

const (
	demoButtonPin     = 900
	demoRotaryClk     = 901
	demoRotaryData    = 902
	demoPlugboardBase = 800
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the application FSM over simulated hardware",
	Long: `demo wires the application FSM (§4.F) to a simulated GPIO board
(internal/hal.FakeGPIO) instead of real PS/2 and rotary hardware, queues
the letters of --text as translated key events (the ENCRYPT-mode step
drains every queued event in one tick), and prints the resulting
ciphertext through a text display sink.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringP("text", "t", "", "Text to feed through the ENCRYPT-mode key queue")
	demoCmd.Flags().StringP("config", "c", "", "Machine configuration JSON file")
	demoCmd.MarkFlagRequired("text")
}

// queuedKeys is a fsm.KeySource backed by a pre-populated queue, standing
// in for a real *ps2.Driver when there is no keyboard to drive the ISR.
type queuedKeys struct {
	pending []uint16
	irqOn   bool
}

func (q *queuedKeys) Available() bool { return q.irqOn && len(q.pending) > 0 }
func (q *queuedKeys) Read() uint16 {
	v := q.pending[0]
	q.pending = q.pending[1:]
	return v
}
func (q *queuedKeys) EnableIRQ()  { q.irqOn = true }
func (q *queuedKeys) DisableIRQ() { q.irqOn = false }

func runDemo(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	engine, err := cipher.New()
	if err != nil {
		return fmt.Errorf("initializing cipher engine: %w", err)
	}

	gpio := hal.NewFakeGPIO()

	var pins [plugboard.Size]int
	for i := range pins {
		pins[i] = demoPlugboardBase + i
	}
	scanner := plugboard.NewScanner(gpio, pins)
	scanner.Init()

	rotaryReader := rotary.NewReader(gpio, demoRotaryClk, demoRotaryData)
	rotaryReader.Init()

	keys := &queuedKeys{}
	for _, c := range strings.ToUpper(text) {
		if c >= 'A' && c <= 'Z' {
			keys.pending = append(keys.pending, uint16(c))
		}
	}

	sink := display.NewTextSink(cmd.OutOrStdout())

	s, err := fsm.New(cfg, engine, scanner, rotaryReader, gpio, demoButtonPin, keys, sink)
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}

	var tick uint32
	for len(keys.pending) > 0 {
		s.Step(tick)
		tick++
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
