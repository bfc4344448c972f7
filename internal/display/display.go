// Package display defines the animation/output sink the application FSM
// drives (§4.F, §G) and a text-based reference implementation suitable for
// tests and the CLI demo.
package display

import (
	"fmt"
	"io"
	"strings"
)

// Sink is the minimal surface the FSM needs from a display: show a
// plaintext/ciphertext character, show a numeric rotor offset, run a named
// animation for a bounded duration (measured in caller ticks, not wall
// time, so a test double can fast-forward it), and scroll a short label.
// Hardware backends (segment displays, an OLED, etc.) and the TextSink
// below both satisfy it.
type Sink interface {
	ShowChar(c rune)
	ShowOffset(rotorIndex, offset int)
	RunAnimation(name string, ticks int)
	ScrollLabel(label string)

	// WaitInput drives the idle-prompt animation (§6 "wait_input(reset)").
	// reset restarts it from its first frame, as the ENCRYPT entry action
	// requires (§4.F "reset idle-prompt animations").
	WaitInput(reset bool)

	// Loading drives the busy/loading animation (§6 "loading(reset)").
	Loading(reset bool)
}

// TextSink is a Sink that renders to an io.Writer, one short text fragment
// per event with no line breaks between them. It
// is the reference implementation used by the CLI demo command and by
// tests that want to assert on FSM output without a real display.
type TextSink struct {
	w io.Writer
}

// NewTextSink wraps w as a Sink.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

func (s *TextSink) ShowChar(c rune) {
	fmt.Fprintf(s.w, "%c", c)
}

func (s *TextSink) ShowOffset(rotorIndex, offset int) {
	fmt.Fprintf(s.w, "[rotor %d: %02d]", rotorIndex, offset)
}

func (s *TextSink) RunAnimation(name string, ticks int) {
	fmt.Fprintf(s.w, "<%s x%d>", name, ticks)
}

func (s *TextSink) ScrollLabel(label string) {
	fmt.Fprintf(s.w, "{%s}", strings.ToUpper(label))
}

func (s *TextSink) WaitInput(reset bool) {
	fmt.Fprintf(s.w, "<wait reset=%t>", reset)
}

func (s *TextSink) Loading(reset bool) {
	fmt.Fprintf(s.w, "<loading reset=%t>", reset)
}
