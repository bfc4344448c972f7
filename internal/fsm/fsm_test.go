package fsm

import (
	"strings"
	"testing"

	"github.com/coredds/go-enigma-core/internal/cipher"
	"github.com/coredds/go-enigma-core/internal/display"
	"github.com/coredds/go-enigma-core/internal/hal"
	"github.com/coredds/go-enigma-core/internal/plugboard"
	"github.com/coredds/go-enigma-core/internal/rotary"
	"github.com/coredds/go-enigma-core/internal/session"
)

type fakeKeys struct {
	q        []uint16
	irqOn    bool
	irqCount int
}

func (f *fakeKeys) push(ev uint16)  { f.q = append(f.q, ev) }
func (f *fakeKeys) Available() bool { return len(f.q) > 0 }
func (f *fakeKeys) Read() uint16 {
	v := f.q[0]
	f.q = f.q[1:]
	return v
}
func (f *fakeKeys) EnableIRQ()  { f.irqOn = true; f.irqCount++ }
func (f *fakeKeys) DisableIRQ() { f.irqOn = false }

func newTestSession(t *testing.T) (*Session, *fakeKeys, *strings.Builder) {
	t.Helper()
	gpio := hal.NewFakeGPIO()
	engine, err := cipher.New()
	if err != nil {
		t.Fatalf("cipher.New() error: %v", err)
	}
	var pins [plugboard.Size]int
	for i := range pins {
		pins[i] = 200 + i
	}
	scanner := plugboard.NewScanner(gpio, pins)
	scanner.Init()
	rotaryReader := rotary.NewReader(gpio, 300, 301)
	rotaryReader.Init()
	keys := &fakeKeys{}
	var buf strings.Builder
	sink := display.NewTextSink(&buf)

	s, err := New(session.DefaultConfig(), engine, scanner, rotaryReader, gpio, 400, keys, sink)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	buf.Reset() // discard New()'s boot-time enterEncrypt output (WaitInput)
	return s, keys, &buf
}

// press drives a full debounced press-and-release on pin, advancing the
// shared clock ms across the whole call (not resetting it), matching a
// real device's single monotonically-increasing uptime counter. The pin is
// switched to output mode so FakeGPIO reports the level written to it.
func press(t *testing.T, s *Session, gpio *hal.FakeGPIO, pin int, ms *uint32) {
	t.Helper()
	gpio.InitOutput(pin)
	gpio.Write(pin, hal.High)
	for i := 0; i < 5; i++ {
		s.Step(*ms)
		*ms++
	}
	gpio.Write(pin, hal.Low)
	for i := 0; i < 5; i++ {
		s.Step(*ms)
		*ms++
	}
}

func TestSession_StartsInEncrypt(t *testing.T) {
	s, _, _ := newTestSession(t)
	if s.Mode() != ModeEncrypt {
		t.Fatalf("Mode() = %v, want ModeEncrypt", s.Mode())
	}
}

func TestSession_EncryptDrainsLetterEvents(t *testing.T) {
	s, keys, buf := newTestSession(t)
	keys.push(uint16('A'))

	s.Step(0)

	if buf.String() != "B" {
		t.Errorf("display output = %q, want %q (scenario 1)", buf.String(), "B")
	}
}

func TestSession_IgnoresBreakAndNonLetterEvents(t *testing.T) {
	s, keys, buf := newTestSession(t)
	keys.push(uint16('A') | 0x8000) // break bit set
	keys.push(uint16(0x01))         // a function/nav key code, not a letter

	s.Step(0)

	if buf.Len() != 0 {
		t.Errorf("display output = %q, want empty", buf.String())
	}
}

func TestSession_ModeCycle(t *testing.T) {
	fakeGPIO := hal.NewFakeGPIO()
	engine, _ := cipher.New()
	var pins [plugboard.Size]int
	for i := range pins {
		pins[i] = 200 + i
	}
	scanner := plugboard.NewScanner(fakeGPIO, pins)
	scanner.Init()
	rotaryReader := rotary.NewReader(fakeGPIO, 300, 301)
	rotaryReader.Init()
	keys := &fakeKeys{}
	var buf strings.Builder
	sink := display.NewTextSink(&buf)
	s, err := New(session.DefaultConfig(), engine, scanner, rotaryReader, fakeGPIO, 400, keys, sink)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	var ms uint32
	press(t, s, fakeGPIO, 400, &ms)
	if s.Mode() != ModeConfigPB {
		t.Fatalf("after 1 press: Mode() = %v, want ModeConfigPB", s.Mode())
	}

	press(t, s, fakeGPIO, 400, &ms)
	if s.Mode() != ModeConfigRotor || s.RotorSelected() != 0 {
		t.Fatalf("after 2 presses: Mode()=%v RotorSelected()=%d, want ModeConfigRotor,0", s.Mode(), s.RotorSelected())
	}

	press(t, s, fakeGPIO, 400, &ms)
	if s.Mode() != ModeConfigRotor || s.RotorSelected() != 1 {
		t.Fatalf("after 3 presses: Mode()=%v RotorSelected()=%d, want ModeConfigRotor,1", s.Mode(), s.RotorSelected())
	}

	press(t, s, fakeGPIO, 400, &ms)
	if s.Mode() != ModeConfigRotor || s.RotorSelected() != 2 {
		t.Fatalf("after 4 presses: Mode()=%v RotorSelected()=%d, want ModeConfigRotor,2", s.Mode(), s.RotorSelected())
	}

	press(t, s, fakeGPIO, 400, &ms)
	if s.Mode() != ModeEncrypt {
		t.Fatalf("after 5 presses: Mode() = %v, want ModeEncrypt (full cycle)", s.Mode())
	}
}

func TestSession_DisablesIRQLeavingEncrypt(t *testing.T) {
	gpio := hal.NewFakeGPIO()
	engine, _ := cipher.New()
	var pins [plugboard.Size]int
	for i := range pins {
		pins[i] = 200 + i
	}
	scanner := plugboard.NewScanner(gpio, pins)
	scanner.Init()
	rotaryReader := rotary.NewReader(gpio, 300, 301)
	rotaryReader.Init()
	keys := &fakeKeys{irqOn: true}
	sink := display.NewTextSink(&strings.Builder{})
	s, err := New(session.DefaultConfig(), engine, scanner, rotaryReader, gpio, 400, keys, sink)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	var ms uint32
	press(t, s, gpio, 400, &ms)
	if keys.irqOn {
		t.Errorf("IRQ still enabled after leaving ENCRYPT")
	}
}

// TestSession_RotorIntroUsesCurrentTick guards against seeding the 700ms
// rotor-intro deadline from a literal 0 instead of the tick the transition
// actually happened on: at any nontrivial device uptime, that would make
// the very next Step think the intro animation had already elapsed.
func TestSession_RotorIntroUsesCurrentTick(t *testing.T) {
	gpio := hal.NewFakeGPIO()
	engine, _ := cipher.New()
	var pins [plugboard.Size]int
	for i := range pins {
		pins[i] = 200 + i
	}
	scanner := plugboard.NewScanner(gpio, pins)
	scanner.Init()
	rotaryReader := rotary.NewReader(gpio, 300, 301)
	rotaryReader.Init()
	keys := &fakeKeys{}
	sink := display.NewTextSink(&strings.Builder{})
	s, err := New(session.DefaultConfig(), engine, scanner, rotaryReader, gpio, 400, keys, sink)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	ms := uint32(50_000) // long past boot, well beyond the 700ms intro window
	press(t, s, gpio, 400, &ms) // ENCRYPT -> CONFIG_PB
	press(t, s, gpio, 400, &ms) // CONFIG_PB -> CONFIG_ROTOR[0]

	if s.Mode() != ModeConfigRotor {
		t.Fatalf("Mode() = %v, want ModeConfigRotor", s.Mode())
	}
	if !s.rotorIntroActive {
		t.Fatalf("rotor intro animation skipped at high uptime; rotorIntroUntil must be seeded from the current tick, not tick 0")
	}
	if s.rotorIntroUntil <= ms {
		t.Fatalf("rotorIntroUntil = %d, want > current tick %d", s.rotorIntroUntil, ms)
	}
}
