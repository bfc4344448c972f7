// Package fsm implements the application's cooperative state machine
// (§4.F): a single button cycles ENCRYPT → CONFIG_PB → CONFIG_ROTOR[0..2] →
// ENCRYPT, orchestrating the cipher engine, plugboard scanner, rotary
// encoder, and PS/2 keyboard driver. Per the source's design notes (§9),
// modes are a sum type with per-mode step functions rather than a
// function-pointer table.
package fsm

import (
	"github.com/coredds/go-enigma-core/internal/cipher"
	"github.com/coredds/go-enigma-core/internal/debounce"
	"github.com/coredds/go-enigma-core/internal/display"
	"github.com/coredds/go-enigma-core/internal/hal"
	"github.com/coredds/go-enigma-core/internal/plugboard"
	"github.com/coredds/go-enigma-core/internal/rotary"
	"github.com/coredds/go-enigma-core/internal/session"
)

// Mode is the application's state tag.
type Mode int

const (
	ModeEncrypt Mode = iota
	ModeConfigPB
	ModeConfigRotor
)

func (m Mode) String() string {
	switch m {
	case ModeEncrypt:
		return "ENCRYPT"
	case ModeConfigPB:
		return "CONFIG_PB"
	case ModeConfigRotor:
		return "CONFIG_ROTOR"
	default:
		return "UNKNOWN"
	}
}

// KeySource is the subset of *ps2.Driver the FSM depends on; kept as an
// interface so tests can drive the FSM without a real PS/2 bit stream.
type KeySource interface {
	Available() bool
	Read() uint16
	EnableIRQ()
	DisableIRQ()
}

const (
	pbScanIntervalMs  = 500
	rotorIntroMs      = 700
)

// Session is the application's persistent state (§3 "Application session")
// plus the peripheral bindings it orchestrates. It is created once at boot
// and never destroyed; only Mode and its associated UI cursors change.
type Session struct {
	mode           Mode
	rotorSelected  int
	rotorPositions [3]int
	lastOutputChar rune

	cfg session.Config

	engine   *cipher.Engine
	scanner  *plugboard.Scanner
	rotary   *rotary.Reader
	button   *debounce.Debouncer
	keys     KeySource
	sink     display.Sink

	buttonGPIO hal.GPIO
	buttonPin  int

	buttonArmed bool

	lastScan plugboard.Mapping

	pbNextScanMs    uint32
	rotorIntroUntil uint32
	rotorIntroActive bool
}

// New builds a Session wired to its peripherals. cfg seeds the cipher
// engine and the initial rotor_positions.
func New(
	cfg session.Config,
	engine *cipher.Engine,
	scanner *plugboard.Scanner,
	rotaryReader *rotary.Reader,
	buttonGPIO hal.GPIO,
	buttonPin int,
	keys KeySource,
	sink display.Sink,
) (*Session, error) {
	if err := cfg.Apply(engine); err != nil {
		return nil, err
	}
	s := &Session{
		mode:           ModeEncrypt,
		rotorPositions: cfg.Offsets,
		cfg:            cfg,
		engine:         engine,
		scanner:        scanner,
		rotary:         rotaryReader,
		button:         debounce.New(10, 30, 30),
		keys:           keys,
		sink:           sink,
		buttonGPIO:     buttonGPIO,
		buttonPin:      buttonPin,
		lastScan:       cfg.Plugboard,
	}
	buttonGPIO.InitInputPulldown(buttonPin)
	s.enterEncrypt()
	return s, nil
}

// Mode reports the session's current state tag.
func (s *Session) Mode() Mode { return s.mode }

// RotorSelected reports which rotor index CONFIG_ROTOR is currently
// configuring (meaningful only while Mode() == ModeConfigRotor).
func (s *Session) RotorSelected() int { return s.rotorSelected }

// RotorPositions returns the session's current view of each rotor's
// configured offset.
func (s *Session) RotorPositions() [3]int { return s.rotorPositions }

// Step advances the session by one cooperative scheduling tick. nowMs is
// the current tick count in milliseconds, used for the 500 ms plugboard
// scan period and the 700 ms rotor-intro animation.
func (s *Session) Step(nowMs uint32) {
	s.pollButton(nowMs)

	switch s.mode {
	case ModeEncrypt:
		s.stepEncrypt()
	case ModeConfigPB:
		s.stepConfigPB(nowMs)
	case ModeConfigRotor:
		s.stepConfigRotor(nowMs)
	}
}

func (s *Session) pollButton(nowMs uint32) {
	raw := s.buttonGPIO.Read(s.buttonPin) == hal.High
	changed, pressed := s.button.Sample(raw)
	if !changed {
		return
	}
	if pressed {
		s.buttonArmed = true
		return
	}
	if s.buttonArmed {
		s.buttonArmed = false
		s.advance(nowMs)
	}
}

// advance drives the ENCRYPT → CONFIG_PB → CONFIG_ROTOR[0..2] → ENCRYPT
// progression on one debounced press-and-release (§4.F). nowMs is the tick
// the transition happened on, seeding enterConfigRotor's intro-animation
// deadline.
func (s *Session) advance(nowMs uint32) {
	switch s.mode {
	case ModeEncrypt:
		s.keys.DisableIRQ()
		s.mode = ModeConfigPB
		s.enterConfigPB()
	case ModeConfigPB:
		s.mode = ModeConfigRotor
		s.rotorSelected = 0
		s.enterConfigRotor(nowMs)
	case ModeConfigRotor:
		if s.rotorSelected < 2 {
			s.rotorSelected++
			s.enterConfigRotor(nowMs)
		} else {
			s.mode = ModeEncrypt
			s.enterEncrypt()
		}
	}
}

func (s *Session) enterEncrypt() {
	s.cfg.Plugboard = s.lastScan
	_ = s.engine.SetPlugboard(s.lastScan)
	_ = s.engine.Init(s.cfg.RotorChoice, s.cfg.ReflectorChoice, s.rotorPositions)
	s.keys.EnableIRQ()
	s.sink.WaitInput(true)
}

func (s *Session) enterConfigPB() {
	s.pbNextScanMs = 0
}

func (s *Session) enterConfigRotor(nowMs uint32) {
	if off, err := s.engine.RotorOffset(s.rotorSelected); err == nil {
		s.rotorPositions[s.rotorSelected] = off
	}
	s.rotorIntroActive = true
	s.rotorIntroUntil = nowMs + rotorIntroMs
	s.sink.RunAnimation(romanNumeral(s.rotorSelected+1), rotorIntroMs)
}

func (s *Session) stepEncrypt() {
	for s.keys.Available() {
		ev := s.keys.Read()
		if ev&0x8000 != 0 {
			continue // break event; only makes encrypt
		}
		key := byte(ev)
		if key < 'A' || key > 'Z' {
			continue
		}
		out, err := s.engine.Encrypt(rune(key))
		if err != nil {
			continue
		}
		s.lastOutputChar = out
		s.sink.ShowChar(out)
	}
}

func (s *Session) stepConfigPB(nowMs uint32) {
	if nowMs >= s.pbNextScanMs {
		s.lastScan = s.scanner.Scan()
		s.pbNextScanMs = nowMs + pbScanIntervalMs
	}
	s.sink.ScrollLabel("PLUG")
}

func (s *Session) stepConfigRotor(nowMs uint32) {
	if s.rotorIntroActive {
		if nowMs >= s.rotorIntroUntil {
			s.rotorIntroActive = false
		}
		return
	}

	delta := s.rotary.Read()
	if delta == 0 {
		return
	}
	pos := s.rotorPositions[s.rotorSelected] + delta
	if pos < 0 {
		pos = 0
	}
	if pos > 25 {
		pos = 25
	}
	if pos != s.rotorPositions[s.rotorSelected] {
		s.rotorPositions[s.rotorSelected] = pos
		s.sink.ShowOffset(s.rotorSelected, pos)
	}
}

func romanNumeral(n int) string {
	switch n {
	case 1:
		return "I"
	case 2:
		return "II"
	case 3:
		return "III"
	default:
		return ""
	}
}
