// Package cipher implements the Enigma cipher engine (§4.A): a rotor /
// reflector / plugboard character permutation with odometer-like stepping,
// including the middle-rotor double-step anomaly.
package cipher

import (
	"strings"

	"github.com/coredds/go-enigma-core/internal/alphabet"
)

// Engine is the Enigma state of §3: three rotors in fast→slow order, a
// reflector, and a plugboard, mutated only by Encrypt.
type Engine struct {
	alph        *alphabet.Alphabet
	rotors      [3]*rotor
	refl        *reflector
	plugboard   [alphabet.Size]int
	initialized bool
}

// New returns an uninitialized engine; call Init before Encrypt.
func New() (*Engine, error) {
	alph, err := alphabet.NewLatinUpper()
	if err != nil {
		return nil, err
	}
	e := &Engine{alph: alph}
	identityPlugboard(&e.plugboard)
	return e, nil
}

func identityPlugboard(p *[alphabet.Size]int) {
	for i := range p {
		p[i] = i
	}
}

// Init selects three rotors by 1-based index (1..8, see §6), a reflector
// (0..2), and initial offsets (0..25 each). Rotor 0 of the returned
// triple is R1 (fast), rotor 2 is R3 (slow).
func (e *Engine) Init(rotorChoice [3]int, reflectorChoice int, offsets [3]int) error {
	for _, idx := range rotorChoice {
		if idx < 1 || idx > RotorCount {
			return ErrInvalidRotorIndex
		}
	}
	if reflectorChoice < 0 || reflectorChoice >= ReflectorCount {
		return ErrInvalidReflector
	}
	for _, off := range offsets {
		if off < 0 || off >= alphabet.Size {
			return ErrInvalidOffset
		}
	}

	var built [3]*rotor
	for i, idx := range rotorChoice {
		r, err := newRotor(e.alph, rotorWirings[idx], rotorNotches[idx], rotorTurnovers[idx])
		if err != nil {
			return err
		}
		r.offset = offsets[i]
		built[i] = r
	}

	refl, err := newReflector(e.alph, reflectorWirings[reflectorChoice])
	if err != nil {
		return err
	}

	e.rotors = built
	e.refl = refl
	e.initialized = true
	return nil
}

// SetPlugboard installs a 26-letter involution (§3 "Plugboard"): for every
// character c, P(P(c)) == c. Returns ErrInvalidPlugboard otherwise.
func (e *Engine) SetPlugboard(mapping [alphabet.Size]int) error {
	for c, out := range mapping {
		if out < 0 || out >= alphabet.Size {
			return ErrInvalidPlugboard
		}
		if mapping[out] != c {
			return ErrInvalidPlugboard
		}
	}
	e.plugboard = mapping
	return nil
}

// RotorOffset observes the current offset of rotor i (0=R1 fast .. 2=R3 slow).
func (e *Engine) RotorOffset(i int) (int, error) {
	if i < 0 || i > 2 {
		return 0, ErrInvalidRotorIndex
	}
	return e.rotors[i].offset, nil
}

// Encrypt steps the rotors, then permutes c through plugboard → rotors →
// reflector → rotors → plugboard (§4.A). c is case-folded to uppercase;
// behavior for characters outside Σ is unspecified (the application layer
// is responsible for filtering non-letters before calling, §4.F).
func (e *Engine) Encrypt(c rune) (rune, error) {
	c = []rune(strings.ToUpper(string(c)))[0]
	idx, err := e.alph.RuneToIndex(c)
	if err != nil {
		return 0, err
	}

	e.stepRotors()

	x := e.plugboard[idx]

	for i := 0; i < 3; i++ {
		x = e.rotors[i].forwardStep(x)
	}

	x = e.refl.reflect(x)

	for i := 2; i >= 0; i-- {
		x = e.rotors[i].backwardStep(x)
	}

	x = e.plugboard[x]

	return e.alph.IndexToRune(x)
}

// stepRotors implements the §4.A stepping algorithm literally, including
// the double-step anomaly. See DESIGN.md for the resolved ordering
// ambiguity flagged in spec §9 (whether R2's double-step check uses its
// pre- or post-step offset): this engine checks R2's offset after R1 has
// advanced but before R2 has moved in this keystroke, exactly as step 2 is
// written.
func (e *Engine) stepRotors() {
	r1, r2, r3 := e.rotors[0], e.rotors[1], e.rotors[2]

	// 1. R1 always advances.
	if crossed := r1.advance(); crossed {
		r1.stepNext = true
	}

	// 2. Double-step: if R2 was sitting on its notch at the start of this
	// keystroke (R1's turnover has not reached it yet; that happens in step
	// 3), it advances too (propagating its own turnover flag).
	if r2.isAtNotch() {
		if crossed := r2.advance(); crossed {
			r2.stepNext = true
		}
	}

	// 3. Propagate pending turnover flags left-to-right.
	rotorsFastToSlow := [2]*rotor{r1, r2}
	next := [2]*rotor{r2, r3}
	for i, r := range rotorsFastToSlow {
		if r.stepNext {
			r.stepNext = false
			if crossed := next[i].advance(); crossed {
				next[i].stepNext = true
			}
		}
	}
}

// State is a snapshot of the mutable rotor stepping state, used to freeze
// and restore the engine for the involution test property (§8.2): encrypt,
// restore, encrypt again, and the two outputs must be reciprocal.
type State struct {
	offsets   [3]int
	stepNexts [3]bool
}

// Snapshot captures the current rotor offsets and pending-step flags.
func (e *Engine) Snapshot() State {
	var s State
	for i, r := range e.rotors {
		s.offsets[i] = r.offset
		s.stepNexts[i] = r.stepNext
	}
	return s
}

// Restore resets rotor offsets and pending-step flags to a prior Snapshot.
func (e *Engine) Restore(s State) {
	for i, r := range e.rotors {
		r.offset = s.offsets[i]
		r.stepNext = s.stepNexts[i]
	}
}

// EncryptAt restores the engine to state s, then encrypts c. It is the
// "encrypt_at_state(S, c)" helper §8's invariants are phrased in terms of.
func (e *Engine) EncryptAt(s State, c rune) (rune, error) {
	e.Restore(s)
	return e.Encrypt(c)
}
