package cipher

import (
	"fmt"

	"github.com/coredds/go-enigma-core/internal/alphabet"
)

// rotor is one of R1, R2, R3 (§3 "Rotor"). Unlike the teacher's generic,
// variable-size Rotor type, wiring/notch/turnover are fixed-size [26]
// arrays of indices — built once from the historical wiring strings in
// tables.go by internal/alphabet, then never touched again by string
// lookups on the encrypt hot path (Design Note 9: "eliminating the
// string-search in str_index").
type rotor struct {
	forward  [alphabet.Size]int
	backward [alphabet.Size]int
	notch    [alphabet.Size]bool
	turnover [alphabet.Size]bool
	offset   int
	stepNext bool
}

func newRotor(alph *alphabet.Alphabet, wiring, notches, turnovers string) (*rotor, error) {
	wiringRunes := []rune(wiring)
	if len(wiringRunes) != alphabet.Size {
		return nil, fmt.Errorf("rotor wiring length %d, want %d", len(wiringRunes), alphabet.Size)
	}

	r := &rotor{}
	used := [alphabet.Size]bool{}
	for i, ru := range wiringRunes {
		outIdx, err := alph.RuneToIndex(ru)
		if err != nil {
			return nil, fmt.Errorf("invalid rotor wiring character %c: %w", ru, err)
		}
		if used[outIdx] {
			return nil, fmt.Errorf("rotor wiring is not a bijection: %c repeated", ru)
		}
		used[outIdx] = true
		r.forward[i] = outIdx
		r.backward[outIdx] = i
	}

	for _, ru := range notches {
		idx, err := alph.RuneToIndex(ru)
		if err != nil {
			return nil, fmt.Errorf("invalid notch character %c: %w", ru, err)
		}
		r.notch[idx] = true
	}

	for _, ru := range turnovers {
		idx, err := alph.RuneToIndex(ru)
		if err != nil {
			return nil, fmt.Errorf("invalid turnover character %c: %w", ru, err)
		}
		r.turnover[idx] = true
	}

	return r, nil
}

// forwardStep computes forward(R, x) = index(alpha, wiring(R)[(x+offset)%26]) - offset mod 26.
func (r *rotor) forwardStep(x int) int {
	adjusted := mod26(x + r.offset)
	return mod26(r.forward[adjusted] - r.offset)
}

// backwardStep computes reverse(R, x) = "index of alpha[(x+offset)%26] in wiring" - offset mod 26.
func (r *rotor) backwardStep(x int) int {
	adjusted := mod26(x + r.offset)
	return mod26(r.backward[adjusted] - r.offset)
}

// isAtNotch reports whether the rotor's current offset is in its notch set
// (governs the middle-rotor double-step anomaly, §3/§4.A).
func (r *rotor) isAtNotch() bool {
	return r.notch[r.offset]
}

// isAtTurnover reports whether the rotor's current offset is in its
// turnover set (governs stepping of the rotor to its left).
func (r *rotor) isAtTurnover() bool {
	return r.turnover[r.offset]
}

// advance steps the rotor by one position (mod 26) and returns whether the
// new offset landed on a turnover position.
func (r *rotor) advance() (crossedTurnover bool) {
	r.offset = mod26(r.offset + 1)
	return r.isAtTurnover()
}

func mod26(x int) int {
	x %= alphabet.Size
	if x < 0 {
		x += alphabet.Size
	}
	return x
}
