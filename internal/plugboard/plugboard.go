// Package plugboard implements the Steckerbrett: a self-inverse 26-letter
// permutation (§3 "Plugboard") and the GPIO conductivity sweep that derives
// one from the physical pin matrix (§4.B).
package plugboard

import "fmt"

// Size is the number of letters the plugboard maps, Σ = {A..Z}.
const Size = 26

// Mapping is a 26-element involution: either Mapping[c] == c (unplugged)
// or Mapping[c] != c && Mapping[Mapping[c]] == c (paired). It is the exact
// shape internal/cipher.Engine.SetPlugboard expects.
type Mapping [Size]int

// Identity returns the empty plugboard (every letter maps to itself).
func Identity() Mapping {
	var m Mapping
	for i := range m {
		m[i] = i
	}
	return m
}

// IsInvolution reports whether m satisfies the plugboard invariant.
func (m Mapping) IsInvolution() bool {
	for c, out := range m {
		if out < 0 || out >= Size {
			return false
		}
		if m[out] != c {
			return false
		}
	}
	return true
}

// AddPair returns a new Mapping with i and j swapped. Both must currently
// be unplugged (map to themselves) and i != j.
func (m Mapping) AddPair(i, j int) (Mapping, error) {
	if i < 0 || i >= Size || j < 0 || j >= Size {
		return m, fmt.Errorf("plugboard: index out of range")
	}
	if i == j {
		return m, fmt.Errorf("plugboard: cannot pair letter %d with itself", i)
	}
	if m[i] != i {
		return m, fmt.Errorf("plugboard: letter %d is already paired", i)
	}
	if m[j] != j {
		return m, fmt.Errorf("plugboard: letter %d is already paired", j)
	}
	m[i], m[j] = j, i
	return m, nil
}
