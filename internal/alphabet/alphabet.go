// Package alphabet provides the fixed 26-letter character set the cipher
// engine's rotors, reflector, and plugboard are built against. It exists so
// rotor/reflector wiring strings are validated once, at construction time,
// the way the teacher's generic alphabet package validates arbitrary rune
// sets. internal/cipher compiles wiring strings down to plain [26]int
// arrays; on each Encrypt it uses this package only to turn the input rune
// into an index and the output index back into a rune.
package alphabet

import "fmt"

// Size is the fixed size of Σ, the Enigma alphabet (A..Z).
const Size = 26

// Latin returns Σ = {A..Z} in index order: index(A)=0 .. index(Z)=25.
func Latin() []rune {
	runes := make([]rune, Size)
	for i := range runes {
		runes[i] = rune('A' + i)
	}
	return runes
}

// Alphabet provides bidirectional mapping between runes and their indices
// in insertion order (no re-sorting — the caller's order is the index
// order, which for Latin() is already A < B < ... < Z).
type Alphabet struct {
	runes    []rune
	runeToID map[rune]int
	size     int
}

// New creates an Alphabet from the provided runes. Duplicates are rejected.
func New(runes []rune) (*Alphabet, error) {
	if len(runes) == 0 {
		return nil, fmt.Errorf("alphabet cannot be empty")
	}

	runeToID := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, dup := runeToID[r]; dup {
			return nil, fmt.Errorf("duplicate character found: %c", r)
		}
		runeToID[r] = i
	}

	runesCopy := make([]rune, len(runes))
	copy(runesCopy, runes)

	return &Alphabet{
		runes:    runesCopy,
		runeToID: runeToID,
		size:     len(runesCopy),
	}, nil
}

// NewLatinUpper creates the fixed Σ = {A..Z} alphabet used by the cipher engine.
func NewLatinUpper() (*Alphabet, error) {
	return New(Latin())
}

// Size returns the number of characters in the alphabet.
func (a *Alphabet) Size() int {
	return a.size
}

// Runes returns a copy of the runes in the alphabet, in index order.
func (a *Alphabet) Runes() []rune {
	result := make([]rune, len(a.runes))
	copy(result, a.runes)
	return result
}

// RuneToIndex converts a rune to its index in the alphabet.
func (a *Alphabet) RuneToIndex(r rune) (int, error) {
	idx, exists := a.runeToID[r]
	if !exists {
		return 0, fmt.Errorf("character %c not found in alphabet", r)
	}
	return idx, nil
}

// IndexToRune converts an index to its corresponding rune.
func (a *Alphabet) IndexToRune(idx int) (rune, error) {
	if idx < 0 || idx >= a.size {
		return 0, fmt.Errorf("index %d out of bounds [0, %d)", idx, a.size)
	}
	return a.runes[idx], nil
}

// Contains checks if a rune is present in the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, exists := a.runeToID[r]
	return exists
}

// ValidateString checks that every rune in s is present in the alphabet,
// returning the first offender.
func (a *Alphabet) ValidateString(s string) (rune, error) {
	for _, r := range s {
		if !a.Contains(r) {
			return r, fmt.Errorf("character %c not found in alphabet", r)
		}
	}
	return 0, nil
}

// StringToIndices converts a string to a slice of indices.
func (a *Alphabet) StringToIndices(s string) ([]int, error) {
	result := make([]int, 0, len(s))
	for _, r := range s {
		idx, err := a.RuneToIndex(r)
		if err != nil {
			return nil, err
		}
		result = append(result, idx)
	}
	return result, nil
}

// IndicesToString converts a slice of indices back to a string.
func (a *Alphabet) IndicesToString(indices []int) (string, error) {
	runes := make([]rune, 0, len(indices))
	for _, idx := range indices {
		r, err := a.IndexToRune(idx)
		if err != nil {
			return "", err
		}
		runes = append(runes, r)
	}
	return string(runes), nil
}
