package cipher

import (
	"fmt"

	"github.com/coredds/go-enigma-core/internal/alphabet"
)

// reflector is the self-inverse, fixed-point-free permutation chosen from
// the table in §6 and frozen for the session (§3).
type reflector struct {
	mapping [alphabet.Size]int
}

func newReflector(alph *alphabet.Alphabet, wiring string) (*reflector, error) {
	wiringRunes := []rune(wiring)
	if len(wiringRunes) != alphabet.Size {
		return nil, fmt.Errorf("reflector wiring length %d, want %d", len(wiringRunes), alphabet.Size)
	}

	refl := &reflector{}
	used := [alphabet.Size]bool{}
	for i, ru := range wiringRunes {
		outIdx, err := alph.RuneToIndex(ru)
		if err != nil {
			return nil, fmt.Errorf("invalid reflector character %c: %w", ru, err)
		}
		if i == outIdx {
			return nil, fmt.Errorf("reflector character %c maps to itself", ru)
		}
		if used[outIdx] {
			return nil, fmt.Errorf("reflector wiring is not a bijection: %c repeated", ru)
		}
		used[outIdx] = true
		refl.mapping[i] = outIdx
	}

	for i, out := range refl.mapping {
		if refl.mapping[out] != i {
			return nil, fmt.Errorf("reflector mapping is not reciprocal at index %d", i)
		}
	}

	return refl, nil
}

func (r *reflector) reflect(x int) int {
	return r.mapping[x]
}
