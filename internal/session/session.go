// Package session owns the application's persistable configuration: which
// rotors and reflector are selected, the plugboard wiring, and initial
// rotor offsets (§3 "Application session"). It mirrors the serializable
// settings approach the cipher engine's teacher used, adapted to the fixed
// three-rotor Latin-alphabet machine this spec defines.
package session

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/coredds/go-enigma-core/internal/cipher"
	"github.com/coredds/go-enigma-core/internal/plugboard"
)

// Config is the serializable machine configuration: rotor choices (1..8),
// reflector choice (0..2), initial offsets, and the plugboard mapping.
type Config struct {
	RotorChoice     [3]int            `json:"rotor_choice"`
	ReflectorChoice int               `json:"reflector_choice"`
	Offsets         [3]int            `json:"offsets"`
	Plugboard       plugboard.Mapping `json:"plugboard"`
}

// DefaultConfig returns the classic reference configuration used throughout
// §8's worked scenarios: rotors III, II, I fast-to-slow, reflector B, all
// offsets zero, empty plugboard.
func DefaultConfig() Config {
	return Config{
		RotorChoice:     [3]int{3, 2, 1},
		ReflectorChoice: 1,
		Offsets:         [3]int{0, 0, 0},
		Plugboard:       plugboard.Identity(),
	}
}

// RandomConfig builds a Config with cryptographically random rotor choices,
// reflector choice, and offsets, leaving the plugboard empty (the plugboard
// is always derived from the physical scanner, never randomized). Grounded
// on the teacher's WithRandomRotorPositions, which also draws from
// crypto/rand rather than a seeded PRNG for non-reproducible sessions.
func RandomConfig() (Config, error) {
	cfg := Config{Plugboard: plugboard.Identity()}

	chosen := map[int]bool{}
	for i := 0; i < 3; i++ {
		for {
			n, err := randIntn(cipher.RotorCount)
			if err != nil {
				return Config{}, err
			}
			idx := n + 1
			if chosen[idx] {
				continue
			}
			chosen[idx] = true
			cfg.RotorChoice[i] = idx
			break
		}
	}

	refl, err := randIntn(cipher.ReflectorCount)
	if err != nil {
		return Config{}, err
	}
	cfg.ReflectorChoice = refl

	for i := 0; i < 3; i++ {
		off, err := randIntn(26)
		if err != nil {
			return Config{}, err
		}
		cfg.Offsets[i] = off
	}

	return cfg, nil
}

func randIntn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("session: generating random value: %w", err)
	}
	return int(v.Int64()), nil
}

// Apply configures a fresh cipher.Engine from cfg.
func (c Config) Apply(e *cipher.Engine) error {
	if err := e.Init(c.RotorChoice, c.ReflectorChoice, c.Offsets); err != nil {
		return err
	}
	return e.SetPlugboard(c.Plugboard)
}

// MarshalJSON and UnmarshalJSON are satisfied by the struct tags above;
// Load and Save are thin wrappers kept for symmetry with call sites that
// want an explicit verb instead of spelling out encoding/json.

// Load decodes a Config from JSON bytes.
func Load(data []byte) (Config, error) {
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("session: decoding config: %w", err)
	}
	return c, nil
}

// Save encodes cfg as indented JSON.
func Save(c Config) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("session: encoding config: %w", err)
	}
	return data, nil
}
