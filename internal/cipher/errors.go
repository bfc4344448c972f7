package cipher

import "errors"

// Configuration errors, rejected at the API boundary; they never mutate
// engine state (§7).
var (
	ErrInvalidRotorIndex = errors.New("cipher: invalid rotor index")
	ErrInvalidOffset     = errors.New("cipher: invalid rotor offset")
	ErrInvalidReflector  = errors.New("cipher: invalid reflector index")
	ErrInvalidPlugboard  = errors.New("cipher: plugboard mapping is not an involution")
)
