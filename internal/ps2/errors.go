package ps2

import (
	"errors"
	"fmt"
)

// Configuration errors, rejected at the API boundary; they never mutate
// driver state (§7).
var (
	ErrInvalidArg       = errors.New("ps2: argument out of range")
	ErrInvalidTypematic = fmt.Errorf("ps2: typematic rate/delay out of range: %w", ErrInvalidArg)
)
