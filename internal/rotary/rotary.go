// Package rotary decodes a quadrature rotary encoder's CLK/DATA pins into
// one-detent steps (§4.D).
package rotary

import "github.com/coredds/go-enigma-core/internal/hal"

// validTransition flags which of the 16 possible 4-bit (prev<<2|current)
// codes correspond to a real quadrature edge rather than contact bounce.
var validTransition = [16]bool{
	false, true, true, false, true, false, false, true,
	true, false, false, true, false, true, true, false,
}

const (
	detentCW1  = 0xE8
	detentCW2  = 0x17
	detentCCW1 = 0xD4
	detentCCW2 = 0x2B
)

// Reader tracks the rolling transition history for one encoder and reports
// a signed step (-1, 0, +1) each time Read is polled.
type Reader struct {
	gpio          hal.GPIO
	clkPin, dataPin int
	store         uint16
	prevCode      byte
}

// NewReader binds a Reader to the encoder's CLK and DATA pins.
func NewReader(gpio hal.GPIO, clkPin, dataPin int) *Reader {
	return &Reader{gpio: gpio, clkPin: clkPin, dataPin: dataPin}
}

// Init configures the CLK and DATA pins as pulled-up inputs, the idle level
// for an open-collector quadrature encoder.
func (r *Reader) Init() {
	r.gpio.InitInputPullup(r.clkPin)
	r.gpio.InitInputPullup(r.dataPin)
}

// Read samples the current CLK/DATA state, folds it into the rolling
// history, and returns +1 for a clockwise detent, -1 for counter-clockwise,
// or 0 if no full detent has completed.
func (r *Reader) Read() int {
	current := byte(0)
	if r.gpio.Read(r.clkPin) == hal.High {
		current |= 0x02
	}
	if r.gpio.Read(r.dataPin) == hal.High {
		current |= 0x01
	}

	code := (r.prevCode << 2) | current
	r.prevCode = current

	if !validTransition[code&0x0F] {
		return 0
	}

	r.store = (r.store << 4) | uint16(code)

	switch byte(r.store) {
	case detentCW1, detentCW2:
		return 1
	case detentCCW1, detentCCW2:
		return -1
	default:
		return 0
	}
}
