package plugboard

import "github.com/coredds/go-enigma-core/internal/hal"

// Scanner derives a Mapping from the 26-pin GPIO matrix wired as the
// physical plugboard (§4.B). It is cooperative: one full sweep per Scan
// call; the application FSM invokes it periodically (nominal 2Hz) while in
// CONFIG_PB.
type Scanner struct {
	gpio hal.GPIO
	pins [Size]int
}

// NewScanner binds a Scanner to the GPIO board and the physical pin number
// assigned to each letter index.
func NewScanner(gpio hal.GPIO, pins [Size]int) *Scanner {
	return &Scanner{gpio: gpio, pins: pins}
}

// Init configures all 26 pins as high-impedance inputs with pull-downs.
func (s *Scanner) Init() {
	for _, pin := range s.pins {
		s.gpio.InitInputPulldown(pin)
	}
}

// Scan performs one full conductivity sweep and returns the resulting
// involution. For each letter i not yet paired, pin i is driven high as a
// push-pull output and every other unpaired pin is sampled; the first peer
// seen high is paired with i (and symmetrically, i with it) and the inner
// sweep stops. A letter already paired earlier in the sweep is skipped.
// An unconnected letter maps to itself. If a pin reads high from more than
// one peer — electrically impossible in a clean wiring, but possible under
// fault — the smallest index wins because the inner sweep scans in
// increasing order and stops at the first match.
func (s *Scanner) Scan() Mapping {
	m := Identity()

	for i := 0; i < Size; i++ {
		if m[i] != i {
			continue
		}
		s.gpio.InitOutput(s.pins[i])
		s.gpio.Write(s.pins[i], hal.High)

		for j := 0; j < Size; j++ {
			if j == i || m[j] != j {
				continue
			}
			if s.gpio.Read(s.pins[j]) == hal.High {
				m[i], m[j] = j, i
				break
			}
		}

		s.gpio.InitInputPulldown(s.pins[i])
	}

	return m
}
