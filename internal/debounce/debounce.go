// Package debounce implements the sampled-counter button debouncer (§4.E).
package debounce

// Debouncer tracks one button's debounced state using a down-counter: each
// sample where the raw reading disagrees with the current debounced state
// decrements the counter; reaching zero flips the debounced state and
// reloads the counter for the new direction.
type Debouncer struct {
	checkMs   uint32
	pressMs   uint32
	releaseMs uint32

	debounced bool
	counter   int
}

// New creates a Debouncer. checkMs is the sampling period; pressMs and
// releaseMs are the minimum stable durations (in ms) required to register a
// press and a release respectively.
func New(checkMs, pressMs, releaseMs uint32) *Debouncer {
	d := &Debouncer{checkMs: checkMs, pressMs: pressMs, releaseMs: releaseMs}
	d.counter = d.reloadFor(true) // starts released; the first disagreement run is toward pressed
	return d
}

func (d *Debouncer) reloadFor(pressed bool) int {
	if pressed {
		return int(d.pressMs / d.checkMs)
	}
	return int(d.releaseMs / d.checkMs)
}

// Sample feeds one raw reading, taken every checkMs. It returns whether the
// debounced state changed this call and, in either case, the current
// debounced pressed state.
func (d *Debouncer) Sample(rawPressed bool) (changed bool, pressed bool) {
	if rawPressed == d.debounced {
		d.counter = d.reloadFor(!d.debounced)
		return false, d.debounced
	}

	d.counter--
	if d.counter > 0 {
		return false, d.debounced
	}

	d.debounced = rawPressed
	d.counter = d.reloadFor(!d.debounced)
	return true, d.debounced
}

// Pressed reports the current debounced state without sampling.
func (d *Debouncer) Pressed() bool { return d.debounced }
