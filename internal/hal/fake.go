package hal

type pinMode int

const (
	modeUndefined pinMode = iota
	modePulldown
	modePullup
	modeOutput
)

// FakeGPIO is an in-memory GPIO board double used by component tests and
// the CLI's "demo" command in place of real silicon. Reads on an input
// pin are derived live from any wired output partner, rather than cached,
// so a pin driven high and later returned to input mode stops reading high
// the instant it is no longer electrically connected to a driver — exactly
// like the physical bus the plugboard scanner sweeps (§4.B).
type FakeGPIO struct {
	modes  map[int]pinMode
	driven map[int]Level
	wires  [][2]int // physical jumpers between two pin numbers
	irqOn  bool
	tick   uint32
}

// NewFakeGPIO returns a board double with the IRQ enabled and no pins configured.
func NewFakeGPIO() *FakeGPIO {
	return &FakeGPIO{
		modes:  make(map[int]pinMode),
		driven: make(map[int]Level),
		irqOn:  true,
	}
}

func (f *FakeGPIO) InitInputPulldown(pin int) { f.modes[pin] = modePulldown }
func (f *FakeGPIO) InitInputPullup(pin int)   { f.modes[pin] = modePullup }
func (f *FakeGPIO) InitOutput(pin int)        { f.modes[pin] = modeOutput; f.driven[pin] = Low }

func (f *FakeGPIO) Write(pin int, level Level) { f.driven[pin] = level }

func (f *FakeGPIO) Read(pin int) Level {
	if f.modes[pin] == modeOutput {
		return f.driven[pin]
	}
	for _, w := range f.wires {
		var partner int
		switch pin {
		case w[0]:
			partner = w[1]
		case w[1]:
			partner = w[0]
		default:
			continue
		}
		if f.modes[partner] == modeOutput && f.driven[partner] == High {
			return High
		}
	}
	if f.modes[pin] == modePullup {
		return High
	}
	return Low
}

func (f *FakeGPIO) TickMs() uint32 { return f.tick }

// Advance moves the fake clock forward, for watchdog/timeout tests.
func (f *FakeGPIO) Advance(ms uint32) { f.tick += ms }

func (f *FakeGPIO) DisableIRQ() { f.irqOn = false }
func (f *FakeGPIO) EnableIRQ()  { f.irqOn = true }

// IRQEnabled reports the current IRQ gate state, for test assertions.
func (f *FakeGPIO) IRQEnabled() bool { return f.irqOn }

// Wire connects two pins with a physical jumper, modeling the plugboard's
// GPIO matrix for scanner tests.
func (f *FakeGPIO) Wire(a, b int) {
	f.wires = append(f.wires, [2]int{a, b})
}
