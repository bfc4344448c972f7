// Package hal defines the GPIO/board contract the core consumes but does
// not implement (§6 "GPIO/HAL contract"): pin mux, NVIC, tick counter, and
// board bring-up live outside this module's scope. Only the interface the
// plugboard scanner, rotary-encoder reader, and PS/2 driver need is fixed
// here.
package hal

// Level is a single GPIO line state.
type Level bool

const (
	Low  Level = false
	High Level = true
)

// GPIO is the pin-level contract consumed by internal/plugboard,
// internal/rotary, internal/ps2's Driver, and internal/fsm's button input.
type GPIO interface {
	InitInputPulldown(pin int)
	InitInputPullup(pin int)
	InitOutput(pin int)
	Write(pin int, level Level)
	Read(pin int) Level

	// TickMs returns a free-running millisecond counter. The PS/2 driver's
	// 250ms inter-bit watchdog and the FSM's animation/scan timers do not
	// read it themselves: Driver.OnClockEdge and fsm.Session.Step take the
	// current tick as an argument.
	TickMs() uint32

	// DisableIRQ/EnableIRQ scope-bound the host-to-device transmission
	// setup (§4.C "the ISR must be disabled around host-to-device setup
	// to avoid spurious edges"). EnableIRQ must be safe to call even if
	// DisableIRQ was never called (non-nesting, matching the §5 model of
	// a single edge-triggered ISR).
	DisableIRQ()
	EnableIRQ()
}
