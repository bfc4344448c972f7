// Package ps2 implements a PS/2 Scan Code Set 2 keyboard driver: the
// bit-level receive state machine (§4.C), scan code decoding, a
// host-to-device command queue, and the Observable command surface the
// application FSM drives. Host-to-device transmission is not clocked out
// bit by bit here: queued command bytes are handed out by NextCommand.
package ps2

import "github.com/coredds/go-enigma-core/internal/hal"

// Keystatus bits, packed into the high byte of a translated event
// ((keystatus<<8)|key_code). Bit positions mirror §6's word-level
// numbering (15 break ... 8 function) shifted down into the byte.
const (
	StatusFunction = 1 << 0
	StatusGui      = 1 << 1
	StatusAltGr    = 1 << 2
	StatusAlt      = 1 << 3
	StatusCaps     = 1 << 4
	StatusCtrl     = 1 << 5
	StatusShift    = 1 << 6
	StatusBreak    = 1 << 7
)

const eventRingCapacity = 16

// Driver is a complete PS/2 keyboard driver instance bound to a clock and
// data GPIO pin pair. Its only I/O entry point from the hardware side is
// OnClockEdge, meant to be called from the clock-pin falling-edge ISR; every
// other method is the Observable surface the foreground FSM uses.
type Driver struct {
	gpio            hal.GPIO
	clkPin, dataPin int

	rx  receiver
	dec decoder
	tx  transmitter

	events *Ring[uint16]

	shiftDown, ctrlDown, altDown, altGrDown, guiDown bool
	capsLock, numLock, scrollLock                    bool
	noBreaks, noRepeats                              bool
	lastMadeRaw                                       byte
	lastMadeE0                                        bool
	haveLastMade                                      bool
	scancodeSet                                       byte
	typematicRate, typematicDelay                    byte
}

// New creates a Driver bound to the given clock/data pins. Call Init before
// enabling interrupts.
func New(gpio hal.GPIO, clkPin, dataPin int) *Driver {
	return &Driver{
		gpio:          gpio,
		clkPin:        clkPin,
		dataPin:       dataPin,
		events:        NewRing[uint16](eventRingCapacity),
		scancodeSet:   2,
		typematicRate: 0,
	}
}

// Init configures the clock and data lines as pull-up inputs, the idle state
// of an open-collector PS/2 bus, and resets the protocol state machines.
func (d *Driver) Init() {
	d.gpio.InitInputPullup(d.clkPin)
	d.gpio.InitInputPullup(d.dataPin)
	d.Reset()
}

// EnableIRQ / DisableIRQ gate the clock-edge interrupt at the board level;
// the driver itself does not buffer edges while disabled.
func (d *Driver) EnableIRQ()  { d.gpio.EnableIRQ() }
func (d *Driver) DisableIRQ() { d.gpio.DisableIRQ() }

// OnClockEdge is the ISR entry point: call it with the sampled data line
// state on every falling edge of the clock line, and the current tick in
// milliseconds (for the mid-frame watchdog).
func (d *Driver) OnClockEdge(dataBit bool, nowMs uint32) {
	b, status := d.rx.Edge(dataBit, nowMs)
	switch status {
	case FrameIncomplete:
		return
	case FrameParityError, FrameFraming:
		d.tx.Enqueue(CmdResendCmd)
		return
	}
	d.handleByte(b)
}

func (d *Driver) handleByte(b byte) {
	res := d.dec.Process(b)
	switch res.action {
	case actionIgnore:
	case actionResetAll:
		d.Reset()
	case actionResend:
		d.tx.Resend()
	case actionEchoReply, actionBAT, actionAck:
		// Nothing further: these are device responses to host commands
		// and carry no key information.
	case actionKeyEvent, actionPauseEvent:
		d.handleKey(res.raw, res.e0, res.brk)
	}
}

func (d *Driver) handleKey(raw byte, e0, brk bool) {
	var key byte
	var ok bool
	if !e0 && isKeypadCode(raw) {
		key, ok = translateKeypad(raw, d.numLock, d.shiftDown)
	} else {
		key, ok = translate(raw, e0)
	}
	if !ok {
		return
	}

	switch key {
	case KeyLeftShift, KeyRightShift:
		d.shiftDown = !brk
		return
	case KeyLeftCtrl, KeyRightCtrl:
		d.ctrlDown = !brk
		return
	case KeyLeftAlt:
		d.altDown = !brk
		return
	case KeyRightAlt:
		d.altGrDown = !brk
		return
	case KeyLeftGui:
		d.guiDown = !brk
		return
	}

	if isLockKey(key) {
		if brk {
			return // locks toggle on make only
		}
		switch key {
		case KeyCapsLock:
			d.capsLock = !d.capsLock
		case KeyNumLock:
			d.numLock = !d.numLock
		case KeyScrollLock:
			d.scrollLock = !d.scrollLock
		}
		d.tx.Enqueue(CmdSetLEDs)
		d.tx.Enqueue(d.ledByte())
		return
	}

	if brk {
		d.haveLastMade = false
		if d.noBreaks {
			return
		}
		d.events.Push(d.pack(key, true))
		return
	}

	if d.noRepeats && d.haveLastMade && d.lastMadeRaw == raw && d.lastMadeE0 == e0 {
		return
	}
	d.lastMadeRaw, d.lastMadeE0, d.haveLastMade = raw, e0, true
	d.events.Push(d.pack(key, false))
}

func (d *Driver) pack(key byte, brk bool) uint16 {
	status := byte(0)
	if d.shiftDown {
		status |= StatusShift
	}
	if d.ctrlDown {
		status |= StatusCtrl
	}
	if d.altDown {
		status |= StatusAlt
	}
	if d.altGrDown {
		status |= StatusAltGr
	}
	if d.guiDown {
		status |= StatusGui
	}
	if d.capsLock {
		status |= StatusCaps
	}
	if isFunctionKey(key) {
		status |= StatusFunction
	}
	if brk {
		status |= StatusBreak
	}
	return uint16(status)<<8 | uint16(key)
}

func (d *Driver) ledByte() byte {
	var b byte
	if d.scrollLock {
		b |= 1 << 0
	}
	if d.numLock {
		b |= 1 << 1
	}
	if d.capsLock {
		b |= 1 << 2
	}
	return b
}

// Available reports whether a translated key event is waiting to be read.
func (d *Driver) Available() bool { return d.events.Len() > 0 }

// Read pops the oldest translated key event, or 0 if none is available.
func (d *Driver) Read() uint16 {
	v, _ := d.events.Pop()
	return v
}

// GetLock reports the current lock-key state, packed as
// scroll|num|caps in the low 3 bits.
func (d *Driver) GetLock() byte { return d.ledByte() }

// SetLock forces the lock-key state (e.g. on session restore) and pushes
// the corresponding LED command.
func (d *Driver) SetLock(scroll, num, caps bool) {
	d.scrollLock, d.numLock, d.capsLock = scroll, num, caps
	d.tx.Enqueue(CmdSetLEDs)
	d.tx.Enqueue(d.ledByte())
}

// SetNoBreaks, when enabled, suppresses break (key-up) events entirely.
func (d *Driver) SetNoBreaks(on bool) { d.noBreaks = on }

// SetNoRepeats, when enabled, suppresses a typematic make code that repeats
// without an intervening break.
func (d *Driver) SetNoRepeats(on bool) { d.noRepeats = on }

// Echo sends the keyboard echo diagnostic command.
func (d *Driver) Echo() { d.tx.Enqueue(CmdEcho) }

// ReadID queues the read-ID command; the two-byte device ID reply is
// consumed internally and not surfaced on the event ring.
func (d *Driver) ReadID() { d.tx.Enqueue(0xF2) }

// GetScancodeSet reports the scan code set last selected via
// SetScancodeSet (the driver only decodes Set 2; other values are recorded
// for protocol compliance but not actually reinterpreted).
func (d *Driver) GetScancodeSet() byte { return d.scancodeSet }

// SetScancodeSet queues a scan code set selection command.
func (d *Driver) SetScancodeSet(set byte) {
	d.scancodeSet = set
	d.tx.Enqueue(CmdScancodeSet)
	d.tx.Enqueue(set)
}

// Typematic queues a typematic rate/delay configuration command, packed per
// the standard PS/2 encoding. rate must be 0..31 and delay 0..3 (§4.C);
// out-of-range values return ErrInvalidTypematic and leave driver state
// untouched (§7 "configuration errors ... never mutate state").
func (d *Driver) Typematic(rate, delay byte) error {
	if rate > 31 || delay > 3 {
		return ErrInvalidTypematic
	}
	d.typematicRate, d.typematicDelay = rate, delay
	d.tx.Enqueue(CmdSetTypematic)
	d.tx.Enqueue((delay&0x03)<<5 | (rate & 0x1F))
	return nil
}

// Reset clears all protocol and key-tracking state: receiver, decoder,
// transmit queue, modifier and lock flags, and the no-breaks/no-repeats
// settings. It does not queue a reset command to the device.
func (d *Driver) Reset() {
	d.rx = receiver{}
	d.dec.Reset()
	d.tx = transmitter{}
	d.shiftDown, d.ctrlDown, d.altDown = false, false, false
	d.altGrDown, d.guiDown = false, false
	d.capsLock, d.numLock, d.scrollLock = false, false, false
	d.haveLastMade = false
	d.noBreaks, d.noRepeats = false, false
}

// NextCommand pops the next queued host-to-device command byte, if any.
// Transport code (not modeled here as hardware-level bit-banging) calls
// this to learn what to clock out next.
func (d *Driver) NextCommand() (byte, bool) { return d.tx.Next() }
