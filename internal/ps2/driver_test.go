package ps2

import (
	"testing"

	"github.com/coredds/go-enigma-core/internal/hal"
)

func newTestDriver() *Driver {
	gpio := hal.NewFakeGPIO()
	d := New(gpio, 2, 3)
	d.Init()
	return d
}

// sendByte drives an 11-bit Set-2 frame (start, 8 data bits LSB-first, odd
// parity, stop) through the driver's ISR entry point. If badParity is set,
// the parity bit sent is the wrong one, to exercise FrameParityError.
func sendByte(d *Driver, nowMs *uint32, b byte, badParity bool) {
	step := func(bit bool) {
		d.OnClockEdge(bit, *nowMs)
		*nowMs++
	}
	step(false) // start
	ones := 0
	for i := 0; i < 8; i++ {
		bit := b&(1<<uint(i)) != 0
		if bit {
			ones++
		}
		step(bit)
	}
	parity := ones%2 == 0 // odd parity: true if data had an even # of 1s
	if badParity {
		parity = !parity
	}
	step(parity)
	step(true) // stop
}

func TestDriver_PlainLetter(t *testing.T) {
	d := newTestDriver()
	var clock uint32
	sendByte(d, &clock, 0x1C, false) // 'A' make code

	if !d.Available() {
		t.Fatalf("no event available after 'A' make code")
	}
	ev := d.Read()
	if byte(ev) != 'A' {
		t.Errorf("key code = %#x, want 'A'", byte(ev))
	}
	if ev&(StatusBreak<<8) != 0 {
		t.Errorf("break bit set on a make code")
	}
}

func TestDriver_ParityErrorRequestsResend(t *testing.T) {
	d := newTestDriver()
	var clock uint32
	sendByte(d, &clock, 0x1C, true) // bad parity

	if d.Available() {
		t.Fatalf("event surfaced despite parity error")
	}
	cmd, ok := d.NextCommand()
	if !ok || cmd != CmdResendCmd {
		t.Fatalf("NextCommand() = %#x,%v want CmdResendCmd,true", cmd, ok)
	}
}

func TestDriver_ExtendedPrefixUpArrow(t *testing.T) {
	d := newTestDriver()
	var clock uint32
	sendByte(d, &clock, byteExtended, false)
	sendByte(d, &clock, 0x75, false)

	if !d.Available() {
		t.Fatalf("no event after E0 75")
	}
	ev := d.Read()
	if byte(ev) != KeyUp {
		t.Errorf("key code = %#x, want KeyUp", byte(ev))
	}
	if ev>>8&StatusFunction == 0 {
		t.Errorf("function flag not set on up-arrow event")
	}
	if d.Available() {
		t.Errorf("E0 prefix byte alone should not have produced its own event")
	}
}

func TestDriver_BreakCode(t *testing.T) {
	d := newTestDriver()
	var clock uint32
	sendByte(d, &clock, 0x1C, false) // make A
	d.Read()
	sendByte(d, &clock, byteBreak, false)
	sendByte(d, &clock, 0x1C, false) // break A

	if !d.Available() {
		t.Fatalf("no break event surfaced")
	}
	ev := d.Read()
	if byte(ev) != 'A' {
		t.Errorf("break event key code = %#x, want 'A'", byte(ev))
	}
	if ev&(StatusBreak<<8) == 0 {
		t.Errorf("break bit not set on break event")
	}
}

func TestDriver_SetNoBreaksSuppressesBreakEvents(t *testing.T) {
	d := newTestDriver()
	d.SetNoBreaks(true)
	var clock uint32
	sendByte(d, &clock, 0x1C, false)
	d.Read()
	sendByte(d, &clock, byteBreak, false)
	sendByte(d, &clock, 0x1C, false)

	if d.Available() {
		t.Errorf("break event surfaced despite SetNoBreaks(true)")
	}
}

func TestDriver_CapsLockTogglesAndQueuesLED(t *testing.T) {
	d := newTestDriver()
	var clock uint32
	sendByte(d, &clock, 0x58, false) // caps lock make

	if d.GetLock()&(1<<2) == 0 {
		t.Errorf("GetLock() caps bit not set after caps lock make")
	}
	if d.Available() {
		t.Errorf("caps lock make should not itself surface a translated event")
	}
	cmd, ok := d.NextCommand()
	if !ok || cmd != CmdSetLEDs {
		t.Fatalf("NextCommand() = %#x,%v want CmdSetLEDs,true", cmd, ok)
	}
	led, ok := d.NextCommand()
	if !ok || led&(1<<2) == 0 {
		t.Errorf("queued LED byte = %#x, want caps bit set", led)
	}
}

func TestDriver_KeypadDigitWhenNumLockOn(t *testing.T) {
	d := newTestDriver()
	var clock uint32
	sendByte(d, &clock, 0x77, false) // num lock make
	d.NextCommand()                  // drain the LED command pair
	d.NextCommand()

	sendByte(d, &clock, 0x6C, false) // KP7

	if !d.Available() {
		t.Fatalf("no event after KP7 with Num Lock on")
	}
	ev := d.Read()
	if byte(ev) != '7' {
		t.Errorf("key code = %#x, want '7'", byte(ev))
	}
}

func TestDriver_KeypadNavWhenNumLockOff(t *testing.T) {
	d := newTestDriver()
	var clock uint32
	sendByte(d, &clock, 0x6C, false) // KP7, Num Lock off by default

	if !d.Available() {
		t.Fatalf("no event after KP7 with Num Lock off")
	}
	ev := d.Read()
	if byte(ev) != KeyHome {
		t.Errorf("key code = %#x, want KeyHome", byte(ev))
	}
}

func TestDriver_KeypadNavWhenShiftHeldDespiteNumLockOn(t *testing.T) {
	d := newTestDriver()
	var clock uint32
	sendByte(d, &clock, 0x77, false) // num lock make
	d.NextCommand()
	d.NextCommand()
	sendByte(d, &clock, 0x12, false) // left shift make

	sendByte(d, &clock, 0x6C, false) // KP7

	if !d.Available() {
		t.Fatalf("no event after KP7 with shift held")
	}
	ev := d.Read()
	if byte(ev) != KeyHome {
		t.Errorf("key code = %#x, want KeyHome (shift overrides Num Lock)", byte(ev))
	}
}

func TestDriver_TypematicRejectsOutOfRange(t *testing.T) {
	d := newTestDriver()
	if err := d.Typematic(32, 0); err != ErrInvalidTypematic {
		t.Errorf("Typematic(32, 0) error = %v, want ErrInvalidTypematic", err)
	}
	if err := d.Typematic(0, 4); err != ErrInvalidTypematic {
		t.Errorf("Typematic(0, 4) error = %v, want ErrInvalidTypematic", err)
	}
	if d.tx.Pending() != 0 {
		t.Errorf("Typematic queued a command despite out-of-range args")
	}
	if err := d.Typematic(31, 3); err != nil {
		t.Errorf("Typematic(31, 3) error = %v, want nil", err)
	}
}

func TestDriver_NoRepeatsSuppressesTypematic(t *testing.T) {
	d := newTestDriver()
	d.SetNoRepeats(true)
	var clock uint32
	sendByte(d, &clock, 0x1C, false)
	d.Read()
	sendByte(d, &clock, 0x1C, false) // typematic repeat, no break in between

	if d.Available() {
		t.Errorf("repeated make code surfaced despite SetNoRepeats(true)")
	}
}
