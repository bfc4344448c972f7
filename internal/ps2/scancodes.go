package ps2

// Translated key codes (§6). A translated event is (keystatus<<8)|key_code.
// 0x01-0x1F is reserved for function/navigation/modifier/lock keys,
// 0x20-0x60 for printable characters (space, digits, uppercase letters),
// 0x61-0xA0 for multimedia/ACPI/multilingual extras.
const (
	KeyUp       = 0x01
	KeyDown     = 0x02
	KeyLeft     = 0x03
	KeyRight    = 0x04
	KeyHome     = 0x05
	KeyEnd      = 0x06
	KeyPageUp   = 0x07
	KeyPageDown = 0x0A
	KeyInsert   = 0x0B
	KeyDelete   = 0x0C
	KeyEnter    = 0x0D
	KeyTab      = 0x09
	KeyBack     = 0x08
	KeyEsc      = 0x1B

	KeyLeftShift  = 0x10
	KeyRightShift = 0x11
	KeyLeftCtrl   = 0x12
	KeyRightCtrl  = 0x13
	KeyLeftAlt    = 0x14
	KeyRightAlt   = 0x15

	KeyCapsLock   = 0x16
	KeyNumLock    = 0x17
	KeyScrollLock = 0x18
	KeyLeftGui    = 0x19

	KeySpace = 0x20

	KeyExtraISO = 0x8B
	KeyPause    = 0x70
)

// scs2Table maps a plain (non-E0-prefixed) Scan Code Set 2 make code to a
// translated key code. Table built from the standard Set-2 make-code
// assignments; it covers the letters, digits, and controls the FSM and the
// documented scenarios in §8 exercise.
var scs2Table = map[byte]byte{
	0x1C: 'A', 0x32: 'B', 0x21: 'C', 0x23: 'D', 0x24: 'E', 0x2B: 'F',
	0x34: 'G', 0x33: 'H', 0x43: 'I', 0x3B: 'J', 0x42: 'K', 0x4B: 'L',
	0x3A: 'M', 0x31: 'N', 0x44: 'O', 0x4D: 'P', 0x15: 'Q', 0x2D: 'R',
	0x1B: 'S', 0x2C: 'T', 0x3C: 'U', 0x2A: 'V', 0x1D: 'W', 0x22: 'X',
	0x35: 'Y', 0x1A: 'Z',

	0x45: '0', 0x16: '1', 0x1E: '2', 0x26: '3', 0x25: '4',
	0x2E: '5', 0x36: '6', 0x3D: '7', 0x3E: '8', 0x46: '9',

	0x29: KeySpace,
	0x5A: KeyEnter,
	0x0D: KeyTab,
	0x66: KeyBack,
	0x76: KeyEsc,

	0x12: KeyLeftShift,
	0x59: KeyRightShift,
	0x14: KeyLeftCtrl,
	0x11: KeyLeftAlt,

	0x58: KeyCapsLock,
	0x77: KeyNumLock,
	0x7E: KeyScrollLock,

	0x61: KeyExtraISO,
}

// scs2ExtendedTable maps an E0-prefixed make code to a translated key code.
var scs2ExtendedTable = map[byte]byte{
	0x75: KeyUp,
	0x72: KeyDown,
	0x6B: KeyLeft,
	0x74: KeyRight,
	0x14: KeyRightCtrl,
	0x11: KeyRightAlt,
	0x5A: KeyEnter, // numpad enter
	0x1F: KeyLeftGui,
}

// translate resolves a raw make code (plus its E0 prefix flag) to a
// translated key code, or ok=false if the code is unassigned.
func translate(raw byte, e0 bool) (byte, bool) {
	if raw == pauseSentinelScan {
		return KeyPause, true
	}
	table := scs2Table
	if e0 {
		table = scs2ExtendedTable
	}
	kc, ok := table[raw]
	return kc, ok
}

// Plain (non-E0) Scan Code Set 2 codes for the numeric keypad's 0-9 and '.'
// keys (§4.C). These are a distinct scan-code namespace from the
// E0-prefixed navigation cluster scs2ExtendedTable maps.
const (
	scKP0   = 0x70
	scKP1   = 0x69
	scKP2   = 0x72
	scKP3   = 0x7A
	scKP4   = 0x6B
	scKP5   = 0x73
	scKP6   = 0x74
	scKP7   = 0x6C
	scKP8   = 0x75
	scKP9   = 0x7D
	scKPDot = 0x71
)

// kpDigitTable is consulted when Num Lock is on and Shift is not held: the
// keypad sends the printable digit or period it is silkscreened with.
var kpDigitTable = map[byte]byte{
	scKP0: '0', scKP1: '1', scKP2: '2', scKP3: '3', scKP4: '4',
	scKP5: '5', scKP6: '6', scKP7: '7', scKP8: '8', scKP9: '9',
	scKPDot: '.',
}

// kpNavTable is consulted when Num Lock is off, or Shift is held: the
// keypad sends the same translated code as the navigation key it is
// co-located with (§4.C "remap to the navigation keys via a fixed remap
// table"). The center "5" key has no navigation equivalent and is simply
// dropped, matching real keyboards (it sends nothing, or a "Begin" code
// this driver doesn't model).
var kpNavTable = map[byte]byte{
	scKP0: KeyInsert, scKP1: KeyEnd, scKP2: KeyDown, scKP3: KeyPageDown,
	scKP4: KeyLeft, scKP6: KeyRight, scKP7: KeyHome, scKP8: KeyUp,
	scKP9: KeyPageUp, scKPDot: KeyDelete,
}

// isKeypadCode reports whether raw is one of the ambiguous keypad codes
// translateKeypad resolves.
func isKeypadCode(raw byte) bool {
	_, ok := kpDigitTable[raw]
	return ok
}

// translateKeypad resolves a plain keypad scan code given the current Num
// Lock / Shift state (§4.C).
func translateKeypad(raw byte, numLock, shift bool) (byte, bool) {
	if numLock && !shift {
		kc, ok := kpDigitTable[raw]
		return kc, ok
	}
	kc, ok := kpNavTable[raw]
	return kc, ok
}

// isLockKey reports whether key is one of the three keyboard lock keys,
// which Driver.handleKey toggles on make rather than reporting as events.
func isLockKey(key byte) bool {
	return key == KeyCapsLock || key == KeyNumLock || key == KeyScrollLock
}

// isFunctionKey reports whether key falls in one of the two non-printable
// bands (§6: 0x01-0x1F function/navigation, 0x61-0xA0
// function/multimedia/ACPI/multilingual), which set the function flag bit
// in a translated event's status byte.
func isFunctionKey(key byte) bool {
	return (key >= 0x01 && key <= 0x1F) || (key >= 0x61 && key <= 0xA0)
}
