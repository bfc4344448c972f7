package ps2

// decoderState is the tagged union the post-byte classifier walks through
// while it resolves command-response bytes and multi-byte scan code
// sequences (E0, E1, F0) into single translated key events (§4.C "decoder
// state machine").
type decoderState int

const (
	stateIdle decoderState = iota
	stateAwaitingExtended
	stateAwaitingExtendedPause
	stateAwaitingBreak
	stateAwaitingExtendedBreak
)

// Reserved device response bytes (§6). These never reach the scan code
// tables; the decoder consumes them itself.
const (
	byteBATOK      = 0xAA
	byteBATFail    = 0xFC
	byteAck        = 0xFA
	byteResend     = 0xFE
	byteEcho       = 0xEE
	byteErrorRollover0 = 0x00
	byteErrorRollover1 = 0xFF
	byteExtended   = 0xE0
	byteExtended2  = 0xE1
	byteBreak      = 0xF0
)

// action tells the driver what to do with a raw byte once the decoder has
// classified it.
type action int

const (
	actionIgnore action = iota
	actionResetAll
	actionResend
	actionEchoReply
	actionBAT
	actionAck
	actionKeyEvent
	actionPauseEvent
)

// decodeResult is the decoder's output for one raw byte.
type decodeResult struct {
	action action
	e0     bool
	brk    bool
	raw    byte // raw make-code, meaningful only for actionKeyEvent
}

// decoder walks the tagged-union state machine over completed frame bytes.
type decoder struct {
	state       decoderState
	e1Remaining int
}

// pauseSentinelScan is an out-of-band scan code value fed to actionPauseEvent;
// it never collides with a real Set-2 make code because those are all < 0x80.
const pauseSentinelScan = 0xFF

func (d *decoder) Process(b byte) decodeResult {
	switch d.state {
	case stateAwaitingExtendedPause:
		d.e1Remaining--
		if d.e1Remaining <= 0 {
			d.state = stateIdle
			return decodeResult{action: actionPauseEvent, raw: pauseSentinelScan}
		}
		return decodeResult{action: actionIgnore}

	case stateAwaitingExtended:
		if b == byteBreak {
			d.state = stateAwaitingExtendedBreak
			return decodeResult{action: actionIgnore}
		}
		d.state = stateIdle
		return decodeResult{action: actionKeyEvent, e0: true, raw: b}

	case stateAwaitingExtendedBreak:
		d.state = stateIdle
		return decodeResult{action: actionKeyEvent, e0: true, brk: true, raw: b}

	case stateAwaitingBreak:
		d.state = stateIdle
		return decodeResult{action: actionKeyEvent, brk: true, raw: b}
	}

	// stateIdle: classify the byte itself.
	switch b {
	case byteBATOK, byteBATFail:
		return decodeResult{action: actionBAT}
	case byteAck:
		return decodeResult{action: actionAck}
	case byteResend:
		return decodeResult{action: actionResend}
	case byteEcho:
		return decodeResult{action: actionEchoReply}
	case byteErrorRollover0, byteErrorRollover1:
		return decodeResult{action: actionResetAll}
	case byteExtended:
		d.state = stateAwaitingExtended
		return decodeResult{action: actionIgnore}
	case byteExtended2:
		// The only E1-prefixed make code a Set-2 keyboard emits is the
		// 8-byte Pause sequence; the 7 bytes following E1 are absorbed
		// uninterpreted and a single synthetic Pause event is emitted.
		d.state = stateAwaitingExtendedPause
		d.e1Remaining = 7
		return decodeResult{action: actionIgnore}
	case byteBreak:
		d.state = stateAwaitingBreak
		return decodeResult{action: actionIgnore}
	default:
		return decodeResult{action: actionKeyEvent, raw: b}
	}
}

// Reset returns the decoder to its idle state, discarding any in-progress
// multi-byte sequence. Used on byteErrorRollover and on driver Reset().
func (d *decoder) Reset() {
	d.state = stateIdle
	d.e1Remaining = 0
}
