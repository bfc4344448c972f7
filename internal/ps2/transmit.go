package ps2

// Host-to-device command bytes (§4.C "transmit").
const (
	CmdSetLEDs      = 0xED
	CmdEcho         = 0xEE
	CmdScancodeSet  = 0xF0
	CmdSetTypematic = 0xF3
	CmdEnable       = 0xF4
	CmdDisable      = 0xF5
	CmdResendCmd    = 0xFE
	CmdReset        = 0xFF
)

// transmitter owns the small outbound command queue and remembers the last
// byte actually put on the wire so a device RESEND (0xFE) can be honored
// without the caller re-submitting anything. The PS/2 host-to-device
// protocol is request/response and strictly one-at-a-time, so a queue of a
// handful of pending commands is plenty (§7 "transmit queue depth: small,
// bounded").
type transmitter struct {
	pending  [8]byte
	n        int
	lastSent byte
	haveLast bool
}

// Enqueue appends a command byte to send. It silently drops the command if
// the queue is already full; nothing in this protocol issues bursts of
// commands large enough for that to matter in practice.
func (t *transmitter) Enqueue(cmd byte) {
	if t.n >= len(t.pending) {
		return
	}
	t.pending[t.n] = cmd
	t.n++
}

// Next pops the next command to present on the wire, remembering it as
// lastSent for a possible RESEND.
func (t *transmitter) Next() (byte, bool) {
	if t.n == 0 {
		return 0, false
	}
	b := t.pending[0]
	copy(t.pending[:], t.pending[1:t.n])
	t.n--
	t.lastSent = b
	t.haveLast = true
	return b, true
}

// Resend re-queues the last byte actually sent, at the front of the queue,
// in response to a device RESEND (0xFE).
func (t *transmitter) Resend() {
	if !t.haveLast {
		return
	}
	var next [8]byte
	next[0] = t.lastSent
	copy(next[1:], t.pending[:t.n])
	t.pending = next
	if t.n < len(t.pending)-1 {
		t.n++
	}
}

// Pending reports how many commands are queued to send.
func (t *transmitter) Pending() int { return t.n }
