// Package monitor demultiplexes the BlueZ monitor-channel wire protocol:
// a small header carrying an adapter index and an opcode selecting
// NEW_INDEX/DEL_INDEX bookkeeping, HCI command/event frames, or ACL/SCO
// data, dispatching each to pkg/hci and pkg/render.
package monitor

import "github.com/open-source-firmware/hcimon/pkg/render"

// Opcode identifies the kind of monitor-channel record.
type Opcode uint16

const (
	NewIndex Opcode = 0
	DelIndex Opcode = 1
	Command  Opcode = 2
	Event    Opcode = 3
	ACLTX    Opcode = 4
	ACLRX    Opcode = 5
	SCOTX    Opcode = 6
	SCORX    Opcode = 7
)

// MaxIndex bounds the adapter index table; indices at or beyond this are
// tracked by the caller's raw index number only, never stored.
const MaxIndex = 16

// Record is one decoded monitor-channel frame: the de facto btsnoop-style
// header (timestamp, index, opcode) plus the raw payload still to be
// dissected. Timestamp is zero when a Record is constructed directly
// (e.g. in tests) rather than read off the wire by ReadRecords.
type Record struct {
	Timestamp uint64
	Index     uint16
	Opcode    Opcode
	Data      []byte
}

// Sink is an alias for render.Sink, the output surface Dispatch and the
// payload dissectors write to.
type Sink = render.Sink
