// Package framer reassembles whole HCI packets out of an H:4 UART byte
// stream: each packet is tagged with a 1-byte packet-type indicator
// followed by a type-specific header that declares the remaining length.
package framer

import "fmt"

// PacketType is the H:4 framing tag prefixing every packet on the wire.
type PacketType uint8

const (
	CommandPkt  PacketType = 0x01
	ACLDataPkt  PacketType = 0x02
	SCODataPkt  PacketType = 0x03
	EventPkt    PacketType = 0x04
)

const commandHeaderSize = 3 // opcode (2) + parameter length (1)

// ControllerFamily names the kind of controller a framer is attached to.
// The upstream serial emulator computes this from its caller's type
// parameter but then never actually uses the computed value, passing the
// original parameter through regardless; H4 avoids that mismatch by
// taking the resolved family directly and never re-deriving it internally.
type ControllerFamily int

const (
	BREDRLE ControllerFamily = iota
	BREDR
	LE
	AMP
)

// H4 reassembles HCI_COMMAND_PKT frames from a byte stream fed in
// arbitrary chunks. Only command framing is implemented, matching the
// narrow scope of the reference serial transport this is modeled on;
// event/ACL/SCO framing is future work tracked by the caller, not here.
type H4 struct {
	// family records the resolved controller family passed to New. H4
	// neither reads it nor exposes it; onFrame receives only the header
	// and body of each reassembled frame.
	family  ControllerFamily
	pending []byte
	onFrame func(header []byte, body []byte)
	onError func(msg string)
}

// New returns an H4 framer for the given controller family. onFrame is
// called with each complete command's 3-byte header and parameter body
// once it has been fully reassembled; onError is called (if non-nil) when
// a byte stream carries a packet-type tag this framer does not support.
func New(family ControllerFamily, onFrame func(header, body []byte)) *H4 {
	return &H4{family: family, onFrame: onFrame}
}

// OnError installs a callback for framing errors. Optional; errors are
// silently dropped (matching the reference transport's default behavior)
// when no callback is installed.
func (f *H4) OnError(fn func(msg string)) { f.onError = fn }

// Feed appends data to the framer's internal buffer and extracts as many
// complete packets as are now available. Feeding n bytes in any
// partition across multiple calls produces the same sequence of
// extracted packets as feeding them in one call.
func (f *H4) Feed(data []byte) {
	f.pending = append(f.pending, data...)

	for {
		if len(f.pending) < 1 {
			return
		}

		if PacketType(f.pending[0]) != CommandPkt {
			f.reportError(fmt.Sprintf("packet error: unsupported packet type 0x%02x", f.pending[0]))
			f.pending = nil
			return
		}

		if len(f.pending) < 1+commandHeaderSize {
			return
		}

		plen := f.pending[1+2]
		total := 1 + commandHeaderSize + int(plen)
		if len(f.pending) < total {
			return
		}

		frame := f.pending[:total]
		header := frame[1 : 1+commandHeaderSize]
		body := frame[1+commandHeaderSize : total]
		f.pending = append([]byte(nil), f.pending[total:]...)

		if f.onFrame != nil {
			f.onFrame(header, body)
		}
	}
}

func (f *H4) reportError(msg string) {
	if f.onError != nil {
		f.onError(msg)
	}
}
