package hci

import "github.com/open-source-firmware/hcimon/pkg/render"

const (
	commandHeaderSize = 3
	eventHeaderSize   = 2
	aclHeaderSize     = 4
	scoHeaderSize     = 3
)

func aclHandle(raw uint16) uint16 { return raw & 0x0fff }
func aclFlags(raw uint16) uint8   { return uint8(raw >> 12) }

// Command dissects an H:4 HCI_COMMAND_PKT payload: a 3-byte header
// (opcode, parameter length) followed by command parameters. Malformed
// headers and parameter-length mismatches are reported and the function
// returns without decoding further.
func Command(s *render.Sink, data []byte) {
	if len(data) < commandHeaderSize {
		s.Malformed("malformed-command-header", "Malformed HCI Command packet")
		return
	}

	opcode := Opcode(le16(data[0:2]))
	plen := data[2]
	body := data[commandHeaderSize:]

	if int(plen) != len(body) {
		s.Malformed("invalid-command-size", "Invalid HCI Command packet size")
		return
	}

	desc := lookupOpcode(opcode)
	name := "Unknown"
	if desc != nil {
		name = desc.Name
	}
	s.Line("< HCI Command: %s (0x%02x|0x%04x) plen %d", name, opcode.OGF(), opcode.OCF(), plen)

	if desc == nil || desc.Cmd == nil {
		s.Hexdump(body)
		return
	}

	switch desc.CmdDiscipline {
	case SizeFixed:
		if plen != desc.CmdSize {
			s.Field("invalid packet size")
			s.NoteMalformed("invalid-command-size")
			s.Hexdump(body)
			return
		}
	case SizeMinimum:
		if plen < desc.CmdSize {
			s.Field("too short packet")
			s.NoteMalformed("too-short-command")
			s.Hexdump(body)
			return
		}
	}

	desc.Cmd(s, body)
}

// Event dissects an H:4 HCI_EVENT_PKT payload: a 2-byte header (event
// code, parameter length) followed by event parameters.
func Event(s *render.Sink, data []byte) {
	if len(data) < eventHeaderSize {
		s.Malformed("malformed-event-header", "Malformed HCI Event packet")
		return
	}

	code := data[0]
	plen := data[1]
	body := data[eventHeaderSize:]

	if int(plen) != len(body) {
		s.Malformed("invalid-event-size", "Invalid HCI Event packet size")
		return
	}

	desc := lookupEvent(code)
	name := "Unknown"
	if desc != nil {
		name = desc.Name
	}
	s.Line("> HCI Event: %s (0x%02x) plen %d", name, code, plen)

	if desc == nil || desc.Func == nil {
		s.Hexdump(body)
		return
	}

	switch desc.Discipline {
	case SizeFixed:
		if plen != desc.Size {
			s.Field("invalid packet size")
			s.NoteMalformed("invalid-event-size")
			s.Hexdump(body)
			return
		}
	case SizeMinimum:
		if plen < desc.Size {
			s.Field("too short packet")
			s.NoteMalformed("too-short-event")
			s.Hexdump(body)
			return
		}
	}

	desc.Func(s, body)
}

// ACL dissects an H:4 ACL data packet (handle+flags header, length,
// payload). in selects the RX/TX direction marker; showData controls
// whether the payload itself is hexdumped.
func ACL(s *render.Sink, in bool, data []byte, showData bool) {
	if len(data) < aclHeaderSize {
		dir := "TX"
		if in {
			dir = "RX"
		}
		s.Malformed("malformed-acl-header", "Malformed ACL Data %s packet", dir)
		return
	}

	raw := le16(data[0:2])
	dlen := le16(data[2:4])
	marker := byte('<')
	if in {
		marker = '>'
	}
	s.Line("%c ACL Data: handle %d flags 0x%02x dlen %d", marker, aclHandle(raw), aclFlags(raw), dlen)

	body := data[aclHeaderSize:]
	if showData {
		s.Hexdump(body)
	}
}

// SCO dissects an H:4 SCO data packet (handle+flags header, 1-byte
// length, payload).
func SCO(s *render.Sink, in bool, data []byte, showData bool) {
	if len(data) < scoHeaderSize {
		dir := "TX"
		if in {
			dir = "RX"
		}
		s.Malformed("malformed-sco-header", "Malformed SCO Data %s packet", dir)
		return
	}

	raw := le16(data[0:2])
	dlen := data[2]
	marker := byte('<')
	if in {
		marker = '>'
	}
	s.Line("%c SCO Data: handle %d flags 0x%02x dlen %d", marker, aclHandle(raw), aclFlags(raw), dlen)

	body := data[scoHeaderSize:]
	if showData {
		s.Hexdump(body)
	}
}
