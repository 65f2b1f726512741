package monitor

// FlagsOf returns the management-socket direction/type flags used for the
// given monitor opcode. Only Command, Event, ACLTX and ACLRX map onto a
// real flag value; everything else (index bookkeeping, SCO) returns
// 0xff, matching the sentinel upstream returns for the same cases.
func FlagsOf(opcode Opcode) uint32 {
	switch opcode {
	case Command:
		return 0x02
	case Event:
		return 0x03
	case ACLTX:
		return 0x00
	case ACLRX:
		return 0x01
	default:
		return 0xff
	}
}

// OpcodeOf inverts FlagsOf for the four flag values it produces. Bit 0x02
// selects Command/Event, its absence selects ACLTX/ACLRX; bit 0x01 then
// picks between the pair.
func OpcodeOf(flags uint32) Opcode {
	if flags&0x02 != 0 {
		if flags&0x01 != 0 {
			return Event
		}
		return Command
	}
	if flags&0x01 != 0 {
		return ACLRX
	}
	return ACLTX
}
