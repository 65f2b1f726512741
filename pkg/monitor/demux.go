package monitor

import (
	"github.com/open-source-firmware/hcimon/pkg/hci"
	"github.com/open-source-firmware/hcimon/pkg/render"
)

const newIndexSize = 16

// Dispatch decodes one monitor-channel record and renders it onto s,
// updating table for NEW_INDEX/DEL_INDEX bookkeeping along the way.
// index is printed as part of the [hciN] header by the caller; Dispatch
// itself only emits the record's body line(s).
func Dispatch(s *render.Sink, table *IndexTable, rec Record) {
	switch rec.Opcode {
	case NewIndex:
		dispatchNewIndex(s, table, rec.Index, rec.Data)
	case DelIndex:
		dispatchDelIndex(s, table, rec.Index)
	case Command:
		hci.Command(s, rec.Data)
	case Event:
		hci.Event(s, rec.Data)
	case ACLTX:
		hci.ACL(s, false, rec.Data, s.Filter.Has(render.ShowACLData))
	case ACLRX:
		hci.ACL(s, true, rec.Data, s.Filter.Has(render.ShowACLData))
	case SCOTX:
		hci.SCO(s, false, rec.Data, s.Filter.Has(render.ShowSCOData))
	case SCORX:
		hci.SCO(s, true, rec.Data, s.Filter.Has(render.ShowSCOData))
	default:
		s.UnknownPacket(int(rec.Opcode), len(rec.Data))
		s.Hexdump(rec.Data)
	}
}

func dispatchNewIndex(s *render.Sink, table *IndexTable, index uint16, data []byte) {
	if len(data) < newIndexSize {
		s.Malformed("malformed-new-index", "Malformed New Index record")
		return
	}

	e := IndexEntry{Type: data[0], Bus: data[1], Address: render.Address(addr6(data[2:8]))}
	copy(e.Name[:], data[8:16])

	table.Set(index, e)

	s.Line("= New Index: %s (%s,%s,%s)", e.Address, typeToStr(e.Type), busToStr(e.Bus), trimName(e.Name))
}

// dispatchDelIndex reports the address of the controller leaving index,
// but leaves the table entry itself in place: per the upstream index_list
// array, a slot is never actively cleared, only overwritten by a later
// NEW_INDEX.
func dispatchDelIndex(s *render.Sink, table *IndexTable, index uint16) {
	addr := table.Address(index)
	s.Line("= Delete Index: %s", addr)
}

func addr6(b []byte) (a [6]byte) {
	copy(a[:], b[:6])
	return a
}

func trimName(name [8]byte) string {
	n := 0
	for n < len(name) && name[n] != 0 {
		n++
	}
	return string(name[:n])
}

var hciTypeNames = []string{"BR/EDR", "AMP"}

func typeToStr(t uint8) string {
	if int(t) < len(hciTypeNames) {
		return hciTypeNames[t]
	}
	return "Unknown"
}

var hciBusNames = []string{"Virtual", "USB", "PCCARD", "UART", "RS232", "PCI", "SDIO", "SPI", "I2C", "SMD"}

func busToStr(b uint8) string {
	if int(b) < len(hciBusNames) {
		return hciBusNames[b]
	}
	return "Unknown"
}
