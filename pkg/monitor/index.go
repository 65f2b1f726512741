package monitor

import "github.com/open-source-firmware/hcimon/pkg/render"

// IndexEntry is the 16-byte NEW_INDEX descriptor: controller type, bus,
// its address (if known at attach time) and an 8-byte name.
type IndexEntry struct {
	Type    uint8
	Bus     uint8
	Address render.Address
	Name    [8]byte
}

// IndexTable tracks at most MaxIndex adapters, mirroring the fixed-size
// index_list array upstream: indices >= MaxIndex are valid on the wire
// but are never stored, so a later DEL_INDEX for one renders BDADDR_ANY.
type IndexTable struct {
	entries [MaxIndex]IndexEntry
	present [MaxIndex]bool
}

// Set records a NEW_INDEX descriptor for index. Indices >= MaxIndex are
// silently dropped, matching the bounds check upstream performs before
// memcpy-ing into its fixed array.
func (t *IndexTable) Set(index uint16, e IndexEntry) {
	if index >= MaxIndex {
		return
	}
	t.entries[index] = e
	t.present[index] = true
}

// Address returns the stored address for index, or BDAddrAny when the
// index was never seen (or is out of range).
func (t *IndexTable) Address(index uint16) render.Address {
	if index >= MaxIndex || !t.present[index] {
		return render.BDAddrAny
	}
	return t.entries[index].Address
}

// Occupancy returns how many indices currently have a stored entry.
func (t *IndexTable) Occupancy() int {
	n := 0
	for _, p := range t.present {
		if p {
			n++
		}
	}
	return n
}
