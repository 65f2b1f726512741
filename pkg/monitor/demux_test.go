package monitor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/open-source-firmware/hcimon/pkg/render"
)

func newSink() (*render.Sink, *bytes.Buffer) {
	var buf bytes.Buffer
	return render.NewSink(&buf, 0), &buf
}

func TestNewIndexStoresAndRenders(t *testing.T) {
	s, buf := newSink()
	var table IndexTable

	data := append([]byte{0x00, 0x03}, []byte{0x66, 0x55, 0x44, 0x33, 0x22, 0x11}...)
	data = append(data, []byte("hci0\x00\x00\x00\x00")...)

	Dispatch(s, &table, Record{Index: 0, Opcode: NewIndex, Data: data})

	out := buf.String()
	if !strings.Contains(out, "New Index") {
		t.Fatalf("got %q", out)
	}
	if !strings.Contains(out, "11:22:33:44:55:66") {
		t.Fatalf("got %q", out)
	}
	if table.Address(0) != (render.Address{0x66, 0x55, 0x44, 0x33, 0x22, 0x11}) {
		t.Errorf("table not updated: %v", table.Address(0))
	}
}

// TestDelIndexOfUnknownIndexRendersBDAddrAny is invariant #7: a DEL_INDEX
// for an index that never had a NEW_INDEX renders the all-zero address.
func TestDelIndexOfUnknownIndexRendersBDAddrAny(t *testing.T) {
	s, buf := newSink()
	var table IndexTable

	Dispatch(s, &table, Record{Index: 3, Opcode: DelIndex})

	if !strings.Contains(buf.String(), "00:00:00:00:00:00") {
		t.Errorf("got %q", buf.String())
	}
}

// TestDelIndexDoesNotClearEntry matches spec.md's data-model note that a
// DEL_INDEX does not actively clear its slot; only a later NEW_INDEX
// overwrites it. DEL_INDEX still reports the address it found.
func TestDelIndexDoesNotClearEntry(t *testing.T) {
	s, buf := newSink()
	var table IndexTable
	table.Set(2, IndexEntry{Address: render.Address{1, 2, 3, 4, 5, 6}})

	Dispatch(s, &table, Record{Index: 2, Opcode: DelIndex})

	if !strings.Contains(buf.String(), "06:05:04:03:02:01") {
		t.Errorf("got %q", buf.String())
	}
	if table.Address(2) != (render.Address{1, 2, 3, 4, 5, 6}) {
		t.Errorf("expected entry to remain until overwritten, got %v", table.Address(2))
	}
}

// TestIndexTableNeverWritesBeyondBound is invariant #7's other half: an
// index at or beyond MaxIndex is never stored.
func TestIndexTableNeverWritesBeyondBound(t *testing.T) {
	var table IndexTable
	table.Set(MaxIndex, IndexEntry{Address: render.Address{9, 9, 9, 9, 9, 9}})
	table.Set(MaxIndex+100, IndexEntry{Address: render.Address{8, 8, 8, 8, 8, 8}})

	if table.Address(MaxIndex) != render.BDAddrAny {
		t.Errorf("write at MaxIndex should be dropped, got %v", table.Address(MaxIndex))
	}
}

func TestUnknownOpcodeHexdumps(t *testing.T) {
	s, buf := newSink()
	var table IndexTable

	Dispatch(s, &table, Record{Index: 0, Opcode: Opcode(99), Data: []byte{0xde, 0xad}})

	out := buf.String()
	if !strings.Contains(out, "Unknown packet") {
		t.Errorf("got %q", out)
	}
	if !strings.Contains(out, "de ad") {
		t.Errorf("got %q", out)
	}
}

func TestCommandOpcodeDispatchesToHCI(t *testing.T) {
	s, buf := newSink()
	var table IndexTable

	Dispatch(s, &table, Record{Index: 0, Opcode: Command, Data: []byte{0x03, 0x0c, 0x00}})

	if !strings.Contains(buf.String(), "Reset") {
		t.Errorf("got %q", buf.String())
	}
}

func TestACLDataHiddenByDefault(t *testing.T) {
	s, buf := newSink()
	var table IndexTable

	Dispatch(s, &table, Record{Index: 0, Opcode: ACLRX, Data: []byte{0x01, 0x00, 0x02, 0x00, 0xaa, 0xbb}})

	out := buf.String()
	if strings.Contains(out, "aa bb") {
		t.Errorf("ACL payload should be hidden without ShowACLData, got %q", out)
	}
}

func TestACLDataShownWithFilter(t *testing.T) {
	var buf bytes.Buffer
	s := render.NewSink(&buf, render.ShowACLData)
	var table IndexTable

	Dispatch(s, &table, Record{Index: 0, Opcode: ACLRX, Data: []byte{0x01, 0x00, 0x02, 0x00, 0xaa, 0xbb}})

	if !strings.Contains(buf.String(), "aa bb") {
		t.Errorf("got %q", buf.String())
	}
}
