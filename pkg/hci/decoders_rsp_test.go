package hci

import (
	"bytes"
	"strings"
	"testing"

	"github.com/open-source-firmware/hcimon/pkg/render"
)

// TestReadBufferSizeRspFieldOrder is a regression test for the Read Buffer
// Size response's field layout: status(1), ACL MTU(2), SCO MTU(1),
// ACL max packet(2), SCO max packet(2).
func TestReadBufferSizeRspFieldOrder(t *testing.T) {
	var buf bytes.Buffer
	s := render.NewSink(&buf, 0)

	data := []byte{
		0x00,       // status
		0xff, 0x00, // ACL MTU = 255
		0x30,       // SCO MTU = 48
		0x08, 0x00, // ACL max packet = 8
		0x04, 0x00, // SCO max packet = 4
	}
	readBufferSizeRsp(s, data)

	out := buf.String()
	if !strings.Contains(out, "ACL MTU: 255") || !strings.Contains(out, "ACL max packet: 8") {
		t.Errorf("got %q", out)
	}
	if !strings.Contains(out, "SCO MTU: 48") || !strings.Contains(out, "SCO max packet: 4") {
		t.Errorf("got %q", out)
	}
}

// TestInquiryResultEvtSingleRecordDecodes is a regression test for the
// per-record size of an Inquiry Result event: a single inquiry_info record
// is 14 bytes (addr 6, pscan_rep 1, page_period 1, pscan 1, class 3,
// clock_offset 2), so a 1-response event is 15 bytes total and must
// decode, not hexdump-and-return.
func TestInquiryResultEvtSingleRecordDecodes(t *testing.T) {
	var buf bytes.Buffer
	s := render.NewSink(&buf, 0)

	data := append([]byte{0x01}, // num_responses
		append([]byte{0x66, 0x55, 0x44, 0x33, 0x22, 0x11}, // address
			0x00, 0x00, 0x00, // pscan_rep, page_period, pscan
			0x01, 0x02, 0x03, // class of device
			0xaa, 0xbb, // clock offset
		)...)
	if len(data) != 15 {
		t.Fatalf("test data len = %d, want 15", len(data))
	}

	inquiryResultEvt(s, data)

	out := buf.String()
	if !strings.Contains(out, "Address: 11:22:33:44:55:66") {
		t.Errorf("expected address field, got %q", out)
	}
	if strings.Count(out, "\n") > 7 {
		t.Errorf("unexpected extra hexdump output: %q", out)
	}
}

// TestNumCompletedPacketsEvtSingleHandleDecodes is a regression test for
// the per-handle size of a Number of Completed Packets event: a single
// handle entry is 4 bytes (handle 2, count 2), so a 1-handle event is 5
// bytes total and must decode, not hexdump-and-return.
func TestNumCompletedPacketsEvtSingleHandleDecodes(t *testing.T) {
	var buf bytes.Buffer
	s := render.NewSink(&buf, 0)

	data := []byte{0x01, 0x2a, 0x00, 0x03, 0x00} // num_handles=1, handle=0x002a, count=3
	if len(data) != 5 {
		t.Fatalf("test data len = %d, want 5", len(data))
	}

	numCompletedPacketsEvt(s, data)

	out := buf.String()
	if !strings.Contains(out, "Handle: 42") {
		t.Errorf("expected handle field, got %q", out)
	}
	if !strings.Contains(out, "Count: 3") {
		t.Errorf("expected count field, got %q", out)
	}
}
