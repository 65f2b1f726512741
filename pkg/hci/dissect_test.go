package hci

import (
	"bytes"
	"strings"
	"testing"

	"github.com/open-source-firmware/hcimon/pkg/render"
)

func sink() (*render.Sink, *bytes.Buffer) {
	var buf bytes.Buffer
	return render.NewSink(&buf, 0), &buf
}

func TestCommandMalformedHeader(t *testing.T) {
	s, buf := sink()
	Command(s, []byte{0x01, 0x02})
	if !strings.Contains(buf.String(), "Malformed HCI Command packet") {
		t.Errorf("got %q", buf.String())
	}
}

func TestCommandPlenMismatch(t *testing.T) {
	s, buf := sink()
	// Reset opcode 0x0c03, plen declares 1 byte but none follow.
	Command(s, []byte{0x03, 0x0c, 0x01})
	if !strings.Contains(buf.String(), "Invalid HCI Command packet size") {
		t.Errorf("got %q", buf.String())
	}
}

func TestCommandUnknownOpcodeHexdumps(t *testing.T) {
	s, buf := sink()
	Command(s, []byte{0xff, 0xff, 0x02, 0xaa, 0xbb})
	out := buf.String()
	if !strings.Contains(out, "Unknown") {
		t.Errorf("want Unknown opcode name, got %q", out)
	}
	if !strings.Contains(out, "aa bb") {
		t.Errorf("want hexdump of body, got %q", out)
	}
}

func TestCommandFixedSizeMismatchReportsAndHexdumps(t *testing.T) {
	s, buf := sink()
	// Reset (0x0c03) declares cmd_size 0 fixed; send 1 extra byte.
	Command(s, []byte{0x03, 0x0c, 0x01, 0x99})
	out := buf.String()
	if !strings.Contains(out, "invalid packet size") {
		t.Errorf("got %q", out)
	}
}

func TestCommandResetDecodesNullBody(t *testing.T) {
	s, buf := sink()
	Command(s, []byte{0x03, 0x0c, 0x00})
	if !strings.Contains(buf.String(), "Reset") {
		t.Errorf("got %q", buf.String())
	}
}

func TestCommandDisconnectDecodesHandleAndReason(t *testing.T) {
	s, buf := sink()
	// Disconnect opcode 0x0406, handle 0x0001, reason 0x13.
	Command(s, []byte{0x06, 0x04, 0x03, 0x01, 0x00, 0x13})
	out := buf.String()
	if !strings.Contains(out, "Handle: 1") {
		t.Errorf("got %q", out)
	}
	if !strings.Contains(out, "Remote User Terminated Connection") {
		t.Errorf("got %q", out)
	}
}

func TestEventMalformedHeader(t *testing.T) {
	s, buf := sink()
	Event(s, []byte{0x01})
	if !strings.Contains(buf.String(), "Malformed HCI Event packet") {
		t.Errorf("got %q", buf.String())
	}
}

func TestEventInquiryCompleteDecodesStatus(t *testing.T) {
	s, buf := sink()
	Event(s, []byte{0x01, 0x01, 0x00})
	if !strings.Contains(buf.String(), "Success") {
		t.Errorf("got %q", buf.String())
	}
}

// TestCmdCompleteUnknownOpcodeNeverDereferences is the regression test for
// the null-descriptor guard: an unknown opcode inside a Command Complete
// event must never index through a nil *CommandDescriptor.
func TestCmdCompleteUnknownOpcodeNeverDereferences(t *testing.T) {
	s, buf := sink()
	// Command Complete (0x0e), plen 3: ncmd=1, opcode=0xfdff (unknown), no params.
	Event(s, []byte{0x0e, 0x03, 0x01, 0xff, 0xfd})
	out := buf.String()
	if !strings.Contains(out, "Unknown") {
		t.Errorf("got %q", out)
	}
}

func TestCmdCompleteDispatchesToResponseDecoder(t *testing.T) {
	s, buf := sink()
	// Command Complete for Reset (0x0c03): ncmd=1, opcode, status=0x00.
	Event(s, []byte{0x0e, 0x04, 0x01, 0x03, 0x0c, 0x00})
	out := buf.String()
	if !strings.Contains(out, "Reset") || !strings.Contains(out, "Success") {
		t.Errorf("got %q", out)
	}
}

func TestLEMetaEventUnknownSubeventHexdumps(t *testing.T) {
	s, buf := sink()
	Event(s, []byte{0x3e, 0x02, 0xfe, 0x01})
	out := buf.String()
	if !strings.Contains(out, "Unknown") {
		t.Errorf("got %q", out)
	}
}

func TestLEMetaEventKnownSubeventNamed(t *testing.T) {
	s, buf := sink()
	Event(s, []byte{0x3e, 0x01, 0x02})
	if !strings.Contains(buf.String(), "LE Advertising Report") {
		t.Errorf("got %q", buf.String())
	}
}

func TestACLDirectionMarker(t *testing.T) {
	s, buf := sink()
	ACL(s, true, []byte{0x01, 0x00, 0x02, 0x00, 0xaa, 0xbb}, false)
	if !strings.Contains(buf.String(), "> ACL Data") {
		t.Errorf("got %q", buf.String())
	}

	s2, buf2 := sink()
	ACL(s2, false, []byte{0x01, 0x00, 0x02, 0x00, 0xaa, 0xbb}, false)
	if !strings.Contains(buf2.String(), "< ACL Data") {
		t.Errorf("got %q", buf2.String())
	}
}

func TestACLHandleAndFlagsDecomposition(t *testing.T) {
	s, buf := sink()
	// handle 0x0001 with flags 0x2 packed into bits 12-13: raw = 0x2001.
	ACL(s, true, []byte{0x01, 0x20, 0x00, 0x00}, false)
	out := buf.String()
	if !strings.Contains(out, "handle 1") {
		t.Errorf("got %q", out)
	}
	if !strings.Contains(out, "flags 0x02") {
		t.Errorf("got %q", out)
	}
}

func TestACLMalformedTooShort(t *testing.T) {
	s, buf := sink()
	ACL(s, false, []byte{0x01, 0x00}, false)
	if !strings.Contains(buf.String(), "Malformed ACL Data TX packet") {
		t.Errorf("got %q", buf.String())
	}
}

func TestSCOMalformedTooShort(t *testing.T) {
	s, buf := sink()
	SCO(s, true, []byte{0x01}, false)
	if !strings.Contains(buf.String(), "Malformed SCO Data RX packet") {
		t.Errorf("got %q", buf.String())
	}
}

// TestMalformedPacketsNotifyOnMalformed checks that a Sink's OnMalformed
// hook fires for both header-level and size-discipline rejections, so a
// collaborator like pkg/metrics can count them without scraping text.
func TestMalformedPacketsNotifyOnMalformed(t *testing.T) {
	var reasons []string
	s, _ := sink()
	s.OnMalformed = func(reason string) { reasons = append(reasons, reason) }

	Command(s, []byte{0x01, 0x02}) // malformed header
	Command(s, []byte{0x03, 0x0c, 0x01, 0x99}) // fixed-size mismatch

	if len(reasons) != 2 {
		t.Fatalf("got %d OnMalformed calls, want 2: %v", len(reasons), reasons)
	}
	if reasons[0] != "malformed-command-header" || reasons[1] != "invalid-command-size" {
		t.Errorf("got reasons %v", reasons)
	}
}

func TestOpcodeDecomposition(t *testing.T) {
	op := Opcode(0x0c03)
	if op.OGF() != 0x03 {
		t.Errorf("OGF() = 0x%x, want 0x03", op.OGF())
	}
	if op.OCF() != 0x003 {
		t.Errorf("OCF() = 0x%x, want 0x003", op.OCF())
	}
}
