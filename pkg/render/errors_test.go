package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestErrorNameKnownCodes(t *testing.T) {
	testCases := []struct {
		code uint8
		want string
	}{
		{0x00, "Success"},
		{0x01, "Unknown HCI Command"},
		{0x3f, "MAC Connection Failed"},
		{0x2b, "Reserved"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := ErrorName(tc.code); got != tc.want {
				t.Errorf("ErrorName(0x%02x) = %q, want %q", tc.code, got, tc.want)
			}
		})
	}
}

// TestErrorNameAllCodes is property test #4: for all 8-bit codes, the
// status renderer prints the spec name for 0x00-0x3f and "Unknown"
// otherwise, and the raw code is always present in the output.
func TestErrorNameAllCodes(t *testing.T) {
	for code := 0; code <= 0xff; code++ {
		var buf bytes.Buffer
		NewSink(&buf, 0).Status(uint8(code))
		line := buf.String()

		if !strings.Contains(line, fmt.Sprintf("0x%02x", code)) {
			t.Fatalf("Status(0x%02x) = %q, missing raw code", code, line)
		}
		if code > 0x3f {
			if !strings.Contains(line, "Unknown") {
				t.Errorf("Status(0x%02x) = %q, want Unknown", code, line)
			}
		} else {
			want := errorNames[code]
			if !strings.Contains(line, want) {
				t.Errorf("Status(0x%02x) = %q, want to contain %q", code, line, want)
			}
		}
	}
}

func TestReasonUsesSameTable(t *testing.T) {
	var buf bytes.Buffer
	NewSink(&buf, 0).Reason(0x13)
	if !strings.Contains(buf.String(), "Remote User Terminated Connection") {
		t.Errorf("Reason(0x13) = %q", buf.String())
	}
}
