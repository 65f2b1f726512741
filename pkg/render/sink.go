// Package render formats individual HCI wire fields as the indented,
// human-readable lines a dissector prints. It makes no parsing decisions:
// callers hand it already-extracted values and it writes text.
package render

import (
	"fmt"
	"io"
	"time"
)

// FilterMask selects optional rendering aspects. It is process-wide in the
// original C implementation; here it travels explicitly on a Sink so a
// caller juggling multiple streams never has to guard a shared global.
type FilterMask uint32

const (
	ShowIndex FilterMask = 1 << iota
	ShowDate
	ShowTime
	ShowACLData
	ShowSCOData
)

func (m FilterMask) Has(bit FilterMask) bool {
	return m&bit != 0
}

// Channel distinguishes the two channel-header spellings used by the
// capture source: the HCI control channel ("{hciN}") and the monitor
// channel ("[hciN]").
type Channel int

const (
	ChannelControl Channel = iota
	ChannelMonitor
)

// Sink is where a single dissected packet's rendering goes. One Sink is
// used for the lifetime of one packet's output; writes for that packet are
// contiguous, matching the ordering guarantee in the concurrency model.
type Sink struct {
	w      io.Writer
	Filter FilterMask

	// OnMalformed, if set, is called with a short reason tag every time
	// Malformed or NoteMalformed reports a malformed or discipline-violating packet (but
	// not for an "Unknown packet" line, which spec.md treats as a
	// non-error rendering case). A collaborator such as pkg/metrics uses
	// this to count rejected packets without the dissector itself
	// depending on a metrics library.
	OnMalformed func(reason string)
}

func NewSink(w io.Writer, filter FilterMask) *Sink {
	return &Sink{w: w, Filter: filter}
}

// Header prints the channel-header prelude ("{hciN} "/"[hciN] ") gated by
// ShowIndex, followed by the timestamp gated by ShowDate/ShowTime
// independently.
func (s *Sink) Header(tv *time.Time, index uint16, ch Channel) {
	if s.Filter.Has(ShowIndex) {
		switch ch {
		case ChannelControl:
			fmt.Fprintf(s.w, "{hci%d} ", index)
		case ChannelMonitor:
			fmt.Fprintf(s.w, "[hci%d] ", index)
		}
	}
	if tv != nil {
		local := tv.Local()
		if s.Filter.Has(ShowDate) {
			fmt.Fprintf(s.w, "%04d-%02d-%02d ", local.Year(), local.Month(), local.Day())
		}
		if s.Filter.Has(ShowTime) {
			fmt.Fprintf(s.w, "%02d:%02d:%02d.%06d ", local.Hour(), local.Minute(), local.Second(), local.Nanosecond()/1000)
		}
	}
}

// Line prints a top-level packet line, e.g. "< HCI Command: Reset (0x03|0x0003) plen 0".
func (s *Sink) Line(format string, args ...interface{}) {
	fmt.Fprintf(s.w, format+"\n", args...)
}

// Field prints one indented field line. Every field line in the output is
// preceded by 12 columns of blank, matching print_field's "%-12c" prefix.
func (s *Sink) Field(format string, args ...interface{}) {
	fmt.Fprintf(s.w, "%-12s"+format+"\n", append([]interface{}{""}, args...)...)
}

// Diagnostic prints a "* <message>" line used for malformed or
// discipline-violating packets.
func (s *Sink) Diagnostic(format string, args ...interface{}) {
	fmt.Fprintf(s.w, "* "+format+"\n", args...)
}

// Malformed is Diagnostic plus an OnMalformed notification tagged with a
// short, stable reason (e.g. "invalid-command-size"), for a caller that
// wants to count rejected packets without scraping rendered text.
func (s *Sink) Malformed(reason string, format string, args ...interface{}) {
	s.Diagnostic(format, args...)
	if s.OnMalformed != nil {
		s.OnMalformed(reason)
	}
}

// NoteMalformed invokes OnMalformed (if set) without printing anything
// itself, for a caller that already rendered its own "invalid packet
// size"/"too short packet" field line and only needs the notification.
func (s *Sink) NoteMalformed(reason string) {
	if s.OnMalformed != nil {
		s.OnMalformed(reason)
	}
}

// UnknownPacket prints a "* Unknown packet (code <n> len <n>)" line. Unknown
// opcodes/events/subevents are not malformed packets per spec.md §7, so
// this never calls OnMalformed.
func (s *Sink) UnknownPacket(code int, length int) {
	s.Diagnostic("Unknown packet (code %d len %d)", code, length)
}
