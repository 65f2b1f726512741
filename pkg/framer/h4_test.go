package framer

import (
	"reflect"
	"testing"
)

func collectFrames(chunks [][]byte) [][]byte {
	var got [][]byte
	f := New(BREDRLE, func(header, body []byte) {
		frame := append(append([]byte{}, header...), body...)
		got = append(got, frame)
	})
	for _, c := range chunks {
		f.Feed(c)
	}
	return got
}

// TestStreamContinuity is invariant #5: feeding n bytes split across any
// partition of Feed calls produces the same packets as feeding them in
// one call.
func TestStreamContinuity(t *testing.T) {
	// Two back-to-back Reset commands (opcode 0x0c03, plen 0).
	whole := []byte{0x01, 0x03, 0x0c, 0x00, 0x01, 0x03, 0x0c, 0x00}

	partitions := [][][]byte{
		{whole},
		{whole[:1], whole[1:]},
		{whole[:3], whole[3:]},
		{whole[:4], whole[4:]},
		{whole[:5], whole[5:]},
		{{whole[0]}, {whole[1]}, {whole[2]}, {whole[3]}, whole[4:]},
		func() [][]byte {
			var parts [][]byte
			for _, b := range whole {
				parts = append(parts, []byte{b})
			}
			return parts
		}(),
	}

	var want [][]byte
	for _, frames := range partitions {
		got := collectFrames(frames)
		if want == nil {
			want = got
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("partition %v produced %v, want %v", frames, got, want)
		}
	}

	if len(want) != 2 {
		t.Fatalf("got %d frames, want 2", len(want))
	}
}

func TestFeedWaitsForFullHeader(t *testing.T) {
	var calls int
	f := New(BREDRLE, func(header, body []byte) { calls++ })

	f.Feed([]byte{0x01, 0x03})
	if calls != 0 {
		t.Fatalf("fired early with partial header")
	}
	f.Feed([]byte{0x0c, 0x00})
	if calls != 1 {
		t.Fatalf("got %d calls, want 1", calls)
	}
}

func TestFeedWithParameters(t *testing.T) {
	var gotBody []byte
	f := New(BREDRLE, func(header, body []byte) { gotBody = body })

	// Reset-shaped opcode but plen 2 with two parameter bytes.
	f.Feed([]byte{0x01, 0x03, 0x0c, 0x02, 0xaa, 0xbb})
	if !reflect.DeepEqual(gotBody, []byte{0xaa, 0xbb}) {
		t.Fatalf("body = %v, want [0xaa 0xbb]", gotBody)
	}
}

func TestUnsupportedPacketTypeReportsError(t *testing.T) {
	var msg string
	f := New(BREDRLE, func(header, body []byte) {})
	f.OnError(func(m string) { msg = m })

	f.Feed([]byte{0x04, 0x01, 0x00}) // EventPkt tag, unsupported here.

	if msg == "" {
		t.Fatal("expected error callback to fire")
	}
}
