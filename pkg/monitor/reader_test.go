package monitor

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func encodeRecord(t *testing.T, timestamp uint64, index uint16, opcode Opcode, data []byte) []byte {
	t.Helper()
	header := make([]byte, recordHeaderSize)
	binary.BigEndian.PutUint64(header[0:8], timestamp)
	binary.LittleEndian.PutUint16(header[8:10], index)
	binary.LittleEndian.PutUint16(header[10:12], uint16(opcode))
	binary.LittleEndian.PutUint16(header[12:14], uint16(len(data)))
	return append(header, data...)
}

func TestReadRecordsDeliversInOrder(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(encodeRecord(t, 1, 0, Command, []byte{0x03, 0x0c, 0x00}))
	buf.Write(encodeRecord(t, 2, 0, Event, []byte{0x0e, 0x04, 0x01, 0x03, 0x0c, 0x00}))

	records, errs := ReadRecords(&buf)

	var got []Record
	for rec := range records {
		got = append(got, rec)
	}
	if err := <-errs; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Timestamp != 1 || got[0].Opcode != Command {
		t.Errorf("record 0 = %+v", got[0])
	}
	if got[1].Timestamp != 2 || got[1].Opcode != Event {
		t.Errorf("record 1 = %+v", got[1])
	}
}

func TestReadRecordsReportsTruncatedPayload(t *testing.T) {
	full := encodeRecord(t, 0, 0, Command, []byte{0x03, 0x0c, 0x00})
	truncated := full[:len(full)-1]

	records, errs := ReadRecords(bytes.NewReader(truncated))
	for range records {
	}
	if err := <-errs; err == nil {
		t.Fatal("expected error for truncated payload")
	}
}

func TestReadRecordsCleanEOFReportsNoError(t *testing.T) {
	records, errs := ReadRecords(bytes.NewReader(nil))
	for range records {
	}
	if err := <-errs; err != nil {
		t.Errorf("unexpected error on clean EOF: %v", err)
	}
}
