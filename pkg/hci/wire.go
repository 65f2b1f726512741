package hci

import "encoding/binary"

func le16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }

func addr6(b []byte) (a [6]byte) {
	copy(a[:], b[:6])
	return a
}

func class3(b []byte) (c [3]byte) {
	copy(c[:], b[:3])
	return c
}

func name248(b []byte) (n [248]byte) {
	copy(n[:], b)
	return n
}

func features8(b []byte) (f [8]byte) {
	copy(f[:], b[:8])
	return f
}

func commands64(b []byte) (c [64]byte) {
	copy(c[:], b[:64])
	return c
}

func eir240(b []byte) (e [240]byte) {
	copy(e[:], b[:240])
	return e
}
