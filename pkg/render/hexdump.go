package render

// Hexdump prints buf in the canonical 16-bytes-per-line view: hex bytes
// then an ASCII column (non-printable -> '.'), indented like any other
// field line. No offset column is printed.
func (s *Sink) Hexdump(buf []byte) {
	for len(buf) > 0 {
		n := len(buf)
		if n > 16 {
			n = 16
		}
		line := buf[:n]

		hex := make([]byte, 0, 16*3)
		ascii := make([]byte, 0, 16)
		for i := 0; i < 16; i++ {
			if i < n {
				hex = append(hex, hexByte(line[i])...)
				hex = append(hex, ' ')
				if line[i] >= 0x20 && line[i] <= 0x7e {
					ascii = append(ascii, line[i])
				} else {
					ascii = append(ascii, '.')
				}
			} else {
				hex = append(hex, ' ', ' ', ' ')
			}
		}
		s.Field("%s %s", hex, ascii)
		buf = buf[n:]
	}
}

// EIR hexdumps a fixed 240-byte Extended Inquiry Response block.
func (s *Sink) EIR(eir [240]byte) {
	s.Hexdump(eir[:])
}
