package render

// Handle prints "Handle: <decimal>".
func (s *Sink) Handle(handle uint16) { s.Field("Handle: %d", handle) }

// PacketType prints "Packet type: 0x<hex16>".
func (s *Sink) PacketType(pktType uint16) { s.Field("Packet type: 0x%04x", pktType) }

// VoiceSetting prints "Setting: 0x<hex16>".
func (s *Sink) VoiceSetting(setting uint16) { s.Field("Setting: 0x%04x", setting) }

// LinkPolicy prints "Link policy: 0x<hex16>".
func (s *Sink) LinkPolicy(policy uint16) { s.Field("Link policy: 0x%04x", policy) }

// ClockOffset prints "Clock offset: 0x<hex16>".
func (s *Sink) ClockOffset(offset uint16) { s.Field("Clock offset: 0x%04x", offset) }

// Timeout prints a 16-bit timeout in 0.625ms units as both milliseconds
// and the raw hex value.
func (s *Sink) Timeout(raw uint16) {
	s.Field("Timeout: %.3f msec (0x%04x)", float64(raw)*0.625, raw)
}

// InquiryLength prints an 8-bit inquiry length in 1.28s units as
// floating-point seconds.
func (s *Sink) InquiryLength(raw uint8) {
	s.Field("Length: %.2fs (0x%02x)", float64(raw)*1.28, raw)
}

// InquiryPeriod prints an 8-bit inquiry period in 1.28s units.
func (s *Sink) InquiryPeriod(raw uint8) {
	s.Field("Period: %.2fs (0x%02x)", float64(raw)*1.28, raw)
}

// NumResponses prints "Num responses: <decimal>".
func (s *Sink) NumResponses(n uint8) { s.Field("Num responses: %d", n) }

// Name copies up to 248 bytes and prints them NUL-terminated.
func (s *Sink) Name(name [248]byte) {
	n := 0
	for n < len(name) && name[n] != 0 {
		n++
	}
	s.Field("Name: %s", string(name[:n]))
}

func (s *Sink) version(label string, version uint8, revision uint16) {
	s.Field("%s: %d - 0x%04x", label, version, revision)
}

// HCIVersion prints "HCI version: <n> - 0x<rev>".
func (s *Sink) HCIVersion(version uint8, revision uint16) { s.version("HCI version", version, revision) }

// LMPVersion prints "LMP version: <n> - 0x<rev>".
func (s *Sink) LMPVersion(version uint8, subversion uint16) {
	s.version("LMP version", version, subversion)
}

// Manufacturer prints "Manufacturer: <decimal>".
func (s *Sink) Manufacturer(id uint16) { s.Field("Manufacturer: %d", id) }

// Commands prints the 64-byte supported-commands bitmap as contiguous hex.
func (s *Sink) Commands(commands [64]byte) {
	s.Field("Commands: 0x%x", commands[:])
}

// Features prints the 8-byte LMP/LE features bitmap, space-separated per byte.
func (s *Sink) Features(features [8]byte) {
	buf := make([]byte, 0, 8*5)
	for _, b := range features {
		buf = append(buf, []byte(" 0x")...)
		buf = append(buf, hexByte(b)...)
	}
	s.Field("Features:%s", string(buf))
}

// EventMask prints the 8-byte event mask as contiguous hex.
func (s *Sink) EventMask(mask [8]byte) {
	s.Field("Mask: 0x%x", mask[:])
}

func hexByte(b byte) []byte {
	const hexdigits = "0123456789abcdef"
	return []byte{hexdigits[b>>4], hexdigits[b&0xf]}
}
