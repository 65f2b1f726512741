package render

import "fmt"

// Address is a 6-byte Bluetooth device address (BD_ADDR), stored in
// little-endian wire order (byte 0 is the LAP's least significant octet).
type Address [6]byte

// BDAddrAny is the all-zero placeholder address used when the real address
// is unknown, e.g. a DEL_INDEX for an index never seen via NEW_INDEX.
var BDAddrAny Address

// String renders the address most-significant-byte first, colon
// separated, upper hex -- the reverse of wire order.
func (a Address) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", a[5], a[4], a[3], a[2], a[1], a[0])
}

// Address prints "Address: <addr>".
func (s *Sink) Address(a Address) {
	s.Field("Address: %s", a)
}

// IAC prints a 3-byte inquiry access code (LAP), most-significant-first,
// with no separators, as a single hex integer.
func (s *Sink) IAC(lap [3]byte) {
	s.Field("Access code: 0x%02x%02x%02x", lap[2], lap[1], lap[0])
}

// ClassOfDevice prints a 3-byte class-of-device value, same ordering as IAC.
func (s *Sink) ClassOfDevice(cod [3]byte) {
	s.Field("Class: 0x%02x%02x%02x", cod[2], cod[1], cod[0])
}
