package render

// reservedOrLookup renders a small enumerated byte field: a label, a
// symbolic name drawn from names (indexed by the raw value), or
// "Reserved" when the raw value exceeds the known range.
func reservedOrLookup(names []string, v uint8) string {
	if int(v) < len(names) {
		return names[v]
	}
	return "Reserved"
}

var inquiryModeNames = []string{
	"Standard Inquiry Result",
	"Inquiry Result with RSSI",
	"Inquiry Result with RSSI or Extended Inquiry Result",
}

// InquiryMode prints "Mode: <name> (0x<code>)" for the Inquiry Mode command parameter.
func (s *Sink) InquiryMode(mode uint8) {
	s.Field("Mode: %s (0x%02x)", reservedOrLookup(inquiryModeNames, mode), mode)
}

var simplePairingModeNames = []string{"Disabled", "Enabled"}

// SimplePairingMode prints "Mode: <name> (0x<code>)".
func (s *Sink) SimplePairingMode(mode uint8) {
	s.Field("Mode: %s (0x%02x)", reservedOrLookup(simplePairingModeNames, mode), mode)
}

var pscanRepModeNames = []string{"R0", "R1", "R2"}

// PageScanRepetitionMode prints "Page scan repetition mode: <name> (0x<code>)".
func (s *Sink) PageScanRepetitionMode(mode uint8) {
	s.Field("Page scan repetition mode: %s (0x%02x)", reservedOrLookup(pscanRepModeNames, mode), mode)
}

var pscanPeriodModeNames = []string{"P0", "P1", "P2"}

// PageScanPeriodMode prints "Page period mode: <name> (0x<code>)".
func (s *Sink) PageScanPeriodMode(mode uint8) {
	s.Field("Page period mode: %s (0x%02x)", reservedOrLookup(pscanPeriodModeNames, mode), mode)
}

var pscanModeNames = []string{"Mandatory", "Optional I", "Optional II", "Optional III"}

// PageScanMode prints "Page scan mode: <name> (0x<code>)".
func (s *Sink) PageScanMode(mode uint8) {
	s.Field("Page scan mode: %s (0x%02x)", reservedOrLookup(pscanModeNames, mode), mode)
}

var linkTypeNames = []string{"SCO", "ACL"}

// LinkType prints "Link type: <name> (0x<code>)".
func (s *Sink) LinkType(linkType uint8) {
	s.Field("Link type: %s (0x%02x)", reservedOrLookup(linkTypeNames, linkType), linkType)
}

var encryptionModeNames = []string{"Disabled", "Enabled"}

// EncryptionMode prints "Encryption: <name> (0x<code>)".
func (s *Sink) EncryptionMode(mode uint8) {
	s.Field("Encryption: %s (0x%02x)", reservedOrLookup(encryptionModeNames, mode), mode)
}

var keyFlagNames = []string{"Semi-permanent", "Temporary"}

// KeyFlag prints "Key flag: <name> (0x<code>)".
func (s *Sink) KeyFlag(flag uint8) {
	s.Field("Key flag: %s (0x%02x)", reservedOrLookup(keyFlagNames, flag), flag)
}

var roleNames = []string{"Master", "Slave"}

// Role prints "Role: <name> (0x<code>)".
func (s *Sink) Role(role uint8) {
	s.Field("Role: %s (0x%02x)", reservedOrLookup(roleNames, role), role)
}

var fecNames = []string{"Not required", "Required"}

// FEC prints "FEC: <name> (0x<code>)".
func (s *Sink) FEC(fec uint8) {
	s.Field("FEC: %s (0x%02x)", reservedOrLookup(fecNames, fec), fec)
}

var roleSwitchNames = []string{"Stay master", "Allow slave"}

// RoleSwitch prints "Role switch: <name> (0x<code>)" for Create Connection's
// allow-role-switch parameter.
func (s *Sink) RoleSwitch(v uint8) {
	s.Field("Role switch: %s (0x%02x)", reservedOrLookup(roleSwitchNames, v), v)
}
