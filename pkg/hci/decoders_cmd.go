package hci

import "github.com/open-source-firmware/hcimon/pkg/render"

// nullCmd decodes a command with no parameters.
func nullCmd(s *render.Sink, data []byte) {}

func inquiryCmd(s *render.Sink, data []byte) {
	s.IAC(class3(data[0:3]))
	s.InquiryLength(data[3])
	s.NumResponses(data[4])
}

func periodicInquiryCmd(s *render.Sink, data []byte) {
	s.Field("Max period: %.2fs (0x%04x)", float64(le16(data[0:2]))*1.28, le16(data[0:2]))
	s.Field("Min period: %.2fs (0x%04x)", float64(le16(data[2:4]))*1.28, le16(data[2:4]))
	s.IAC(class3(data[4:7]))
	s.InquiryLength(data[7])
	s.NumResponses(data[8])
}

func createConnCmd(s *render.Sink, data []byte) {
	s.Address(render.Address(addr6(data[0:6])))
	s.PacketType(le16(data[6:8]))
	s.PageScanRepetitionMode(data[8])
	s.PageScanMode(data[9])
	s.ClockOffset(le16(data[10:12]))
	s.RoleSwitch(data[12])
}

func disconnectCmd(s *render.Sink, data []byte) {
	s.Handle(le16(data[0:2]))
	s.Reason(data[2])
}

func addSCOConnCmd(s *render.Sink, data []byte) {
	s.Handle(le16(data[0:2]))
	s.PacketType(le16(data[2:4]))
}

func createConnCancelCmd(s *render.Sink, data []byte) {
	s.Address(render.Address(addr6(data[0:6])))
}

func acceptConnRequestCmd(s *render.Sink, data []byte) {
	s.Address(render.Address(addr6(data[0:6])))
	s.Role(data[6])
}

func rejectConnRequestCmd(s *render.Sink, data []byte) {
	s.Address(render.Address(addr6(data[0:6])))
	s.Reason(data[6])
}

func remoteNameRequestCmd(s *render.Sink, data []byte) {
	s.Address(render.Address(addr6(data[0:6])))
	s.PageScanRepetitionMode(data[6])
	s.PageScanMode(data[7])
	s.ClockOffset(le16(data[8:10]))
}

func remoteNameRequestCancelCmd(s *render.Sink, data []byte) {
	s.Address(render.Address(addr6(data[0:6])))
}

func readRemoteFeaturesCmd(s *render.Sink, data []byte) {
	s.Handle(le16(data[0:2]))
}

func readRemoteExtFeaturesCmd(s *render.Sink, data []byte) {
	s.Handle(le16(data[0:2]))
	s.Field("Page: %d", data[2])
}

func readRemoteVersionCmd(s *render.Sink, data []byte) {
	s.Handle(le16(data[0:2]))
}

func writeDefaultLinkPolicyCmd(s *render.Sink, data []byte) {
	s.LinkPolicy(le16(data[0:2]))
}

func setEventMaskCmd(s *render.Sink, data []byte) {
	s.EventMask(features8(data[0:8]))
}

func setEventFilterCmd(s *render.Sink, data []byte) {
	s.Field("Type: 0x%02x", data[0])
	s.Hexdump(data[1:])
}

func deleteStoredLinkKeyCmd(s *render.Sink, data []byte) {
	s.Address(render.Address(addr6(data[0:6])))
	s.Field("Delete all: 0x%02x", data[6])
}

func writeLocalNameCmd(s *render.Sink, data []byte) {
	s.Name(name248(data))
}

func writeConnAcceptTimeoutCmd(s *render.Sink, data []byte) {
	s.Timeout(le16(data[0:2]))
}

func writeClassOfDevCmd(s *render.Sink, data []byte) {
	s.ClassOfDevice(class3(data[0:3]))
}

func writeVoiceSettingCmd(s *render.Sink, data []byte) {
	s.VoiceSetting(le16(data[0:2]))
}

func writeInquiryModeCmd(s *render.Sink, data []byte) {
	s.InquiryMode(data[0])
}

func writeExtInquiryResponseCmd(s *render.Sink, data []byte) {
	s.FEC(data[0])
	s.EIR(eir240(data[1:241]))
}

func writeSimplePairingModeCmd(s *render.Sink, data []byte) {
	s.SimplePairingMode(data[0])
}

func writeLEHostSupportedCmd(s *render.Sink, data []byte) {
	s.Field("Supported: 0x%02x", data[0])
	s.Field("Simultaneous: 0x%02x", data[1])
}

func readLocalExtFeaturesCmd(s *render.Sink, data []byte) {
	s.Field("Page: %d", data[0])
}
