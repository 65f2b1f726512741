package hci

import "github.com/open-source-firmware/hcimon/pkg/render"

func statusRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
}

func statusBDAddrRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Address(render.Address(addr6(data[1:7])))
}

func readDefaultLinkPolicyRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.LinkPolicy(le16(data[1:3]))
}

func deleteStoredLinkKeyRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Field("Num keys: %d", le16(data[1:3]))
}

func readLocalNameRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Name(name248(data[1:249]))
}

func readConnAcceptTimeoutRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Timeout(le16(data[1:3]))
}

func readClassOfDevRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.ClassOfDevice(class3(data[1:4]))
}

func readVoiceSettingRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.VoiceSetting(le16(data[1:3]))
}

func readInquiryModeRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.InquiryMode(data[1])
}

func readExtInquiryResponseRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.FEC(data[1])
	s.EIR(eir240(data[2:242]))
}

func readSimplePairingModeRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.SimplePairingMode(data[1])
}

func readInquiryRespTXPowerRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Field("TX power: %d dBm", int8(data[1]))
}

func readLEHostSupportedRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Field("Supported: 0x%02x", data[1])
	s.Field("Simultaneous: 0x%02x", data[2])
}

func readLocalVersionRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.HCIVersion(data[1], le16(data[2:4]))
	s.LMPVersion(data[4], le16(data[7:9]))
	s.Manufacturer(le16(data[5:7]))
}

func readLocalCommandsRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Commands(commands64(data[1:65]))
}

func readLocalFeaturesRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Features(features8(data[1:9]))
}

func readLocalExtFeaturesRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Field("Page: %d/%d", data[1], data[2])
	s.Features(features8(data[3:11]))
}

func readBufferSizeRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Field("ACL MTU: %-4d ACL max packet: %d", le16(data[1:3]), le16(data[4:6]))
	s.Field("SCO MTU: %-4d SCO max packet: %d", data[3], le16(data[6:8]))
}

func readCountryCodeRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	var str string
	switch data[1] {
	case 0x00:
		str = "North America, Europe*, Japan"
	case 0x01:
		str = "France"
	default:
		str = "Reserved"
	}
	s.Field("Country code: %s (0x%02x)", str, data[1])
}

func readBDAddrRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Address(render.Address(addr6(data[1:7])))
}

func readDataBlockSizeRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Field("Max ACL length: %d", le16(data[1:3]))
	s.Field("Block length: %d", le16(data[3:5]))
	s.Field("Num blocks: %d", le16(data[5:7]))
}

func leReadBufferSizeRsp(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Field("Data packet length: %d", le16(data[1:3]))
	s.Field("Num data packets: %d", data[3])
}

// --- event decoders ---

func statusEvt(s *render.Sink, data []byte) {
	s.Status(data[0])
}

func inquiryResultEvt(s *render.Sink, data []byte) {
	const fixed = 14
	s.NumResponses(data[0])
	if len(data) < 1+fixed {
		s.Hexdump(data[1:])
		return
	}
	rest := data[1:]
	s.Address(render.Address(addr6(rest[0:6])))
	s.PageScanRepetitionMode(rest[6])
	s.Field("Page period mode: 0x%02x", rest[7])
	s.PageScanMode(rest[8])
	s.ClassOfDevice(class3(rest[9:12]))
	s.ClockOffset(le16(rest[12:14]))

	if len(data) > 1+fixed {
		s.Hexdump(data[1+fixed:])
	}
}

func connCompleteEvt(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Handle(le16(data[1:3]))
	s.Address(render.Address(addr6(data[3:9])))
	s.LinkType(data[9])
	s.EncryptionMode(data[10])
}

func connRequestEvt(s *render.Sink, data []byte) {
	s.Address(render.Address(addr6(data[0:6])))
	s.ClassOfDevice(class3(data[6:9]))
	s.LinkType(data[9])
}

func disconnectCompleteEvt(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Handle(le16(data[1:3]))
	s.Reason(data[3])
}

func authCompleteEvt(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Handle(le16(data[1:3]))
}

func remoteNameRequestCompleteEvt(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Address(render.Address(addr6(data[1:7])))
	s.Name(name248(data[7:255]))
}

func encryptChangeEvt(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Handle(le16(data[1:3]))
	s.EncryptionMode(data[3])
}

func changeConnLinkKeyCompleteEvt(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Handle(le16(data[1:3]))
}

func masterLinkKeyCompleteEvt(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Handle(le16(data[1:3]))
	s.KeyFlag(data[3])
}

func remoteFeaturesCompleteEvt(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Handle(le16(data[1:3]))
	s.Features(features8(data[3:11]))
}

func remoteVersionCompleteEvt(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Handle(le16(data[1:3]))
	s.LMPVersion(data[3], le16(data[6:8]))
	s.Manufacturer(le16(data[4:6]))
}

func qosSetupCompleteEvt(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Hexdump(data[1:])
}

// cmdCompleteEvt dispatches a Command Complete event's response parameters
// to the matching command's response decoder. An unknown opcode, or one
// whose descriptor has no response decoder, is hexdumped instead; the
// descriptor lookup is never dereferenced when it comes back nil.
func cmdCompleteEvt(s *render.Sink, data []byte) {
	ncmd := data[0]
	opcode := Opcode(le16(data[1:3]))
	desc := lookupOpcode(opcode)

	name := "Unknown"
	if desc != nil {
		name = desc.Name
	}
	s.Field("%s (0x%02x|0x%04x) ncmd %d", name, opcode.OGF(), opcode.OCF(), ncmd)

	rest := data[3:]
	if desc == nil || desc.Rsp == nil {
		s.Hexdump(rest)
		return
	}

	switch desc.RspDiscipline {
	case SizeFixed:
		if uint8(len(rest)) != desc.RspSize {
			s.Field("invalid packet size")
			s.NoteMalformed("invalid-response-size")
			s.Hexdump(rest)
			return
		}
	case SizeMinimum:
		if uint8(len(rest)) < desc.RspSize {
			s.Field("too short packet")
			s.NoteMalformed("too-short-response")
			s.Hexdump(rest)
			return
		}
	}

	desc.Rsp(s, rest)
}

func cmdStatusEvt(s *render.Sink, data []byte) {
	status := data[0]
	ncmd := data[1]
	opcode := Opcode(le16(data[2:4]))
	desc := lookupOpcode(opcode)

	name := "Unknown"
	if desc != nil {
		name = desc.Name
	}
	s.Field("%s (0x%02x|0x%04x) ncmd %d", name, opcode.OGF(), opcode.OCF(), ncmd)
	s.Status(status)
}

func hardwareErrorEvt(s *render.Sink, data []byte) {
	s.Field("Code: 0x%02x", data[0])
}

func flushOccurredEvt(s *render.Sink, data []byte) {
	s.Handle(le16(data[0:2]))
}

func roleChangeEvt(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Address(render.Address(addr6(data[1:7])))
	s.Role(data[7])
}

func numCompletedPacketsEvt(s *render.Sink, data []byte) {
	const fixed = 4
	numHandles := data[0]
	s.Field("Num handles: %d", numHandles)
	if len(data) < 1+fixed {
		s.Hexdump(data[1:])
		return
	}
	rest := data[1:]
	s.Handle(le16(rest[0:2]))
	s.Field("Count: %d", le16(rest[2:4]))

	if len(data) > 1+fixed {
		s.Hexdump(data[1+fixed:])
	}
}

func maxSlotsChangeEvt(s *render.Sink, data []byte) {
	s.Handle(le16(data[0:2]))
	s.Field("Max slots: %d", data[2])
}

func remoteExtFeaturesCompleteEvt(s *render.Sink, data []byte) {
	s.Status(data[0])
	s.Handle(le16(data[1:3]))
	s.Field("Page: %d/%d", data[3], data[4])
	s.Features(features8(data[5:13]))
}

func pscanRepModeChangeEvt(s *render.Sink, data []byte) {
	s.Address(render.Address(addr6(data[0:6])))
	s.PageScanRepetitionMode(data[6])
}

func remoteHostFeaturesNotifyEvt(s *render.Sink, data []byte) {
	s.Address(render.Address(addr6(data[0:6])))
	s.Features(features8(data[6:14]))
}
