package hci

import "github.com/open-source-firmware/hcimon/pkg/render"

// EventDescriptor names one HCI event code and the decoder for its
// parameters.
type EventDescriptor struct {
	Event      uint8
	Name       string
	Func       DecodeFunc
	Size       uint8
	Discipline SizeDiscipline
}

var eventTable = []EventDescriptor{
	{Event: 0x01, Name: "Inquiry Complete", Func: statusEvt, Size: 1, Discipline: SizeFixed},
	{Event: 0x02, Name: "Inquiry Result", Func: inquiryResultEvt, Size: 1, Discipline: SizeMinimum},
	{Event: 0x03, Name: "Connect Complete", Func: connCompleteEvt, Size: 11, Discipline: SizeFixed},
	{Event: 0x04, Name: "Connect Request", Func: connRequestEvt, Size: 10, Discipline: SizeFixed},
	{Event: 0x05, Name: "Disconnect Complete", Func: disconnectCompleteEvt, Size: 4, Discipline: SizeFixed},
	{Event: 0x06, Name: "Auth Complete", Func: authCompleteEvt, Size: 3, Discipline: SizeFixed},
	{Event: 0x07, Name: "Remote Name Req Complete", Func: remoteNameRequestCompleteEvt, Size: 255, Discipline: SizeFixed},
	{Event: 0x08, Name: "Encryption Change", Func: encryptChangeEvt, Size: 4, Discipline: SizeFixed},
	{Event: 0x09, Name: "Change Connection Link Key Complete", Func: changeConnLinkKeyCompleteEvt, Size: 3, Discipline: SizeFixed},
	{Event: 0x0a, Name: "Master Link Key Complete", Func: masterLinkKeyCompleteEvt, Size: 4, Discipline: SizeFixed},
	{Event: 0x0b, Name: "Read Remote Supported Features", Func: remoteFeaturesCompleteEvt, Size: 11, Discipline: SizeFixed},
	{Event: 0x0c, Name: "Read Remote Version Complete", Func: remoteVersionCompleteEvt, Size: 8, Discipline: SizeFixed},
	{Event: 0x0d, Name: "QoS Setup Complete", Func: qosSetupCompleteEvt, Size: 21, Discipline: SizeFixed},
	{Event: 0x0e, Name: "Command Complete", Func: cmdCompleteEvt, Size: 3, Discipline: SizeMinimum},
	{Event: 0x0f, Name: "Command Status", Func: cmdStatusEvt, Size: 4, Discipline: SizeFixed},
	{Event: 0x10, Name: "Hardware Error", Func: hardwareErrorEvt, Size: 1, Discipline: SizeFixed},
	{Event: 0x11, Name: "Flush Occurred", Func: flushOccurredEvt, Size: 2, Discipline: SizeFixed},
	{Event: 0x12, Name: "Role Change", Func: roleChangeEvt, Size: 8, Discipline: SizeFixed},
	{Event: 0x13, Name: "Number of Completed Packets", Func: numCompletedPacketsEvt, Size: 1, Discipline: SizeMinimum},
	{Event: 0x14, Name: "Mode Change"},
	{Event: 0x15, Name: "Return Link Keys"},
	{Event: 0x16, Name: "PIN Code Request"},
	{Event: 0x17, Name: "Link Key Request"},
	{Event: 0x18, Name: "Link Key Notification"},
	{Event: 0x19, Name: "Loopback Command"},
	{Event: 0x1a, Name: "Data Buffer Overflow"},
	{Event: 0x1b, Name: "Max Slots Change", Func: maxSlotsChangeEvt, Size: 3, Discipline: SizeFixed},
	{Event: 0x1c, Name: "Read Clock Offset Complete"},
	{Event: 0x1d, Name: "Connection Packet Type Changed"},
	{Event: 0x1e, Name: "QoS Violation"},
	{Event: 0x1f, Name: "Page Scan Mode Change"},
	{Event: 0x20, Name: "Page Scan Repetition Mode Change", Func: pscanRepModeChangeEvt, Size: 7, Discipline: SizeFixed},
	{Event: 0x21, Name: "Flow Specification Complete"},
	{Event: 0x22, Name: "Inquiry Result with RSSI"},
	{Event: 0x23, Name: "Read Remote Extended Features", Func: remoteExtFeaturesCompleteEvt, Size: 13, Discipline: SizeFixed},
	{Event: 0x2c, Name: "Synchronous Connect Complete"},
	{Event: 0x2d, Name: "Synchronous Connect Changed"},
	{Event: 0x2e, Name: "Sniff Subrate"},
	{Event: 0x2f, Name: "Extended Inquiry Result"},
	{Event: 0x30, Name: "Encryption Key Refresh Complete"},
	{Event: 0x31, Name: "IO Capability Request"},
	{Event: 0x32, Name: "IO Capability Response"},
	{Event: 0x33, Name: "User Confirmation Request"},
	{Event: 0x34, Name: "User Passkey Request"},
	{Event: 0x35, Name: "Remote OOB Data Request"},
	{Event: 0x36, Name: "Simple Pairing Complete"},
	{Event: 0x38, Name: "Link Supervision Timeout Change"},
	{Event: 0x39, Name: "Enhanced Flush Complete"},
	{Event: 0x3b, Name: "User Passkey Notification"},
	{Event: 0x3c, Name: "Keypress Notification"},
	{Event: 0x3d, Name: "Remote Host Supported Features", Func: remoteHostFeaturesNotifyEvt, Size: 14, Discipline: SizeFixed},
	{Event: 0x3e, Name: "LE Meta Event", Func: leMetaEventEvt, Size: 1, Discipline: SizeMinimum},
	{Event: 0x40, Name: "Physical Link Complete"},
	{Event: 0x41, Name: "Channel Selected"},
	{Event: 0x42, Name: "Disconn Physical Link Complete"},
	{Event: 0x43, Name: "Physical Link Loss Early Warning"},
	{Event: 0x44, Name: "Physical Link Recovery"},
	{Event: 0x45, Name: "Logical Link Complete"},
	{Event: 0x46, Name: "Disconn Logical Link Complete"},
	{Event: 0x47, Name: "Flow Spec Modify Complete"},
	{Event: 0x48, Name: "Number Of Completed Data Blocks"},
	{Event: 0x49, Name: "AMP Start Test"},
	{Event: 0x4a, Name: "AMP Test End"},
	{Event: 0x4b, Name: "AMP Receiver Report"},
	{Event: 0x4c, Name: "Short Range Mode Change Complete"},
	{Event: 0x4d, Name: "AMP Status Change"},
	{Event: 0xfe, Name: "Testing"},
	{Event: 0xff, Name: "Vendor"},
}

var eventByCode map[uint8]*EventDescriptor

func init() {
	eventByCode = make(map[uint8]*EventDescriptor, len(eventTable))
	for i := range eventTable {
		eventByCode[eventTable[i].Event] = &eventTable[i]
	}
}

func lookupEvent(code uint8) *EventDescriptor {
	return eventByCode[code]
}

// SubeventDescriptor names one LE Meta Event subevent code. It carries no
// field decoder: leMetaEventEvt prints the subevent name and hexdumps its
// parameters. Adding a decoder field here is the extension point for LE
// advertising report parsing.
type SubeventDescriptor struct {
	Subevent uint8
	Name     string
}

// subeventTable lists the LE Meta Event subevent codes defined by the
// Bluetooth LE Controller spec (Connection Complete 0x01 through Directed
// Advertising Report 0x0b).
var subeventTable = []SubeventDescriptor{
	{Subevent: 0x01, Name: "LE Connection Complete"},
	{Subevent: 0x02, Name: "LE Advertising Report"},
	{Subevent: 0x03, Name: "LE Connection Update Complete"},
	{Subevent: 0x04, Name: "LE Read Remote Used Features Complete"},
	{Subevent: 0x05, Name: "LE Long Term Key Request"},
	{Subevent: 0x06, Name: "LE Remote Connection Parameter Request"},
	{Subevent: 0x07, Name: "LE Data Length Change"},
	{Subevent: 0x08, Name: "LE Read Local P-256 Public Key Complete"},
	{Subevent: 0x09, Name: "LE Generate DHKey Complete"},
	{Subevent: 0x0a, Name: "LE Enhanced Connection Complete"},
	{Subevent: 0x0b, Name: "LE Directed Advertising Report"},
}

var subeventByCode map[uint8]*SubeventDescriptor

func init() {
	subeventByCode = make(map[uint8]*SubeventDescriptor, len(subeventTable))
	for i := range subeventTable {
		subeventByCode[subeventTable[i].Subevent] = &subeventTable[i]
	}
}

func lookupSubevent(code uint8) *SubeventDescriptor {
	return subeventByCode[code]
}

func leMetaEventEvt(s *render.Sink, data []byte) {
	subevent := data[0]
	sd := lookupSubevent(subevent)

	name := "Unknown"
	if sd != nil {
		name = sd.Name
	}
	s.Field("Subevent: %s (0x%02x)", name, subevent)

	s.Hexdump(data[1:])
}
