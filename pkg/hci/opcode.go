// Package hci dissects HCI command, event, ACL and SCO packets the way
// btmon does: a table of descriptors keyed by opcode or event code, each
// naming an optional decoder function and a declared parameter size.
package hci

import "github.com/open-source-firmware/hcimon/pkg/render"

// Opcode is a full 16-bit HCI command opcode: a 6-bit OGF packed with a
// 10-bit OCF.
type Opcode uint16

// OGF returns the opcode group field.
func (o Opcode) OGF() uint16 { return uint16(o) >> 10 }

// OCF returns the opcode command field.
func (o Opcode) OCF() uint16 { return uint16(o) & 0x03ff }

// SizeDiscipline governs how a descriptor's declared size is checked
// against the wire length of a command, response or event payload.
type SizeDiscipline int

const (
	// SizeFixed requires the payload to be exactly the declared size.
	SizeFixed SizeDiscipline = iota
	// SizeMinimum requires the payload to be at least the declared size;
	// used for commands and events carrying a variable-length tail.
	SizeMinimum
)

// DecodeFunc renders a command, response or event payload onto s. data
// has already been sliced to the declared parameter length.
type DecodeFunc func(s *render.Sink, data []byte)

// CommandDescriptor names one HCI command opcode and the decoders for its
// command parameters and, when the command completes synchronously via a
// Command Complete event, its response parameters.
type CommandDescriptor struct {
	Opcode        Opcode
	Name          string
	Cmd           DecodeFunc
	CmdSize       uint8
	CmdDiscipline SizeDiscipline
	Rsp           DecodeFunc
	RspSize       uint8
	RspDiscipline SizeDiscipline
}

// commandTable mirrors the upstream opcode table OGF by OGF. Entries with
// no Cmd/Rsp function are known by name only; their payload is hexdumped
// instead of field-decoded.
var commandTable = []CommandDescriptor{
	{Opcode: 0x0000, Name: "NOP"},

	// OGF 1 - Link Control
	{Opcode: 0x0401, Name: "Inquiry", Cmd: inquiryCmd, CmdSize: 5, CmdDiscipline: SizeFixed},
	{Opcode: 0x0402, Name: "Inquiry Cancel", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: statusRsp, RspSize: 1, RspDiscipline: SizeFixed},
	{Opcode: 0x0403, Name: "Periodic Inquiry Mode", Cmd: periodicInquiryCmd, CmdSize: 9, CmdDiscipline: SizeFixed, Rsp: statusRsp, RspSize: 1, RspDiscipline: SizeFixed},
	{Opcode: 0x0404, Name: "Exit Periodic Inquiry Mode", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: statusRsp, RspSize: 1, RspDiscipline: SizeFixed},
	{Opcode: 0x0405, Name: "Create Connection", Cmd: createConnCmd, CmdSize: 13, CmdDiscipline: SizeFixed},
	{Opcode: 0x0406, Name: "Disconnect", Cmd: disconnectCmd, CmdSize: 3, CmdDiscipline: SizeFixed},
	{Opcode: 0x0407, Name: "Add SCO Connection", Cmd: addSCOConnCmd, CmdSize: 4, CmdDiscipline: SizeFixed},
	{Opcode: 0x0408, Name: "Create Connection Cancel", Cmd: createConnCancelCmd, CmdSize: 6, CmdDiscipline: SizeFixed, Rsp: statusBDAddrRsp, RspSize: 7, RspDiscipline: SizeFixed},
	{Opcode: 0x0409, Name: "Accept Connection Request", Cmd: acceptConnRequestCmd, CmdSize: 7, CmdDiscipline: SizeFixed},
	{Opcode: 0x040a, Name: "Reject Connection Request", Cmd: rejectConnRequestCmd, CmdSize: 7, CmdDiscipline: SizeFixed},
	{Opcode: 0x040b, Name: "Link Key Request Reply"},
	{Opcode: 0x040c, Name: "Link Key Request Negative Reply"},
	{Opcode: 0x040d, Name: "PIN Code Request Reply"},
	{Opcode: 0x040e, Name: "PIN Code Request Negative Reply"},
	{Opcode: 0x040f, Name: "Change Connection Packet Type"},
	{Opcode: 0x0411, Name: "Authentication Requested"},
	{Opcode: 0x0413, Name: "Set Connection Encryption"},
	{Opcode: 0x0415, Name: "Change Connection Link Key"},
	{Opcode: 0x0417, Name: "Master Link Key"},
	{Opcode: 0x0419, Name: "Remote Name Request", Cmd: remoteNameRequestCmd, CmdSize: 10, CmdDiscipline: SizeFixed},
	{Opcode: 0x041a, Name: "Remote Name Request Cancel", Cmd: remoteNameRequestCancelCmd, CmdSize: 6, CmdDiscipline: SizeFixed, Rsp: statusBDAddrRsp, RspSize: 7, RspDiscipline: SizeFixed},
	{Opcode: 0x041b, Name: "Read Remote Supported Features", Cmd: readRemoteFeaturesCmd, CmdSize: 2, CmdDiscipline: SizeFixed},
	{Opcode: 0x041c, Name: "Read Remote Extended Features", Cmd: readRemoteExtFeaturesCmd, CmdSize: 3, CmdDiscipline: SizeFixed},
	{Opcode: 0x041d, Name: "Read Remote Version Information", Cmd: readRemoteVersionCmd, CmdSize: 2, CmdDiscipline: SizeFixed},
	{Opcode: 0x041f, Name: "Read Clock Offset"},
	{Opcode: 0x0420, Name: "Read LMP Handle"},
	{Opcode: 0x0428, Name: "Setup Synchronous Connection"},
	{Opcode: 0x0429, Name: "Accept Synchronous Connection"},
	{Opcode: 0x042a, Name: "Reject Synchronous Connection"},
	{Opcode: 0x042b, Name: "IO Capability Request Reply"},
	{Opcode: 0x042c, Name: "User Confirmation Request Reply"},
	{Opcode: 0x042d, Name: "User Confirmation Request Neg Reply"},
	{Opcode: 0x042e, Name: "User Passkey Request Reply"},
	{Opcode: 0x042f, Name: "User Passkey Request Negative Reply"},
	{Opcode: 0x0430, Name: "Remote OOB Data Request Reply"},
	{Opcode: 0x0433, Name: "Remote OOB Data Request Neg Reply"},
	{Opcode: 0x0434, Name: "IO Capability Request Negative Reply"},
	{Opcode: 0x0435, Name: "Create Physical Link"},
	{Opcode: 0x0436, Name: "Accept Physical Link"},
	{Opcode: 0x0437, Name: "Disconnect Physical Link"},
	{Opcode: 0x0438, Name: "Create Logical Link"},
	{Opcode: 0x0439, Name: "Accept Logical Link"},
	{Opcode: 0x043a, Name: "Disconnect Logical Link"},
	{Opcode: 0x043b, Name: "Logical Link Cancel"},
	{Opcode: 0x043c, Name: "Flow Specification Modify"},

	// OGF 2 - Link Policy
	{Opcode: 0x0801, Name: "Hold Mode"},
	{Opcode: 0x0803, Name: "Sniff Mode"},
	{Opcode: 0x0804, Name: "Exit Sniff Mode"},
	{Opcode: 0x0805, Name: "Park State"},
	{Opcode: 0x0806, Name: "Exit Park State"},
	{Opcode: 0x0807, Name: "QoS Setup"},
	{Opcode: 0x0809, Name: "Role Discovery"},
	{Opcode: 0x080b, Name: "Switch Role"},
	{Opcode: 0x080c, Name: "Read Link Policy Settings"},
	{Opcode: 0x080d, Name: "Write Link Policy Settings"},
	{Opcode: 0x080e, Name: "Read Default Link Policy Settings", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: readDefaultLinkPolicyRsp, RspSize: 3, RspDiscipline: SizeFixed},
	{Opcode: 0x080f, Name: "Write Default Link Policy Settings", Cmd: writeDefaultLinkPolicyCmd, CmdSize: 2, CmdDiscipline: SizeFixed, Rsp: statusRsp, RspSize: 1, RspDiscipline: SizeFixed},
	{Opcode: 0x0810, Name: "Flow Specification"},
	{Opcode: 0x0811, Name: "Sniff Subrating"},

	// OGF 3 - Host Control
	{Opcode: 0x0c01, Name: "Set Event Mask", Cmd: setEventMaskCmd, CmdSize: 8, CmdDiscipline: SizeFixed, Rsp: statusRsp, RspSize: 1, RspDiscipline: SizeFixed},
	{Opcode: 0x0c03, Name: "Reset", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: statusRsp, RspSize: 1, RspDiscipline: SizeFixed},
	{Opcode: 0x0c05, Name: "Set Event Filter", Cmd: setEventFilterCmd, CmdSize: 1, CmdDiscipline: SizeMinimum, Rsp: statusRsp, RspSize: 1, RspDiscipline: SizeFixed},
	{Opcode: 0x0c08, Name: "Flush"},
	{Opcode: 0x0c09, Name: "Read PIN Type"},
	{Opcode: 0x0c0a, Name: "Write PIN Type"},
	{Opcode: 0x0c0b, Name: "Create New Unit Key"},
	{Opcode: 0x0c0d, Name: "Read Stored Link Key"},
	{Opcode: 0x0c11, Name: "Write Stored Link Key"},
	{Opcode: 0x0c12, Name: "Delete Stored Link Key", Cmd: deleteStoredLinkKeyCmd, CmdSize: 7, CmdDiscipline: SizeFixed, Rsp: deleteStoredLinkKeyRsp, RspSize: 3, RspDiscipline: SizeFixed},
	{Opcode: 0x0c13, Name: "Write Local Name", Cmd: writeLocalNameCmd, CmdSize: 248, CmdDiscipline: SizeFixed, Rsp: statusRsp, RspSize: 1, RspDiscipline: SizeFixed},
	{Opcode: 0x0c14, Name: "Read Local Name", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: readLocalNameRsp, RspSize: 249, RspDiscipline: SizeFixed},
	{Opcode: 0x0c15, Name: "Read Connection Accept Timeout", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: readConnAcceptTimeoutRsp, RspSize: 3, RspDiscipline: SizeFixed},
	{Opcode: 0x0c16, Name: "Write Connection Accept Timeout", Cmd: writeConnAcceptTimeoutCmd, CmdSize: 2, CmdDiscipline: SizeFixed, Rsp: statusRsp, RspSize: 1, RspDiscipline: SizeFixed},
	{Opcode: 0x0c17, Name: "Read Page Timeout"},
	{Opcode: 0x0c18, Name: "Write Page Timeout"},
	{Opcode: 0x0c19, Name: "Read Scan Enable"},
	{Opcode: 0x0c1a, Name: "Write Scan Enable"},
	{Opcode: 0x0c1b, Name: "Read Page Scan Activity"},
	{Opcode: 0x0c1c, Name: "Write Page Scan Activity"},
	{Opcode: 0x0c1d, Name: "Read Inquiry Scan Activity"},
	{Opcode: 0x0c1e, Name: "Write Inquiry Scan Activity"},
	{Opcode: 0x0c1f, Name: "Read Authentication Enable"},
	{Opcode: 0x0c20, Name: "Write Authentication Enable"},
	{Opcode: 0x0c21, Name: "Read Encryption Mode"},
	{Opcode: 0x0c22, Name: "Write Encryption Mode"},
	{Opcode: 0x0c23, Name: "Read Class of Device", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: readClassOfDevRsp, RspSize: 4, RspDiscipline: SizeFixed},
	{Opcode: 0x0c24, Name: "Write Class of Device", Cmd: writeClassOfDevCmd, CmdSize: 3, CmdDiscipline: SizeFixed, Rsp: statusRsp, RspSize: 1, RspDiscipline: SizeFixed},
	{Opcode: 0x0c25, Name: "Read Voice Setting", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: readVoiceSettingRsp, RspSize: 3, RspDiscipline: SizeFixed},
	{Opcode: 0x0c26, Name: "Write Voice Setting", Cmd: writeVoiceSettingCmd, CmdSize: 2, CmdDiscipline: SizeFixed, Rsp: statusRsp, RspSize: 1, RspDiscipline: SizeFixed},
	{Opcode: 0x0c27, Name: "Read Automatic Flush Timeout"},
	{Opcode: 0x0c28, Name: "Write Automatic Flush Timeout"},
	{Opcode: 0x0c29, Name: "Read Num Broadcast Retransmissions"},
	{Opcode: 0x0c2a, Name: "Write Num Broadcast Retransmissions"},
	{Opcode: 0x0c2b, Name: "Read Hold Mode Activity"},
	{Opcode: 0x0c2c, Name: "Write Hold Mode Activity"},
	{Opcode: 0x0c2d, Name: "Read Transmit Power Level"},
	{Opcode: 0x0c2e, Name: "Read Sync Flow Control Enable"},
	{Opcode: 0x0c2f, Name: "Write Sync Flow Control Enable"},
	{Opcode: 0x0c31, Name: "Set Host Controller To Host Flow"},
	{Opcode: 0x0c33, Name: "Host Buffer Size"},
	{Opcode: 0x0c35, Name: "Host Number of Completed Packets"},
	{Opcode: 0x0c36, Name: "Read Link Supervision Timeout"},
	{Opcode: 0x0c37, Name: "Write Link Supervision Timeout"},
	{Opcode: 0x0c38, Name: "Read Number of Supported IAC"},
	{Opcode: 0x0c39, Name: "Read Current IAC LAP"},
	{Opcode: 0x0c3a, Name: "Write Current IAC LAP"},
	{Opcode: 0x0c3b, Name: "Read Page Scan Period Mode"},
	{Opcode: 0x0c3c, Name: "Write Page Scan Period Mode"},
	{Opcode: 0x0c3d, Name: "Read Page Scan Mode"},
	{Opcode: 0x0c3e, Name: "Write Page Scan Mode"},
	{Opcode: 0x0c3f, Name: "Set AFH Host Channel Classification"},
	{Opcode: 0x0c42, Name: "Read Inquiry Scan Type"},
	{Opcode: 0x0c43, Name: "Write Inquiry Scan Type"},
	{Opcode: 0x0c44, Name: "Read Inquiry Mode", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: readInquiryModeRsp, RspSize: 2, RspDiscipline: SizeFixed},
	{Opcode: 0x0c45, Name: "Write Inquiry Mode", Cmd: writeInquiryModeCmd, CmdSize: 1, CmdDiscipline: SizeFixed, Rsp: statusRsp, RspSize: 1, RspDiscipline: SizeFixed},
	{Opcode: 0x0c46, Name: "Read Page Scan Type"},
	{Opcode: 0x0c47, Name: "Write Page Scan Type"},
	{Opcode: 0x0c48, Name: "Read AFH Channel Assessment Mode"},
	{Opcode: 0x0c49, Name: "Write AFH Channel Assessment Mode"},
	{Opcode: 0x0c51, Name: "Read Extended Inquiry Response", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: readExtInquiryResponseRsp, RspSize: 242, RspDiscipline: SizeFixed},
	{Opcode: 0x0c52, Name: "Write Extended Inquiry Response", Cmd: writeExtInquiryResponseCmd, CmdSize: 241, CmdDiscipline: SizeFixed, Rsp: statusRsp, RspSize: 1, RspDiscipline: SizeFixed},
	{Opcode: 0x0c53, Name: "Refresh Encryption Key"},
	{Opcode: 0x0c55, Name: "Read Simple Pairing Mode", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: readSimplePairingModeRsp, RspSize: 2, RspDiscipline: SizeFixed},
	{Opcode: 0x0c56, Name: "Write Simple Pairing Mode", Cmd: writeSimplePairingModeCmd, CmdSize: 1, CmdDiscipline: SizeFixed, Rsp: statusRsp, RspSize: 1, RspDiscipline: SizeFixed},
	{Opcode: 0x0c57, Name: "Read Local OOB Data"},
	{Opcode: 0x0c58, Name: "Read Inquiry Response TX Power Level", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: readInquiryRespTXPowerRsp, RspSize: 2, RspDiscipline: SizeFixed},
	{Opcode: 0x0c59, Name: "Write Inquiry Transmit Power Level"},
	{Opcode: 0x0c5a, Name: "Read Default Erroneous Reporting"},
	{Opcode: 0x0c5b, Name: "Write Default Erroneous Reporting"},
	{Opcode: 0x0c5f, Name: "Enhanced Flush"},
	{Opcode: 0x0c61, Name: "Read Logical Link Accept Timeout"},
	{Opcode: 0x0c62, Name: "Write Logical Link Accept Timeout"},
	{Opcode: 0x0c63, Name: "Set Event Mask Page 2"},
	{Opcode: 0x0c64, Name: "Read Location Data"},
	{Opcode: 0x0c65, Name: "Write Location Data"},
	{Opcode: 0x0c66, Name: "Read Flow Control Mode"},
	{Opcode: 0x0c67, Name: "Write Flow Control Mode"},
	{Opcode: 0x0c68, Name: "Read Enhanced Transmit Power Level"},
	{Opcode: 0x0c69, Name: "Read Best Effort Flush Timeout"},
	{Opcode: 0x0c6a, Name: "Write Best Effort Flush Timeout"},
	{Opcode: 0x0c6b, Name: "Short Range Mode"},
	{Opcode: 0x0c6c, Name: "Read LE Host Supported", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: readLEHostSupportedRsp, RspSize: 3, RspDiscipline: SizeFixed},
	{Opcode: 0x0c6d, Name: "Write LE Host Supported", Cmd: writeLEHostSupportedCmd, CmdSize: 2, CmdDiscipline: SizeFixed, Rsp: statusRsp, RspSize: 1, RspDiscipline: SizeFixed},

	// OGF 4 - Information Parameter
	{Opcode: 0x1001, Name: "Read Local Version Information", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: readLocalVersionRsp, RspSize: 9, RspDiscipline: SizeFixed},
	{Opcode: 0x1002, Name: "Read Local Supported Commands", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: readLocalCommandsRsp, RspSize: 65, RspDiscipline: SizeFixed},
	{Opcode: 0x1003, Name: "Read Local Supported Features", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: readLocalFeaturesRsp, RspSize: 9, RspDiscipline: SizeFixed},
	{Opcode: 0x1004, Name: "Read Local Extended Features", Cmd: readLocalExtFeaturesCmd, CmdSize: 1, CmdDiscipline: SizeFixed, Rsp: readLocalExtFeaturesRsp, RspSize: 11, RspDiscipline: SizeFixed},
	{Opcode: 0x1005, Name: "Read Buffer Size", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: readBufferSizeRsp, RspSize: 8, RspDiscipline: SizeFixed},
	{Opcode: 0x1007, Name: "Read Country Code", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: readCountryCodeRsp, RspSize: 2, RspDiscipline: SizeFixed},
	{Opcode: 0x1009, Name: "Read BD ADDR", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: readBDAddrRsp, RspSize: 7, RspDiscipline: SizeFixed},
	{Opcode: 0x100a, Name: "Read Data Block Size", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: readDataBlockSizeRsp, RspSize: 7, RspDiscipline: SizeFixed},

	// OGF 5 - Status Parameter
	{Opcode: 0x1401, Name: "Read Failed Contact Counter"},
	{Opcode: 0x1402, Name: "Reset Failed Contact Counter"},
	{Opcode: 0x1403, Name: "Read Link Quality"},
	{Opcode: 0x1405, Name: "Read RSSI"},
	{Opcode: 0x1406, Name: "Read AFH Channel Map"},
	{Opcode: 0x1407, Name: "Read Clock"},
	{Opcode: 0x1408, Name: "Read Encryption Key Size"},
	{Opcode: 0x1409, Name: "Read Local AMP Info"},
	{Opcode: 0x140a, Name: "Read Local AMP ASSOC"},
	{Opcode: 0x140b, Name: "Write Remote AMP ASSOC"},

	// OGF 8 - LE Control
	{Opcode: 0x2001, Name: "LE Set Event Mask"},
	{Opcode: 0x2002, Name: "LE Read Buffer Size", Cmd: nullCmd, CmdSize: 0, CmdDiscipline: SizeFixed, Rsp: leReadBufferSizeRsp, RspSize: 4, RspDiscipline: SizeFixed},
	{Opcode: 0x2003, Name: "LE Read Local Supported Features"},
	{Opcode: 0x2005, Name: "LE Set Random Address"},
	{Opcode: 0x2006, Name: "LE Set Advertising Parameters"},
	{Opcode: 0x2007, Name: "LE Read Advertising Channel TX Power"},
	{Opcode: 0x2008, Name: "LE Set Advertising Data"},
	{Opcode: 0x2009, Name: "LE Set Scan Response Data"},
	{Opcode: 0x200a, Name: "LE Set Advertise Enable"},
	{Opcode: 0x200b, Name: "LE Set Scan Parameters"},
	{Opcode: 0x200c, Name: "LE Set Scan Enable"},
	{Opcode: 0x200d, Name: "LE Create Connection"},
	{Opcode: 0x200e, Name: "LE Create Connection Cancel"},
	{Opcode: 0x200f, Name: "LE Read White List Size"},
	{Opcode: 0x2010, Name: "LE Clear White List"},
	{Opcode: 0x2011, Name: "LE Add Device To White List"},
	{Opcode: 0x2012, Name: "LE Remove Device From White List"},
	{Opcode: 0x2013, Name: "LE Connection Update"},
	{Opcode: 0x2014, Name: "LE Set Host Channel Classification"},
	{Opcode: 0x2015, Name: "LE Read Channel Map"},
	{Opcode: 0x2016, Name: "LE Read Remote Used Features"},
	{Opcode: 0x2017, Name: "LE Encrypt"},
	{Opcode: 0x2018, Name: "LE Rand"},
	{Opcode: 0x2019, Name: "LE Start Encryption"},
	{Opcode: 0x201a, Name: "LE Long Term Key Request Reply"},
	{Opcode: 0x201b, Name: "LE Long Term Key Request Neg Reply"},
	{Opcode: 0x201c, Name: "LE Read Supported States"},
	{Opcode: 0x201d, Name: "LE Receiver Test"},
	{Opcode: 0x201e, Name: "LE Transmitter Test"},
	{Opcode: 0x201f, Name: "LE Test End"},
}

var commandByOpcode map[Opcode]*CommandDescriptor

func init() {
	commandByOpcode = make(map[Opcode]*CommandDescriptor, len(commandTable))
	for i := range commandTable {
		commandByOpcode[commandTable[i].Opcode] = &commandTable[i]
	}
}

// lookupOpcode returns the descriptor for opcode, or nil when it is not
// in the table. Callers must never dereference a nil result.
func lookupOpcode(opcode Opcode) *CommandDescriptor {
	return commandByOpcode[opcode]
}
