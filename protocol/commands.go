package protocol

import "encoding/binary"

// BuildStartCmd constructs a Start command packet.
// This is the first packet of a transfer, sent on the command channel.
//
// Packet structure:
//
//	[CMD(01)]
func BuildStartCmd() []byte {
	return []byte{CmdStart}
}

// BuildSizeCmd constructs a SizeNegotiation command packet announcing the
// total encoded payload length. The trailing three bytes are always zero.
//
// Packet structure:
//
//	[CMD(02)][TOTAL_LEN_L ... TOTAL_LEN_H][00][00][00]
func BuildSizeCmd(totalLen uint32) []byte {
	pkt := make([]byte, SizeCmdLen)
	pkt[0] = CmdSize
	binary.LittleEndian.PutUint32(pkt[1:5], totalLen)
	return pkt
}

// BuildImageStartCmd constructs an ImageStart command packet.
// It opens the sequenced data phase; subsequent packets are data chunks
// written to the image-data channel.
//
// Packet structure:
//
//	[CMD(03)]
func BuildImageStartCmd() []byte {
	return []byte{CmdImageStart}
}
