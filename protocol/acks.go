package protocol

import "encoding/binary"

// ParseStartAck validates a Start phase acknowledgement.
//
// Expected data:
//
//	[01][F4][00]...
//
// Returns a *FramingError if the acknowledgement is too short or any of the
// three marker bytes mismatch.
func ParseStartAck(ack []byte) error {
	if len(ack) < MinStartAckSize || ack[0] != CmdStart || ack[1] != AckStartReady || ack[2] != 0x00 {
		return &FramingError{Phase: "start", Ack: ack}
	}
	return nil
}

// ParseSizeAck validates a SizeNegotiation phase acknowledgement.
//
// Expected data:
//
//	[02]...
func ParseSizeAck(ack []byte) error {
	if len(ack) < MinSizeAckSize || ack[0] != CmdSize {
		return &FramingError{Phase: "size negotiation", Ack: ack}
	}
	return nil
}

// ParseImageStartAck validates an ImageStart phase acknowledgement.
//
// Expected data:
//
//	[05][00][SEQ(4)]...
func ParseImageStartAck(ack []byte) error {
	if len(ack) < MinDataAckSize || ack[0] != AckData || ack[1] != 0x00 {
		return &FramingError{Phase: "image start", Ack: ack}
	}
	return nil
}

// ParseChunkAck interprets a data chunk acknowledgement.
//
// An acknowledgement shorter than MinDataAckSize, or one that does not begin
// with 05 00, is the tag's end-of-transfer signal: done is true and seq is
// meaningless. Otherwise seq holds the tag-reported sequence number (bytes
// 2..6, little-endian), the count of chunks the tag has accepted so far.
func ParseChunkAck(ack []byte) (done bool, seq uint32) {
	if len(ack) < MinDataAckSize || ack[0] != AckData || ack[1] != 0x00 {
		return true, 0
	}
	return false, binary.LittleEndian.Uint32(ack[2:6])
}
