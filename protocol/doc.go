// Package protocol implements the Gicisky e-ink tag transfer protocol wire format.
//
// This package provides functions to build outbound command and data packets
// and to validate the acknowledgements the tag returns after each write.
//
// # Protocol Overview
//
// An image transfer is a four-phase handshake. The first three packets go to
// the command channel, data chunks go to the image-data channel, and every
// write is answered with a notification on the command channel:
//
//	Start:           [01]
//	SizeNegotiation: [02][TOTAL_LEN(4)][00 00 00]
//	ImageStart:      [03]
//	DataChunk:       [INDEX(4)][PAYLOAD(<=240)]
//
// All multi-byte integers are little-endian. Acknowledgements carry no
// framing of their own; they are validated positionally per phase:
//
//	Start ack:      [01][F4][00]...          (>= 3 bytes)
//	Size ack:       [02]...                  (>= 1 byte)
//	ImageStart ack: [05][00][SEQ(4)]...      (>= 6 bytes)
//	Chunk ack:      [05][00][SEQ(4)]...      or anything else = end of transfer
//
// A chunk acknowledgement that is shorter than 6 bytes or does not begin
// with 05 00 is the tag's designed end-of-transfer signal, not an error.
//
// # Packet Builders
//
// Use the Build* functions to create outbound packets:
//
//	pkt := protocol.BuildStartCmd()
//	pkt := protocol.BuildSizeCmd(uint32(len(payload)))
//	pkt := protocol.BuildChunkPacket(payload, 3)
//
// # Acknowledgement Parsers
//
// Use the Parse*Ack functions to validate responses:
//
//	if err := protocol.ParseStartAck(ack); err != nil {
//	    return err // *FramingError
//	}
//
//	done, seq := protocol.ParseChunkAck(ack)
//	if done {
//	    // tag reported end of transfer
//	}
//
// # Error Handling
//
// Validation failures are reported as structured errors:
//   - FramingError: an acknowledgement failed shape/value validation
//   - SequenceError: the tag's reported chunk sequence does not match the
//     number of chunks delivered so far
package protocol
