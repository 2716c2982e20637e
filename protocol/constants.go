package protocol

// Command opcodes sent on the command channel.
const (
	// CmdStart begins a transfer handshake
	CmdStart = 0x01

	// CmdSize announces the total encoded payload length
	CmdSize = 0x02

	// CmdImageStart opens the image data phase
	CmdImageStart = 0x03
)

// Acknowledgement markers returned by the tag.
const (
	// AckStartReady is the second byte of a valid Start acknowledgement
	AckStartReady = 0xF4

	// AckData is the first byte of ImageStart and chunk acknowledgements
	AckData = 0x05
)

// MaxChunkSize is the maximum payload size per data chunk.
// Chunks are addressed by a zero-based index; chunk i covers payload
// bytes [i*240, (i+1)*240).
const MaxChunkSize = 240

// ChunkHeaderSize is the size of the chunk-index prefix on a data packet
// (32-bit little-endian chunk index).
const ChunkHeaderSize = 4

// SizeCmdLen is the fixed length of a SizeNegotiation packet:
// opcode(1) + total length(4) + padding(3).
const SizeCmdLen = 8

// Minimum acknowledgement lengths per phase.
const (
	// MinStartAckSize is the minimum Start acknowledgement length
	MinStartAckSize = 3

	// MinSizeAckSize is the minimum SizeNegotiation acknowledgement length
	MinSizeAckSize = 1

	// MinDataAckSize is the minimum ImageStart/chunk acknowledgement length.
	// A chunk acknowledgement shorter than this signals end of transfer.
	MinDataAckSize = 6
)
