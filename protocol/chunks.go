package protocol

import (
	"encoding/binary"
	"fmt"
)

// ChunkCount returns the number of data chunks needed to carry a payload of
// the given length: ceil(payloadLen / MaxChunkSize).
func ChunkCount(payloadLen int) int {
	return (payloadLen + MaxChunkSize - 1) / MaxChunkSize
}

// Chunk returns the index-th chunk of the payload: bytes
// [index*MaxChunkSize, (index+1)*MaxChunkSize), truncated at the payload end.
//
// Requesting an index outside [0, ChunkCount) is a programming error and
// panics; the transfer state machine never advances past the last chunk.
func Chunk(payload []byte, index int) []byte {
	if index < 0 || index >= ChunkCount(len(payload)) {
		panic(fmt.Sprintf("protocol: chunk index %d out of range for %d-byte payload", index, len(payload)))
	}

	start := index * MaxChunkSize
	end := start + MaxChunkSize
	if end > len(payload) {
		end = len(payload)
	}
	return payload[start:end]
}

// BuildChunkPacket constructs a DataChunk packet for the image-data channel:
// the chunk index as a 32-bit little-endian prefix followed by the chunk
// payload.
//
// Packet structure:
//
//	[INDEX_L ... INDEX_H][PAYLOAD(<=240)]
func BuildChunkPacket(payload []byte, index int) []byte {
	chunk := Chunk(payload, index)

	pkt := make([]byte, ChunkHeaderSize+len(chunk))
	binary.LittleEndian.PutUint32(pkt[:ChunkHeaderSize], uint32(index))
	copy(pkt[ChunkHeaderSize:], chunk)
	return pkt
}
