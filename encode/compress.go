package encode

import "encoding/binary"

// columnMarker opens every compressed column sub-header.
const columnMarker = 0x75

// columnHeaderSize is the fixed size of a column sub-header:
// marker(1) + bytesPerRow+7(1) + bytesPerRow(1) + padding(4).
const columnHeaderSize = 7

// compressPlanes frames the packed planes into the tag's compressed stream:
// per plane, one sub-header plus height/8 bytes for each of the profile's
// width columns, the whole stream prefixed with its own total length.
//
// Column geometry comes from the profile dimensions, not the post-rotation
// canvas; rotated compressed profiles reproduce the source behavior as-is.
func compressPlanes(black, red []byte, p Profile) []byte {
	bytesPerRow := p.Height / 8

	size := 4 + p.Width*(columnHeaderSize+bytesPerRow)
	if p.SupportsRed {
		size *= 2
	}
	buf := make([]byte, 4, size)

	emit := func(plane []byte) {
		pos := 0
		for col := 0; col < p.Width; col++ {
			buf = append(buf,
				columnMarker,
				byte(bytesPerRow+columnHeaderSize),
				byte(bytesPerRow),
				0x00, 0x00, 0x00, 0x00,
			)

			end := pos + bytesPerRow
			if end > len(plane) {
				end = len(plane)
			}
			buf = append(buf, plane[pos:end]...)
			pos = end
		}
	}

	emit(black)
	if p.SupportsRed {
		emit(red)
	}

	binary.LittleEndian.PutUint32(buf[:4], uint32(len(buf)))
	return buf
}
