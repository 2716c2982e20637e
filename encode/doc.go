// Package encode converts raster images into the Gicisky tag's native
// bit-packed payload.
//
// # Pipeline
//
// Encode composes the source image onto a white canvas matching the device
// dimensions, optionally resamples it for TFT panels, rotates it by the
// configured multiple of 90 degrees, and then walks the pixels packing one
// bit per pixel, MSB first, eight pixels per byte:
//
//	payload, err := encode.Encode(img, encode.DefaultProfile(), 128, 128)
//
// Mirroring does not flip the visual image; it reverses the traversal order
// of rows (MirrorY) or columns (MirrorX) during bit-packing, which is how
// the tag expects its framebuffer ordered.
//
// A pixel sets its bit in the primary plane when its BT.709 luminance is
// above the threshold, or below it when compression is enabled; the tag's
// compressed stream encodes ink rather than white as the set bit. Panels
// with a red plane set the second-plane bit when R is above and G below the
// red threshold.
//
// # Payload Layout
//
// Uncompressed, the payload is the primary plane followed by the red plane
// when the profile supports one: ceil(width*height/8) bytes per plane.
//
// Compressed, each plane is emitted column by column, every column prefixed
// with a fixed 7-byte sub-header, and the whole stream prefixed with its own
// total length as a 32-bit little-endian integer:
//
//	[TOTAL_LEN(4)] ( [75][BPR+7][BPR][00 00 00 00][COLUMN(BPR)] )*
//
// where BPR = height/8 bytes per column row.
package encode
