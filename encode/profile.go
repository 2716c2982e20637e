package encode

import (
	"errors"
	"fmt"
)

// ErrInvalidProfile marks a device profile rejected before encoding begins.
var ErrInvalidProfile = errors.New("invalid device profile")

// Profile describes the geometry and encoding options of one tag model.
// It is immutable for the duration of a transfer and passed by value.
type Profile struct {
	// Width is the panel width in pixels
	Width int

	// Height is the panel height in pixels
	Height int

	// SupportsRed enables the second (red) color plane
	SupportsRed bool

	// TFT marks panels whose canvas is resampled to width/2 x height*2
	// before packing
	TFT bool

	// Rotation rotates the canvas counter-clockwise before packing.
	// Must be 0, 90, 180 or 270.
	Rotation int

	// MirrorX reverses column traversal order during bit-packing
	MirrorX bool

	// MirrorY reverses row traversal order during bit-packing
	MirrorY bool

	// Compression enables the column sub-header framed payload
	Compression bool
}

// DefaultProfile returns the profile of the common 2.9 inch black/white/red
// tag (296x128, red plane, mirrored row order).
func DefaultProfile() Profile {
	return Profile{
		Width:       296,
		Height:      128,
		SupportsRed: true,
		MirrorY:     true,
	}
}

// Validate checks the profile for configuration errors. Encoding never
// starts on a profile that fails validation.
func (p Profile) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidProfile, p.Width, p.Height)
	}

	switch p.Rotation {
	case 0, 90, 180, 270:
	default:
		return fmt.Errorf("%w: rotation %d is not a multiple of 90", ErrInvalidProfile, p.Rotation)
	}

	return nil
}
