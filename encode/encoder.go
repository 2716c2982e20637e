package encode

import (
	"image"

	"github.com/disintegration/gift"
	"golang.org/x/image/draw"
)

// Encode converts an image into the tag's payload for the given profile.
// It is pure and deterministic with respect to its inputs.
//
// The source is composed onto a white canvas of Width x Height; a source
// larger than the canvas is cropped, never scaled. thresholds are compared
// against 8-bit channel values, see the package documentation for the bit
// predicates per mode.
func Encode(img image.Image, p Profile, threshold, redThreshold uint8) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	canvas := compose(img, p.Width, p.Height)

	if p.TFT {
		canvas = resample(canvas, p.Width/2, p.Height*2)
	}

	if p.Rotation != 0 {
		canvas = rotate(canvas, p.Rotation)
	}

	black, red := packPlanes(canvas, p, threshold, redThreshold)

	if p.Compression {
		return compressPlanes(black, red, p), nil
	}
	if p.SupportsRed {
		return append(black, red...), nil
	}
	return black, nil
}

// compose draws the source onto a white w x h canvas at the origin,
// cropping whatever exceeds the canvas bounds.
func compose(src image.Image, w, h int) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	sb := src.Bounds()
	target := image.Rect(0, 0, sb.Dx(), sb.Dy()).Intersect(canvas.Bounds())
	draw.Draw(canvas, target, src, sb.Min, draw.Over)

	return canvas
}

// resample scales the canvas to w x h with a Catmull-Rom kernel, the
// bicubic-class filter the TFT panels need.
func resample(src *image.RGBA, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// rotate turns the canvas counter-clockwise by an exact multiple of 90
// degrees, expanding the bounds to fit.
func rotate(src *image.RGBA, degrees int) *image.RGBA {
	var g *gift.GIFT
	switch degrees {
	case 90:
		g = gift.New(gift.Rotate90())
	case 180:
		g = gift.New(gift.Rotate180())
	case 270:
		g = gift.New(gift.Rotate270())
	default:
		return src
	}

	dst := image.NewRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return dst
}

// packPlanes walks the canvas in the profile's traversal order and packs
// the threshold bits MSB-first, eight pixels per byte. The red plane is
// always produced; callers discard it on single-plane profiles.
//
// The primary-plane predicate is inverted between modes on purpose:
// uncompressed payloads set the bit for white pixels, compressed payloads
// set it for ink.
func packPlanes(canvas *image.RGBA, p Profile, threshold, redThreshold uint8) (black, red []byte) {
	b := canvas.Bounds()
	w, h := b.Dx(), b.Dy()

	planeLen := (w*h + 7) / 8
	black = make([]byte, 0, planeLen)
	red = make([]byte, 0, planeLen)

	var cur, curRed byte
	bitPos := 7

	yStart, yEnd, yStep := 0, h, 1
	if p.MirrorY {
		yStart, yEnd, yStep = h-1, -1, -1
	}
	xStart, xEnd, xStep := 0, w, 1
	if p.MirrorX {
		xStart, xEnd, xStep = w-1, -1, -1
	}

	for y := yStart; y != yEnd; y += yStep {
		for x := xStart; x != xEnd; x += xStep {
			c := canvas.RGBAAt(b.Min.X+x, b.Min.Y+y)

			luminance := 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
			if p.Compression {
				if luminance < float64(threshold) {
					cur |= 1 << bitPos
				}
			} else {
				if luminance > float64(threshold) {
					cur |= 1 << bitPos
				}
			}
			if c.R > redThreshold && c.G < redThreshold {
				curRed |= 1 << bitPos
			}

			bitPos--
			if bitPos < 0 {
				black = append(black, cur)
				red = append(red, curRed)
				cur, curRed = 0, 0
				bitPos = 7
			}
		}
	}

	// Zero-padded partial trailing byte when w*h is not a multiple of 8.
	if bitPos != 7 {
		black = append(black, cur)
		red = append(red, curRed)
	}

	return black, red
}
