package encode

import (
	"encoding/binary"
	"image"
	"image/color"
	"testing"
)

func whiteImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
		}
	}
	return img
}

func TestCompressedHeaderSelfLength(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
	}{
		{
			name:    "mono 8x8",
			profile: Profile{Width: 8, Height: 8, Compression: true},
		},
		{
			name:    "mono 2.9 inch",
			profile: Profile{Width: 296, Height: 128, Compression: true},
		},
		{
			name:    "with red plane",
			profile: Profile{Width: 296, Height: 128, SupportsRed: true, Compression: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := Encode(whiteImage(tt.profile.Width, tt.profile.Height), tt.profile, 128, 128)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			header := binary.LittleEndian.Uint32(payload[:4])
			if header != uint32(len(payload)) {
				t.Errorf("length header = %d, payload length = %d", header, len(payload))
			}
		})
	}
}

func TestCompressedLayout(t *testing.T) {
	p := Profile{Width: 16, Height: 32, Compression: true}

	payload, err := Encode(whiteImage(16, 32), p, 128, 128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bytesPerRow := 32 / 8
	stride := columnHeaderSize + bytesPerRow

	wantLen := 4 + 16*stride
	if len(payload) != wantLen {
		t.Fatalf("payload length = %d, want %d", len(payload), wantLen)
	}

	for col := 0; col < 16; col++ {
		hdr := payload[4+col*stride : 4+col*stride+columnHeaderSize]

		if hdr[0] != 0x75 {
			t.Errorf("column %d marker = 0x%02X, want 0x75", col, hdr[0])
		}
		if hdr[1] != byte(bytesPerRow+7) {
			t.Errorf("column %d length field = %d, want %d", col, hdr[1], bytesPerRow+7)
		}
		if hdr[2] != byte(bytesPerRow) {
			t.Errorf("column %d bytes-per-row = %d, want %d", col, hdr[2], bytesPerRow)
		}
		for i, b := range hdr[3:] {
			if b != 0x00 {
				t.Errorf("column %d padding byte %d = 0x%02X, want 0x00", col, i, b)
			}
		}
	}
}

func TestCompressedRedPlaneDoublesColumns(t *testing.T) {
	mono := Profile{Width: 8, Height: 16, Compression: true}
	bwr := Profile{Width: 8, Height: 16, SupportsRed: true, Compression: true}

	monoPayload, err := Encode(whiteImage(8, 16), mono, 128, 128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bwrPayload, err := Encode(whiteImage(8, 16), bwr, 128, 128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := 2*(len(monoPayload)-4) + 4; len(bwrPayload) != want {
		t.Errorf("red-plane payload length = %d, want %d", len(bwrPayload), want)
	}
}
