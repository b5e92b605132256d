package pbrgen

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
)

// TestEncodePixmap_PNGRoundTrip verifies PNG is lossless: every pixel of a
// gradient survives an encode/decode cycle exactly. Data maps rely on this.
func TestEncodePixmap_PNGRoundTrip(t *testing.T) {
	p := horizontalRamp(32, 8)

	b, err := encodePixmap(p, FormatPNG, defaultSynthOptions())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 32; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			want := uint32(p.GrayAt(x, y)) * 257
			if r != want || g != want || bl != want || a != 65535 {
				t.Fatalf("pixel (%d, %d): got (%d, %d, %d, %d), want gray %d opaque",
					x, y, r, g, bl, a, want)
			}
		}
	}
}

// TestEncodePixmap_LossyFormats verifies WebP and JPEG produce non-empty
// streams for a photographic-style buffer.
func TestEncodePixmap_LossyFormats(t *testing.T) {
	p := NewPixmap(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			p.SetRGB(x, y, RGB{uint8(x * 16), uint8(y * 16), uint8((x + y) * 8)})
		}
	}

	for _, f := range []Format{FormatWebP, FormatJPEG} {
		b, err := encodePixmap(p, f, defaultSynthOptions())
		if err != nil {
			t.Errorf("%s: %v", f, err)
			continue
		}
		if len(b) == 0 {
			t.Errorf("%s: empty stream", f)
		}
	}
}

// TestEncodePixmap_UnsupportedFormat verifies the typed failure.
func TestEncodePixmap_UnsupportedFormat(t *testing.T) {
	p := NewPixmap(2, 2)
	_, err := encodePixmap(p, Format(42), defaultSynthOptions())
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !errors.Is(err, ErrEncodingFailure) {
		t.Errorf("error does not match ErrEncodingFailure: %v", err)
	}
}

// TestFormatNames verifies String and Ext stay in sync with the format set.
func TestFormatNames(t *testing.T) {
	tests := []struct {
		f    Format
		name string
		ext  string
	}{
		{FormatPNG, "png", ".png"},
		{FormatWebP, "webp", ".webp"},
		{FormatJPEG, "jpeg", ".jpg"},
	}
	for _, tt := range tests {
		if tt.f.String() != tt.name {
			t.Errorf("String: got %s, want %s", tt.f.String(), tt.name)
		}
		if tt.f.Ext() != tt.ext {
			t.Errorf("Ext: got %s, want %s", tt.f.Ext(), tt.ext)
		}
	}
}
