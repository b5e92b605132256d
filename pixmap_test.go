package pbrgen

import (
	"image"
	"image/color"
	"testing"
)

// TestNewPixmap verifies dimensions and buffer length.
func TestNewPixmap(t *testing.T) {
	p := NewPixmap(7, 3)
	if p.Width() != 7 || p.Height() != 3 {
		t.Errorf("dimensions: got %dx%d, want 7x3", p.Width(), p.Height())
	}
	if len(p.Data()) != 7*3*4 {
		t.Errorf("data length: got %d, want %d", len(p.Data()), 7*3*4)
	}
}

// TestSetRGB_OutOfBounds verifies out-of-bounds writes are silently ignored.
func TestSetRGB_OutOfBounds(t *testing.T) {
	p := NewPixmap(4, 4)
	p.Fill(Black)

	original := make([]uint8, len(p.Data()))
	copy(original, p.Data())

	oob := []struct{ x, y int }{
		{-1, 2}, {4, 2}, {2, -1}, {2, 4}, {-100, -100}, {100, 100},
	}
	for _, c := range oob {
		p.SetRGB(c.x, c.y, RGB{255, 0, 0})
	}

	for i, v := range p.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d: got %d, want %d", i, v, original[i])
		}
	}
}

// TestGrayAt_ClampsToEdges verifies coordinate clamping, which the normal
// synthesizer relies on for edge pixels.
func TestGrayAt_ClampsToEdges(t *testing.T) {
	p := NewPixmap(3, 3)
	p.SetGray(0, 0, 10)
	p.SetGray(2, 0, 20)
	p.SetGray(0, 2, 30)
	p.SetGray(2, 2, 40)

	tests := []struct {
		x, y int
		want uint8
	}{
		{-1, -1, 10},
		{-5, 0, 10},
		{3, -1, 20},
		{-1, 3, 30},
		{3, 3, 40},
		{100, 100, 40},
	}
	for _, tt := range tests {
		if got := p.GrayAt(tt.x, tt.y); got != tt.want {
			t.Errorf("GrayAt(%d, %d): got %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

// TestFromImage_ForcesOpaque verifies that source alpha is discarded.
func TestFromImage_ForcesOpaque(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 0})
	img.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 128})

	p := FromImage(img)
	data := p.Data()
	for i := 3; i < len(data); i += 4 {
		if data[i] != 255 {
			t.Errorf("alpha at byte %d: got %d, want 255", i, data[i])
		}
	}
}

// TestFill verifies every pixel gets the opaque color.
func TestFill(t *testing.T) {
	p := NewPixmap(5, 5)
	p.Fill(RGB{11, 22, 33})

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := p.RGBAt(x, y); got != (RGB{11, 22, 33}) {
				t.Fatalf("pixel (%d, %d): got %v, want {11 22 33}", x, y, got)
			}
		}
	}
	if a := p.Data()[3]; a != 255 {
		t.Errorf("alpha: got %d, want 255", a)
	}
}

// TestUniformPixmap verifies the gray broadcast constructor.
func TestUniformPixmap(t *testing.T) {
	p := NewUniformPixmap(4, 4, 77)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := p.GrayAt(x, y); got != 77 {
				t.Fatalf("pixel (%d, %d): got %d, want 77", x, y, got)
			}
		}
	}
}
