package pbrgen

import (
	"image"
	"image/color"
	"image/draw"
)

// Pixmap represents a rectangular RGBA8 pixel buffer.
//
// It is the common currency between pipeline stages: every stage consumes
// one or more pixmaps it does not modify and produces a fresh pixmap it
// exclusively owns. All pixmaps produced by this package are fully opaque.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
// All pixels start as transparent black.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// NewUniformPixmap creates a pixmap with every pixel set to the opaque
// gray value v. Used by the metallic broadcast and by tests.
func NewUniformPixmap(width, height int, v uint8) *Pixmap {
	p := NewPixmap(width, height)
	p.Fill(RGB{v, v, v})
	return p
}

// FromImage converts any image.Image into a fully opaque pixmap of the
// same dimensions. Alpha in the source is discarded.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	p := NewPixmap(bounds.Dx(), bounds.Dy())

	rgba := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	copy(p.data, rgba.Pix)
	p.forceOpaque()
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetRGB sets a single pixel to an opaque color.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetRGB(x, y int, c RGB) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = 255
}

// RGBAt returns the color of a single pixel.
// Out-of-bounds coordinates return black.
func (p *Pixmap) RGBAt(x, y int) RGB {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return RGB{}
	}
	i := (y*p.width + x) * 4
	return RGB{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2]}
}

// GrayAt returns the single-channel value of a pixel in a grayscale pixmap
// (luminance, height and the derived data maps replicate one value across
// R, G and B; the red channel is the source of truth). Coordinates are
// clamped to the nearest valid pixel, which is the edge behavior the
// normal synthesizer relies on.
func (p *Pixmap) GrayAt(x, y int) uint8 {
	if x < 0 {
		x = 0
	} else if x >= p.width {
		x = p.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= p.height {
		y = p.height - 1
	}
	return p.data[(y*p.width+x)*4]
}

// SetGray sets a pixel to an opaque gray value.
func (p *Pixmap) SetGray(x, y int, v uint8) {
	p.SetRGB(x, y, RGB{v, v, v})
}

// Fill sets every pixel to an opaque color.
func (p *Pixmap) Fill(c RGB) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = 255
	}
}

// forceOpaque sets every alpha byte to 255.
func (p *Pixmap) forceOpaque() {
	for i := 3; i < len(p.data); i += 4 {
		p.data[i] = 255
	}
}

// ToImage converts the pixmap to an image.RGBA backed by a copy of the
// pixel data.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
