package pbrgen

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// compositeCover fits the source image onto a width x height canvas using
// cover-crop scaling: the source is scaled by max(tw/sw, th/sh), centered,
// and the overflow is cropped symmetrically. The canvas is pre-filled with
// opaque black so malformed input can never leave undefined pixels; with a
// cover scale the black is fully painted over.
//
// Pure function of (src, width, height); the source is not modified.
func compositeCover(src image.Image, width, height int) *Pixmap {
	srcBounds := src.Bounds()
	sw, sh := srcBounds.Dx(), srcBounds.Dy()

	scale := math.Max(float64(width)/float64(sw), float64(height)/float64(sh))
	scaledW := int(math.Ceil(float64(sw) * scale))
	scaledH := int(math.Ceil(float64(sh) * scale))
	x0 := (width - scaledW) / 2
	y0 := (height - scaledH) / 2

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(canvas.Pix); i += 4 {
		canvas.Pix[i] = 255 // opaque black background
	}

	dstRect := image.Rect(x0, y0, x0+scaledW, y0+scaledH)
	xdraw.CatmullRom.Scale(canvas, dstRect, src, srcBounds, xdraw.Src, nil)

	out := NewPixmap(width, height)
	copy(out.data, canvas.Pix)
	out.forceOpaque()
	return out
}
