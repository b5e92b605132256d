package pbrgen

// applyVisualBorder overwrites the border bands of the pixmap with the
// border color at full opacity. Write order is top rows, bottom rows, left
// columns, right columns; corners are covered twice, which is harmless
// since the color is uniform. No-op when all four thicknesses are zero.
func applyVisualBorder(p *Pixmap, b Border) {
	applyDataBorder(p, b, b.Color)
}

// applyDataBorder forces the border bands of a derived map to a fixed
// constant. Border pixels sit on tile seams; each map re-applies its own
// safe value after its own transform, because a remap or rescale upstream
// can shift a previously forced value away from the constant.
func applyDataBorder(p *Pixmap, b Border, c RGB) {
	if b.Zero() {
		return
	}
	w, h := p.width, p.height

	for y := 0; y < min(b.Top, h); y++ {
		fillRow(p, y, 0, w, c)
	}
	for y := h - b.Bottom; y < h; y++ {
		if y >= 0 {
			fillRow(p, y, 0, w, c)
		}
	}
	for y := 0; y < h; y++ {
		fillRow(p, y, 0, min(b.Left, w), c)
		fillRow(p, y, max(w-b.Right, 0), w, c)
	}
}

// fillRow writes the opaque color into pixels [x0, x1) of row y.
func fillRow(p *Pixmap, y, x0, x1 int, c RGB) {
	i := (y*p.width + x0) * 4
	for x := x0; x < x1; x++ {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = 255
		i += 4
	}
}
