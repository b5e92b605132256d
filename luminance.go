package pbrgen

// luminanceMap converts an RGBA pixmap to single-channel luminance using
// the ITU-R BT.601 weights, replicated into R, G and B with alpha forced
// to 255. Pure per-pixel map with no neighbor dependency.
func luminanceMap(src *Pixmap, run bandRun) *Pixmap {
	dst := NewPixmap(src.width, src.height)
	run(src.height, func(y0, y1 int) {
		for i := y0 * src.width * 4; i < y1*src.width*4; i += 4 {
			r := float64(src.data[i+0])
			g := float64(src.data[i+1])
			b := float64(src.data[i+2])
			l := uint8(0.299*r + 0.587*g + 0.114*b + 0.5)
			dst.data[i+0] = l
			dst.data[i+1] = l
			dst.data[i+2] = l
			dst.data[i+3] = 255
		}
	})
	return dst
}
