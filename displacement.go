package pbrgen

// displacementMap expands or contracts the height field around mid-gray:
//
//	v = clamp((height - 128) * strength + 128, 0, 255)
//
// Centering on 128 makes strength 1 an exact identity transform.
func displacementMap(height *Pixmap, strength float64, run bandRun) *Pixmap {
	dst := NewPixmap(height.width, height.height)
	run(height.height, func(y0, y1 int) {
		for i := y0 * height.width * 4; i < y1*height.width*4; i += 4 {
			v := (float64(height.data[i])-128)*strength + 128
			d := clampByte(v)
			dst.data[i+0] = d
			dst.data[i+1] = d
			dst.data[i+2] = d
			dst.data[i+3] = 255
		}
	})
	return dst
}

// clampByte rounds v to the nearest byte, clamping to [0, 255].
func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
