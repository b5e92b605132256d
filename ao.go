package pbrgen

import "math"

// aoMap derives ambient occlusion from the height field with a gamma
// curve:
//
//	v = clamp(255 * (height/255)^strength, 0, 255)
//
// Identity at strength 1; above 1 recesses darken more aggressively,
// below 1 the contrast flattens.
func aoMap(height *Pixmap, strength float64, run bandRun) *Pixmap {
	// The height field holds at most 256 distinct values, so the curve is
	// computed once as a lookup table instead of per pixel.
	var lut [256]uint8
	for v := 0; v < len(lut); v++ {
		lut[v] = clampByte(255 * math.Pow(float64(v)/255, strength))
	}

	dst := NewPixmap(height.width, height.height)
	run(height.height, func(y0, y1 int) {
		for i := y0 * height.width * 4; i < y1*height.width*4; i += 4 {
			a := lut[height.data[i]]
			dst.data[i+0] = a
			dst.data[i+1] = a
			dst.data[i+2] = a
			dst.data[i+3] = 255
		}
	})
	return dst
}
