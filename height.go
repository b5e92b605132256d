package pbrgen

// heightMap contrast-stretches a luminance pixmap into the normalized
// height field every later map derives from. minPct and maxPct are
// percentages (0-100) converted to 8-bit thresholds; values are clamped to
// [minV, maxV] and linearly rescaled to [0, 255].
//
// A degenerate minPct == maxPct would divide by zero; the range is forced
// to 1 instead of rejecting, since Params.Validate normally prevents
// equality and the stage must not fault on input it is handed directly.
func heightMap(lum *Pixmap, minPct, maxPct float64, run bandRun) *Pixmap {
	minV := minPct / 100 * 255
	maxV := maxPct / 100 * 255
	rng := maxV - minV
	if rng <= 0 {
		rng = 1
	}

	dst := NewPixmap(lum.width, lum.height)
	run(lum.height, func(y0, y1 int) {
		for i := y0 * lum.width * 4; i < y1*lum.width*4; i += 4 {
			v := float64(lum.data[i])
			if v < minV {
				v = minV
			} else if v > maxV {
				v = maxV
			}
			h := uint8((v-minV)/rng*255 + 0.5)
			dst.data[i+0] = h
			dst.data[i+1] = h
			dst.data[i+2] = h
			dst.data[i+3] = 255
		}
	})
	return dst
}
