package pbrgen

import "github.com/chewxy/math32"

// normalMap estimates the surface gradient of the height field with a
// Sobel kernel and encodes the result as a tangent-space normal map.
//
// For each pixel the 8-neighborhood is read with edge coordinates clamped
// to the nearest valid pixel (no wraparound):
//
//	dX = (tr + 2*r + br) - (tl + 2*l + bl)
//	dY = (bl + 2*b + br) - (tl + 2*t + tr)
//	dZ = 255 / max(0.1, strength)
//
// The vector is normalized to unit length and each component mapped to
// [0, 255] via c*0.5+0.5. dZ shrinks as strength grows, tilting the
// normal further from vertical so the surface appears to bulge more
// steeply. A flat region encodes to the canonical up normal (128,128,255).
//
// Under ConventionGL the encoded Y is flipped (1 - ny) before scaling;
// ConventionDX leaves it as is.
func normalMap(height *Pixmap, strength float64, conv NormalConvention, run bandRun) *Pixmap {
	w, h := height.width, height.height
	dst := NewPixmap(w, h)

	dZ := 255 / math32.Max(0.1, float32(strength))
	flipY := conv == ConventionGL

	run(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			i := y * w * 4
			for x := 0; x < w; x++ {
				tl := float32(height.GrayAt(x-1, y-1))
				t := float32(height.GrayAt(x, y-1))
				tr := float32(height.GrayAt(x+1, y-1))
				l := float32(height.GrayAt(x-1, y))
				r := float32(height.GrayAt(x+1, y))
				bl := float32(height.GrayAt(x-1, y+1))
				b := float32(height.GrayAt(x, y+1))
				br := float32(height.GrayAt(x+1, y+1))

				dX := (tr + 2*r + br) - (tl + 2*l + bl)
				dY := (bl + 2*b + br) - (tl + 2*t + tr)

				inv := 1 / math32.Sqrt(dX*dX+dY*dY+dZ*dZ)
				nx := dX*inv*0.5 + 0.5
				ny := dY*inv*0.5 + 0.5
				nz := dZ*inv*0.5 + 0.5
				if flipY {
					ny = 1 - ny
				}

				dst.data[i+0] = encodeUnit(nx)
				dst.data[i+1] = encodeUnit(ny)
				dst.data[i+2] = encodeUnit(nz)
				dst.data[i+3] = 255
				i += 4
			}
		}
	})
	return dst
}

// encodeUnit maps a [0, 1] component to a rounded byte.
func encodeUnit(c float32) uint8 {
	v := c * 255
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
