package pbrgen

import "testing"

// TestHeightMap_IdentityStretch verifies min 0 / max 100 reproduces the
// luminance values exactly.
func TestHeightMap_IdentityStretch(t *testing.T) {
	for _, v := range []uint8{0, 1, 64, 128, 200, 254, 255} {
		lum := NewUniformPixmap(4, 4, v)
		h := heightMap(lum, 0, 100, serialRun)
		if got := h.GrayAt(2, 2); got != v {
			t.Errorf("identity stretch of %d: got %d", v, got)
		}
	}
}

// TestHeightMap_Stretch verifies clamping below min, above max, and
// rescaling in between.
func TestHeightMap_Stretch(t *testing.T) {
	tests := []struct {
		in   uint8
		want uint8
	}{
		{0, 0},     // below min, clamped
		{64, 0},    // at min threshold (25% of 255 = 63.75)
		{128, 128}, // midpoint of [63.75, 191.25] maps to ~128
		{192, 255}, // above max, clamped
		{255, 255}, // well above max
	}
	for _, tt := range tests {
		lum := NewUniformPixmap(2, 2, tt.in)
		h := heightMap(lum, 25, 75, serialRun)
		got := h.GrayAt(0, 0)
		// One count of tolerance for the threshold rounding.
		if diff := int(got) - int(tt.want); diff < -1 || diff > 1 {
			t.Errorf("stretch of %d with [25, 75]: got %d, want about %d", tt.in, got, tt.want)
		}
	}
}

// TestHeightMap_DegenerateRange verifies that an equal min and max does not
// divide by zero: the range collapses to 1 and the stage still produces
// clamped output instead of faulting.
func TestHeightMap_DegenerateRange(t *testing.T) {
	lum := NewUniformPixmap(4, 4, 128)
	h := heightMap(lum, 50, 50, serialRun)

	// Every input clamps to the single threshold, so the numerator is zero
	// and the output is uniformly zero.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := h.GrayAt(x, y); got != 0 {
				t.Fatalf("degenerate range pixel (%d, %d): got %d, want 0", x, y, got)
			}
		}
	}
}

// TestHeightMap_OutputOpaque verifies the alpha invariant.
func TestHeightMap_OutputOpaque(t *testing.T) {
	lum := NewUniformPixmap(3, 3, 99)
	h := heightMap(lum, 10, 90, serialRun)
	for i := 3; i < len(h.Data()); i += 4 {
		if h.Data()[i] != 255 {
			t.Fatalf("alpha at byte %d: got %d", i, h.Data()[i])
		}
	}
}
