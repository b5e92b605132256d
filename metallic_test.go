package pbrgen

import "testing"

// TestMetallicMap_UniformBroadcast verifies every pixel carries
// floor(metallic * 255).
func TestMetallicMap_UniformBroadcast(t *testing.T) {
	tests := []struct {
		metallic float64
		want     uint8
	}{
		{0, 0},
		{0.5, 127}, // floor(127.5)
		{0.25, 63}, // floor(63.75)
		{1, 255},
	}
	for _, tt := range tests {
		m := metallicMap(8, 8, tt.metallic)
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if got := m.GrayAt(x, y); got != tt.want {
					t.Fatalf("metallic %g pixel (%d, %d): got %d, want %d", tt.metallic, x, y, got, tt.want)
				}
			}
		}
	}
}
