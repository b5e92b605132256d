package pbrgen

import "testing"

// TestLuminanceMap_BT601 verifies the ITU-R BT.601 weighting on known colors.
func TestLuminanceMap_BT601(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want uint8
	}{
		{"black", RGB{0, 0, 0}, 0},
		{"white", RGB{255, 255, 255}, 255},
		{"mid gray", RGB{128, 128, 128}, 128},
		{"pure red", RGB{255, 0, 0}, 76},    // round(0.299*255)
		{"pure green", RGB{0, 255, 0}, 150}, // round(0.587*255)
		{"pure blue", RGB{0, 0, 255}, 29},   // round(0.114*255)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewPixmap(3, 3)
			src.Fill(tt.in)

			lum := luminanceMap(src, serialRun)
			if got := lum.GrayAt(1, 1); got != tt.want {
				t.Errorf("luma of %v: got %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

// TestLuminanceMap_ReplicatesChannels verifies the value lands in all three
// channels with full opacity.
func TestLuminanceMap_ReplicatesChannels(t *testing.T) {
	src := NewPixmap(2, 2)
	src.Fill(RGB{10, 200, 60})

	lum := luminanceMap(src, serialRun)
	data := lum.Data()
	for i := 0; i < len(data); i += 4 {
		if data[i] != data[i+1] || data[i] != data[i+2] {
			t.Errorf("byte %d: channels not replicated: (%d, %d, %d)", i, data[i], data[i+1], data[i+2])
		}
		if data[i+3] != 255 {
			t.Errorf("byte %d: alpha %d, want 255", i, data[i+3])
		}
	}
}

// TestLuminanceMap_DoesNotMutateSource verifies stage purity.
func TestLuminanceMap_DoesNotMutateSource(t *testing.T) {
	src := NewPixmap(2, 2)
	src.Fill(RGB{90, 30, 180})
	original := make([]uint8, len(src.Data()))
	copy(original, src.Data())

	_ = luminanceMap(src, serialRun)

	for i, v := range src.Data() {
		if v != original[i] {
			t.Fatalf("source modified at byte %d", i)
		}
	}
}
