package pbrgen

import "testing"

// TestDefaultSynthOptions verifies the documented defaults: lossy albedo,
// lossless data maps, GOMAXPROCS workers.
func TestDefaultSynthOptions(t *testing.T) {
	o := defaultSynthOptions()
	if o.albedoFormat != FormatWebP {
		t.Errorf("albedo format: got %s, want webp", o.albedoFormat)
	}
	if o.dataFormat != FormatPNG {
		t.Errorf("data format: got %s, want png", o.dataFormat)
	}
	if o.workers != 0 {
		t.Errorf("workers: got %d, want 0 (GOMAXPROCS)", o.workers)
	}
}

// TestOptionsApply verifies each option mutates its field.
func TestOptionsApply(t *testing.T) {
	o := defaultSynthOptions()
	for _, opt := range []Option{
		WithWorkers(2),
		WithAlbedoFormat(FormatPNG),
		WithDataFormat(FormatJPEG),
		WithWebPQuality(75),
		WithJPEGQuality(60),
	} {
		opt(&o)
	}

	if o.workers != 2 || o.albedoFormat != FormatPNG || o.dataFormat != FormatJPEG {
		t.Errorf("options not applied: %+v", o)
	}
	if o.webpQuality != 75 || o.jpegQuality != 60 {
		t.Errorf("quality options not applied: %+v", o)
	}
}
