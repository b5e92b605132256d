package pbrgen

import (
	"image"
	"time"

	"github.com/texforge/pbrgen/internal/parallel"
)

// bandRun invokes fn over row ranges covering [0, height), possibly on
// multiple workers. Stages are written against this signature so the same
// code runs serially in tests and banded in Synthesize.
type bandRun func(height int, fn func(y0, y1 int))

// serialRun processes all rows as a single band on the calling goroutine.
func serialRun(height int, fn func(y0, y1 int)) {
	fn(0, height)
}

// Synthesize converts one decoded source raster into a full set of encoded
// PBR texture maps. The parameter set is validated up front; no pixel work
// runs on invalid input and no partial TextureSet is ever returned.
//
// Synthesize is pure and deterministic: the same source and parameters
// always produce the same seven byte streams, regardless of worker count.
// It holds no state between calls, so concurrent calls are safe.
func Synthesize(src image.Image, p Params, opts ...Option) (*TextureSet, error) {
	o := defaultSynthOptions()
	for _, opt := range opts {
		opt(&o)
	}

	maps, err := synthesizeMaps(src, p, o)
	if err != nil {
		return nil, err
	}

	set := &TextureSet{AlbedoFormat: o.albedoFormat, DataFormat: o.dataFormat}
	for _, enc := range []struct {
		pix    *Pixmap
		format Format
		out    *[]byte
	}{
		{maps.Albedo, o.albedoFormat, &set.Albedo},
		{maps.Normal, o.dataFormat, &set.Normal},
		{maps.Roughness, o.dataFormat, &set.Roughness},
		{maps.Metallic, o.dataFormat, &set.Metallic},
		{maps.Height, o.dataFormat, &set.Height},
		{maps.Displacement, o.dataFormat, &set.Displacement},
		{maps.AO, o.dataFormat, &set.AO},
	} {
		b, err := encodePixmap(enc.pix, enc.format, o)
		if err != nil {
			return nil, err
		}
		*enc.out = b
	}
	return set, nil
}

// SynthesizeMaps is Synthesize without the encoding step: it returns the
// seven raw pixmaps. Preview callers re-render on every parameter change
// and have no use for compressed bytes.
func SynthesizeMaps(src image.Image, p Params, opts ...Option) (*MapSet, error) {
	o := defaultSynthOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return synthesizeMaps(src, p, o)
}

// synthesizeMaps runs the pipeline. Stage order is the only constraint:
// the height field must exist before its four consumers run; metallic has
// no upstream dependency.
func synthesizeMaps(src image.Image, p Params, o synthOptions) (*MapSet, error) {
	if src == nil || src.Bounds().Dx() <= 0 || src.Bounds().Dy() <= 0 {
		return nil, ErrEmptySource
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var run bandRun = serialRun
	if o.workers != 1 {
		pool := parallel.NewWorkerPool(o.workers)
		defer pool.Close()
		run = func(height int, fn func(y0, y1 int)) {
			parallel.RunBands(pool, height, func(b parallel.Band) {
				fn(b.Y0, b.Y1)
			})
		}
	}

	width, height := p.Resolution.Size()
	log := Logger()
	maps := &MapSet{}

	stage := func(name string, fn func()) {
		start := time.Now()
		fn()
		log.Debug("stage complete", "stage", name, "elapsed", time.Since(start))
	}

	stage("albedo", func() {
		maps.Albedo = compositeCover(src, width, height)
		applyVisualBorder(maps.Albedo, p.Border)
	})

	// The luminance and height borders are forced before each dependent
	// derivation: the contrast stretch can move a zero away from zero, so
	// a border applied once upstream would not survive.
	var lum *Pixmap
	stage("luminance", func() {
		lum = luminanceMap(maps.Albedo, run)
		applyDataBorder(lum, p.Border, Black)
	})
	stage("height", func() {
		maps.Height = heightMap(lum, p.HeightMin, p.HeightMax, run)
		applyDataBorder(maps.Height, p.Border, Black)
	})

	stage("normal", func() {
		maps.Normal = normalMap(maps.Height, p.NormalStrength, p.NormalConvention, run)
	})
	stage("displacement", func() {
		maps.Displacement = displacementMap(maps.Height, p.DisplacementStrength, run)
		applyDataBorder(maps.Displacement, p.Border, Black)
	})
	stage("roughness", func() {
		maps.Roughness = roughnessMap(maps.Height, p.RoughnessOffset, run)
		applyDataBorder(maps.Roughness, p.Border, White)
	})
	stage("metallic", func() {
		maps.Metallic = metallicMap(width, height, p.Metallic)
		applyDataBorder(maps.Metallic, p.Border, Black)
	})
	stage("ao", func() {
		maps.AO = aoMap(maps.Height, p.AOStrength, run)
	})

	log.Debug("synthesis complete",
		"width", width, "height", height, "workers", o.workers)
	return maps, nil
}
