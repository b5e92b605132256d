package pbrgen

// Option configures a Synthesize call.
// Use functional options to customize behavior beyond Params.
//
// Example:
//
//	// Default: lossless PNG data maps, lossy WebP albedo
//	set, err := pbrgen.Synthesize(img, params)
//
//	// Everything lossless, single-threaded
//	set, err := pbrgen.Synthesize(img, params,
//	    pbrgen.WithAlbedoFormat(pbrgen.FormatPNG),
//	    pbrgen.WithWorkers(1))
type Option func(*synthOptions)

// synthOptions holds optional configuration for one synthesis call.
type synthOptions struct {
	workers      int
	albedoFormat Format
	dataFormat   Format
	webpQuality  float32
	jpegQuality  int
}

// defaultSynthOptions returns the default synthesis options.
func defaultSynthOptions() synthOptions {
	return synthOptions{
		workers:      0, // GOMAXPROCS
		albedoFormat: FormatWebP,
		dataFormat:   FormatPNG,
		webpQuality:  90,
		jpegQuality:  90,
	}
}

// WithWorkers sets the number of worker goroutines used for the per-pixel
// stages. Zero or negative selects GOMAXPROCS; 1 runs serially. The result
// is identical for any worker count.
func WithWorkers(n int) Option {
	return func(o *synthOptions) {
		o.workers = n
	}
}

// WithAlbedoFormat sets the encoding of the albedo map. The albedo is the
// only photographic output, so the lossy default (FormatWebP) is usually
// fine; use FormatPNG when the material must round-trip exactly.
func WithAlbedoFormat(f Format) Option {
	return func(o *synthOptions) {
		o.albedoFormat = f
	}
}

// WithDataFormat sets the encoding of the six data-bearing maps (normal,
// roughness, metallic, height, displacement, ao). These are sensitive to
// lossy quantization; the default is lossless FormatPNG. Choosing a lossy
// format here is allowed but will distort lighting on the rendered material.
func WithDataFormat(f Format) Option {
	return func(o *synthOptions) {
		o.dataFormat = f
	}
}

// WithWebPQuality sets the WebP encoder quality in [1, 100]. Only used for
// maps encoded as FormatWebP. Default 90.
func WithWebPQuality(q float32) Option {
	return func(o *synthOptions) {
		o.webpQuality = q
	}
}

// WithJPEGQuality sets the JPEG encoder quality in [1, 100]. Only used for
// maps encoded as FormatJPEG. Default 90.
func WithJPEGQuality(q int) Option {
	return func(o *synthOptions) {
		o.jpegQuality = q
	}
}
