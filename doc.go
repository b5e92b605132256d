// Package pbrgen derives a full set of physically-based-rendering texture
// maps from a single base color photograph.
//
// # Overview
//
// pbrgen is a pure Go texture synthesis library. One call takes a decoded
// source image plus an immutable parameter set and returns seven maps
// (albedo, normal, roughness, metallic, height, displacement and ambient
// occlusion), each encoded as an independent byte stream.
//
// # Quick Start
//
//	import "github.com/texforge/pbrgen"
//
//	params := pbrgen.DefaultParams()
//	set, err := pbrgen.Synthesize(img, params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("wall_normal.png", set.Normal, 0o644)
//
// # Pipeline
//
// Data flows strictly forward: the source is cover-fit composited onto the
// target canvas (albedo), reduced to BT.601 luminance, contrast-stretched
// into a height field, and the height field feeds the normal, displacement,
// roughness and ambient occlusion derivations. Metallic is a uniform
// broadcast of a single scalar. Every stage consumes an immutable input
// pixmap and produces a fresh one it exclusively owns, so independent
// Synthesize calls are safe to run concurrently.
//
// # Borders
//
// Optional border bands are painted with the caller's color on the albedo
// and forced to per-map safe constants on the derived maps (zero elevation
// on height and displacement, maximal roughness, non-metal) so a tiled
// material shows no seam artifacts.
//
// # Encoding
//
// Data-bearing maps are quantization-sensitive and default to lossless PNG;
// only the photographic albedo defaults to lossy WebP. Both choices are
// configurable per call, see [WithAlbedoFormat] and [WithDataFormat].
//
// # Logging
//
// pbrgen produces no log output by default. Call [SetLogger] to enable
// structured logging via log/slog.
package pbrgen
