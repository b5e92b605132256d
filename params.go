package pbrgen

import "fmt"

// Resolution is the closed set of supported target canvas sizes.
type Resolution int

const (
	// Res2048Square is a 2048x2048 target canvas.
	Res2048Square Resolution = iota

	// Res2048Wide is a 2048x1080 target canvas.
	Res2048Wide
)

// Size returns the pixel dimensions of the resolution.
func (r Resolution) Size() (width, height int) {
	switch r {
	case Res2048Wide:
		return 2048, 1080
	default:
		return 2048, 2048
	}
}

// String returns the resolution as "WxH".
func (r Resolution) String() string {
	w, h := r.Size()
	return fmt.Sprintf("%dx%d", w, h)
}

func (r Resolution) valid() bool {
	return r == Res2048Square || r == Res2048Wide
}

// NormalConvention selects the sign of the green (Y) channel in the
// generated normal map.
type NormalConvention int

const (
	// ConventionDX is the DirectX convention (Y points down).
	ConventionDX NormalConvention = iota

	// ConventionGL is the OpenGL convention (Y points up); the encoded
	// green channel is flipped relative to DX.
	ConventionGL
)

// Border describes the optional border bands painted onto every output map.
// The four thicknesses are independent; each must stay below half of the
// smaller target dimension. Color applies to the albedo only; derived maps
// force their own per-map safe constants instead.
type Border struct {
	Top    int
	Bottom int
	Left   int
	Right  int
	Color  RGB
}

// Zero reports whether the border is a no-op.
func (b Border) Zero() bool {
	return b.Top == 0 && b.Bottom == 0 && b.Left == 0 && b.Right == 0
}

// Params holds the full parameter set for one synthesis call.
// Params are immutable for the duration of the call.
type Params struct {
	// Resolution selects the target canvas size.
	Resolution Resolution

	// NormalStrength controls how steeply the normal map tilts away from
	// vertical. Range [0.5, 6.0].
	NormalStrength float64

	// NormalConvention selects DX or GL green-channel orientation.
	NormalConvention NormalConvention

	// DisplacementStrength expands or contracts the height field around
	// mid-gray; 1 is an identity transform. Range [0, 5].
	DisplacementStrength float64

	// HeightMin and HeightMax are the luminance percentiles (0-100) the
	// height field is stretched between. HeightMin must stay below
	// HeightMax.
	HeightMin float64
	HeightMax float64

	// RoughnessOffset globally shifts the roughness map. Range [-100, 100].
	RoughnessOffset float64

	// Metallic is broadcast uniformly across the metallic map. Range [0, 1].
	Metallic float64

	// AOStrength is the gamma exponent of the ambient occlusion curve;
	// 1 is identity. Range [0, 2].
	AOStrength float64

	// Border configures the optional seam border.
	Border Border
}

// DefaultParams returns the parameter set a fresh material starts from:
// 2048x2048, moderate normal strength under the DX convention, identity
// displacement and occlusion, full height range, no border.
func DefaultParams() Params {
	return Params{
		Resolution:           Res2048Square,
		NormalStrength:       2.5,
		NormalConvention:     ConventionDX,
		DisplacementStrength: 1,
		HeightMin:            0,
		HeightMax:            100,
		RoughnessOffset:      0,
		Metallic:             0,
		AOStrength:           1,
	}
}

// Validate checks every parameter against its documented range.
// It returns a *ParamError (matching ErrInvalidParams) for the first
// violation found, or nil. Synthesize calls Validate before any pixel
// work; the pipeline stages assume validated input.
func (p Params) Validate() error {
	if !p.Resolution.valid() {
		return paramErrorf("Resolution", "unknown resolution %d", int(p.Resolution))
	}
	if p.NormalStrength < 0.5 || p.NormalStrength > 6.0 {
		return paramErrorf("NormalStrength", "%g outside [0.5, 6.0]", p.NormalStrength)
	}
	if p.NormalConvention != ConventionDX && p.NormalConvention != ConventionGL {
		return paramErrorf("NormalConvention", "unknown convention %d", int(p.NormalConvention))
	}
	if p.DisplacementStrength < 0 || p.DisplacementStrength > 5 {
		return paramErrorf("DisplacementStrength", "%g outside [0, 5]", p.DisplacementStrength)
	}
	if p.HeightMin < 0 || p.HeightMin > 100 {
		return paramErrorf("HeightMin", "%g outside [0, 100]", p.HeightMin)
	}
	if p.HeightMax < 0 || p.HeightMax > 100 {
		return paramErrorf("HeightMax", "%g outside [0, 100]", p.HeightMax)
	}
	if p.HeightMin >= p.HeightMax {
		return paramErrorf("HeightMin", "%g not below HeightMax %g", p.HeightMin, p.HeightMax)
	}
	if p.RoughnessOffset < -100 || p.RoughnessOffset > 100 {
		return paramErrorf("RoughnessOffset", "%g outside [-100, 100]", p.RoughnessOffset)
	}
	if p.Metallic < 0 || p.Metallic > 1 {
		return paramErrorf("Metallic", "%g outside [0, 1]", p.Metallic)
	}
	if p.AOStrength < 0 || p.AOStrength > 2 {
		return paramErrorf("AOStrength", "%g outside [0, 2]", p.AOStrength)
	}

	w, h := p.Resolution.Size()
	limit := min(w, h) / 2
	for _, side := range []struct {
		name string
		px   int
	}{
		{"Border.Top", p.Border.Top},
		{"Border.Bottom", p.Border.Bottom},
		{"Border.Left", p.Border.Left},
		{"Border.Right", p.Border.Right},
	} {
		if side.px < 0 || side.px > limit {
			return paramErrorf(side.name, "%d outside [0, %d]", side.px, limit)
		}
	}
	return nil
}
