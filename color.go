package pbrgen

// RGB represents an opaque 8-bit color triple. It is used for the visual
// border color and for the forced border constants of the data maps.
type RGB struct {
	R, G, B uint8
}

// Common border constants.
var (
	// Black is zero elevation on height and displacement maps and
	// non-metal on the metallic map.
	Black = RGB{0, 0, 0}

	// White is maximal roughness; a white seam hides specular artifacts
	// on a tiled material.
	White = RGB{255, 255, 255}
)

// Gray creates an RGB with the same value in all three channels.
func Gray(v uint8) RGB {
	return RGB{v, v, v}
}
