package pbrgen

// metallicMap broadcasts the scalar metallic parameter across a uniform
// map: every pixel is floor(metallic * 255). No spatial variation and no
// upstream dependency.
func metallicMap(width, height int, metallic float64) *Pixmap {
	return NewUniformPixmap(width, height, uint8(metallic*255))
}
