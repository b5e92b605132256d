package pbrgen

// roughnessMap inverts the height field (raised areas read as smoother)
// and shifts it globally by the offset. The offset is scaled by 1.5 so a
// [-100, 100] slider covers a proportionally larger part of the byte range.
func roughnessMap(height *Pixmap, offset float64, run bandRun) *Pixmap {
	shift := offset * 1.5
	dst := NewPixmap(height.width, height.height)
	run(height.height, func(y0, y1 int) {
		for i := y0 * height.width * 4; i < y1*height.width*4; i += 4 {
			r := clampByte(float64(255-height.data[i]) + shift)
			dst.data[i+0] = r
			dst.data[i+1] = r
			dst.data[i+2] = r
			dst.data[i+3] = 255
		}
	})
	return dst
}
