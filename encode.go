package pbrgen

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"

	"github.com/chai2010/webp"
)

// Format selects the serialization of an output map.
//
// Data-bearing maps (normal, height, displacement, roughness, metallic,
// ao) are sensitive to lossy quantization and default to FormatPNG; the
// photographic albedo tolerates lossy compression and defaults to
// FormatWebP.
type Format int

const (
	// FormatPNG is lossless PNG, the default for data maps.
	FormatPNG Format = iota

	// FormatWebP is lossy WebP, the default for the albedo.
	FormatWebP

	// FormatJPEG is lossy JPEG.
	FormatJPEG
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatWebP:
		return "webp"
	case FormatJPEG:
		return "jpeg"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatWebP:
		return ".webp"
	case FormatJPEG:
		return ".jpg"
	default:
		return ".png"
	}
}

// encodePixmap serializes a pixmap to a compressed byte stream.
// An unsupported format or encoder error is reported as ErrEncodingFailure.
func encodePixmap(p *Pixmap, f Format, o synthOptions) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	switch f {
	case FormatPNG:
		err = png.Encode(&buf, p.ToImage())
	case FormatWebP:
		err = webp.Encode(&buf, p.ToImage(), &webp.Options{Quality: o.webpQuality})
	case FormatJPEG:
		err = jpeg.Encode(&buf, p.ToImage(), &jpeg.Options{Quality: o.jpegQuality})
	default:
		return nil, fmt.Errorf("%w: unsupported format %d", ErrEncodingFailure, int(f))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrEncodingFailure, f, err)
	}
	return buf.Bytes(), nil
}
