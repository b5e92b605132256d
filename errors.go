package pbrgen

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by Synthesize. All parameter violations match
// ErrInvalidParams via errors.Is; the concrete *ParamError carries the
// offending field.
var (
	// ErrEmptySource is returned when the source raster has a zero dimension.
	ErrEmptySource = errors.New("pbrgen: source image is empty")

	// ErrInvalidParams is returned when a parameter is outside its
	// documented range. Validation happens once at the Synthesize boundary,
	// before any pixel work begins.
	ErrInvalidParams = errors.New("pbrgen: invalid parameters")

	// ErrEncodingFailure is returned when an output map cannot be
	// serialized. No partial TextureSet is returned.
	ErrEncodingFailure = errors.New("pbrgen: encoding failure")
)

// ParamError describes a single parameter range violation.
type ParamError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ParamError) Error() string {
	return fmt.Sprintf("pbrgen: invalid parameter %s: %s", e.Field, e.Reason)
}

// Unwrap makes ParamError match ErrInvalidParams under errors.Is.
func (e *ParamError) Unwrap() error {
	return ErrInvalidParams
}

func paramErrorf(field, format string, args ...any) error {
	return &ParamError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
