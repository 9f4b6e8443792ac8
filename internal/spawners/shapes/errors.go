package shapes

import (
	"errors"
	"fmt"
)

var (
	ErrMaterialResolution = errors.New("material resolution failed")
	ErrMissingGeometry    = errors.New("geometry prim missing")
)

// MaterialResolutionError is returned when the physics material factory
// authors nothing at the requested path.
type MaterialResolutionError struct {
	Path string
}

func (e *MaterialResolutionError) Error() string {
	return fmt.Sprintf("physics material was not created at path: '%s'", e.Path)
}

func (e *MaterialResolutionError) Unwrap() error {
	return ErrMaterialResolution
}
