package engine

import (
	"errors"
	"fmt"
)

var (
	ErrPathCollision = errors.New("prim already exists")
	ErrInvalidPath   = errors.New("invalid prim path")
)

// PathCollisionError is returned when authoring at a path that is already populated.
type PathCollisionError struct {
	Path string
}

func (e *PathCollisionError) Error() string {
	return fmt.Sprintf("a prim already exists at path: '%s'", e.Path)
}

func (e *PathCollisionError) Unwrap() error {
	return ErrPathCollision
}
