package raster

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch indicates that two planes that must share dimensions
	// do not. Filtering never starts on mismatched planes.
	ErrShapeMismatch = errors.New("raster: planes differ in shape")

	// ErrInvalidShape indicates non-positive raster dimensions.
	ErrInvalidShape = errors.New("raster: dimensions must be positive")

	// ErrBadDataLength indicates backing data whose length does not match
	// rows*cols.
	ErrBadDataLength = errors.New("raster: data length does not match shape")
)

func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidShape, rows, cols)
	}
	return nil
}
