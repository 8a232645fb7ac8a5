package sva

import "errors"

var (
	// ErrEmptyRaster indicates a nil input raster.
	ErrEmptyRaster = errors.New("sva: input raster is nil")

	// ErrUnknownMode indicates a filter mode outside the defined set.
	ErrUnknownMode = errors.New("sva: unknown filter mode")

	// ErrUnknownBoundary indicates a boundary policy outside the defined set.
	ErrUnknownBoundary = errors.New("sva: unknown boundary policy")
)
