// Package raster provides the in-memory data model for complex-valued SAR
// imagery and the derived real-valued products computed from it.
//
// A [Complex] raster holds the in-phase (I) and quadrature (Q) planes of a
// single-look-complex scene as two same-shaped row-major float64 arrays.
// All operations allocate and return new rasters; inputs are never mutated,
// which keeps filtering passes composable and order-independent.
//
// # Usage
//
//	c, err := raster.NewComplexFromPlanes(iPlane, qPlane)
//	amp := raster.Amplitude(c)   // sqrt(I² + Q²)
//	pow := raster.Intensity(c)   // I² + Q²
package raster
