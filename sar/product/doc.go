// Package product reads and writes the directory-based raster container
// used to exchange scenes with the filtering pipeline.
//
// A product is a directory holding a product.yaml header (name, shape,
// sample type, band list) and one raw little-endian binary file per band.
// Bands are real-valued planes; a complex scene is carried as a pair of
// bands (typically "i" and "q") combined via [ComplexBands].
//
// Samples are encoded as float32 or float64 on disk, selected per product;
// in memory all bands are float64. Any read or write failure is fatal for
// the whole product: a partially persisted scene would be silently wrong
// downstream.
package product
