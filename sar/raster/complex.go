package raster

import "fmt"

// Complex is a complex-valued 2D raster stored as separate in-phase (I) and
// quadrature (Q) planes of identical shape.
type Complex struct {
	i, q *Plane
}

// NewComplex allocates a zero-filled complex raster of the given shape.
func NewComplex(rows, cols int) (*Complex, error) {
	i, err := NewPlane(rows, cols)
	if err != nil {
		return nil, err
	}

	q, _ := NewPlane(rows, cols)

	return &Complex{i: i, q: q}, nil
}

// NewComplexFromPlanes wraps two existing planes as a complex raster. The
// planes are adopted, not copied. Returns ErrShapeMismatch when the planes
// differ in dimensions; this is checked before anything downstream touches
// a pixel.
func NewComplexFromPlanes(i, q *Plane) (*Complex, error) {
	if i == nil || q == nil {
		return nil, fmt.Errorf("%w: nil plane", ErrInvalidShape)
	}

	if !i.SameShape(q) {
		return nil, fmt.Errorf("%w: I is %dx%d, Q is %dx%d",
			ErrShapeMismatch, i.rows, i.cols, q.rows, q.cols)
	}

	return &Complex{i: i, q: q}, nil
}

// I returns the in-phase (real) plane.
func (c *Complex) I() *Plane { return c.i }

// Q returns the quadrature (imaginary) plane.
func (c *Complex) Q() *Plane { return c.q }

// Rows returns the number of rows (azimuth lines).
func (c *Complex) Rows() int { return c.i.rows }

// Cols returns the number of columns (range samples).
func (c *Complex) Cols() int { return c.i.cols }

// At returns the complex sample at row r, column c.
func (c *Complex) At(r, crd int) complex128 {
	return complex(c.i.At(r, crd), c.q.At(r, crd))
}

// Set stores the complex sample v at row r, column c.
func (c *Complex) Set(r, crd int, v complex128) {
	c.i.Set(r, crd, real(v))
	c.q.Set(r, crd, imag(v))
}

// Clone returns a deep copy of the raster.
func (c *Complex) Clone() *Complex {
	return &Complex{i: c.i.Clone(), q: c.q.Clone()}
}
