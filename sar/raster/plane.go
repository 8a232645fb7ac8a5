package raster

import "fmt"

// Plane is a real-valued 2D raster backed by a flat row-major float64 slice.
type Plane struct {
	rows, cols int
	data       []float64
}

// NewPlane allocates a zero-filled plane of the given shape.
func NewPlane(rows, cols int) (*Plane, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}

	return &Plane{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// NewPlaneFromData wraps existing row-major data as a plane. The slice is
// adopted, not copied.
func NewPlaneFromData(rows, cols int, data []float64) (*Plane, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}

	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for %dx%d", ErrBadDataLength, len(data), rows, cols)
	}

	return &Plane{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows (azimuth lines).
func (p *Plane) Rows() int { return p.rows }

// Cols returns the number of columns (range samples).
func (p *Plane) Cols() int { return p.cols }

// At returns the sample at row r, column c.
func (p *Plane) At(r, c int) float64 { return p.data[r*p.cols+c] }

// Set stores v at row r, column c.
func (p *Plane) Set(r, c int, v float64) { p.data[r*p.cols+c] = v }

// Row returns row r as a subslice of the backing data.
func (p *Plane) Row(r int) []float64 {
	off := r * p.cols
	return p.data[off : off+p.cols]
}

// Data returns the flat row-major backing slice.
func (p *Plane) Data() []float64 { return p.data }

// Clone returns a deep copy of the plane.
func (p *Plane) Clone() *Plane {
	out := &Plane{rows: p.rows, cols: p.cols, data: make([]float64, len(p.data))}
	copy(out.data, p.data)
	return out
}

// SameShape reports whether p and q share dimensions.
func (p *Plane) SameShape(q *Plane) bool {
	return p.rows == q.rows && p.cols == q.cols
}
