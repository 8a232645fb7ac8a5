package product

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sar/sar/raster"
)

// Errors returned by product operations.
var (
	ErrUnknownBand       = errors.New("product: no such band")
	ErrDuplicateBand     = errors.New("product: band already exists")
	ErrUnknownSampleType = errors.New("product: unknown sample type")
)

// SampleType selects the on-disk sample encoding of a product.
type SampleType string

const (
	Float32 SampleType = "float32"
	Float64 SampleType = "float64"
)

func (s SampleType) valid() bool {
	return s == Float32 || s == Float64
}

// Product is an in-memory raster container: a set of named real-valued
// bands sharing one shape.
type Product struct {
	Name        string
	Description string
	SampleType  SampleType

	rows, cols int
	names      []string
	bands      map[string]*raster.Plane
}

// New creates an empty product of the given shape. The sample type
// defaults to Float32, matching typical SLC band encoding.
func New(name string, rows, cols int) (*Product, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", raster.ErrInvalidShape, rows, cols)
	}

	return &Product{
		Name:       name,
		SampleType: Float32,
		rows:       rows,
		cols:       cols,
		bands:      make(map[string]*raster.Plane),
	}, nil
}

// Rows returns the scene height.
func (p *Product) Rows() int { return p.rows }

// Cols returns the scene width.
func (p *Product) Cols() int { return p.cols }

// BandNames returns the band names in insertion order.
func (p *Product) BandNames() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// AddBand attaches a plane under the given name. The plane is adopted, not
// copied, and must match the product shape.
func (p *Product) AddBand(name string, plane *raster.Plane) error {
	if _, ok := p.bands[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateBand, name)
	}

	if plane.Rows() != p.rows || plane.Cols() != p.cols {
		return fmt.Errorf("%w: band %q is %dx%d, product is %dx%d",
			raster.ErrShapeMismatch, name, plane.Rows(), plane.Cols(), p.rows, p.cols)
	}

	p.names = append(p.names, name)
	p.bands[name] = plane

	return nil
}

// Band returns the plane stored under name.
func (p *Product) Band(name string) (*raster.Plane, error) {
	plane, ok := p.bands[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBand, name)
	}
	return plane, nil
}

// ComplexBands combines two bands of p into a complex raster. The shape
// check runs before any filtering can start.
func ComplexBands(p *Product, iName, qName string) (*raster.Complex, error) {
	i, err := p.Band(iName)
	if err != nil {
		return nil, err
	}

	q, err := p.Band(qName)
	if err != nil {
		return nil, err
	}

	return raster.NewComplexFromPlanes(i, q)
}
