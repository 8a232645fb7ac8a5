package product

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-sar/sar/raster"
)

const headerFile = "product.yaml"

type header struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Rows        int         `yaml:"rows"`
	Cols        int         `yaml:"cols"`
	SampleType  SampleType  `yaml:"sample_type"`
	Bands       []bandEntry `yaml:"bands"`
}

type bandEntry struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// Read loads a product directory. The header is validated before any band
// data is touched; a band file whose size does not match the header shape
// fails the whole read.
func Read(dir string) (*Product, error) {
	raw, err := os.ReadFile(filepath.Join(dir, headerFile))
	if err != nil {
		return nil, errors.Wrapf(err, "product: read header in %q", dir)
	}

	var h header
	if err := yaml.Unmarshal(raw, &h); err != nil {
		return nil, errors.Wrapf(err, "product: parse header in %q", dir)
	}

	if !h.SampleType.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSampleType, h.SampleType)
	}

	p, err := New(h.Name, h.Rows, h.Cols)
	if err != nil {
		return nil, err
	}
	p.Description = h.Description
	p.SampleType = h.SampleType

	for _, b := range h.Bands {
		plane, err := readBand(filepath.Join(dir, b.File), h.Rows, h.Cols, h.SampleType)
		if err != nil {
			return nil, errors.Wrapf(err, "product: band %q", b.Name)
		}

		if err := p.AddBand(b.Name, plane); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Write persists the product into dir, creating it if needed. The first
// failure aborts the write; callers must not treat a partially written
// directory as a valid product.
func (p *Product) Write(dir string) error {
	if !p.SampleType.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSampleType, p.SampleType)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "product: create %q", dir)
	}

	h := header{
		Name:        p.Name,
		Description: p.Description,
		Rows:        p.rows,
		Cols:        p.cols,
		SampleType:  p.SampleType,
	}

	for _, name := range p.names {
		file := name + ".raw"
		h.Bands = append(h.Bands, bandEntry{Name: name, File: file})

		if err := writeBand(filepath.Join(dir, file), p.bands[name], p.SampleType); err != nil {
			return errors.Wrapf(err, "product: band %q", name)
		}
	}

	raw, err := yaml.Marshal(&h)
	if err != nil {
		return errors.Wrap(err, "product: marshal header")
	}

	if err := os.WriteFile(filepath.Join(dir, headerFile), raw, 0o644); err != nil {
		return errors.Wrapf(err, "product: write header in %q", dir)
	}

	return nil
}

func sampleSize(t SampleType) int {
	if t == Float32 {
		return 4
	}
	return 8
}

func readBand(path string, rows, cols int, t SampleType) (*raster.Plane, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	size := sampleSize(t)
	want := rows * cols * size
	if len(raw) != want {
		return nil, errors.Errorf("file %q holds %d bytes, want %d for %dx%d %s",
			path, len(raw), want, rows, cols, t)
	}

	data := make([]float64, rows*cols)
	switch t {
	case Float32:
		for i := range data {
			bits := binary.LittleEndian.Uint32(raw[i*4:])
			data[i] = float64(math.Float32frombits(bits))
		}
	default:
		for i := range data {
			bits := binary.LittleEndian.Uint64(raw[i*8:])
			data[i] = math.Float64frombits(bits)
		}
	}

	return raster.NewPlaneFromData(rows, cols, data)
}

func writeBand(path string, plane *raster.Plane, t SampleType) error {
	data := plane.Data()
	raw := make([]byte, len(data)*sampleSize(t))

	switch t {
	case Float32:
		for i, v := range data {
			binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(float32(v)))
		}
	default:
		for i, v := range data {
			binary.LittleEndian.PutUint64(raw[i*8:], math.Float64bits(v))
		}
	}

	return os.WriteFile(path, raw, 0o644)
}
