package product

import (
	"image"
	"image/png"
	"os"
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-sar/sar/raster"
)

// WriteQuicklook renders a plane (typically amplitude) as a grayscale PNG.
// The contrast is stretched between the 2nd and 98th percentile so a few
// bright scatterers do not wash out the scene, and the image is downscaled
// to fit maxDim pixels on its longer side. maxDim <= 0 keeps full
// resolution.
func WriteQuicklook(path string, p *raster.Plane, maxDim int) error {
	lo, hi := stretchBounds(p.Data())

	img := image.NewGray(image.Rect(0, 0, p.Cols(), p.Rows()))
	scale := 0.0
	if hi > lo {
		scale = 255 / (hi - lo)
	}

	for r := 0; r < p.Rows(); r++ {
		for c := 0; c < p.Cols(); c++ {
			v := (p.At(r, c) - lo) * scale
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			img.Pix[img.PixOffset(c, r)] = uint8(v)
		}
	}

	out := downscale(img, maxDim)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "product: create quicklook %q", path)
	}

	if err := png.Encode(f, out); err != nil {
		f.Close()
		return errors.Wrapf(err, "product: encode quicklook %q", path)
	}

	return errors.Wrapf(f.Close(), "product: close quicklook %q", path)
}

func stretchBounds(data []float64) (lo, hi float64) {
	sorted := slices.Clone(data)
	slices.Sort(sorted)

	lo = stat.Quantile(0.02, stat.Empirical, sorted, nil)
	hi = stat.Quantile(0.98, stat.Empirical, sorted, nil)
	return lo, hi
}

func downscale(img *image.Gray, maxDim int) image.Image {
	b := img.Bounds()
	longer := max(b.Dx(), b.Dy())
	if maxDim <= 0 || longer <= maxDim {
		return img
	}

	f := float64(maxDim) / float64(longer)
	dst := image.NewGray(image.Rect(0, 0,
		max(1, int(float64(b.Dx())*f)), max(1, int(float64(b.Dy())*f))))

	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
