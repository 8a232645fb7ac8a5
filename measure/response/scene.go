package response

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-sar/sar/raster"
)

// Stats holds scene-level sample statistics of one raster plane.
type Stats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
	P5     float64 // 5th percentile
	P95    float64 // 95th percentile
}

// SceneStats computes amplitude statistics over a whole plane. The
// percentiles drive quicklook contrast stretching; mean and standard
// deviation feed run reports comparing scenes before and after filtering.
func SceneStats(p *raster.Plane) Stats {
	data := p.Data()

	sorted := slices.Clone(data)
	slices.Sort(sorted)

	return Stats{
		Mean:   stat.Mean(data, nil),
		StdDev: stat.StdDev(data, nil),
		Min:    floats.Min(data),
		Max:    floats.Max(data),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P5:     stat.Quantile(0.05, stat.Empirical, sorted, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
}
