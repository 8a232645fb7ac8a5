// Package response provides point-target response analysis for SAR
// imagery, used to quantify sidelobe suppression before and after
// filtering.
//
// The analyzer takes a 1D cut through a point scatterer (along azimuth or
// range), interpolates it by zero-padding its spectrum, and derives the
// standard impulse-response quality metrics:
//
//   - PSLR: Peak sidelobe ratio (highest sidelobe relative to the
//     mainlobe peak, in dB)
//   - ISLR: Integrated sidelobe ratio (sidelobe energy relative to
//     mainlobe energy, in dB)
//   - 3 dB resolution: mainlobe width at half power, in samples
//
// Scene-level amplitude statistics for quicklook stretching and run
// reporting are provided by [SceneStats].
//
// # Usage
//
//	analyzer := response.NewAnalyzer(16) // 16x spectral oversampling
//	metrics, err := analyzer.Analyze(response.RowCut(amp, row, col, 16))
//	fmt.Printf("PSLR = %.1f dB, ISLR = %.1f dB\n", metrics.PSLR, metrics.ISLR)
package response
