// Package sva implements spatially variant apodization, a per-pixel
// adaptive sidelobe-suppression filter for complex-valued SAR imagery.
//
// For every pixel the filter computes one adaptive weight per image axis
// from the cross-correlation between the center sample and the sum of its
// two axis neighbors:
//
//	w = clamp(-Re(x·conj(N)) / |N|², 0, 0.5)
//
// Out-of-phase neighbors (sidelobe ringing) push the weight toward 0.5,
// cancelling the ringing; in-phase neighbors (mainlobe continuation) push
// it toward 0, leaving the sample untouched. The corrected sample is
//
//	y = x + w_az·N_az + w_rg·N_rg
//
// with every read taken from the unfiltered input, so the pass is
// order-independent and parallel across pixels.
//
// Two modes are available: [ModeFullScene] filters the I and Q planes with
// a single complex-derived weight pair per pixel, and [ModeAmplitudeBased]
// filters only the detected amplitude and reconstructs the output with the
// original phase, bit-exact, for downstream interferometric use.
//
// # Usage
//
//	f := sva.New(sva.WithMode(sva.ModeFullScene), sva.WithBoundary(sva.BoundaryMirror))
//	out, err := f.Run(scene)
package sva
