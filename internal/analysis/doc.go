// Package analysis provides statistics for walks and aggregates.
//
// The package includes:
//
//   - [LogLogSlope]: least-squares slope of log y against log x
//   - [DistanceStats]: summary of end-to-end walk distances
//   - [RadiusOfGyration]: spread of an aggregate about its centroid
//   - [BoxCountingDimension]: fractal dimension by box counting
//
// # Scaling
//
// For an unbiased lattice walk the RMS end-to-end distance after n steps
// grows as √n, so the slope of log RMS against log n approaches 0.5:
//
//	slope, err := analysis.LogLogSlope(lengths, rms)
//
// A radial aggregate of N seeds with radius R obeys N ~ R^D, with D near 1.71
// for on-lattice growth at stickiness 1.
package analysis
