package engine

import "github.com/lixenwraith/neon-drive/constants"

// Curvature returns the rendered height of a road-anchored point
// Points beyond the reference depth drop quadratically with distance to fake a curved horizon;
// every road-aligned entity must go through this one function
func Curvature(depth, baseline float64) float64 {
	d := depth - constants.CurvatureReference
	if d < 0 {
		return baseline - d*d*constants.CurvatureCoefficient
	}
	return baseline
}
