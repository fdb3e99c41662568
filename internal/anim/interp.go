package anim

import "math"

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// linInterp maps x from [x0, x1] onto [y0, y1]. A degenerate input range
// maps every x to y1, so a zero-duration transition jumps to its end value.
func linInterp(x, x0, x1, y0, y1 float64) float64 {
	if x1 == x0 {
		return y1
	}
	return lerp(y0, y1, (x-x0)/(x1-x0))
}

// quantize rounds t to the nearest multiple of res, half up.
func quantize(t, res float64) float64 {
	return math.Floor(t/res+0.5) * res
}

// quantizeSteps converts a duration into a whole number of resolution steps,
// half up: 0.07 at resolution 0.02 gives 4 steps.
func quantizeSteps(duration, res float64) int {
	return int(math.Floor(duration/res + 0.5))
}
