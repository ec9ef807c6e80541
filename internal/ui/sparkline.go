package ui

// point is a position inside a chart box, origin at the top-left.
type point struct{ X, Y float64 }

// sparkline maps samples onto a w*h box, oldest at the left. The vertical
// range is the min..max of the samples; a flat series sits on the middle.
func sparkline(samples []int, w, h float64) []point {
	if len(samples) == 0 || w <= 0 || h <= 0 {
		return nil
	}
	lo, hi := samples[0], samples[0]
	for _, v := range samples {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	pts := make([]point, len(samples))
	dx := 0.0
	if len(samples) > 1 {
		dx = w / float64(len(samples)-1)
	}
	for i, v := range samples {
		y := h / 2
		if hi > lo {
			y = h - float64(v-lo)/float64(hi-lo)*h
		}
		pts[i] = point{X: float64(i) * dx, Y: y}
	}
	return pts
}
