package render

import "math"

// effectiveDash normalizes a dash pattern: lengths are made absolute and an
// odd-length pattern is repeated to even length. It returns nil when the
// pattern draws a solid line.
func effectiveDash(pattern []float64) []float64 {
	if len(pattern) == 0 {
		return nil
	}
	out := make([]float64, 0, 2*len(pattern))
	var total float64
	for _, l := range pattern {
		l = math.Abs(l)
		total += l
		out = append(out, l)
	}
	if total == 0 {
		return nil
	}
	if len(out)%2 == 1 {
		out = append(out, out...)
	}
	return out
}

// dashRuns splits the polyline pts into the runs drawn by pattern, starting
// at the beginning of the first dash.
func dashRuns(pts []Point, pattern []float64) [][]Point {
	arr := effectiveDash(pattern)
	if arr == nil || len(pts) < 2 {
		return [][]Point{pts}
	}

	var runs [][]Point
	idx := 0
	left := arr[0]
	on := true
	cur := []Point{pts[0]}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		pos := 0.0
		for segLen-pos > left {
			pos += left
			t := pos / segLen
			p := Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
			if on {
				runs = append(runs, append(cur, p))
				cur = nil
			} else {
				cur = []Point{p}
			}
			on = !on
			idx = (idx + 1) % len(arr)
			left = arr[idx]
		}
		left -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) >= 2 {
		runs = append(runs, cur)
	}
	return runs
}
