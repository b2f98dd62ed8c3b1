package svgeom

// RamerDouglasPeucker simplifies the polyline by keeping only the points that deviate more than
// tolerance from the chord of their span. The result is a subsequence of points that keeps both
// endpoints. On equal deviations the earliest point is kept, so that simplifying the result again
// with the same tolerance returns the same points.
func RamerDouglasPeucker(points []Point, tolerance float64) []Point {
	if len(points) < 3 {
		return append([]Point{}, points...)
	}

	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true
	rdp(points, tolerance, 0, len(points)-1, keep)

	simplified := make([]Point, 0, len(points))
	for i, p := range points {
		if keep[i] {
			simplified = append(simplified, p)
		}
	}
	return simplified
}

func rdp(points []Point, tolerance float64, start, end int, keep []bool) {
	if end-start < 2 {
		return
	}

	index := -1
	dmax := 0.0
	for i := start + 1; i < end; i++ {
		if d := distanceToLine(points[i], points[start], points[end]); dmax < d || index == -1 {
			index = i
			dmax = d
		}
	}
	if tolerance < dmax {
		keep[index] = true
		rdp(points, tolerance, start, index, keep)
		rdp(points, tolerance, index, end, keep)
	}
}

// Optimise returns the subpath simplified by RamerDouglasPeucker. Subpaths with less than three
// points are returned unchanged.
func (s Subpath) Optimise(tolerance float64) Subpath {
	if len(s.Points) < 3 {
		return s
	}
	return Subpath{Points: RamerDouglasPeucker(s.Points, tolerance), Closed: s.Closed}
}
