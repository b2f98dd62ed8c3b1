package svgeom

import "math"

// dashPattern normalizes a dash array. Odd arrays are repeated to make them even, and arrays with
// negative values or that sum to zero disable dashing.
func dashPattern(array []float64) []float64 {
	if len(array) == 0 {
		return nil
	}
	total := 0.0
	for _, d := range array {
		if d < 0.0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return nil
		}
		total += d
	}
	if total == 0.0 {
		return nil
	}
	if len(array)%2 == 1 {
		array = append(append([]float64{}, array...), array...)
	}
	return array
}

// Dash splits the subpath into open dashes following the dash array, which alternates dash and gap
// lengths, starting offset into the pattern. For closed subpaths a dash running through the start
// point is joined with the dash at the end. When dashing is disabled the subpath is returned as is.
func Dash(s Subpath, array []float64, offset float64) []Subpath {
	array = dashPattern(array)
	if array == nil || len(s.Points) < 2 {
		return []Subpath{s}
	}

	points := s.Points
	if s.Closed {
		points = append(append([]Point{}, s.Points...), s.Points[0])
	}

	total := 0.0
	for _, d := range array {
		total += d
	}
	offset = math.Mod(offset, total)
	if offset < 0.0 {
		offset += total
	}
	i := 0
	for array[i] <= offset {
		offset -= array[i]
		i = (i + 1) % len(array)
	}
	remaining := array[i] - offset
	on := i%2 == 0
	startsOn := on
	toggled := false

	var dashes []Subpath
	var dash []Point
	if on {
		dash = []Point{points[0]}
	}
	for j := 1; j < len(points); j++ {
		a, b := points[j-1], points[j]
		length := b.Sub(a).Length()
		pos := 0.0
		for remaining < length-pos {
			pos += remaining
			q := a.Interpolate(b, pos/length)
			if on {
				dashes = append(dashes, Subpath{Points: append(dash, q)})
				dash = nil
			} else {
				dash = []Point{q}
			}
			on = !on
			toggled = true
			i = (i + 1) % len(array)
			remaining = array[i]
		}
		remaining -= length - pos
		if on {
			dash = append(dash, b)
		}
	}
	if on && 0 < len(dash) {
		if s.Closed && !toggled {
			return []Subpath{s}
		}
		dashes = append(dashes, Subpath{Points: dash})
	}

	if s.Closed && startsOn && on && 1 < len(dashes) {
		last := dashes[len(dashes)-1]
		first := dashes[0]
		merged := append(last.Points, first.Points[1:]...)
		dashes = append([]Subpath{{Points: merged}}, dashes[1:len(dashes)-1]...)
	}
	return dashes
}
