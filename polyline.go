package svgeom

import "math"

// Polygon is a closed contour. The last point connects back to the first and is not repeated.
type Polygon []Point

// PolygonFromSubpath returns the points of the subpath as a polygon, dropping a repeated closing point.
func PolygonFromSubpath(s Subpath) Polygon {
	points := s.Points
	if 1 < len(points) && points[0].Equals(points[len(points)-1]) {
		points = points[:len(points)-1]
	}
	return append(Polygon{}, points...)
}

// FillCount returns the number of times the test point is enclosed by the polygon. Counter clockwise enclosures are counted positively and clockwise enclosures negatively.
func (p Polygon) FillCount(x, y float64) int {
	if len(p) < 3 {
		return 0
	}
	test := Point{x, y}
	count := 0
	prevCoord := p[len(p)-1]
	for _, coord := range p {
		// see https://wrf.ecse.rpi.edu//Research/Short_Notes/pnpoly.html
		if (test.Y < coord.Y) != (test.Y < prevCoord.Y) &&
			test.X < (prevCoord.X-coord.X)*(test.Y-coord.Y)/(prevCoord.Y-coord.Y)+coord.X {
			if prevCoord.Y < coord.Y {
				count++
			} else {
				count--
			}
		}
		prevCoord = coord
	}
	return count
}

// Interior is true when the point (x,y) is in the interior of the polygon, i.e. gets filled. This depends on the FillRule.
func (p Polygon) Interior(x, y float64, fillRule FillRule) bool {
	fillCount := p.FillCount(x, y)
	if fillRule == NonZero {
		return fillCount != 0
	}
	return fillCount%2 != 0
}

// SignedArea returns the area, positive for counter clockwise polygons.
func (p Polygon) SignedArea() float64 {
	if len(p) < 3 {
		return 0.0
	}
	a := 0.0
	for i := range p {
		a += p[i].PerpDot(p[(i+1)%len(p)])
	}
	return a / 2.0
}

// Area returns the absolute area.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// CCW returns true if the polygon winds counter clockwise.
func (p Polygon) CCW() bool {
	return 0.0 < p.SignedArea()
}

// Centroid returns the center point of the polygon.
func (p Polygon) Centroid() Point {
	n := len(p)
	if n == 0 {
		return Point{}
	} else if n == 1 {
		return p[0]
	} else if n == 2 {
		return p[0].Interpolate(p[1], 0.5)
	}

	a := p.SignedArea()
	if a == 0.0 {
		return p[0].Interpolate(p[n-1], 0.5)
	}
	c := Point{}
	for i := 0; i < n; i++ {
		f := p[i].PerpDot(p[(i+1)%n])
		c = c.Add(p[i].Add(p[(i+1)%n]).Mul(f))
	}
	return c.Div(6.0 * a)
}

// Reverse returns the polygon with its winding reversed.
func (p Polygon) Reverse() Polygon {
	q := make(Polygon, len(p))
	for i, coord := range p {
		q[len(p)-1-i] = coord
	}
	return q
}

// Transform returns the transformed polygon. Mirroring transforms reverse the winding.
func (p Polygon) Transform(m Matrix) Polygon {
	q := append(Polygon{}, p...)
	m.TransformPoints(q)
	return q
}

// Bounds returns the bounds of the polygon.
func (p Polygon) Bounds() Bounds {
	b := InfiniteInverse()
	return *b.EncapsulatePoints(p)
}

// PolygonsBounds returns the bounds of all polygons.
func PolygonsBounds(polygons []Polygon) Bounds {
	b := InfiniteInverse()
	for _, p := range polygons {
		b.EncapsulatePoints(p)
	}
	return b
}

// FillCount returns the summed fill count of all polygons.
func FillCount(polygons []Polygon, x, y float64) int {
	count := 0
	for _, p := range polygons {
		count += p.FillCount(x, y)
	}
	return count
}

// Interior is true when the point (x,y) is filled by the polygon set under the fill rule.
func Interior(polygons []Polygon, x, y float64, fillRule FillRule) bool {
	fillCount := FillCount(polygons, x, y)
	if fillRule == NonZero {
		return fillCount != 0
	}
	return fillCount%2 != 0
}
