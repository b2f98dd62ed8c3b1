package svgeom

import (
	"math"
	"sort"
)

// DefaultMaxSubdivisions is the subdivision budget of one adaptively flattened curve.
const DefaultMaxSubdivisions = 200

// MinTolerance is the smallest flattening tolerance, smaller tolerances are clamped.
const MinTolerance = 0.01

func quadraticBezierPos(p0, p1, p2 Point, t float64) Point {
	mt := 1.0 - t
	return p0.Mul(mt * mt).Add(p1.Mul(2.0 * mt * t)).Add(p2.Mul(t * t))
}

func cubicBezierPos(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1.0 - t
	return p0.Mul(mt * mt * mt).Add(p1.Mul(3.0 * mt * mt * t)).Add(p2.Mul(3.0 * mt * t * t)).Add(p3.Mul(t * t * t))
}

// quadraticToCubicBezier returns the control points of the cubic Bézier equal to the quadratic one.
func quadraticToCubicBezier(p0, p1, p2 Point) (Point, Point) {
	c1 := p0.Interpolate(p1, 2.0/3.0)
	c2 := p2.Interpolate(p1, 2.0/3.0)
	return c1, c2
}

func splitCubicBezier(p0, p1, p2, p3 Point, t float64) (Point, Point, Point, Point, Point, Point, Point, Point) {
	pm := p1.Interpolate(p2, t)

	q0 := p0
	q1 := p0.Interpolate(p1, t)
	q2 := q1.Interpolate(pm, t)

	r3 := p3
	r2 := p2.Interpolate(p3, t)
	r1 := pm.Interpolate(r2, t)

	r0 := q2.Interpolate(r1, t)
	q3 := r0
	return q0, q1, q2, q3, r0, r1, r2, r3
}

// QuadraticBezierCurve samples the quadratic Bézier at segments points uniformly spaced in t. The
// first point is p0 and the last is p2. segments must be at least 2.
func QuadraticBezierCurve(segments int, p0, p1, p2 Point) []Point {
	if segments < 2 {
		if segments == 1 {
			return []Point{p0}
		}
		return nil
	}
	points := make([]Point, segments)
	points[0] = p0
	for i := 1; i < segments-1; i++ {
		points[i] = quadraticBezierPos(p0, p1, p2, float64(i)/float64(segments-1))
	}
	points[segments-1] = p2
	return points
}

// CubicBezierCurve samples the cubic Bézier at segments points uniformly spaced in t. The
// first point is p0 and the last is p3. segments must be at least 2.
func CubicBezierCurve(segments int, p0, p1, p2, p3 Point) []Point {
	if segments < 2 {
		if segments == 1 {
			return []Point{p0}
		}
		return nil
	}
	points := make([]Point, segments)
	points[0] = p0
	for i := 1; i < segments-1; i++ {
		points[i] = cubicBezierPos(p0, p1, p2, p3, float64(i)/float64(segments-1))
	}
	points[segments-1] = p3
	return points
}

type cubicPiece struct {
	p0, p1, p2, p3 Point
}

// flat is true when the summed distance of the control points to the chord is below the
// tolerance. Both sides are squared and scaled by the chord length to avoid a square root.
func (c cubicPiece) flat(tolerance2 float64) bool {
	d := c.p3.Sub(c.p0)
	chord2 := d.Dot(d)
	if chord2 < Epsilon {
		// start and end coincide, the control points decide
		d1 := c.p1.Sub(c.p0)
		d2 := c.p2.Sub(c.p0)
		return math.Max(d1.Dot(d1), d2.Dot(d2)) < tolerance2
	}
	d1 := math.Abs(c.p1.Sub(c.p3).PerpDot(d))
	d2 := math.Abs(c.p2.Sub(c.p3).PerpDot(d))
	return (d1+d2)*(d1+d2) < tolerance2*chord2
}

// AdaptiveCubicCurve flattens the cubic Bézier by midpoint subdivision until every piece deviates less
// than tolerance from its chord. It returns the intermediate points only, ie. without p0 and p3. When
// the subdivision budget of DefaultMaxSubdivisions is exhausted the remaining pieces are taken as
// straight and truncated is true.
func AdaptiveCubicCurve(tolerance float64, p0, p1, p2, p3 Point) ([]Point, bool) {
	return adaptiveCubicCurve(tolerance, DefaultMaxSubdivisions, p0, p1, p2, p3)
}

// AdaptiveQuadraticCurve is like AdaptiveCubicCurve for quadratic Béziers.
func AdaptiveQuadraticCurve(tolerance float64, p0, p1, p2 Point) ([]Point, bool) {
	c1, c2 := quadraticToCubicBezier(p0, p1, p2)
	return adaptiveCubicCurve(tolerance, DefaultMaxSubdivisions, p0, c1, c2, p2)
}

func adaptiveCubicCurve(tolerance float64, maxSubdivisions int, p0, p1, p2, p3 Point) ([]Point, bool) {
	if maxSubdivisions <= 0 {
		maxSubdivisions = DefaultMaxSubdivisions
	}
	tolerance = math.Max(tolerance, MinTolerance)
	tolerance2 := tolerance * tolerance

	var points []Point
	truncated := false
	calls := 0
	stack := []cubicPiece{{p0, p1, p2, p3}}
	for 0 < len(stack) {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		calls++

		flat := c.flat(tolerance2)
		if !flat && maxSubdivisions < calls {
			truncated = true
			flat = true
		}
		if flat {
			if 0 < len(stack) {
				// the end of the last piece is p3, which the caller adds
				points = append(points, c.p3)
			}
			continue
		}

		q0, q1, q2, q3, r0, r1, r2, r3 := splitCubicBezier(c.p0, c.p1, c.p2, c.p3, 0.5)
		stack = append(stack, cubicPiece{r0, r1, r2, r3}, cubicPiece{q0, q1, q2, q3})
	}
	if truncated {
		Logger().Debug("curve subdivision truncated", "budget", maxSubdivisions, "start", p0, "end", p3)
	}
	return points, truncated
}

// CubicBezierExtremes returns the parameters t in (0,1) where the tangent of the cubic Bézier is
// horizontal or vertical, in increasing order.
func CubicBezierExtremes(p0, p1, p2, p3 Point) []float64 {
	var ts []float64
	roots := func(v0, v1, v2, v3 float64) {
		// derivative is a*t^2 + b*t + c
		a := 3.0 * (-v0 + 3.0*v1 - 3.0*v2 + v3)
		b := 6.0 * (v0 - 2.0*v1 + v2)
		c := 3.0 * (v1 - v0)
		if math.Abs(a) < 1e-12 {
			if math.Abs(b) < 1e-12 {
				return
			}
			ts = append(ts, -c/b)
			return
		}
		discriminant := b*b - 4.0*a*c
		if discriminant < 0.0 {
			return
		}
		q := math.Sqrt(discriminant)
		ts = append(ts, (-b+q)/(2.0*a), (-b-q)/(2.0*a))
	}
	roots(p0.X, p1.X, p2.X, p3.X)
	roots(p0.Y, p1.Y, p2.Y, p3.Y)

	extremes := ts[:0]
	for _, t := range ts {
		if 0.0 < t && t < 1.0 {
			extremes = append(extremes, t)
		}
	}
	sort.Float64s(extremes)
	return extremes
}

// CubicBezierBounds returns the tight bounds of the cubic Bézier.
func CubicBezierBounds(p0, p1, p2, p3 Point) Bounds {
	b := InfiniteInverse()
	b.Encapsulate(p0).Encapsulate(p3)
	for _, t := range CubicBezierExtremes(p0, p1, p2, p3) {
		b.Encapsulate(cubicBezierPos(p0, p1, p2, p3, t))
	}
	return b
}

// QuadraticBezierBounds returns the tight bounds of the quadratic Bézier.
func QuadraticBezierBounds(p0, p1, p2 Point) Bounds {
	c1, c2 := quadraticToCubicBezier(p0, p1, p2)
	return CubicBezierBounds(p0, c1, c2, p2)
}
