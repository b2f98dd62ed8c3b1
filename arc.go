package svgeom

import "math"

// arcToCenter changes between the SVG arc format to the center and angles format. Radii that are too
// small to span both endpoints are scaled up, and returned. Angles are in radians.
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func arcToCenter(x1, y1, rx, ry, rot float64, large, sweep bool, x2, y2 float64) (cx, cy, rxc, ryc, theta0, theta1 float64) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if x1 == x2 && y1 == y2 {
		return x1, y1, rx, ry, 0.0, 0.0
	}

	rot *= math.Pi / 180.0
	sinrot, cosrot := math.Sincos(rot)
	x1p := cosrot*(x1-x2)/2.0 + sinrot*(y1-y2)/2.0
	y1p := -sinrot*(x1-x2)/2.0 + cosrot*(y1-y2)/2.0

	// reduce rouding errors
	radiiCheck := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if radiiCheck > 1.0 {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx = cosrot*cxp - sinrot*cyp + (x1+x2)/2.0
	cy = sinrot*cxp + cosrot*cyp + (y1+y2)/2.0

	// specify U and V vectors; theta = arccos(U*V / sqrt(U*U + V*V))
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Acos(math.Max(-1.0, math.Min(1.0, ux/math.Sqrt(ux*ux+uy*uy))))
	if uy < 0.0 {
		theta = -theta
	}

	delta := math.Acos(math.Max(-1.0, math.Min(1.0, (ux*vx+uy*vy)/math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy)))))
	if ux*vy-uy*vx < 0.0 {
		delta = -delta
	}
	if !sweep && delta > 0.0 {
		delta -= 2.0 * math.Pi
	} else if sweep && delta < 0.0 {
		delta += 2.0 * math.Pi
	}
	return cx, cy, rx, ry, theta, theta + delta
}

// ellipsePos returns the position on the rotated ellipse at angle theta, rot is in radians.
func ellipsePos(rx, ry, rot, cx, cy, theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	sinrot, cosrot := math.Sincos(rot)
	x := cx + rx*costheta*cosrot - ry*sintheta*sinrot
	y := cy + rx*costheta*sinrot + ry*sintheta*cosrot
	return Point{x, y}
}

// arcSegments returns the number of chords needed to keep the sagitta of each chord below
// tolerance on a circle of radius r spanning an angle of delta radians.
func arcSegments(r, delta, tolerance float64) int {
	tolerance = math.Max(tolerance, MinTolerance)
	if r <= tolerance {
		return 1
	}
	step := 2.0 * math.Acos(1.0-tolerance/r)
	n := int(math.Ceil(math.Abs(delta) / step))
	if n < 1 {
		n = 1
	}
	return n
}

// FlattenArc returns the intermediate points of the SVG elliptical arc from start to end, ie.
// without start and end. Zero radii turn the arc into a straight line, in which case no points
// are returned, and coinciding endpoints omit the arc entirely.
func FlattenArc(tolerance float64, start Point, rx, ry, rot float64, large, sweep bool, end Point) []Point {
	if rx == 0.0 || ry == 0.0 || start == end {
		return nil
	}
	cx, cy, rx, ry, theta0, theta1 := arcToCenter(start.X, start.Y, rx, ry, rot, large, sweep, end.X, end.Y)

	n := arcSegments(math.Max(rx, ry), theta1-theta0, tolerance)
	if n < 2 {
		return nil
	}
	rot *= math.Pi / 180.0
	points := make([]Point, 0, n-1)
	for i := 1; i < n; i++ {
		theta := theta0 + (theta1-theta0)*float64(i)/float64(n)
		points = append(points, ellipsePos(rx, ry, rot, cx, cy, theta))
	}
	return points
}
