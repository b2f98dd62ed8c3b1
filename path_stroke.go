package svgeom

import (
	"fmt"
	"math"
	"strings"
)

// NOTE: the cap and join design follows github.com/golang/freetype/raster/stroke.go

// Outline is a contour under construction by the stroker. Arcs are flattened on the fly.
type Outline struct {
	Points    []Point
	tolerance float64
}

// LineTo appends p unless it equals the last point.
func (o *Outline) LineTo(p Point) {
	if 0 < len(o.Points) && o.Points[len(o.Points)-1].Equals(p) {
		return
	}
	o.Points = append(o.Points, p)
}

// ArcAround appends the arc that rotates v about pivot by theta radians, counter clockwise for
// positive theta, with r = |v|. The start point pivot+v is not appended.
func (o *Outline) ArcAround(pivot, v Point, theta float64) {
	n := arcSegments(v.Length(), theta, o.tolerance)
	for i := 1; i <= n; i++ {
		sintheta, costheta := math.Sincos(theta * float64(i) / float64(n))
		o.LineTo(pivot.Add(Point{v.X*costheta - v.Y*sintheta, v.X*sintheta + v.Y*costheta}))
	}
}

// Capper implements Cap, with o the outline to append to, halfWidth the half width of the stroke,
// pivot the pivot point around which to construct a cap, and n0 the normal pointing to the side the
// outline is currently at. The cap ends at pivot-n0. The length of n0 is equal to the halfWidth.
type Capper interface {
	Cap(*Outline, float64, Point, Point)
}

type CapperFunc func(*Outline, float64, Point, Point)

func (f CapperFunc) Cap(o *Outline, halfWidth float64, pivot, n0 Point) {
	f(o, halfWidth, pivot, n0)
}

// RoundCapper caps the start or end of a path by a round cap.
var RoundCapper Capper = CapperFunc(roundCapper)

func roundCapper(o *Outline, halfWidth float64, pivot, n0 Point) {
	o.ArcAround(pivot, n0, math.Pi)
}

// ButtCapper caps the start or end of a path by a butt cap.
var ButtCapper Capper = CapperFunc(buttCapper)

func buttCapper(o *Outline, halfWidth float64, pivot, n0 Point) {
	o.LineTo(pivot.Sub(n0))
}

// SquareCapper caps the start or end of a path by a square cap.
var SquareCapper Capper = CapperFunc(squareCapper)

func squareCapper(o *Outline, halfWidth float64, pivot, n0 Point) {
	e := n0.Rot90CCW()
	o.LineTo(pivot.Add(e).Add(n0))
	o.LineTo(pivot.Add(e).Sub(n0))
	o.LineTo(pivot.Sub(n0))
}

////////////////

// Joiner implements Join, with rhs the right outline and lhs the left outline to append to, pivot the
// intersection of both segments, n0 and n1 the right-hand normals of the incoming and outgoing
// segment respectively. The length of n0 and n1 are equal to the halfWidth.
type Joiner interface {
	Join(*Outline, *Outline, float64, Point, Point, Point)
}

type JoinerFunc func(*Outline, *Outline, float64, Point, Point, Point)

func (f JoinerFunc) Join(rhs, lhs *Outline, halfWidth float64, pivot, n0, n1 Point) {
	f(rhs, lhs, halfWidth, pivot, n0, n1)
}

// BevelJoiner connects two segments by a linear join.
var BevelJoiner Joiner = JoinerFunc(bevelJoiner)

func bevelJoiner(rhs, lhs *Outline, halfWidth float64, pivot, n0, n1 Point) {
	if n0.Equals(n1) {
		return
	}
	rhs.LineTo(pivot.Add(n1))
	lhs.LineTo(pivot.Sub(n1))
}

// RoundJoiner connects two segments by a round join.
var RoundJoiner Joiner = JoinerFunc(roundJoiner)

func roundJoiner(rhs, lhs *Outline, halfWidth float64, pivot, n0, n1 Point) {
	if n0.Equals(n1) {
		return
	}

	theta := n0.AngleBetween(n1)
	if 0.0 <= theta { // bend to the left, ie. CCW
		rhs.ArcAround(pivot, n0, theta)
		lhs.LineTo(pivot.Sub(n1))
	} else { // bend to the right, ie. CW
		rhs.LineTo(pivot.Add(n1))
		lhs.ArcAround(pivot, n0.Neg(), theta)
	}
}

// MiterJoiner connects two segments by extending the outer edges until they meet.
var MiterJoiner Joiner = miterJoiner{BevelJoiner, math.NaN()}

// MiterClipJoiner returns a miter joiner that falls back to gapJoiner when the miter tip lies further
// than limit from the pivot.
func MiterClipJoiner(gapJoiner Joiner, limit float64) Joiner {
	return miterJoiner{gapJoiner, limit}
}

type miterJoiner struct {
	gapJoiner Joiner
	limit     float64
}

func (j miterJoiner) Join(rhs, lhs *Outline, halfWidth float64, pivot, n0, n1 Point) {
	if n0.Equals(n1) {
		return
	} else if n0.Equals(n1.Neg()) {
		bevelJoiner(rhs, lhs, halfWidth, pivot, n0, n1)
		return
	}
	limit := math.Max(j.limit, halfWidth*1.001) // otherwise nearly linear joins will also get clipped

	theta := n0.AngleBetween(n1) / 2.0
	d := halfWidth / math.Cos(theta)
	if !math.IsNaN(j.limit) && math.Abs(d) > limit {
		j.gapJoiner.Join(rhs, lhs, halfWidth, pivot, n0, n1)
		return
	}
	mid := n0.Add(n1).Norm(d)

	if 0.0 <= theta { // bend to the left, ie. CCW
		rhs.LineTo(pivot.Add(mid))
	} else {
		lhs.LineTo(pivot.Sub(mid))
	}
	rhs.LineTo(pivot.Add(n1))
	lhs.LineTo(pivot.Sub(n1))
}

////////////////////////////////////////////////////////////////

// CapStyle is the shape at the ends of open subpaths.
type CapStyle int

// Cap styles.
const (
	ButtCap CapStyle = iota
	RoundCap
	SquareCap
)

func (c CapStyle) String() string {
	switch c {
	case ButtCap:
		return "butt"
	case RoundCap:
		return "round"
	case SquareCap:
		return "square"
	}
	return fmt.Sprintf("CapStyle(%d)", int(c))
}

// UnmarshalText parses butt, round or square.
func (c *CapStyle) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "butt":
		*c = ButtCap
	case "round":
		*c = RoundCap
	case "square":
		*c = SquareCap
	default:
		return fmt.Errorf("unknown line cap %q", string(b))
	}
	return nil
}

func (c CapStyle) capper() Capper {
	switch c {
	case RoundCap:
		return RoundCapper
	case SquareCap:
		return SquareCapper
	}
	return ButtCapper
}

// JoinStyle is the shape at the corners of subpaths.
type JoinStyle int

// Join styles.
const (
	MiterJoin JoinStyle = iota
	RoundJoin
	BevelJoin
)

func (join JoinStyle) String() string {
	switch join {
	case MiterJoin:
		return "miter"
	case RoundJoin:
		return "round"
	case BevelJoin:
		return "bevel"
	}
	return fmt.Sprintf("JoinStyle(%d)", int(join))
}

// UnmarshalText parses miter, round or bevel.
func (join *JoinStyle) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "miter":
		*join = MiterJoin
	case "round":
		*join = RoundJoin
	case "bevel":
		*join = BevelJoin
	default:
		return fmt.Errorf("unknown line join %q", string(b))
	}
	return nil
}

// DefaultMiterLimit is the SVG default ratio of miter length to stroke width.
const DefaultMiterLimit = 4.0

// StrokeStyle describes how a subpath is stroked. MiterLimit is the maximum ratio of the miter
// length to the stroke width, beyond which miter joins are beveled.
type StrokeStyle struct {
	Width      float64
	Cap        CapStyle
	Join       JoinStyle
	MiterLimit float64
	DashArray  []float64
	DashOffset float64
}

func (style StrokeStyle) joiner() Joiner {
	switch style.Join {
	case RoundJoin:
		return RoundJoiner
	case BevelJoin:
		return BevelJoiner
	}
	miterLimit := style.MiterLimit
	if miterLimit <= 0.0 {
		miterLimit = DefaultMiterLimit
	}
	return MiterClipJoiner(BevelJoiner, miterLimit*style.Width/2.0)
}

// strokePoints drops repeated points, including a closing point equal to the first.
func strokePoints(s Subpath) []Point {
	points := make([]Point, 0, len(s.Points))
	for _, p := range s.Points {
		if len(points) == 0 || !points[len(points)-1].Equals(p) {
			points = append(points, p)
		}
	}
	if s.Closed && 2 < len(points) && points[0].Equals(points[len(points)-1]) {
		points = points[:len(points)-1]
	}
	return points
}

func strokeDot(pivot Point, halfWidth float64, capStyle CapStyle, tolerance float64) []Polygon {
	n := Point{halfWidth, 0.0}
	o := &Outline{tolerance: tolerance}
	switch capStyle {
	case RoundCap:
		o.LineTo(pivot.Add(n))
		o.ArcAround(pivot, n, 2.0*math.Pi)
	case SquareCap:
		o.LineTo(Point{pivot.X - halfWidth, pivot.Y - halfWidth})
		o.LineTo(Point{pivot.X + halfWidth, pivot.Y - halfWidth})
		o.LineTo(Point{pivot.X + halfWidth, pivot.Y + halfWidth})
		o.LineTo(Point{pivot.X - halfWidth, pivot.Y + halfWidth})
	default:
		return nil
	}
	return []Polygon{PolygonFromSubpath(Subpath{Points: o.Points, Closed: true})}
}

// StrokeSubpath returns the outline of the stroked subpath. Open subpaths give a single ring running
// along the right side, around the end cap, back along the left side and around the start cap.
// Closed subpaths give the outer and the reversed inner ring. Overlaps are not removed, fill the
// result with the NonZero rule.
func StrokeSubpath(s Subpath, style StrokeStyle, tolerance float64) []Polygon {
	halfWidth := style.Width / 2.0
	if !(0.0 < halfWidth) {
		return nil
	}
	points := strokePoints(s)
	if len(points) == 0 {
		return nil
	} else if len(points) == 1 {
		return strokeDot(points[0], halfWidth, style.Cap, tolerance)
	}

	closed := s.Closed && 2 < len(points)
	joiner := style.joiner()
	rhs := &Outline{tolerance: tolerance}
	lhs := &Outline{tolerance: tolerance}

	n := len(points) - 1
	if closed {
		n = len(points)
	}
	normal := func(i int) Point {
		return points[(i+1)%len(points)].Sub(points[i]).Rot90CW().Norm(halfWidth)
	}

	n0 := normal(0)
	rhs.LineTo(points[0].Add(n0))
	lhs.LineTo(points[0].Sub(n0))
	for i := 0; i < n; i++ {
		end := points[(i+1)%len(points)]
		rhs.LineTo(end.Add(n0))
		lhs.LineTo(end.Sub(n0))
		if i+1 < n || closed {
			n1 := normal((i + 1) % len(points))
			joiner.Join(rhs, lhs, halfWidth, end, n0, n1)
			n0 = n1
		}
	}

	if closed {
		return []Polygon{
			PolygonFromSubpath(Subpath{Points: rhs.Points, Closed: true}),
			PolygonFromSubpath(Subpath{Points: lhs.Points, Closed: true}).Reverse(),
		}
	}

	capper := style.Cap.capper()
	capper.Cap(rhs, halfWidth, points[len(points)-1], n0)
	for i := len(lhs.Points) - 1; 0 <= i; i-- {
		rhs.LineTo(lhs.Points[i])
	}
	capper.Cap(rhs, halfWidth, points[0], normal(0).Neg())
	return []Polygon{PolygonFromSubpath(Subpath{Points: rhs.Points, Closed: true})}
}

// Stroke dashes and strokes each subpath and unites the outlines under the NonZero rule.
func Stroke(subpaths []Subpath, style StrokeStyle, tolerance float64) []Polygon {
	if !(0.0 < style.Width) {
		return nil
	}
	var polygons []Polygon
	for _, s := range subpaths {
		for _, dash := range Dash(s, style.DashArray, style.DashOffset) {
			polygons = append(polygons, StrokeSubpath(dash, style, tolerance)...)
		}
	}
	return UnionPolygons(polygons, NonZero)
}
