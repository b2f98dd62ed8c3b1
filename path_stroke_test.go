package svgeom

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestStrokeSubpath(t *testing.T) {
	line := Subpath{Points: []Point{{0.0, 0.0}, {10.0, 0.0}}}
	var tts = []struct {
		name string
		cap  CapStyle
		area float64
		min  Point
		max  Point
	}{
		{"butt", ButtCap, 20.0, Point{0.0, -1.0}, Point{10.0, 1.0}},
		{"square", SquareCap, 24.0, Point{-1.0, -1.0}, Point{11.0, 1.0}},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			polygons := StrokeSubpath(line, StrokeStyle{Width: 2.0, Cap: tt.cap}, 0.01)
			test.T(t, len(polygons), 1)
			test.Float(t, polygons[0].Area(), tt.area)
			b := PolygonsBounds(polygons)
			test.T(t, b.Min(), tt.min)
			test.T(t, b.Max(), tt.max)
		})
	}

	polygons := StrokeSubpath(line, StrokeStyle{Width: 2.0, Cap: RoundCap}, 0.01)
	test.T(t, len(polygons), 1)
	area := polygons[0].Area()
	test.That(t, 20.0+math.Pi-0.1 < area && area <= 20.0+math.Pi, area)
}

func TestStrokeSubpathDegenerate(t *testing.T) {
	style := StrokeStyle{Width: 2.0}
	test.That(t, StrokeSubpath(Subpath{}, style, 0.01) == nil)
	test.That(t, StrokeSubpath(Subpath{Points: []Point{{0.0, 0.0}, {1.0, 0.0}}}, StrokeStyle{}, 0.01) == nil)

	// a single point only shows with round or square caps
	dot := Subpath{Points: []Point{{5.0, 5.0}}}
	test.That(t, StrokeSubpath(dot, style, 0.01) == nil)
	test.Float(t, PolygonsArea(StrokeSubpath(dot, StrokeStyle{Width: 2.0, Cap: SquareCap}, 0.01)), 4.0)
	area := PolygonsArea(StrokeSubpath(dot, StrokeStyle{Width: 2.0, Cap: RoundCap}, 0.01))
	test.That(t, math.Pi-0.1 < area && area <= math.Pi+0.01, area)

	// repeated points collapse to a dot
	same := Subpath{Points: []Point{{5.0, 5.0}, {5.0, 5.0}}}
	test.Float(t, PolygonsArea(StrokeSubpath(same, StrokeStyle{Width: 2.0, Cap: SquareCap}, 0.01)), 4.0)
}

func TestStrokeJoins(t *testing.T) {
	box := Subpath{Points: []Point{{0.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}, {0.0, 10.0}}, Closed: true}

	var tts = []struct {
		name string
		join JoinStyle
		area float64
	}{
		{"miter", MiterJoin, 80.0},
		{"bevel", BevelJoin, 78.0},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			polygons := StrokeSubpath(box, StrokeStyle{Width: 2.0, Join: tt.join}, 0.01)
			test.T(t, len(polygons), 2)
			test.Float(t, PolygonsArea(UnionPolygons(polygons, NonZero)), tt.area)
			test.Float(t, PolygonsArea(Stroke([]Subpath{box}, StrokeStyle{Width: 2.0, Join: tt.join}, 0.01)), tt.area)
		})
	}

	area := PolygonsArea(Stroke([]Subpath{box}, StrokeStyle{Width: 2.0, Join: RoundJoin}, 0.01))
	test.That(t, 78.0 < area && area < 80.0-4.0+math.Pi+0.01, area)

	// a low miter limit bevels the corners
	area = PolygonsArea(Stroke([]Subpath{box}, StrokeStyle{Width: 2.0, Join: MiterJoin, MiterLimit: 1.0}, 0.01))
	test.Float(t, area, 78.0)
}

func TestStrokeOpenCorner(t *testing.T) {
	// an open L shape turning left and one turning right give the same area
	left := Subpath{Points: []Point{{0.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}}}
	right := Subpath{Points: []Point{{0.0, 0.0}, {10.0, 0.0}, {10.0, -10.0}}}
	style := StrokeStyle{Width: 2.0, Join: MiterJoin}
	a := PolygonsArea(Stroke([]Subpath{left}, style, 0.01))
	b := PolygonsArea(Stroke([]Subpath{right}, style, 0.01))
	test.Float(t, a, 40.0)
	test.Float(t, b, 40.0)
}

func TestStrokeDashed(t *testing.T) {
	line := Subpath{Points: []Point{{0.0, 0.0}, {10.0, 0.0}}}
	polygons := Stroke([]Subpath{line}, StrokeStyle{Width: 2.0, DashArray: []float64{2.0, 2.0}}, 0.01)
	test.T(t, len(polygons), 3)
	test.Float(t, PolygonsArea(polygons), 12.0)

	// overlapping outlines are united
	polygons = Stroke([]Subpath{line, {Points: []Point{{5.0, -5.0}, {5.0, 5.0}}}}, StrokeStyle{Width: 2.0}, 0.01)
	test.T(t, len(polygons), 1)
	test.Float(t, PolygonsArea(polygons), 20.0+20.0-4.0)
}

func TestStrokeStyles(t *testing.T) {
	var c CapStyle
	test.Error(t, c.UnmarshalText([]byte("round")))
	test.T(t, c, RoundCap)
	test.String(t, SquareCap.String(), "square")
	test.That(t, c.UnmarshalText([]byte("pointy")) != nil)

	var j JoinStyle
	test.Error(t, j.UnmarshalText([]byte("bevel")))
	test.T(t, j, BevelJoin)
	test.String(t, MiterJoin.String(), "miter")
	test.That(t, j.UnmarshalText([]byte("pointy")) != nil)
}
