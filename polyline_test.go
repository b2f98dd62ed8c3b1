package svgeom

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPolygon(t *testing.T) {
	p := square(0.0, 0.0, 10.0)
	test.Float(t, p.SignedArea(), 100.0)
	test.Float(t, p.Area(), 100.0)
	test.That(t, p.CCW())
	test.T(t, p.Centroid(), Point{5.0, 5.0})

	r := p.Reverse()
	test.Float(t, r.SignedArea(), -100.0)
	test.That(t, !r.CCW())
	test.T(t, r[0], p[3])

	b := p.Bounds()
	test.T(t, b.Min(), Point{0.0, 0.0})
	test.T(t, b.Max(), Point{10.0, 10.0})

	q := p.Transform(Identity.Scale(-1.0, 1.0))
	test.That(t, !q.CCW(), "mirroring reverses the winding")
	test.T(t, p[1], Point{10.0, 0.0}, "original is unchanged")

	test.T(t, Polygon{{0.0, 0.0}, {1.0, 1.0}}.Centroid(), Point{0.5, 0.5})
	test.T(t, Polygon{}.Centroid(), Point{})
	test.Float(t, Polygon{{0.0, 0.0}, {1.0, 1.0}}.Area(), 0.0)
}

func TestPolygonFillCount(t *testing.T) {
	p := square(0.0, 0.0, 10.0)
	test.T(t, p.FillCount(5.0, 5.0), 1)
	test.T(t, p.Reverse().FillCount(5.0, 5.0), -1)
	test.T(t, p.FillCount(15.0, 5.0), 0)
	test.That(t, p.Interior(5.0, 5.0, NonZero))
	test.That(t, p.Interior(5.0, 5.0, EvenOdd))

	// two overlapping squares in the same direction
	polygons := []Polygon{square(0.0, 0.0, 10.0), square(5.0, 5.0, 10.0)}
	test.T(t, FillCount(polygons, 7.0, 7.0), 2)
	test.That(t, Interior(polygons, 7.0, 7.0, NonZero))
	test.That(t, !Interior(polygons, 7.0, 7.0, EvenOdd))
	test.That(t, Interior(polygons, 2.0, 2.0, EvenOdd))

	// a hole in the opposite direction
	polygons = []Polygon{square(0.0, 0.0, 10.0), square(2.0, 2.0, 6.0).Reverse()}
	test.That(t, !Interior(polygons, 5.0, 5.0, NonZero))
	test.That(t, Interior(polygons, 1.0, 1.0, NonZero))
}

func TestPolygonFromSubpath(t *testing.T) {
	p := PolygonFromSubpath(Subpath{Points: []Point{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}, {0.0, 0.0}}})
	test.T(t, p, Polygon{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}})

	b := PolygonsBounds([]Polygon{square(0.0, 0.0, 1.0), square(5.0, -5.0, 1.0)})
	test.T(t, b.Min(), Point{0.0, -5.0})
	test.T(t, b.Max(), Point{6.0, 1.0})
	test.That(t, PolygonsBounds(nil).IsInfiniteInverse())
}
