package svgeom

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestArcToCenter(t *testing.T) {
	cx, cy, rx, ry, theta0, theta1 := arcToCenter(0.0, 0.0, 5.0, 5.0, 0.0, false, true, 10.0, 0.0)
	test.Float(t, cx, 5.0)
	test.Float(t, cy, 0.0)
	test.Float(t, rx, 5.0)
	test.Float(t, ry, 5.0)
	test.Float(t, math.Abs(theta1-theta0), math.Pi)

	// radii too small to span the endpoints are scaled up
	_, _, rx, ry, _, _ = arcToCenter(0.0, 0.0, 1.0, 1.0, 0.0, false, false, 10.0, 0.0)
	test.Float(t, rx, 5.0)
	test.Float(t, ry, 5.0)

	// sweep decides the direction
	_, _, _, _, theta0, theta1 = arcToCenter(0.0, 0.0, 10.0, 10.0, 0.0, false, true, 10.0, 0.0)
	test.That(t, theta0 < theta1)
	_, _, _, _, theta0, theta1 = arcToCenter(0.0, 0.0, 10.0, 10.0, 0.0, false, false, 10.0, 0.0)
	test.That(t, theta1 < theta0)
}

func TestArcSegments(t *testing.T) {
	test.T(t, arcSegments(0.5, math.Pi, 1.0), 1)
	test.T(t, arcSegments(10.0, 0.0, 0.1), 1)
	for _, r := range []float64{1.0, 10.0, 1000.0} {
		for _, tolerance := range []float64{0.01, 0.1, 0.5} {
			if r <= tolerance {
				continue
			}
			n := arcSegments(r, 2.0*math.Pi, tolerance)
			sagitta := r * (1.0 - math.Cos(math.Pi/float64(n)))
			test.That(t, sagitta <= tolerance+1e-12, "r", r, "tolerance", tolerance, "n", n)
		}
	}
	test.That(t, arcSegments(10.0, math.Pi, 0.01) < arcSegments(10.0, 2.0*math.Pi, 0.01))
	test.That(t, arcSegments(10.0, math.Pi, 0.1) < arcSegments(10.0, math.Pi, 0.01))
}

func TestFlattenArc(t *testing.T) {
	points := FlattenArc(0.01, Point{0.0, 0.0}, 5.0, 5.0, 0.0, false, true, Point{10.0, 0.0})
	test.That(t, 1 < len(points))
	for _, p := range points {
		test.That(t, floatNear(p.Sub(Point{5.0, 0.0}).Length(), 5.0, 1e-9), p)
	}

	// radii scaled up to span the endpoints
	points = FlattenArc(0.01, Point{0.0, 0.0}, 1.0, 1.0, 0.0, false, true, Point{10.0, 0.0})
	for _, p := range points {
		test.That(t, floatNear(p.Sub(Point{5.0, 0.0}).Length(), 5.0, 1e-9), p)
	}

	// ellipse
	points = FlattenArc(0.01, Point{-10.0, 0.0}, 10.0, 5.0, 0.0, false, true, Point{10.0, 0.0})
	test.That(t, 1 < len(points))
	for _, p := range points {
		test.That(t, floatNear(p.X*p.X/100.0+p.Y*p.Y/25.0, 1.0, 1e-9), p)
	}

	small := FlattenArc(0.01, Point{0.0, 0.0}, 10.0, 10.0, 0.0, false, true, Point{10.0, 0.0})
	large := FlattenArc(0.01, Point{0.0, 0.0}, 10.0, 10.0, 0.0, true, true, Point{10.0, 0.0})
	test.That(t, len(small) < len(large))

	test.That(t, FlattenArc(0.01, Point{0.0, 0.0}, 0.0, 5.0, 0.0, false, true, Point{10.0, 0.0}) == nil)
	test.That(t, FlattenArc(0.01, Point{0.0, 0.0}, 5.0, 5.0, 0.0, false, true, Point{0.0, 0.0}) == nil)
}
