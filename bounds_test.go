package svgeom

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/tdewolff/test"
)

func TestBounds(t *testing.T) {
	b := NewBounds(Point{0.0, 2.0}, Point{10.0, 6.0})
	test.T(t, b.Center(), Point{5.0, 4.0})
	test.T(t, b.Size(), Point{10.0, 4.0})
	test.T(t, b.Extents(), Point{5.0, 2.0})

	c := NewBoundsCenterSize(Point{5.0, 4.0}, Point{10.0, 4.0})
	test.That(t, b.Compare(c), "center/size constructor:", c)

	b.Expand(2.0)
	test.T(t, b.Min(), Point{-5.0, 0.0})
	test.T(t, b.Max(), Point{15.0, 8.0})
	test.T(t, b.Center(), Point{5.0, 4.0})

	b.ExpandVec(Point{0.5, 1.0})
	test.T(t, b.Min(), Point{0.0, 0.0})
	test.T(t, b.Max(), Point{10.0, 8.0})

	b.ApplyBounds(c)
	test.That(t, b.Compare(c))

	// expanding the accumulation identity keeps it usable
	inv := InfiniteInverse()
	inv.Expand(2.0)
	test.That(t, inv.IsInfiniteInverse(), inv)
	inv.Encapsulate(Point{1.0, 2.0})
	test.T(t, inv.Min(), Point{1.0, 2.0})
	test.T(t, inv.Max(), Point{1.0, 2.0})
}

func TestBoundsEncapsulate(t *testing.T) {
	b := InfiniteInverse()
	test.That(t, b.IsInfiniteInverse())
	test.That(t, b.Compare(InfiniteInverse()))

	b.Encapsulate(Point{1.0, 2.0})
	test.That(t, !b.IsInfiniteInverse())
	test.T(t, b.Min(), Point{1.0, 2.0})
	test.T(t, b.Max(), Point{1.0, 2.0})
	test.T(t, b.Size(), Point{0.0, 0.0})

	b.EncapsulatePoints([]Point{{-1.0, 5.0}, {3.0, 0.0}})
	test.T(t, b.Min(), Point{-1.0, 0.0})
	test.T(t, b.Max(), Point{3.0, 5.0})
	test.T(t, b.Center(), Point{1.0, 2.5})

	b.EncapsulateBounds(NewBounds(Point{2.0, 2.0}, Point{4.0, 4.0}))
	test.T(t, b.Max(), Point{4.0, 5.0})

	b.EncapsulateCenterSize(Point{0.0, 0.0}, Point{10.0, 2.0})
	test.T(t, b.Min(), Point{-5.0, -1.0})

	// encapsulating an empty bounds changes nothing
	before := b
	b.EncapsulateBounds(InfiniteInverse())
	test.That(t, b.Compare(before))
}

func TestBoundsContains(t *testing.T) {
	b := NewBounds(Point{0.0, 0.0}, Point{10.0, 10.0})
	test.That(t, b.Contains(Point{0.0, 10.0}))
	test.That(t, !b.Contains(Point{-0.1, 5.0}))
	test.That(t, b.ContainsBounds(NewBounds(Point{0.0, 0.0}, Point{5.0, 5.0})))
	test.That(t, !b.ContainsBounds(NewBounds(Point{5.0, 5.0}, Point{11.0, 6.0})))
	test.That(t, b.Intersects(NewBounds(Point{10.0, 10.0}, Point{20.0, 20.0})), "touching")
	test.That(t, !b.Intersects(NewBounds(Point{11.0, 0.0}, Point{20.0, 20.0})))
	test.That(t, !b.Intersects(InfiniteInverse()))
}

func TestBoundsTransform(t *testing.T) {
	b := NewBounds(Point{0.0, 0.0}, Point{10.0, 5.0})
	r := b.Transform(Identity.Rotate(90.0))
	test.That(t, floatNear(r.Min().X, -5.0, 1e-9) && floatNear(r.Min().Y, 0.0, 1e-9), r)
	test.That(t, floatNear(r.Max().X, 0.0, 1e-9) && floatNear(r.Max().Y, 10.0, 1e-9), r)

	test.That(t, InfiniteInverse().Transform(Identity.Translate(1.0, 1.0)).IsInfiniteInverse())
}

func TestBoundsOrb(t *testing.T) {
	b := NewBounds(Point{1.0, 2.0}, Point{3.0, 4.0})
	bound := b.Bound()
	test.T(t, bound, orb.Bound{Min: orb.Point{1.0, 2.0}, Max: orb.Point{3.0, 4.0}})
	test.That(t, BoundsFromOrb(bound).Compare(b))
	test.That(t, math.IsInf(InfiniteInverse().Min().X, 1))
}
