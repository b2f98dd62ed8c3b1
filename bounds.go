package svgeom

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Bounds is an axis-aligned rectangle. It keeps both the min/max and the center/size
// representations so that either can be read without recomputation. Every mutation
// updates the other representation: size = max-min, extents = size/2 and center = min+extents.
type Bounds struct {
	min, max     Point
	center, size Point
	extents      Point
}

// NewBounds returns the bounds spanning from min to max.
func NewBounds(min, max Point) Bounds {
	b := Bounds{min: min, max: max}
	b.syncCenter()
	return b
}

// NewBoundsCenterSize returns the bounds with the given center and size.
func NewBoundsCenterSize(center, size Point) Bounds {
	b := Bounds{center: center, size: size}
	b.syncMinMax()
	return b
}

// InfiniteInverse returns the bounds with min at +Inf and max at -Inf. It is the identity element
// for Encapsulate, ie. encapsulating any point into it results in the bounds of that point.
func InfiniteInverse() Bounds {
	return NewBounds(Point{math.Inf(1), math.Inf(1)}, Point{math.Inf(-1), math.Inf(-1)})
}

// BoundsFromOrb converts an orb.Bound.
func BoundsFromOrb(b orb.Bound) Bounds {
	return NewBounds(Point{b.Min[0], b.Min[1]}, Point{b.Max[0], b.Max[1]})
}

func (b *Bounds) syncCenter() {
	b.size = b.max.Sub(b.min)
	b.extents = b.size.Mul(0.5)
	b.center = b.min.Add(b.extents)
}

func (b *Bounds) syncMinMax() {
	extents := b.size.Mul(0.5)
	b.min = b.center.Sub(extents)
	b.max = b.center.Add(extents)
	b.syncCenter()
}

// Min returns the lower-left corner.
func (b Bounds) Min() Point { return b.min }

// Max returns the upper-right corner.
func (b Bounds) Max() Point { return b.max }

// Center returns the center.
func (b Bounds) Center() Point { return b.center }

// Size returns the width and height.
func (b Bounds) Size() Point { return b.size }

// Extents returns half the size.
func (b Bounds) Extents() Point { return b.extents }

// IsInfiniteInverse returns true if nothing was encapsulated yet, ie. min lies beyond max.
func (b Bounds) IsInfiniteInverse() bool {
	return b.max.X < b.min.X || b.max.Y < b.min.Y
}

// Contains returns true if p lies inside the bounds, edges included.
func (b Bounds) Contains(p Point) bool {
	return b.min.X <= p.X && p.X <= b.max.X && b.min.Y <= p.Y && p.Y <= b.max.Y
}

// ContainsBounds returns true if o lies entirely inside the bounds, edges included.
func (b Bounds) ContainsBounds(o Bounds) bool {
	return b.min.X <= o.min.X && o.max.X <= b.max.X && b.min.Y <= o.min.Y && o.max.Y <= b.max.Y
}

// Intersects returns true if the bounds overlap or touch.
func (b Bounds) Intersects(o Bounds) bool {
	return !(o.max.X < b.min.X || b.max.X < o.min.X || o.max.Y < b.min.Y || b.max.Y < o.min.Y)
}

// Encapsulate grows the bounds to include p.
func (b *Bounds) Encapsulate(p Point) *Bounds {
	b.min = Point{math.Min(b.min.X, p.X), math.Min(b.min.Y, p.Y)}
	b.max = Point{math.Max(b.max.X, p.X), math.Max(b.max.Y, p.Y)}
	b.syncCenter()
	return b
}

// EncapsulateBounds grows the bounds to include o.
func (b *Bounds) EncapsulateBounds(o Bounds) *Bounds {
	b.min = Point{math.Min(b.min.X, o.min.X), math.Min(b.min.Y, o.min.Y)}
	b.max = Point{math.Max(b.max.X, o.max.X), math.Max(b.max.Y, o.max.Y)}
	b.syncCenter()
	return b
}

// EncapsulateCenterSize grows the bounds to include the rectangle given by its center and size.
func (b *Bounds) EncapsulateCenterSize(center, size Point) *Bounds {
	return b.EncapsulateBounds(NewBoundsCenterSize(center, size))
}

// EncapsulatePoints grows the bounds to include all points.
func (b *Bounds) EncapsulatePoints(points []Point) *Bounds {
	for _, p := range points {
		b.Encapsulate(p)
	}
	return b
}

// Expand scales the size by f about the center.
func (b *Bounds) Expand(f float64) *Bounds {
	return b.ExpandVec(Point{f, f})
}

// ExpandVec scales the width and height by f.X and f.Y about the center. InfiniteInverse is left as is.
func (b *Bounds) ExpandVec(f Point) *Bounds {
	if b.IsInfiniteInverse() {
		return b
	}
	b.size = Point{b.size.X * f.X, b.size.Y * f.Y}
	b.syncMinMax()
	return b
}

// ApplyBounds overwrites the bounds by o.
func (b *Bounds) ApplyBounds(o Bounds) *Bounds {
	*b = o
	return b
}

// Compare returns true if the bounds are exactly equal. Center, size and extents are derived from
// min and max, so comparing those suffices (and avoids the NaN center of InfiniteInverse).
func (b Bounds) Compare(o Bounds) bool {
	return b.min == o.min && b.max == o.max
}

// Transform returns the bounds of the four transformed corners.
func (b Bounds) Transform(m Matrix) Bounds {
	if b.IsInfiniteInverse() {
		return b
	}
	r := InfiniteInverse()
	r.Encapsulate(m.Dot(b.min))
	r.Encapsulate(m.Dot(Point{b.max.X, b.min.Y}))
	r.Encapsulate(m.Dot(b.max))
	r.Encapsulate(m.Dot(Point{b.min.X, b.max.Y}))
	return r
}

// Bound converts to an orb.Bound.
func (b Bounds) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{b.min.X, b.min.Y}, Max: orb.Point{b.max.X, b.max.Y}}
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%v--%v]", b.min, b.max)
}
