package svgeom

import (
	"math"
	"math/rand/v2"
)

// RandomPath returns a path of n random segments, which may be relative, using every command.
func RandomPath(n int, closed bool) Path {
	p := Path{}
	if 0 < n {
		p = append(p, Segment{Cmd: 'M', X: rand.NormFloat64(), Y: rand.NormFloat64()})
		for i := 1; i < n; i++ {
			seg := Segment{Rel: rand.IntN(2) == 0, X: rand.NormFloat64(), Y: rand.NormFloat64()}
			switch rand.IntN(8) {
			case 0:
				seg.Cmd = 'L'
			case 1:
				seg.Cmd = 'H'
			case 2:
				seg.Cmd = 'V'
			case 3:
				seg.Cmd = 'Q'
				seg.X1, seg.Y1 = rand.NormFloat64(), rand.NormFloat64()
			case 4:
				seg.Cmd = 'T'
			case 5:
				seg.Cmd = 'C'
				seg.X1, seg.Y1 = rand.NormFloat64(), rand.NormFloat64()
				seg.X2, seg.Y2 = rand.NormFloat64(), rand.NormFloat64()
			case 6:
				seg.Cmd = 'S'
				seg.X2, seg.Y2 = rand.NormFloat64(), rand.NormFloat64()
			case 7:
				seg.Cmd = 'A'
				seg.RX, seg.RY, seg.Rot = rand.NormFloat64(), rand.NormFloat64(), 360.0*rand.Float64()
				seg.LargeArc, seg.Sweep = rand.IntN(2) == 0, rand.IntN(2) == 0
			}
			p = append(p, seg)
		}
		if closed {
			p = append(p, Segment{Cmd: 'Z'})
		}
	}
	return p
}

func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	length2 := ab.Dot(ab)
	if length2 == 0.0 {
		return p.Sub(a).Length()
	}
	t := math.Max(0.0, math.Min(1.0, p.Sub(a).Dot(ab)/length2))
	return p.Sub(a.Interpolate(b, t)).Length()
}

// distanceToPolyline returns the distance of p to the nearest segment of the polyline.
func distanceToPolyline(p Point, points []Point) float64 {
	if len(points) == 1 {
		return p.Sub(points[0]).Length()
	}
	d := math.Inf(1)
	for i := 1; i < len(points); i++ {
		d = math.Min(d, distanceToSegment(p, points[i-1], points[i]))
	}
	return d
}

func square(x, y, size float64) Polygon {
	return Polygon{{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}}
}

func floatNear(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
