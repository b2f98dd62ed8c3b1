package svgeom

// Subpath is one contour of a flattened path. Closed subpaths do not repeat their first point at the end.
type Subpath struct {
	Points []Point
	Closed bool
}

// Bounds returns the bounds of the points.
func (s Subpath) Bounds() Bounds {
	b := InfiniteInverse()
	return *b.EncapsulatePoints(s.Points)
}

// Transform returns a transformed copy of the subpath.
func (s Subpath) Transform(m Matrix) Subpath {
	points := append([]Point{}, s.Points...)
	m.TransformPoints(points)
	return Subpath{Points: points, Closed: s.Closed}
}

// FlattenStats reports on a flattening pass.
type FlattenStats struct {
	Curves    int // Bézier curves flattened adaptively
	Arcs      int
	Truncated int // curves whose subdivision budget was exhausted
}

type flattener struct {
	cfg       Config
	tolerance float64
	stats     FlattenStats

	subpaths []Subpath
	points   []Point
	moves    int // consecutive MoveTos that started the current buffer
}

func (f *flattener) add(p Point) {
	if 0 < len(f.points) && f.points[len(f.points)-1].Equals(p) {
		return
	}
	f.points = append(f.points, p)
}

func (f *flattener) finalize(closed bool) {
	points := f.points
	f.points = nil
	f.moves = 0
	if closed && 1 < len(points) && points[0].Equals(points[len(points)-1]) {
		points = points[:len(points)-1]
	}
	if len(points) == 0 {
		return
	}
	f.subpaths = append(f.subpaths, Subpath{Points: points, Closed: closed})
}

// Flatten converts the path into subpaths of straight line segments. Curves and arcs are flattened
// within the tolerance given by cfg.RoundQuality, after which every subpath of three or more points
// is simplified by RamerDouglasPeucker with the same tolerance.
//
// Close finalizes the current subpath as closed and MoveTo after drawing finalizes it as open. A run
// of MoveTos keeps only the last, and a final lone MoveTo is kept as a single point subpath only
// when it was not preceded by another MoveTo.
func Flatten(p Path, cfg Config) ([]Subpath, FlattenStats) {
	f := &flattener{
		cfg:       cfg,
		tolerance: cfg.RoundQuality(),
	}
	for _, seg := range p.Resolve() {
		if seg.Cmd == MoveToCmd {
			if 0 < f.moves {
				f.points = f.points[:0]
			} else if 0 < len(f.points) {
				f.finalize(false)
			}
			f.points = append(f.points, seg.End)
			f.moves++
			continue
		} else if seg.Cmd == CloseCmd {
			if 0 < f.moves && len(f.points) == 1 {
				// close right after a move draws nothing
				f.points = f.points[:0]
				f.moves = 0
				continue
			}
			f.finalize(true)
			continue
		}

		if len(f.points) == 0 {
			// drawing after a close continues from the start of the previous subpath
			f.points = append(f.points, seg.Start)
		}
		f.moves = 0
		switch seg.Cmd {
		case LineToCmd:
			f.add(seg.End)
		case QuadToCmd:
			f.stats.Curves++
			points, truncated := f.quadratic(seg.Start, seg.C1, seg.End)
			f.addCurve(points, truncated)
			f.add(seg.End)
		case CubeToCmd:
			f.stats.Curves++
			points, truncated := adaptiveCubicCurve(f.tolerance, f.cfg.MaxSubdivisions, seg.Start, seg.C1, seg.C2, seg.End)
			f.addCurve(points, truncated)
			f.add(seg.End)
		case ArcToCmd:
			f.stats.Arcs++
			for _, q := range FlattenArc(f.tolerance, seg.Start, seg.RX, seg.RY, seg.Rot, seg.LargeArc, seg.Sweep, seg.End) {
				f.add(q)
			}
			f.add(seg.End)
		}
	}
	if 0 < len(f.points) && f.moves <= 1 {
		f.finalize(false)
	}

	for i, s := range f.subpaths {
		f.subpaths[i] = s.Optimise(f.tolerance)
	}
	return f.subpaths, f.stats
}

func (f *flattener) quadratic(p0, p1, p2 Point) ([]Point, bool) {
	c1, c2 := quadraticToCubicBezier(p0, p1, p2)
	return adaptiveCubicCurve(f.tolerance, f.cfg.MaxSubdivisions, p0, c1, c2, p2)
}

func (f *flattener) addCurve(points []Point, truncated bool) {
	if truncated {
		f.stats.Truncated++
	}
	for _, p := range points {
		f.add(p)
	}
}

// Polylines flattens the path and returns the points of each subpath.
func Polylines(p Path, cfg Config) [][]Point {
	subpaths, _ := Flatten(p, cfg)
	polylines := make([][]Point, 0, len(subpaths))
	for _, s := range subpaths {
		polylines = append(polylines, s.Points)
	}
	return polylines
}
