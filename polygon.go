package svgeom

import (
	"fmt"
	"math"
	"strings"

	clipper "github.com/ctessum/go.clipper"
)

// FillRule is the rule that decides which regions of overlapping or self-intersecting polygons are filled.
type FillRule int

// Fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

func (fillRule FillRule) String() string {
	switch fillRule {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	}
	return fmt.Sprintf("FillRule(%d)", int(fillRule))
}

// UnmarshalText parses "nonzero" or "evenodd", as used in configuration files and environment variables.
func (fillRule *FillRule) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "nonzero", "non-zero":
		*fillRule = NonZero
	case "evenodd", "even-odd":
		*fillRule = EvenOdd
	default:
		return fmt.Errorf("%w: unknown fill rule %q", ErrInvalidConfig, string(b))
	}
	return nil
}

// MarshalText returns the name of the fill rule.
func (fillRule FillRule) MarshalText() ([]byte, error) {
	return []byte(fillRule.String()), nil
}

func (fillRule FillRule) polyFillType() clipper.PolyFillType {
	if fillRule == EvenOdd {
		return clipper.PftEvenOdd
	}
	return clipper.PftNonZero
}

////////////////////////////////////////////////////////////////

// ClipperScale is the fixed point scale of the boolean operations, ie. coordinates keep three decimals.
const ClipperScale = 1000.0

// ConvertFloatToInt converts a polygon to the fixed point coordinates of the boolean operations.
// A repeated closing point is dropped.
func ConvertFloatToInt(p Polygon) clipper.Path {
	if 1 < len(p) && p[0] == p[len(p)-1] {
		p = p[:len(p)-1]
	}
	path := make(clipper.Path, 0, len(p))
	for _, coord := range p {
		path = append(path, &clipper.IntPoint{
			X: clipper.CInt(math.Round(coord.X * ClipperScale)),
			Y: clipper.CInt(math.Round(coord.Y * ClipperScale)),
		})
	}
	return path
}

// ConvertIntToFloat converts a fixed point path back to a polygon. A repeated closing point is dropped.
func ConvertIntToFloat(path clipper.Path) Polygon {
	if 1 < len(path) && path[0].X == path[len(path)-1].X && path[0].Y == path[len(path)-1].Y {
		path = path[:len(path)-1]
	}
	p := make(Polygon, 0, len(path))
	for _, q := range path {
		p = append(p, Point{float64(q.X) / ClipperScale, float64(q.Y) / ClipperScale})
	}
	return p
}

func convertFloatsToInts(polygons []Polygon) clipper.Paths {
	paths := make(clipper.Paths, 0, len(polygons))
	for _, p := range polygons {
		if path := ConvertFloatToInt(p); 3 <= len(path) {
			paths = append(paths, path)
		}
	}
	return paths
}

func convertIntsToFloats(paths clipper.Paths) []Polygon {
	if len(paths) == 0 {
		return nil
	}
	polygons := make([]Polygon, 0, len(paths))
	for _, path := range paths {
		if p := ConvertIntToFloat(path); 3 <= len(p) {
			polygons = append(polygons, p)
		}
	}
	if len(polygons) == 0 {
		return nil
	}
	return polygons
}

// execute runs a boolean operation. Panics of the clipping library are recovered and yield no result.
func execute(op clipper.ClipType, subjects, clips clipper.Paths, fillRule FillRule) (result clipper.Paths) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Debug("boolean operation failed", "op", op, "subjects", len(subjects), "clips", len(clips), "error", r)
			result = nil
		}
	}()

	c := clipper.NewClipper(clipper.IoNone)
	c.AddPaths(subjects, clipper.PtSubject, true)
	if 0 < len(clips) {
		c.AddPaths(clips, clipper.PtClip, true)
	}
	solution, ok := c.Execute1(op, fillRule.polyFillType(), fillRule.polyFillType())
	if !ok {
		Logger().Debug("boolean operation failed", "op", op, "subjects", len(subjects), "clips", len(clips))
		return nil
	}
	return solution
}

// ClipPolygon returns the intersection of the subjects and the clip polygons. Either being empty
// returns nil.
func ClipPolygon(subjects, clips []Polygon, fillRule FillRule) []Polygon {
	if len(subjects) == 0 || len(clips) == 0 {
		return nil
	}
	s, c := convertFloatsToInts(subjects), convertFloatsToInts(clips)
	if len(s) == 0 || len(c) == 0 {
		return nil
	}
	return convertIntsToFloats(execute(clipper.CtIntersection, s, c, fillRule))
}

// DifferencePolygon returns the subjects with the clip polygons removed.
func DifferencePolygon(subjects, clips []Polygon, fillRule FillRule) []Polygon {
	if len(subjects) == 0 {
		return nil
	}
	s, c := convertFloatsToInts(subjects), convertFloatsToInts(clips)
	if len(s) == 0 {
		return nil
	} else if len(c) == 0 {
		return convertIntsToFloats(execute(clipper.CtUnion, s, nil, fillRule))
	}
	return convertIntsToFloats(execute(clipper.CtDifference, s, c, fillRule))
}

// UnionPolygons returns the union of all polygons in a single operation.
func UnionPolygons(polygons []Polygon, fillRule FillRule) []Polygon {
	s := convertFloatsToInts(polygons)
	if len(s) == 0 {
		return nil
	}
	return convertIntsToFloats(execute(clipper.CtUnion, s, nil, fillRule))
}

// MergePolygon unions the polygons pairwise from left to right: the result of the first polygon is
// united with the second, that result with the third, and so on.
func MergePolygon(polygons []Polygon, fillRule FillRule) []Polygon {
	var acc clipper.Paths
	for _, p := range polygons {
		path := ConvertFloatToInt(p)
		if len(path) < 3 {
			continue
		}
		if acc == nil {
			acc = execute(clipper.CtUnion, clipper.Paths{path}, nil, fillRule)
			continue
		}
		acc = execute(clipper.CtUnion, acc, clipper.Paths{path}, fillRule)
	}
	return convertIntsToFloats(acc)
}

// SimplifyPolygon removes the self-intersections of the polygon under the fill rule.
func SimplifyPolygon(p Polygon, fillRule FillRule) []Polygon {
	return SimplifyPolygons([]Polygon{p}, fillRule)
}

// SimplifyPolygons removes the self-intersections and overlaps of the polygons under the fill rule.
func SimplifyPolygons(polygons []Polygon, fillRule FillRule) (simplified []Polygon) {
	paths := convertFloatsToInts(polygons)
	if len(paths) == 0 {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			Logger().Debug("simplify failed", "polygons", len(paths), "error", r)
			simplified = nil
		}
	}()
	c := clipper.NewClipper(clipper.IoNone)
	return convertIntsToFloats(c.SimplifyPolygons(paths, fillRule.polyFillType()))
}

// PolygonsArea returns the area of the polygon set as measured on the fixed point grid, holes
// subtracted. Overlaps should be removed first, see SimplifyPolygons.
func PolygonsArea(polygons []Polygon) float64 {
	return math.Abs(clipper.AreaCombined(convertFloatsToInts(polygons))) / ClipperScale / ClipperScale
}

// PolygonTree is a polygon with its holes, which in turn may contain islands.
type PolygonTree struct {
	Contour  Polygon
	Hole     bool
	Children []*PolygonTree
}

// PolygonTrees returns the outer contours of the polygon set under the fill rule, each with its holes.
func PolygonTrees(polygons []Polygon, fillRule FillRule) (trees []*PolygonTree) {
	paths := convertFloatsToInts(polygons)
	if len(paths) == 0 {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			Logger().Debug("polygon tree failed", "polygons", len(paths), "error", r)
			trees = nil
		}
	}()

	c := clipper.NewClipper(clipper.IoNone)
	c.AddPaths(paths, clipper.PtSubject, true)
	tree, ok := c.Execute2(clipper.CtUnion, fillRule.polyFillType(), fillRule.polyFillType())
	if !ok || tree == nil {
		return nil
	}

	var convert func(*clipper.PolyNode) *PolygonTree
	convert = func(node *clipper.PolyNode) *PolygonTree {
		t := &PolygonTree{
			Contour: ConvertIntToFloat(node.Contour()),
			Hole:    node.IsHole(),
		}
		for _, child := range node.Childs() {
			t.Children = append(t.Children, convert(child))
		}
		return t
	}
	for _, node := range tree.Childs() {
		trees = append(trees, convert(node))
	}
	return trees
}
