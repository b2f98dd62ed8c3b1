package svgeom

import (
	"fmt"

	"github.com/ByteArena/poly2tri-go"
)

// Triangle is a triangle of a tessellated polygon set.
type Triangle [3]Point

func poly2triContour(p Polygon) []*poly2tri.Point {
	contour := make([]*poly2tri.Point, 0, len(p))
	for _, coord := range p {
		contour = append(contour, poly2tri.NewPoint(coord.X, coord.Y))
	}
	return contour
}

// Tessellate triangulates the area filled by the polygons under the fill rule. The polygon set is
// first resolved into outer contours with their holes, which are triangulated independently.
func Tessellate(polygons []Polygon, fillRule FillRule) ([]Triangle, error) {
	var triangles []Triangle
	var tessellate func([]*PolygonTree) error
	tessellate = func(trees []*PolygonTree) error {
		for _, tree := range trees {
			if tree.Hole {
				// islands inside holes
				for _, child := range tree.Children {
					if err := tessellate([]*PolygonTree{child}); err != nil {
						return err
					}
				}
				continue
			}

			var holes []Polygon
			for _, child := range tree.Children {
				holes = append(holes, child.Contour)
			}
			ts, err := tessellateContour(tree.Contour, holes)
			if err != nil {
				return err
			}
			triangles = append(triangles, ts...)
			if err := tessellate(tree.Children); err != nil {
				return err
			}
		}
		return nil
	}
	if err := tessellate(PolygonTrees(polygons, fillRule)); err != nil {
		return nil, err
	}
	return triangles, nil
}

func tessellateContour(contour Polygon, holes []Polygon) (triangles []Triangle, err error) {
	if len(contour) < 3 {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			Logger().Debug("tessellation failed", "points", len(contour), "holes", len(holes), "error", r)
			triangles = nil
			err = fmt.Errorf("%w: %v", ErrTessellation, r)
		}
	}()

	swctx := poly2tri.NewSweepContext(poly2triContour(contour), false)
	for _, hole := range holes {
		if 3 <= len(hole) {
			swctx.AddHole(poly2triContour(hole))
		}
	}
	swctx.Triangulate()

	for _, tr := range swctx.GetTriangles() {
		p0 := Point{tr.Points[0].X, tr.Points[0].Y}
		p1 := Point{tr.Points[1].X, tr.Points[1].Y}
		p2 := Point{tr.Points[2].X, tr.Points[2].Y}
		triangles = append(triangles, Triangle{p0, p1, p2})
	}
	return triangles, nil
}

// Area returns the area of the triangle.
func (t Triangle) Area() float64 {
	return Polygon(t[:]).Area()
}
