package svgeom

import (
	"testing"

	"github.com/tdewolff/test"
)

func trianglesArea(triangles []Triangle) float64 {
	area := 0.0
	for _, tr := range triangles {
		area += tr.Area()
	}
	return area
}

func TestTessellate(t *testing.T) {
	var tts = []struct {
		name      string
		polygons  []Polygon
		fillRule  FillRule
		triangles int
		area      float64
	}{
		{"empty", nil, NonZero, 0, 0.0},
		{"square", []Polygon{square(0.0, 0.0, 10.0)}, NonZero, 2, 100.0},
		{"hole", []Polygon{square(0.0, 0.0, 10.0), square(2.0, 2.0, 6.0).Reverse()}, NonZero, 8, 64.0},
		{"evenodd hole", []Polygon{square(0.0, 0.0, 10.0), square(2.0, 2.0, 6.0)}, EvenOdd, 8, 64.0},
		{"island", []Polygon{square(0.0, 0.0, 10.0), square(2.0, 2.0, 6.0).Reverse(), square(4.0, 4.0, 2.0)}, NonZero, 10, 68.0},
		{"disjoint", []Polygon{square(0.0, 0.0, 1.0), square(5.0, 0.0, 1.0)}, NonZero, 4, 2.0},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			triangles, err := Tessellate(tt.polygons, tt.fillRule)
			test.Error(t, err)
			test.T(t, len(triangles), tt.triangles)
			test.That(t, floatNear(trianglesArea(triangles), tt.area, 1e-9), trianglesArea(triangles))
		})
	}
}

func TestTriangleArea(t *testing.T) {
	test.Float(t, Triangle{{0.0, 0.0}, {4.0, 0.0}, {0.0, 3.0}}.Area(), 6.0)
	test.Float(t, Triangle{{0.0, 0.0}, {0.0, 3.0}, {4.0, 0.0}}.Area(), 6.0)
}
