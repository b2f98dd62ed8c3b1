package svgeom

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/tdewolff/test"
)

func TestRamerDouglasPeucker(t *testing.T) {
	var tts = []struct {
		name      string
		points    []Point
		tolerance float64
		expected  []Point
	}{
		{"empty", nil, 1.0, []Point{}},
		{"two", []Point{{0.0, 0.0}, {1.0, 0.0}}, 1.0, []Point{{0.0, 0.0}, {1.0, 0.0}}},
		{"collinear", []Point{{0.0, 0.0}, {1.0, 0.0}, {2.0, 0.0}, {3.0, 0.0}}, 0.1, []Point{{0.0, 0.0}, {3.0, 0.0}}},
		{"below", []Point{{0.0, 0.0}, {1.0, 0.05}, {2.0, 0.0}}, 0.1, []Point{{0.0, 0.0}, {2.0, 0.0}}},
		{"above", []Point{{0.0, 0.0}, {1.0, 0.5}, {2.0, 0.0}}, 0.1, []Point{{0.0, 0.0}, {1.0, 0.5}, {2.0, 0.0}}},
		{"equal", []Point{{0.0, 0.0}, {1.0, 0.1}, {2.0, 0.0}}, 0.1, []Point{{0.0, 0.0}, {2.0, 0.0}}},
		{"zero tolerance", []Point{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}}, 0.0, []Point{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}}},
		{"tie", []Point{{0.0, 0.0}, {1.0, 1.0}, {2.0, -1.0}, {3.0, 0.0}}, 0.5, []Point{{0.0, 0.0}, {1.0, 1.0}, {2.0, -1.0}, {3.0, 0.0}}},
		{"closed", []Point{{0.0, 0.0}, {5.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}, {0.0, 0.0}}, 0.1, []Point{{0.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}, {0.0, 0.0}}},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			test.T(t, RamerDouglasPeucker(tt.points, tt.tolerance), tt.expected)
		})
	}
}

func TestRamerDouglasPeuckerIdempotent(t *testing.T) {
	for i := 0; i < 20; i++ {
		points := make([]Point, 50)
		for j := range points {
			points[j] = Point{float64(j), 2.0 * math.Sin(float64(j)/3.0) + rand.Float64()}
		}
		for _, tolerance := range []float64{0.1, 0.5, 2.0} {
			once := RamerDouglasPeucker(points, tolerance)
			test.T(t, once[0], points[0])
			test.T(t, once[len(once)-1], points[len(points)-1])
			test.T(t, RamerDouglasPeucker(once, tolerance), once, "tolerance", tolerance)
		}
	}
}

func TestSubpathOptimise(t *testing.T) {
	s := Subpath{Points: []Point{{0.0, 0.0}, {5.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}}, Closed: true}
	test.T(t, s.Optimise(0.1), Subpath{Points: []Point{{0.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}}, Closed: true})

	short := Subpath{Points: []Point{{0.0, 0.0}, {1.0, 0.0}}}
	test.T(t, short.Optimise(10.0), short)
}
