package svgeom

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestDashPattern(t *testing.T) {
	test.T(t, dashPattern([]float64{1.0, 2.0}), []float64{1.0, 2.0})
	test.T(t, dashPattern([]float64{1.0, 2.0, 3.0}), []float64{1.0, 2.0, 3.0, 1.0, 2.0, 3.0})
	test.That(t, dashPattern(nil) == nil)
	test.That(t, dashPattern([]float64{0.0, 0.0}) == nil)
	test.That(t, dashPattern([]float64{1.0, -1.0}) == nil)
	test.That(t, dashPattern([]float64{math.NaN()}) == nil)
}

func TestDash(t *testing.T) {
	line := Subpath{Points: []Point{{0.0, 0.0}, {10.0, 0.0}}}
	var tts = []struct {
		name     string
		array    []float64
		offset   float64
		expected []Subpath
	}{
		{"none", nil, 0.0, []Subpath{line}},
		{"even", []float64{2.0, 2.0}, 0.0, []Subpath{
			{Points: []Point{{0.0, 0.0}, {2.0, 0.0}}},
			{Points: []Point{{4.0, 0.0}, {6.0, 0.0}}},
			{Points: []Point{{8.0, 0.0}, {10.0, 0.0}}},
		}},
		{"offset", []float64{2.0, 2.0}, 1.0, []Subpath{
			{Points: []Point{{0.0, 0.0}, {1.0, 0.0}}},
			{Points: []Point{{3.0, 0.0}, {5.0, 0.0}}},
			{Points: []Point{{7.0, 0.0}, {9.0, 0.0}}},
		}},
		{"negative offset", []float64{2.0, 2.0}, -3.0, []Subpath{
			{Points: []Point{{0.0, 0.0}, {1.0, 0.0}}},
			{Points: []Point{{3.0, 0.0}, {5.0, 0.0}}},
			{Points: []Point{{7.0, 0.0}, {9.0, 0.0}}},
		}},
		{"odd", []float64{3.0}, 0.0, []Subpath{
			{Points: []Point{{0.0, 0.0}, {3.0, 0.0}}},
			{Points: []Point{{6.0, 0.0}, {9.0, 0.0}}},
		}},
		{"long", []float64{20.0, 5.0}, 0.0, []Subpath{line}},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			test.T(t, Dash(line, tt.array, tt.offset), tt.expected)
		})
	}
}

func TestDashCorner(t *testing.T) {
	corner := Subpath{Points: []Point{{0.0, 0.0}, {10.0, 0.0}, {10.0, 8.0}}}
	dashes := Dash(corner, []float64{12.0, 4.0}, 0.0)
	test.T(t, dashes, []Subpath{
		{Points: []Point{{0.0, 0.0}, {10.0, 0.0}, {10.0, 2.0}}},
		{Points: []Point{{10.0, 6.0}, {10.0, 8.0}}},
	})
}

func TestDashClosed(t *testing.T) {
	box := Subpath{Points: []Point{{0.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}, {0.0, 10.0}}, Closed: true}

	// the dash running through the start point is joined with the last dash
	dashes := Dash(box, []float64{30.0, 10.0}, 5.0)
	test.T(t, dashes, []Subpath{
		{Points: []Point{{0.0, 5.0}, {0.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}, {5.0, 10.0}}},
	})

	// a pattern longer than the perimeter leaves the subpath as is
	test.T(t, Dash(box, []float64{50.0, 10.0}, 0.0), []Subpath{box})
}
