package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
	"github.com/tdewolff/svgeom"
)

// Precision is the number of significant digits of written coordinates.
const Precision = 8

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", Precision, f)
	return string(minify.Number([]byte(s), Precision))
}

type layerJSON struct {
	ID       string         `json:"id"`
	Bounds   [4]float64     `json:"bounds"`
	Fill     [][][2]float64 `json:"fill,omitempty"`
	Stroke   [][][2]float64 `json:"stroke,omitempty"`
	Overlaps []string       `json:"overlaps,omitempty"`
}

func polygonsJSON(polygons []svgeom.Polygon) [][][2]float64 {
	var rings [][][2]float64
	for _, p := range polygons {
		ring := make([][2]float64, 0, len(p))
		for _, coord := range p {
			ring = append(ring, [2]float64{coord.X, coord.Y})
		}
		rings = append(rings, ring)
	}
	return rings
}

func writeJSON(w io.Writer, layers []*svgeom.Layer) error {
	out := make([]layerJSON, 0, len(layers))
	for _, layer := range layers {
		l := layerJSON{
			ID:       layer.ShapeID,
			Fill:     polygonsJSON(layer.Fill),
			Stroke:   polygonsJSON(layer.Stroke),
			Overlaps: layer.Overlaps,
		}
		if !layer.Empty() {
			min, max := layer.Bounds.Min(), layer.Bounds.Max()
			l.Bounds = [4]float64{min.X, min.Y, max.X, max.Y}
		}
		out = append(out, l)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// multiPolygon groups the polygons into outer rings with their holes, as GeoJSON requires.
func multiPolygon(polygons []svgeom.Polygon) orb.MultiPolygon {
	ring := func(p svgeom.Polygon) orb.Ring {
		r := make(orb.Ring, 0, len(p)+1)
		for _, coord := range p {
			r = append(r, orb.Point{coord.X, coord.Y})
		}
		if 0 < len(p) {
			r = append(r, orb.Point{p[0].X, p[0].Y})
		}
		return r
	}

	var mp orb.MultiPolygon
	var add func([]*svgeom.PolygonTree)
	add = func(trees []*svgeom.PolygonTree) {
		for _, tree := range trees {
			poly := orb.Polygon{ring(tree.Contour)}
			for _, hole := range tree.Children {
				poly = append(poly, ring(hole.Contour))
				add(hole.Children)
			}
			mp = append(mp, poly)
		}
	}
	add(svgeom.PolygonTrees(polygons, svgeom.NonZero))
	return mp
}

func writeGeoJSON(w io.Writer, layers []*svgeom.Layer) error {
	fc := geojson.NewFeatureCollection()
	for _, layer := range layers {
		if layer.Empty() {
			continue
		}
		f := geojson.NewFeature(multiPolygon(layer.Polygons()))
		f.Properties["id"] = layer.ShapeID
		f.Properties["overlaps"] = layer.Overlaps
		f.BBox = geojson.NewBBox(layer.Bounds.Bound())
		fc.Append(f)
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func pathData(polygons []svgeom.Polygon) string {
	sb := strings.Builder{}
	for _, p := range polygons {
		for i, coord := range p {
			if i == 0 {
				sb.WriteString("M")
			} else {
				sb.WriteString("L")
			}
			fmt.Fprintf(&sb, "%v %v", num(coord.X), num(coord.Y))
		}
		if 0 < len(p) {
			sb.WriteString("z")
		}
	}
	return sb.String()
}

func writeSVG(w io.Writer, layers []*svgeom.Layer) error {
	bounds := svgeom.InfiniteInverse()
	for _, layer := range layers {
		if !layer.Empty() {
			bounds.EncapsulateBounds(layer.Bounds)
		}
	}
	if bounds.IsInfiniteInverse() {
		bounds = svgeom.NewBounds(svgeom.Point{}, svgeom.Point{})
	}

	sb := strings.Builder{}
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%v %v %v %v">`, num(bounds.Min().X), num(bounds.Min().Y), num(bounds.Size().X), num(bounds.Size().Y))
	for _, layer := range layers {
		if 0 < len(layer.Fill) {
			fmt.Fprintf(&sb, `<path id="%s-fill" d="%s" fill="#000000"/>`, layer.ShapeID, pathData(layer.Fill))
		}
		if 0 < len(layer.Stroke) {
			fmt.Fprintf(&sb, `<path id="%s-stroke" d="%s" fill="#000000"/>`, layer.ShapeID, pathData(layer.Stroke))
		}
	}
	sb.WriteString("</svg>")

	m := minify.New()
	m.AddFunc("image/svg+xml", svg.Minify)
	s, err := m.String("image/svg+xml", sb.String())
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
