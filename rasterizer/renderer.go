package rasterizer

import (
	"image"
	"image/color"
	"math"

	"github.com/tdewolff/svgeom"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Palette holds the fill colors of consecutive layers.
var Palette = []color.RGBA{
	{0x4e, 0x79, 0xa7, 0xff},
	{0xf2, 0x8e, 0x2b, 0xff},
	{0xe1, 0x57, 0x59, 0xff},
	{0x76, 0xb7, 0xb2, 0xff},
	{0x59, 0xa1, 0x4f, 0xff},
	{0xed, 0xc9, 0x48, 0xff},
	{0xb0, 0x7a, 0xa1, 0xff},
	{0xff, 0x9d, 0xa7, 0xff},
}

// StrokeColor is the color of stroke outlines.
var StrokeColor = color.RGBA{0x20, 0x20, 0x20, 0xff}

// Margin is the number of pixels around the drawing.
const Margin = 4

// Draw draws the layers on a new image with given resolution (in pixels per unit). The image spans
// the bounds of all layers plus a margin.
func Draw(layers []*svgeom.Layer, resolution float64) *image.RGBA {
	bounds := svgeom.InfiniteInverse()
	for _, layer := range layers {
		if !layer.Empty() {
			bounds.EncapsulateBounds(layer.Bounds)
		}
	}
	if bounds.IsInfiniteInverse() {
		return image.NewRGBA(image.Rect(0, 0, 2*Margin, 2*Margin))
	}

	size := bounds.Size()
	w := int(math.Ceil(size.X*resolution)) + 2*Margin
	h := int(math.Ceil(size.Y*resolution)) + 2*Margin
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	m := svgeom.Identity.Translate(Margin, Margin).Scale(resolution, resolution).Translate(-bounds.Min().X, -bounds.Min().Y)
	r := New(img, m)
	for _, layer := range layers {
		r.RenderLayer(layer)
	}
	return img
}

// Renderer fills polygons on an image.
type Renderer struct {
	img draw.Image
	m   svgeom.Matrix
}

// New creates a renderer that draws to a rasterized image, with m the transformation from
// geometry to pixel coordinates.
func New(img draw.Image, m svgeom.Matrix) *Renderer {
	return &Renderer{
		img: img,
		m:   m,
	}
}

// RenderLayer fills the layer with a color from the palette and draws its stroke on top.
func (r *Renderer) RenderLayer(layer *svgeom.Layer) {
	r.Fill(layer.Fill, svgeom.NonZero, Palette[layer.Index%len(Palette)])
	r.Fill(layer.Stroke, svgeom.NonZero, StrokeColor)
}

// Fill fills the polygons under the fill rule.
func (r *Renderer) Fill(polygons []svgeom.Polygon, fillRule svgeom.FillRule, col color.Color) {
	if len(polygons) == 0 {
		return
	}
	if fillRule == svgeom.EvenOdd {
		// the vector rasterizer only fills nonzero, resolve overlaps beforehand
		polygons = svgeom.SimplifyPolygons(polygons, svgeom.EvenOdd)
	}

	size := r.img.Bounds().Size()
	ras := vector.NewRasterizer(size.X, size.Y)
	for _, p := range polygons {
		if len(p) < 3 {
			continue
		}
		q := r.m.Dot(p[0])
		ras.MoveTo(float32(q.X), float32(q.Y))
		for _, coord := range p[1:] {
			q = r.m.Dot(coord)
			ras.LineTo(float32(q.X), float32(q.Y))
		}
		ras.ClosePath()
	}
	ras.Draw(r.img, r.img.Bounds(), image.NewUniform(col), image.Point{})
}
