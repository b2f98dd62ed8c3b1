package rasterizer

import (
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/tdewolff/svgeom"
)

// Writer writes the layers to w.
type Writer func(w io.Writer, layers []*svgeom.Layer) error

// PNGWriter writes the layers as a PNG file
func PNGWriter(resolution float64) Writer {
	return func(w io.Writer, layers []*svgeom.Layer) error {
		return png.Encode(w, Draw(layers, resolution))
	}
}

// JPGWriter writes the layers as a JPG file
func JPGWriter(resolution float64, opts *jpeg.Options) Writer {
	return func(w io.Writer, layers []*svgeom.Layer) error {
		return jpeg.Encode(w, Draw(layers, resolution), opts)
	}
}

// GIFWriter writes the layers as a GIF file
func GIFWriter(resolution float64, opts *gif.Options) Writer {
	return func(w io.Writer, layers []*svgeom.Layer) error {
		return gif.Encode(w, Draw(layers, resolution), opts)
	}
}
