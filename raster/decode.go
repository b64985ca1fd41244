package raster

import (
	"bytes"
	stdimage "image"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DecodeError wraps a failure to interpret input bytes as an image.
// The pipeline maps this to the BadRequest/DecodeError boundary of §7.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string { return "raster: decode: " + e.Cause.Error() }
func (e *DecodeError) Unwrap() error { return e.Cause }

// Decode interprets raw bytes as PNG, JPEG, BMP, or WebP and returns an Rgb8
// working buffer. The blank imports register the codecs with the standard
// image.Decode dispatch; no format-specific branching lives here.
func Decode(data []byte) (*Rgb8, error) {
	img, _, err := stdimage.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Cause: err}
	}
	return FromImage(img), nil
}

// FromImage converts any image.Image into an owned Rgb8 buffer, dropping
// alpha. Conversion always allocates a fresh buffer; the source is never
// retained or mutated.
func FromImage(img stdimage.Image) *Rgb8 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := NewRgb8(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bch, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			out.Put(x, y, uint8(r>>8), uint8(g>>8), uint8(bch>>8))
		}
	}
	return out
}
