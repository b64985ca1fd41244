package raster

import (
	"bytes"
	"image/png"
)

// EncodeError wraps a PNG encoder failure.
type EncodeError struct {
	Cause error
}

func (e *EncodeError) Error() string { return "raster: encode: " + e.Cause.Error() }
func (e *EncodeError) Unwrap() error { return e.Cause }

// EncodePNG serializes an Rgb8 working buffer to PNG bytes (§2 stage 8).
func EncodePNG(img *Rgb8) ([]byte, error) {
	var buf bytes.Buffer
	enc := &png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, &EncodeError{Cause: err}
	}
	return buf.Bytes(), nil
}
