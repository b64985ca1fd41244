package style

import (
	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// Cartoon quantizes tone into four flat bands (outline, dark, mid, light)
// and stamps bold outline dots along strong edges (§4.2 Cartoon).
// Deterministic.
func RenderCartoon(gray, edges *raster.Gray8, intensity, stroke int, _ *prng.Stream) *raster.Gray8 {
	w, h := gray.Width, gray.Height
	out := raster.NewGray8(w, h)
	threshold := int(25 + float64(11-intensity)*10 - float64(stroke)*0.3)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			e := int(edges.Get(x, y))
			g := int(gray.Get(x, y))
			var v uint8
			switch {
			case e > threshold:
				v = 20
			case g < 85:
				v = 50
			case g < 170:
				v = 150
			default:
				v = 240
			}
			out.Put(x, y, v)
		}
	}

	step := maxInt(2, int(6-float64(stroke)*0.3))
	radius := int(0.5 + float64(stroke)*0.1)
	if radius > 0 {
		for y := 0; y < h; y += step {
			for x := 0; x < w; x += step {
				if int(edges.Get(x, y)) > threshold {
					disk(out, x, y, radius, 0)
				}
			}
		}
	}
	return out
}
