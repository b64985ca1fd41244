package style

import (
	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// Stippling renders tone-driven dots: darker pixels earn larger, denser
// marks. White canvas, black ink (§4.2 Stippling).
func RenderStippling(gray, edges *raster.Gray8, intensity, stroke int, rng *prng.Stream) *raster.Gray8 {
	w, h := gray.Width, gray.Height
	out := raster.NewGray8(w, h)
	out.Fill(255)

	step := maxInt(3, roundInt(14-float64(stroke)*1.1))
	dotThr := 90 + intensity*11
	baseR := 0.4 + float64(stroke)*0.18

	for y := 0; y < h; y += step {
		for x := 0; x < w; x += step {
			g := int(gray.Get(x, y))
			if g >= dotThr {
				continue
			}
			darkness := 1.0 - float64(g)/float64(maxInt(1, dotThr))
			r := maxInt(1, roundInt(baseR*(0.5+darkness)))
			jx := maxInt(r, minInt(w-1-r, x+int((rng.Float64()-0.5)*float64(step)*0.8)))
			jy := maxInt(r, minInt(h-1-r, y+int((rng.Float64()-0.5)*float64(step)*0.8)))
			disk(out, jx, jy, r, 0)
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
