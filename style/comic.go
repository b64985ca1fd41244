package style

import (
	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// Comic renders varied-weight line art with stylized spot blacks and
// horizontal speed lines for a manga-ish, motion-heavy feel (§4.2 Comic).
func RenderComic(gray, edges *raster.Gray8, intensity, stroke int, rng *prng.Stream) *raster.Gray8 {
	w, h := gray.Width, gray.Height
	out := raster.NewGray8(w, h)
	baseThr := float64(10 + (11-intensity)*8)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ev := float64(edges.Get(x, y))
			if ev > baseThr {
				lineWeight := clampF64((ev-baseThr*0.5)*2, 0, 255)
				darkness := maxInt(0, 50-int(lineWeight*0.3))
				out.Put(x, y, uint8(darkness))
			} else {
				out.Put(x, y, 255)
			}
		}
	}

	spotStep := maxInt(4, 8-stroke/2)
	for y := spotStep; y < h; y += spotStep {
		for x := spotStep; x < w; x += spotStep {
			if gray.Get(x, y) >= 120 || rng.Float64() <= 0.35 {
				continue
			}
			radius := 2
			if rng.Float64() > 0.5 {
				radius = 1
			}
			ox := x + rng.Intn(3) - 1
			oy := y + rng.Intn(3) - 1
			disk(out, ox, oy, radius, 0)
		}
	}

	speedStep := maxInt(8, 16-stroke/2)
	for y := 0; y < h; y += speedStep * 2 {
		for x := 0; x < w; x += speedStep {
			if float64(edges.Get(x, y)) > baseThr*1.5 && rng.Float64() > 0.5 {
				line(out, maxInt(0, x-speedStep), y, minInt(w-1, x+speedStep), y, 100, 1)
			}
		}
	}
	return out
}
