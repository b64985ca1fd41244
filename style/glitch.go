package style

import (
	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// Glitch corrupts the edge map with per-pixel noise, rolls rows
// horizontally, and overlays chromatic-aberration and flat-dropout bands
// for a broken-signal look (§4.2 Glitch). Every random draw after the
// per-pixel noise pass runs in canonical row-major order.
func RenderGlitch(_, edges *raster.Gray8, intensity, stroke int, rng *prng.Stream) *raster.Gray8 {
	w, h := edges.Width, edges.Height
	thr := maxInt(10, 60-intensity*5)
	noiseChance := 0.04 + float64(intensity)*0.025

	out := raster.NewGray8(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			e := float64(edges.Get(x, y))
			if rng.Float64() < noiseChance {
				e = rng.Float64() * 255
			}
			eu8 := clampInt(int(e+0.5), 0, 255)
			if eu8 > thr {
				out.Put(x, y, uint8(maxInt(0, 230-eu8)))
			} else {
				out.Put(x, y, 255)
			}
		}
	}

	corruptChance := 0.04 + float64(intensity)*0.035
	maxShift := maxInt(1, roundInt(float64(w)*(0.03+float64(intensity)*0.04)))
	for y := 0; y < h; y++ {
		if rng.Float64() > corruptChance {
			continue
		}
		shift := roundInt((rng.Float64() - 0.5) * 2 * float64(maxShift))
		rollRow(out, y, shift)
	}

	numBars := roundInt(3 + float64(intensity)*1.5)
	for i := 0; i < numBars; i++ {
		barY := rng.Intn(h)
		barH := maxInt(1, roundInt(1+rng.Float64()*(3+float64(intensity)*0.5)))
		y1, y2 := maxInt(0, barY), minInt(h, barY+barH)
		for y := y1; y < y2; y++ {
			for x := 0; x < w; x++ {
				out.Put(x, y, uint8(clampInt(int(out.Get(x, y))+35, 0, 255)))
			}
		}
	}

	numDropouts := roundInt(2 + float64(intensity)*0.8)
	for i := 0; i < numDropouts; i++ {
		barY := rng.Intn(h)
		barH := maxInt(1, roundInt(1+rng.Float64()*3))
		y1, y2 := maxInt(0, barY), minInt(h, barY+barH)
		delta := 50
		if rng.Float64() <= 0.5 {
			delta = -50
		}
		for y := y1; y < y2; y++ {
			for x := 0; x < w; x++ {
				out.Put(x, y, uint8(clampInt(int(out.Get(x, y))+delta, 0, 255)))
			}
		}
	}
	return out
}

// rollRow circularly shifts row y of g by shift columns, matching
// numpy.roll's wraparound semantics.
func rollRow(g *raster.Gray8, y, shift int) {
	w := g.Width
	shift = ((shift % w) + w) % w
	if shift == 0 {
		return
	}
	row := make([]uint8, w)
	for x := 0; x < w; x++ {
		row[x] = g.Get(x, y)
	}
	for x := 0; x < w; x++ {
		g.Put((x+shift)%w, y, row[x])
	}
}
