package style

import (
	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// Kernel is the shape every per-style renderer satisfies: tone and edge
// maps in, a rendered Gray8 canvas out, drawing from a shared PRNG stream
// when the style is stochastic (§3 KernelDispatch).
type Kernel func(gray, edges *raster.Gray8, intensity, stroke int, rng *prng.Stream) *raster.Gray8

var kernels = map[Tag]Kernel{
	Stippling:     RenderStippling,
	Charcoal:      RenderCharcoal,
	DryBrush:      RenderDryBrush,
	InkWash:       RenderInkWash,
	Comic:         RenderComic,
	Fashion:       RenderFashion,
	Urban:         RenderUrban,
	Architectural: RenderArchitectural,
	Academic:      RenderAcademic,
	Etching:       RenderEtching,
	Minimalist:    RenderMinimalist,
	Glitch:        RenderGlitch,
	MixedMedia:    RenderMixedMedia,
	Contour:       RenderContour,
	BlindContour:  RenderBlindContour,
	Gesture:       RenderGesture,
	Cartoon:       RenderCartoon,
	Hatching:      RenderHatching,
	Crosshatching: RenderCrosshatching,
	TonalPencil:   RenderTonalPencil,
}

// fallback is the unknown-tag / default "line" renderer: a plain inverted
// edge map (§3 KernelDispatch, "unknown tag falls back to inverted edge
// map").
func fallback(_, edges *raster.Gray8, _, _ int, _ *prng.Stream) *raster.Gray8 {
	w, h := edges.Width, edges.Height
	out := raster.NewGray8(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Put(x, y, 255-edges.Get(x, y))
		}
	}
	return out
}

// Render dispatches to the kernel named by tag, routing Fallback (and any
// tag with no registered kernel) to the default inverted edge map.
func Render(tag Tag, gray, edges *raster.Gray8, intensity, stroke int, rng *prng.Stream) *raster.Gray8 {
	if k, ok := kernels[tag]; ok {
		return k(gray, edges, intensity, stroke, rng)
	}
	return fallback(gray, edges, intensity, stroke, rng)
}
