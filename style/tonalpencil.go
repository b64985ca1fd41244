package style

import (
	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// TonalPencil blends edge strength and gray tone into a single smooth
// value, inverted so dark tone reads as ink, then softens the result with
// a Gaussian blur (§4.2 Tonal Pencil). Deterministic.
func RenderTonalPencil(gray, edges *raster.Gray8, intensity, _ int, _ *prng.Stream) *raster.Gray8 {
	w, h := gray.Width, gray.Height
	edgeWeight := (float64(intensity) / 11.0) * 0.7
	grayWeight := 1.0 - (float64(intensity)/11.0)*0.5

	out := raster.NewGray8(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			e := float64(edges.Get(x, y))
			g := float64(gray.Get(x, y))
			blended := edgeWeight*e + grayWeight*g*0.5
			v := 255 - clampInt(int(blended), 0, 255)
			out.Put(x, y, uint8(v))
		}
	}
	return raster.GaussianBlurSigma(out, 2, 1.5)
}
