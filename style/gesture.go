package style

import (
	"math"

	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// Gesture renders a light tonal base with edge emphasis, overlaid with
// short expressive marks angled perpendicular to the local Sobel gradient
// direction at each high-edge location (§4.2 Gesture). Deterministic: which
// step cells get a mark drawn is purely a function of edges, so Gesture
// never touches the random stream.
func RenderGesture(gray, edges *raster.Gray8, intensity, stroke int, _ *prng.Stream) *raster.Gray8 {
	w, h := gray.Width, gray.Height
	out := raster.NewGray8(w, h)
	edgeThr := float64(30 + (11-intensity)*6)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ev := float64(edges.Get(x, y))
			gv := float64(gray.Get(x, y))
			var v int
			switch {
			case ev > edgeThr:
				v = 230 - int((ev/255.0)*150)
			case gv > 150:
				v = 245
			default:
				v = maxInt(60, 250-int((gv/255.0)*120))
			}
			out.Put(x, y, uint8(v))
		}
	}

	step := maxInt(4, int(10-float64(stroke)*0.5))
	length := 9 + float64(stroke)*2.2
	for y := 0; y < h; y += step {
		for x := 0; x < w; x += step {
			ev := float64(edges.Get(x, y))
			if ev <= edgeThr*0.8 {
				continue
			}
			gx, gy := sobelGradient(gray, x, y)
			angle := math.Atan2(gy, gx) + math.Pi/2
			x2 := x + int(length*math.Cos(angle))
			y2 := y + int(length*math.Sin(angle))
			width := int(0.5 + float64(stroke)*0.15)
			line(out, x, y, x2, y2, 26, width)
		}
	}
	return out
}

// sobelGradient returns the raw 3×3 Sobel (gx, gy) components at (x, y),
// replicating border pixels like raster.Sobel does for its magnitude.
func sobelGradient(gray *raster.Gray8, x, y int) (float64, float64) {
	w, h := gray.Width, gray.Height
	at := func(xx, yy int) float64 {
		if xx < 0 {
			xx = 0
		}
		if xx >= w {
			xx = w - 1
		}
		if yy < 0 {
			yy = 0
		}
		if yy >= h {
			yy = h - 1
		}
		return float64(gray.Get(xx, yy))
	}
	gx := -at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1) +
		at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1)
	gy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
		at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)
	return gx, gy
}
