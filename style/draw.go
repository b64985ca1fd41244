package style

import "github.com/Krispeckt/sketchforge/raster"

// Marks are laid onto a throwaway Gray8 mask and then blended in with
// inkScale, mirroring the reference's "draw into a zero mask, multiply where
// mask > 0" idiom used by every directional-mark kernel (charcoal, fashion,
// mixed media, the charcoal brush pass). A hand-rolled rasterizer
// is used instead of golang/freetype's anti-aliased path stroker: every mark
// in the reference is a flat cv2.line/cv2.circle call with no AA, and
// introducing antialiased edges here would soften exact ink values that the
// boundary tests pin down.

// disk fills a filled circle of radius r centered at (cx, cy) with value v,
// clipped to bounds — the Bresenham circle-fill used by cv2.circle(..., -1).
func disk(g *raster.Gray8, cx, cy, r int, v uint8) {
	if r <= 0 {
		if cx >= 0 && cx < g.Width && cy >= 0 && cy < g.Height {
			g.Put(cx, cy, v)
		}
		return
	}
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		y := cy + dy
		if y < 0 || y >= g.Height {
			continue
		}
		span := r*r - dy*dy
		if span < 0 {
			continue
		}
		dx := isqrt(span)
		x0, x1 := cx-dx, cx+dx
		if x0 < 0 {
			x0 = 0
		}
		if x1 >= g.Width {
			x1 = g.Width - 1
		}
		for x := x0; x <= x1; x++ {
			if (x-cx)*(x-cx)+dy*dy <= r2 {
				g.Put(x, y, v)
			}
		}
	}
}

func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// line draws a thick line segment from (x0,y0) to (x1,y1) with value v and
// the given width, via Bresenham stepping with a disk stamp at each step —
// the same flat, non-antialiased rendering cv2.line(..., thickness) produces
// for thickness > 1.
func line(g *raster.Gray8, x0, y0, x1, y1 int, v uint8, width int) {
	radius := (width - 1) / 2
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	x, y := x0, y0
	for {
		disk(g, x, y, radius, v)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// polyline draws a connected sequence of points as consecutive line segments
// — the mark primitive behind blind contour's long edge-following walk
// (cv2.polylines).
func polyline(g *raster.Gray8, pts [][2]int, v uint8, width int) {
	for i := 0; i+1 < len(pts); i++ {
		line(g, pts[i][0], pts[i][1], pts[i+1][0], pts[i+1][1], v, width)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// applyMask multiplies every pixel where mask > 0 by the given ink-scale
// factor, the shared "has_mark" blend step used across the directional-mark
// kernels and brush passes.
func applyMask(result *raster.Gray8, mask *raster.Gray8, scale float64) {
	for y := 0; y < result.Height; y++ {
		for x := 0; x < result.Width; x++ {
			if mask.Get(x, y) == 0 {
				continue
			}
			v := float64(result.Get(x, y)) * scale
			result.Put(x, y, raster.Clamp8(float32(v)))
		}
	}
}
