package brush

import "github.com/Krispeckt/sketchforge/raster"

// line and applyMask mirror the style package's hand-rolled rasterizer
// (style/draw.go) — every brush mark is a flat, non-antialiased stroke,
// the same rendering cv2.line(..., thickness) produces.

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

func disk(g *raster.Gray8, cx, cy, r int, v uint8) {
	if r <= 0 {
		if cx >= 0 && cx < g.Width && cy >= 0 && cy < g.Height {
			g.Put(cx, cy, v)
		}
		return
	}
	for dy := -r; dy <= r; dy++ {
		y := cy + dy
		if y < 0 || y >= g.Height {
			continue
		}
		for dx := -r; dx <= r; dx++ {
			x := cx + dx
			if x < 0 || x >= g.Width {
				continue
			}
			if dx*dx+dy*dy <= r*r {
				g.Put(x, y, v)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func applyMask(result, mask *raster.Gray8, scale float64) {
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
