package raster

import (
	stdimage "image"
	"image/color"
)

// ColorModel, Bounds, At and Set let Rgb8 stand in for image.Image and
// draw.Image, so it can be handed directly to golang.org/x/image/draw
// scalers and to image/png.Encode without an intermediate copy.
func (c *Rgb8) ColorModel() color.Model { return color.RGBAModel }

func (c *Rgb8) Bounds() stdimage.Rectangle {
	return stdimage.Rect(0, 0, c.Width, c.Height)
}

func (c *Rgb8) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return color.RGBA{A: 255}
	}
	r, g, b := c.Get(x, y)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func (c *Rgb8) Set(x, y int, col color.Color) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	r, g, b, _ := col.RGBA()
	i := (y*c.Width + x) * 3
	c.Pix[i], c.Pix[i+1], c.Pix[i+2] = uint8(r>>8), uint8(g>>8), uint8(b>>8)
}

func (g *Gray8) ColorModel() color.Model { return color.GrayModel }

func (g *Gray8) Bounds() stdimage.Rectangle {
	return stdimage.Rect(0, 0, g.Width, g.Height)
}

func (g *Gray8) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return color.Gray{Y: 0}
	}
	return color.Gray{Y: g.Get(x, y)}
}

// Set satisfies draw.Image for Gray8 destinations (used by x/image/draw scalers).
func (g *Gray8) Set(x, y int, col color.Color) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return
	}
	gr := color.GrayModel.Convert(col).(color.Gray)
	g.Put(x, y, gr.Y)
}
