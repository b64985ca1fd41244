// Command sketchctl runs the stylization pipeline over a local image file.
// The pipeline itself has no transport — HTTP serving is explicitly out of
// scope (§1 Non-goals) — so this is a thin flag-driven front end over
// pipeline.Stylize, the idiom the rest of the retrieved corpus uses for a
// command-line entry point onto a library (flag + log, no third-party CLI
// framework: none of the example repos pull one in).
package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/Krispeckt/sketchforge/config"
	"github.com/Krispeckt/sketchforge/pipeline"
)

func main() {
	in := flag.String("in", "", "input image path (PNG, JPEG, BMP, or WebP)")
	out := flag.String("out", "out.png", "output PNG path")

	artStyle := flag.String("art-style", "pencil", "medium: pencil, ink, marker, pen, pastel")
	styleName := flag.String("style", "line", "rendering style, see style.Names()")
	brushName := flag.String("brush", "line", "brush overlay: line, hatch, crosshatch, charcoal, inkwash")
	stroke := flag.Int("stroke", 1, "stroke weight, 1-10")
	intensity := flag.Int("intensity", 6, "edge intensity, 1-10")
	smoothing := flag.Int("smoothing", 0, "post-render blur radius, 0 disables")
	seed := flag.Int64("seed", 0, "PRNG seed for stochastic styles")
	skipHatching := flag.Bool("skip-hatching", false, "reserved, currently inert")
	colorize := flag.Bool("colorize", false, "blend sketch structure with source color")
	invert := flag.Bool("invert", false, "invert the final canvas")
	contrast := flag.Int("contrast", 0, "contrast adjustment, -100..100")
	saturation := flag.Int("saturation", 0, "saturation adjustment, -100..100")
	hueShift := flag.Int("hue-shift", 0, "hue shift")
	resolution := flag.Int("resolution", 0, "target width in pixels, 0 uses the default max-dimension cap")
	aspect := flag.String("aspect", "", "target aspect ratio as W:H, only used with -resolution")
	flag.Parse()

	if *in == "" {
		log.Fatal("sketchctl: -in is required")
	}

	values := map[string][]string{
		"artStyle":     {*artStyle},
		"style":        {*styleName},
		"brush":        {*brushName},
		"stroke":       {strconv.Itoa(*stroke)},
		"intensity":    {strconv.Itoa(*intensity)},
		"smoothing":    {strconv.Itoa(*smoothing)},
		"seed":         {strconv.FormatInt(*seed, 10)},
		"skipHatching": {strconv.FormatBool(*skipHatching)},
		"colorize":     {strconv.FormatBool(*colorize)},
		"invert":       {strconv.FormatBool(*invert)},
		"contrast":     {strconv.Itoa(*contrast)},
		"saturation":   {strconv.Itoa(*saturation)},
		"hueShift":     {strconv.Itoa(*hueShift)},
	}
	if *resolution > 0 {
		values["resolution"] = []string{strconv.Itoa(*resolution)}
		if *aspect != "" {
			values["aspect"] = []string{*aspect}
		}
	}
	cfg := config.FromValues(values)

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("sketchctl: reading %s: %v", *in, err)
	}

	png, err := pipeline.Stylize(data, cfg)
	if err != nil {
		log.Fatalf("sketchctl: %v", err)
	}

	if err := os.WriteFile(*out, png, 0o644); err != nil {
		log.Fatalf("sketchctl: writing %s: %v", *out, err)
	}
	log.Printf("sketchctl: wrote %s", *out)
}
