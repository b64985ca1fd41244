// Package config defines the flat configuration record accepted by the
// stylization pipeline (§6) and the per-field defaulting policy a caller's
// transport layer would apply before invoking it (§7). No networking lives
// here — FromValues takes an already-parsed map of form-style values, so it
// can be driven by net/http, a CLI flag set, or a test, with identical
// semantics.
package config

import (
	"strconv"
	"strings"
)

// Config is the immutable-per-request record every pipeline stage reads
// from (§3 Config entity).
type Config struct {
	ArtStyle string // medium tag: pencil, ink, marker, pen, pastel
	Style    string // style tag, see style.Tag
	Brush    string // brush tag: line, hatch, crosshatch, charcoal, inkwash

	Stroke    int // [1,10]
	Intensity int // [1,10]
	Smoothing int // >=0
	Seed      int64

	SkipHatching bool // reserved, inert — see §9
	Colorize     bool
	Invert       bool

	Contrast   int // [-100,100]
	Saturation int // [-100,100]
	HueShift   int

	// Resolution and AspectW/AspectH are 0 when the caller did not supply
	// them at all — in that case the preprocessor falls back to the plain
	// §4.1 "cap longer side at 1200" resize. When the caller does supply
	// the field (even as an empty/invalid string), FromValues defaults
	// Resolution to 1024 and the aspect to 1:1 per §6's table.
	Resolution int
	AspectW    int
	AspectH    int
}

// Default returns the zero-request Config: the defaults named in §6's
// table, with no resolution/aspect override.
func Default() Config {
	return Config{
		ArtStyle:  "pencil",
		Style:     "line",
		Brush:     "line",
		Stroke:    1,
		Intensity: 6,
		Smoothing: 0,
		Seed:      0,
	}
}

// FromValues builds a Config from a flat multi-value map (the shape
// net/http's r.Form takes), applying §7's defaulting policy: malformed or
// missing integer/bool fields silently fall back to their default, never
// a parse error. Only a missing image payload is the transport's concern
// (BadRequest) — FromValues does not look at the file field at all.
func FromValues(values map[string][]string) Config {
	cfg := Default()

	get := func(key string) (string, bool) {
		v, ok := values[key]
		if !ok || len(v) == 0 {
			return "", false
		}
		return v[0], true
	}

	if v, ok := get("artStyle"); ok && strings.TrimSpace(v) != "" {
		cfg.ArtStyle = strings.TrimSpace(v)
	}
	if v, ok := get("style"); ok && strings.TrimSpace(v) != "" {
		cfg.Style = strings.TrimSpace(v)
	}
	if v, ok := get("brush"); ok && strings.TrimSpace(v) != "" {
		cfg.Brush = strings.TrimSpace(v)
	}

	cfg.Stroke = intOrDefault(values, "stroke", cfg.Stroke)
	cfg.Intensity = intOrDefault(values, "intensity", cfg.Intensity)
	cfg.Smoothing = intOrDefault(values, "smoothing", cfg.Smoothing)
	cfg.Seed = int64(intOrDefault(values, "seed", int(cfg.Seed)))

	cfg.SkipHatching = boolOrDefault(values, "skipHatching", cfg.SkipHatching)
	cfg.Colorize = boolOrDefault(values, "colorize", cfg.Colorize)
	cfg.Invert = boolOrDefault(values, "invert", cfg.Invert)

	cfg.Contrast = intOrDefault(values, "contrast", cfg.Contrast)
	cfg.Saturation = intOrDefault(values, "saturation", cfg.Saturation)
	cfg.HueShift = intOrDefault(values, "hueShift", cfg.HueShift)

	if _, supplied := get("resolution"); supplied {
		cfg.Resolution = intOrDefault(values, "resolution", 1024)
	}
	if v, supplied := get("aspect"); supplied {
		aw, ah := parseAspect(v)
		cfg.AspectW, cfg.AspectH = aw, ah
	} else if cfg.Resolution > 0 {
		cfg.AspectW, cfg.AspectH = 1, 1
	}

	return clampRanges(cfg)
}

func intOrDefault(values map[string][]string, key string, def int) int {
	v, ok := values[key]
	if !ok || len(v) == 0 || strings.TrimSpace(v[0]) == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v[0]))
	if err != nil {
		return def
	}
	return n
}

func boolOrDefault(values map[string][]string, key string, def bool) bool {
	v, ok := values[key]
	if !ok || len(v) == 0 {
		return def
	}
	return strings.EqualFold(strings.TrimSpace(v[0]), "true")
}

func parseAspect(s string) (int, int) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 1, 1
	}
	aw, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
	ah, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errW != nil || errH != nil || aw <= 0 || ah <= 0 {
		return 1, 1
	}
	return aw, ah
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampRanges(cfg Config) Config {
	cfg.Stroke = clampInt(cfg.Stroke, 1, 10)
	cfg.Intensity = clampInt(cfg.Intensity, 1, 10)
	if cfg.Smoothing < 0 {
		cfg.Smoothing = 0
	}
	cfg.Contrast = clampInt(cfg.Contrast, -100, 100)
	cfg.Saturation = clampInt(cfg.Saturation, -100, 100)
	return cfg
}
