package colorutils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HexLen is the number of hex digits in a color code.
const HexLen = 6

var ErrShortHex = errors.New("hex code shorter than 6 characters")

// NormalizeHex strips an optional leading '#', checks the first six characters
// are hex digits and returns them lower-cased. Extra trailing characters are ignored.
func NormalizeHex(code string) (string, error) {
	code = strings.TrimPrefix(strings.TrimSpace(code), "#")
	if len(code) < HexLen {
		return "", ErrShortHex
	}
	code = code[:HexLen]
	if _, err := strconv.ParseUint(code, 16, 32); err != nil {
		return "", fmt.Errorf("hex code %q: invalid digits", code)
	}
	return strings.ToLower(code), nil
}

// Hex2rgb converts a hex code to RGB channels in [0, 1]
func Hex2rgb(code string) (r, g, b float64, err error) {
	code, err = NormalizeHex(code)
	if err != nil {
		return 0, 0, 0, err
	}
	c, err := colorful.Hex("#" + code)
	if err != nil {
		return 0, 0, 0, err
	}
	c = c.Clamped()
	return c.R, c.G, c.B, nil
}

// Rgb2hsv converts RGB channels to hue in (0, 360] and saturation, value in [0, 1].
// Black yields 0, 0, 0.
func Rgb2hsv(r, g, b float64) (h, s, v float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	v = max
	if max <= 0 {
		return 0, 0, 0
	}
	s = delta / max

	if delta > 0 {
		switch max {
		case r:
			h = (g - b) / delta
		case g:
			h = 2 + (b-r)/delta
		default:
			h = 4 + (r-g)/delta
		}
	}
	h *= 60
	if h <= 0 {
		h += 360
	}
	return h, s, v
}

// Rgb2hex rounds each channel to the nearest byte, e.g. "ff8000"
func Rgb2hex(r, g, b float64) string {
	return strings.TrimPrefix(colorful.Color{R: r, G: g, B: b}.Clamped().Hex(), "#")
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
