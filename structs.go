package swatchgen

import (
	"errors"
	"fmt"

	"github.com/brandquad/swatchgen/colorutils"
)

var (
	ErrMissingInput    = errors.New("input path is required")
	ErrUnreadableInput = errors.New("input is unreadable")
)

// NamedColor is a color with a unique identifier. Channels and the derived
// HSV triple are fixed at construction.
type NamedColor struct {
	name    string
	hex     string
	r, g, b float64
	h, s, v float64
	line    int
}

// NewNamedColor builds a NamedColor from a hex code.
func NewNamedColor(name, hex string, line int) (NamedColor, error) {
	code, err := colorutils.NormalizeHex(hex)
	if err != nil {
		return NamedColor{}, err
	}
	r, g, b, err := colorutils.Hex2rgb(code)
	if err != nil {
		return NamedColor{}, err
	}
	return newNamedColorRGB(name, code, r, g, b, line), nil
}

func newNamedColorRGB(name, hex string, r, g, b float64, line int) NamedColor {
	c := NamedColor{
		name: name,
		hex:  hex,
		r:    colorutils.Clamp01(r),
		g:    colorutils.Clamp01(g),
		b:    colorutils.Clamp01(b),
		line: line,
	}
	c.h, c.s, c.v = colorutils.Rgb2hsv(c.r, c.g, c.b)
	return c
}

// withName returns a copy carrying another identifier.
func (c NamedColor) withName(name string) NamedColor {
	c.name = name
	return c
}

func (c NamedColor) Name() string { return c.name }
func (c NamedColor) Hex() string  { return c.hex }
func (c NamedColor) R() float64   { return c.r }
func (c NamedColor) G() float64   { return c.g }
func (c NamedColor) B() float64   { return c.b }
func (c NamedColor) H() float64   { return c.h }
func (c NamedColor) S() float64   { return c.s }
func (c NamedColor) V() float64   { return c.v }
func (c NamedColor) Line() int    { return c.line }

func (c NamedColor) String() string {
	return fmt.Sprintf("%s #%s", c.name, c.hex)
}

// Entry is one accepted survey line before deduplication.
type Entry struct {
	RawName    string
	Identifier string
	Hex        string
	Line       int
}

// Stats counts how survey lines were handled.
type Stats struct {
	Lines    int `json:"lines"`
	Blank    int `json:"blank"`
	Comments int `json:"comments"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Renamed  int `json:"renamed"`
}

const (
	DefaultPackage  = "colors"
	DefaultTypeName = "Color"
)

// Config controls generation.
type Config struct {
	Package      string
	TypeName     string
	SourceName   string
	LegacySyntax bool
	GenerateMap  bool
	OutputPath   string
	ManifestPath string
	PreviewPath  string
	MaxCpuCount  int
}

func (c Config) withDefaults() Config {
	if c.Package == "" {
		c.Package = DefaultPackage
	}
	if c.TypeName == "" {
		c.TypeName = DefaultTypeName
	}
	if c.SourceName == "" {
		c.SourceName = "stdin"
	}
	if c.MaxCpuCount < 1 {
		c.MaxCpuCount = 1
	}
	return c
}
