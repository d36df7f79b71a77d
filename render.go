package swatchgen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/brandquad/swatchgen/assets"
)

var sourceTemplates = template.Must(assets.Templates())

type colorView struct {
	Name    string
	Hex     string
	R, G, B string
}

type fileView struct {
	Source       string
	Fingerprint  string
	Package      string
	TypeName     string
	LegacySyntax bool
	GenerateMap  bool
	Colors       []colorView
}

// ReservedNames are the identifiers a generated file declares besides the colors.
func ReservedNames(c Config) []string {
	c = c.withDefaults()
	return []string{c.TypeName, "Get", "TryGet"}
}

// RenderSource returns gofmt-ed Go source declaring colors in the given order.
func RenderSource(colors []NamedColor, c Config, fingerprint string) ([]byte, error) {
	c = c.withDefaults()
	view := fileView{
		Source:       oneLine(c.SourceName),
		Fingerprint:  fingerprint,
		Package:      c.Package,
		TypeName:     c.TypeName,
		LegacySyntax: c.LegacySyntax,
		GenerateMap:  c.GenerateMap,
		Colors:       make([]colorView, len(colors)),
	}
	for i, color := range colors {
		view.Colors[i] = colorView{
			Name: color.Name(),
			Hex:  color.Hex(),
			R:    formatChannel(color.R()),
			G:    formatChannel(color.G()),
			B:    formatChannel(color.B()),
		}
	}

	var buf bytes.Buffer
	if err := sourceTemplates.ExecuteTemplate(&buf, assets.FileTemplate, view); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

func formatChannel(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
