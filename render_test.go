package swatchgen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleColors(t *testing.T) []NamedColor {
	t.Helper()
	colors := []NamedColor{
		mustColor(t, "Red", "ff0000", 1),
		mustColor(t, "Navy", "000080", 2),
		mustColor(t, "Black", "000000", 3),
	}
	SortColors(colors)
	return colors
}

func parseSource(t *testing.T, src []byte) *ast.File {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "colors.go", src, parser.ParseComments)
	require.NoError(t, err, string(src))
	return f
}

func TestRenderModern(t *testing.T) {
	src, err := RenderSource(sampleColors(t), Config{SourceName: "rgb.txt", GenerateMap: true}, "fp")
	require.NoError(t, err)
	out := string(src)

	f := parseSource(t, src)
	assert.Equal(t, "colors", f.Name.Name)

	assert.Contains(t, out, "// Code generated by swatchgen from rgb.txt; DO NOT EDIT.")
	assert.Contains(t, out, "// Source fingerprint: fp")
	assert.Contains(t, out, `import "fmt"`)
	assert.Contains(t, out, "// Red is #ff0000 (R: 1, G: 0, B: 0).")
	assert.Contains(t, out, "func Red() Color { return Color{R: 1, G: 0, B: 0, A: 1} }")
	assert.Contains(t, out, "// Navy is #000080 (R: 0, G: 0, B: 0.5019607843137255).")
	assert.Contains(t, out, `"Red":   Red(),`)
	assert.Contains(t, out, "func Get(name string) (Color, error) {")
	assert.Contains(t, out, "func TryGet(name string) (Color, bool) {")
}

func TestRenderLegacy(t *testing.T) {
	src, err := RenderSource(sampleColors(t), Config{LegacySyntax: true, GenerateMap: true}, "fp")
	require.NoError(t, err)
	out := string(src)

	parseSource(t, src)
	assert.Contains(t, out, "var Red = Color{R: 1, G: 0, B: 0, A: 1}")
	assert.Contains(t, out, `"Red":   Red,`)
	assert.NotContains(t, out, "func Red()")
}

func TestRenderWithoutMap(t *testing.T) {
	src, err := RenderSource(sampleColors(t), Config{Package: "palette", TypeName: "Swatch"}, "fp")
	require.NoError(t, err)
	out := string(src)

	f := parseSource(t, src)
	assert.Equal(t, "palette", f.Name.Name)
	assert.Empty(t, f.Imports)
	assert.NotContains(t, out, "byName")
	assert.NotContains(t, out, "func Get(")
	assert.Contains(t, out, "type Swatch struct {")
	assert.Contains(t, out, "func Red() Swatch {")
}

func TestRenderEmpty(t *testing.T) {
	src, err := RenderSource(nil, Config{GenerateMap: true}, "fp")
	require.NoError(t, err)
	parseSource(t, src)
}

var declRegExp = regexp.MustCompile(`(?m)^(func|var) (\w+)`)

// Switching flavors only changes declaration tokens: names, order and values stay.
func TestRenderFlavorOnlyChangesSyntax(t *testing.T) {
	colors := sampleColors(t)
	modern, err := RenderSource(colors, Config{GenerateMap: true}, "fp")
	require.NoError(t, err)
	legacy, err := RenderSource(colors, Config{GenerateMap: true, LegacySyntax: true}, "fp")
	require.NoError(t, err)

	declared := func(src []byte) []string {
		var out []string
		for _, m := range declRegExp.FindAllStringSubmatch(string(src), -1) {
			out = append(out, m[2])
		}
		return out
	}
	assert.Equal(t, declared(modern), declared(legacy))

	normalize := func(src []byte) string {
		s := string(src)
		for _, c := range colors {
			s = strings.ReplaceAll(s, "func "+c.Name()+"() Color { return ", "var "+c.Name()+" = ")
			s = strings.ReplaceAll(s, ", A: 1} }", ", A: 1}")
			s = strings.ReplaceAll(s, c.Name()+"(),", c.Name()+",")
		}
		return strings.Join(strings.Fields(s), " ")
	}
	assert.Equal(t, normalize(legacy), normalize(modern))
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{}.Validate())
	assert.Error(t, Config{Package: "my-colors"}.Validate())
	assert.Error(t, Config{TypeName: "1Color"}.Validate())
}
