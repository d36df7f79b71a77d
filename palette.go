package swatchgen

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"go.uber.org/zap"
)

// maxRenameAttempts bounds the collision loop in Palette.Add.
const maxRenameAttempts = 10000

var ErrDuplicateName = errors.New("no unique name available")

// Palette is the set of accepted colors, unique by name, in insertion order.
type Palette struct {
	logger *zap.Logger
	seen   map[string]struct{}
	colors []NamedColor

	Renamed int
}

// NewPalette creates an empty palette. Reserved names are never handed out to
// colors, so generated declarations cannot shadow them.
func NewPalette(logger *zap.Logger, reserved ...string) *Palette {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Palette{
		logger: logger,
		seen:   make(map[string]struct{}, len(reserved)),
	}
	for _, name := range reserved {
		p.seen[name] = struct{}{}
	}
	return p
}

// Add inserts c, renaming it to name1, name2, ... when its name is taken.
// It returns the color as stored.
func (p *Palette) Add(c NamedColor) (NamedColor, error) {
	name, err := p.uniqueName(c.Name())
	if err != nil {
		return NamedColor{}, err
	}
	if name != c.Name() {
		p.Renamed++
		p.logger.Debug("rename duplicate",
			zap.String("name", c.Name()),
			zap.String("renamed", name),
			zap.Int("line", c.Line()))
		c = c.withName(name)
	}
	p.seen[name] = struct{}{}
	p.colors = append(p.colors, c)
	return c, nil
}

func (p *Palette) uniqueName(base string) (string, error) {
	if _, taken := p.seen[base]; !taken {
		return base, nil
	}
	for i := 1; i <= maxRenameAttempts; i++ {
		candidate := base + strconv.Itoa(i)
		if _, taken := p.seen[candidate]; !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%s: %w", base, ErrDuplicateName)
}

// Len returns the number of colors.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Colors returns the colors in insertion order.
func (p *Palette) Colors() []NamedColor {
	return slices.Clone(p.colors)
}

// Sorted returns the colors by descending hue, saturation, then value.
// Equal keys keep insertion order.
func (p *Palette) Sorted() []NamedColor {
	out := slices.Clone(p.colors)
	SortColors(out)
	return out
}

// SortColors sorts colors in place by descending H, S, V.
func SortColors(colors []NamedColor) {
	slices.SortStableFunc(colors, compareHSV)
}

func compareHSV(a, b NamedColor) int {
	if c := cmp.Compare(b.h, a.h); c != 0 {
		return c
	}
	if c := cmp.Compare(b.s, a.s); c != 0 {
		return c
	}
	return cmp.Compare(b.v, a.v)
}
