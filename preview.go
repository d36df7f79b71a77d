package swatchgen

import (
	"errors"
	"fmt"
	"time"

	"github.com/alitto/pond"
	"github.com/davidbyttow/govips/v2/vips"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"
)

const (
	previewTileSize = 64
	previewGap      = 4
	previewColumns  = 16
)

var previewBackground = colorful.Color{R: 1, G: 1, B: 1}

// gridLayout places swatch tiles row by row, left to right.
type gridLayout struct {
	Columns int
	Rows    int
	Tile    int
	Gap     int
}

func newGridLayout(n, columns, tile, gap int) gridLayout {
	if columns < 1 {
		columns = 1
	}
	if n < columns {
		columns = max(n, 1)
	}
	return gridLayout{
		Columns: columns,
		Rows:    (n + columns - 1) / columns,
		Tile:    tile,
		Gap:     gap,
	}
}

// Size is the canvas size including the outer gap.
func (l gridLayout) Size() (w, h int) {
	return l.Gap + l.Columns*(l.Tile+l.Gap), l.Gap + l.Rows*(l.Tile+l.Gap)
}

// Origin is the top-left corner of tile i.
func (l gridLayout) Origin(i int) (x, y int) {
	col, row := i%l.Columns, i/l.Columns
	return l.Gap + col*(l.Tile+l.Gap), l.Gap + row*(l.Tile+l.Gap)
}

// Preview writes a PNG swatch sheet of colors, in the given order, to filepath.
// libvips must be started by the caller.
func Preview(colors []NamedColor, filepath string, c Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	c = c.withDefaults()
	if len(colors) == 0 {
		logger.Info("no colors, skip preview", zap.String("path", filepath))
		return nil
	}

	st := time.Now()
	logger.Info("render preview", zap.String("path", filepath), zap.Int("colors", len(colors)))
	defer func() {
		logger.Info("preview done", zap.String("path", filepath), zap.Duration("took", time.Since(st)))
	}()

	tiles := make([]*vips.ImageRef, len(colors))
	defer func() {
		for _, tile := range tiles {
			if tile != nil {
				tile.Close()
			}
		}
	}()

	panicHandler := func(p interface{}) {
		logger.Error("swatch tile panicked", zap.Any("panic", p))
	}
	pool := pond.New(c.MaxCpuCount, len(colors), pond.MinWorkers(c.MaxCpuCount), pond.PanicHandler(panicHandler))

	for i, color := range colors {
		pool.Submit(func() {
			ref, err := createImage(previewTileSize, previewTileSize, colorful.Color{R: color.R(), G: color.G(), B: color.B()})
			if err != nil {
				panic(fmt.Errorf("%s: %w", color.Name(), err))
			}
			tiles[i] = ref
		})
	}

	pool.StopAndWait()
	if pool.FailedTasks() > 0 {
		return errors.New("preview: failed to create swatch tiles")
	}

	layout := newGridLayout(len(colors), previewColumns, previewTileSize, previewGap)
	w, h := layout.Size()
	canvas, err := createImage(w, h, previewBackground)
	if err != nil {
		return err
	}
	defer canvas.Close()

	for i, tile := range tiles {
		x, y := layout.Origin(i)
		if err = canvas.Insert(tile, x, y, false, &vips.ColorRGBA{R: 255, G: 255, B: 255, A: 255}); err != nil {
			return err
		}
	}

	buffer, _, err := canvas.ExportPng(vips.NewPngExportParams())
	if err != nil {
		return err
	}
	return writeFile(filepath, buffer)
}

// createImage return a solid sRGB image with a certain width, height and color
func createImage(w, h int, c colorful.Color) (*vips.ImageRef, error) {
	cR, cG, cB := c.Clamped().RGB255()
	color := []float64{float64(cR), float64(cG), float64(cB)}

	imageRef, err := vips.Black(w, h)
	if err != nil {
		return nil, err
	}
	if err = imageRef.ToColorSpace(vips.InterpretationSRGB); err != nil {
		imageRef.Close()
		return nil, err
	}
	if err = imageRef.Linear([]float64{0, 0, 0}, color); err != nil {
		imageRef.Close()
		return nil, err
	}
	return imageRef, nil
}
