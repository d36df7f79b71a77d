package swatchgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// ProcessFile opens the survey at path and runs Processing on it. A missing
// path yields ErrMissingInput and an unreadable one ErrUnreadableInput.
func ProcessFile(path string, c Config, logger *zap.Logger) (*Manifest, error) {
	if path == "" {
		return nil, ErrMissingInput
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableInput, err)
	}
	defer f.Close()

	if c.SourceName == "" {
		c.SourceName = filepath.Base(path)
	}
	return Processing(f, c, logger)
}

// Processing reads the whole survey from r, builds the unique color set,
// sorts it and renders it. Files named in c are written only after all of
// that succeeded.
func Processing(r io.Reader, c Config, logger *zap.Logger) (*Manifest, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c = c.withDefaults()

	st := time.Now()
	logger.Info("processing survey",
		zap.String("source", c.SourceName),
		zap.Bool("legacy_syntax", c.LegacySyntax),
		zap.Bool("generate_map", c.GenerateMap))

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableInput, err)
	}
	fingerprint := Fingerprint(data)

	parser := NewParser(logger)
	entries, err := parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableInput, err)
	}
	stats := parser.Stats()

	palette := NewPalette(logger, ReservedNames(c)...)
	for _, entry := range entries {
		color, err := NewNamedColor(entry.Identifier, entry.Hex, entry.Line)
		if err == nil {
			_, err = palette.Add(color)
		}
		if err != nil {
			stats.Accepted--
			stats.Rejected++
			logger.Debug("skip line", zap.Int("line", entry.Line), zap.String("name", entry.RawName), zap.Error(err))
		}
	}
	stats.Renamed = palette.Renamed

	colors := palette.Sorted()
	src, err := RenderSource(colors, c, fingerprint)
	if err != nil {
		return nil, err
	}

	manifest := makeManifest(colors, stats, c, fingerprint, logger)
	manifest.Output = src

	if c.PreviewPath != "" {
		if err = Preview(colors, c.PreviewPath, c, logger); err != nil {
			return nil, fmt.Errorf("preview: %w", err)
		}
	}
	if c.OutputPath != "" {
		if err = writeFile(c.OutputPath, src); err != nil {
			return nil, fmt.Errorf("write output: %w", err)
		}
	}
	if c.ManifestPath != "" {
		buff, err := json.MarshalIndent(manifest, "", "  ")
		if err != nil {
			return nil, err
		}
		if err = writeFile(c.ManifestPath, buff); err != nil {
			return nil, fmt.Errorf("write manifest: %w", err)
		}
	}

	logger.Info("processing done",
		zap.Int("lines", stats.Lines),
		zap.Int("accepted", stats.Accepted),
		zap.Int("rejected", stats.Rejected),
		zap.Int("renamed", stats.Renamed),
		zap.Int("blank", stats.Blank),
		zap.Int("comments", stats.Comments),
		zap.Duration("took", time.Since(st)))

	return manifest, nil
}
