package swatchgen

import (
	"go.uber.org/zap"
)

func makeManifest(colors []NamedColor, stats Stats, c Config, fingerprint string, logger *zap.Logger) *Manifest {
	logger.Debug("make manifest", zap.Int("colors", len(colors)))

	entries := make([]*ManifestColor, 0, len(colors))
	for _, color := range colors {
		entries = append(entries, &ManifestColor{
			Name: color.Name(),
			Hex:  color.Hex(),
			R:    color.R(),
			G:    color.G(),
			B:    color.B(),
			H:    color.H(),
			S:    color.S(),
			V:    color.V(),
			Line: color.Line(),
		})
	}

	return &Manifest{
		Version:      ManifestVersion,
		Source:       c.SourceName,
		Fingerprint:  fingerprint,
		Package:      c.Package,
		TypeName:     c.TypeName,
		LegacySyntax: c.LegacySyntax,
		GenerateMap:  c.GenerateMap,
		Stats:        stats,
		Colors:       entries,
		Preview:      c.PreviewPath,
	}
}
