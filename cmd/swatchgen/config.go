package main

import (
	"fmt"
	"os"

	"github.com/brandquad/swatchgen"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LegacySyntax bool   `envconfig:"SWATCHGEN_LEGACY_SYNTAX" default:"false" yaml:"legacy_syntax"`
	GenerateMap  bool   `envconfig:"SWATCHGEN_GENERATE_MAP" default:"true" yaml:"generate_map"`
	Package      string `envconfig:"SWATCHGEN_PACKAGE" default:"colors" yaml:"package"`
	TypeName     string `envconfig:"SWATCHGEN_TYPE_NAME" default:"Color" yaml:"type_name"`
	Output       string `envconfig:"SWATCHGEN_OUTPUT" yaml:"output"`
	Manifest     string `envconfig:"SWATCHGEN_MANIFEST" yaml:"manifest"`
	Preview      string `envconfig:"SWATCHGEN_PREVIEW" yaml:"preview"`
	MaxCpuCount  int    `envconfig:"MAX_CPU_COUNT" default:"4" yaml:"max_cpu_count"`
	Debug        bool   `envconfig:"SWATCHGEN_DEBUG" default:"false" yaml:"debug"`
}

// loadConfig reads SWATCHGEN_* variables, then overlays the YAML file at path
// if one is given. Keys missing from the file keep their env value.
func loadConfig(path string) (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return c, err
	}
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("failed to parse config: %w", err)
	}
	return c, nil
}

func (c Config) MakeGenConfig(source string) swatchgen.Config {
	return swatchgen.Config{
		Package:      c.Package,
		TypeName:     c.TypeName,
		SourceName:   source,
		LegacySyntax: c.LegacySyntax,
		GenerateMap:  c.GenerateMap,
		OutputPath:   c.Output,
		ManifestPath: c.Manifest,
		PreviewPath:  c.Preview,
		MaxCpuCount:  c.MaxCpuCount,
	}
}
