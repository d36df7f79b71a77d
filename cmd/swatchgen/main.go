package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brandquad/swatchgen"
	"github.com/davidbyttow/govips/v2/vips"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	exitOK              = 0
	exitFailure         = 1
	exitMissingInput    = 2
	exitUnreadableInput = 3
)

var (
	logger   *zap.Logger
	logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

type flagValues struct {
	configPath   string
	legacySyntax bool
	generateMap  bool
	pkg          string
	typeName     string
	output       string
	manifest     string
	preview      string
	maxCpuCount  int
	debug        bool
}

func newRootCmd() *cobra.Command {
	var f flagValues

	cmd := &cobra.Command{
		Use:   "swatchgen [flags] <survey file>",
		Short: "Generate Go color declarations from a color survey file",
		Long: `swatchgen reads a text file of "<name> <hex code>" lines and writes Go source
declaring one color per unique name, sorted by descending hue, saturation and value.

Settings come from SWATCHGEN_* environment variables, then an optional YAML
file given with --config, then flags.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			config.Level = logLevel
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "", "YAML config file")
	flags.BoolVar(&f.legacySyntax, "legacy", false, "declare colors as package variables instead of functions")
	flags.BoolVar(&f.generateMap, "map", true, "emit the name lookup map with Get and TryGet")
	flags.StringVar(&f.pkg, "package", swatchgen.DefaultPackage, "package name of the generated file")
	flags.StringVar(&f.typeName, "type", swatchgen.DefaultTypeName, "name of the generated color type")
	flags.StringVarP(&f.output, "output", "o", "", "write generated source here instead of stdout")
	flags.StringVar(&f.manifest, "manifest", "", "write a JSON manifest of the run here")
	flags.StringVar(&f.preview, "preview", "", "write a PNG swatch sheet here")
	flags.IntVar(&f.maxCpuCount, "max-cpu", 4, "workers used for the preview")
	flags.BoolVar(&f.debug, "debug", false, "log skipped and renamed lines")

	return cmd
}

// applyFlags overlays the flags the user actually set.
func applyFlags(cmd *cobra.Command, c *Config, f flagValues) {
	changed := cmd.Flags().Changed
	if changed("legacy") {
		c.LegacySyntax = f.legacySyntax
	}
	if changed("map") {
		c.GenerateMap = f.generateMap
	}
	if changed("package") {
		c.Package = f.pkg
	}
	if changed("type") {
		c.TypeName = f.typeName
	}
	if changed("output") {
		c.Output = f.output
	}
	if changed("manifest") {
		c.Manifest = f.manifest
	}
	if changed("preview") {
		c.Preview = f.preview
	}
	if changed("max-cpu") {
		c.MaxCpuCount = f.maxCpuCount
	}
	if changed("debug") {
		c.Debug = f.debug
	}
}

func runGenerate(cmd *cobra.Command, args []string, f flagValues) error {
	if len(args) == 0 || args[0] == "" {
		return swatchgen.ErrMissingInput
	}
	path := args[0]

	c, err := loadConfig(f.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, &c, f)
	if c.Debug {
		logLevel.SetLevel(zapcore.DebugLevel)
	}

	if c.Preview != "" {
		vips.LoggingSettings(func(messageDomain string, verbosity vips.LogLevel, message string) {}, vips.LogLevelInfo)
		vips.Startup(&vips.Config{
			ConcurrencyLevel: c.MaxCpuCount,
		})
		defer vips.Shutdown()
	}

	manifest, err := swatchgen.ProcessFile(path, c.MakeGenConfig(filepath.Base(path)), logger)
	if err != nil {
		return err
	}

	if c.Output == "" {
		_, err = cmd.OutOrStdout().Write(manifest.Output)
		return err
	}
	logger.Info("wrote generated source", zap.String("path", c.Output), zap.Int("colors", len(manifest.Colors)))
	return nil
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, swatchgen.ErrMissingInput):
		return exitMissingInput
	case errors.Is(err, swatchgen.ErrUnreadableInput):
		return exitUnreadableInput
	}
	return exitFailure
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "swatchgen:", err)
	}
	os.Exit(exitCode(err))
}
