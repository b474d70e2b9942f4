package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/boxshuffle/pkg/buildinfo"
	"github.com/matzehuels/boxshuffle/pkg/config"
	apperr "github.com/matzehuels/boxshuffle/pkg/errors"
	"github.com/matzehuels/boxshuffle/pkg/observability"
	"github.com/matzehuels/boxshuffle/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "boxshuffle"

	// boundsStep is how much the bounds keys move min/max height.
	boundsStep = 5
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath is the --config flag; empty means the default location.
	ConfigPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Boxshuffle scatters editable rectangles over an image",
		Long: `Boxshuffle places a number of rectangles at random, non-overlapping
positions on an image, lets you drag and resize them, and exports the result
at the image's original resolution.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.bindHooks()
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default: $XDG_CONFIG_HOME/boxshuffle/config.toml)")

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// bindHooks routes library events to the logger.
func (c *CLI) bindHooks() {
	h := &logHooks{logger: c.Logger}
	observability.SetLayoutHooks(h)
	observability.SetInteractionHooks(h)
	observability.SetExportHooks(h)
}

// loadConfig reads the configuration named by --config, or the default one.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if c.ConfigPath != "" {
		c.Logger.Debug("loaded config", "path", c.ConfigPath)
	}
	return cfg, nil
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// layoutFlags are the flags shared by generate and edit. Only flags given on
// the command line override the configuration.
type layoutFlags struct {
	flags     *pflag.FlagSet
	count     int
	minHeight int
	maxHeight int
	seed      uint64
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	f.flags = cmd.Flags()
	f.flags.IntVarP(&f.count, "count", "n", 0, "number of rectangles (default from config)")
	f.flags.IntVar(&f.minHeight, "min", 0, "minimum rectangle height (default from config)")
	f.flags.IntVar(&f.maxHeight, "max", 0, "maximum rectangle height (default from config)")
	f.flags.Uint64Var(&f.seed, "seed", 0, "random seed for a reproducible layout (default from config, 0 = random)")
}

// apply overrides cfg with the flags that were set and rejects values the
// layout cannot use.
func (f *layoutFlags) apply(cfg *config.Config) error {
	if f.flags == nil {
		return nil
	}
	if f.flags.Changed("count") {
		if f.count < 0 {
			return apperr.New(apperr.ErrCodeInvalidInput, "--count must not be negative, got %d", f.count)
		}
		cfg.Count = f.count
	}
	if f.flags.Changed("min") {
		if f.minHeight <= 0 {
			return apperr.New(apperr.ErrCodeInvalidInput, "--min must be positive, got %d", f.minHeight)
		}
		cfg.MinHeight = f.minHeight
	}
	if f.flags.Changed("max") {
		if f.maxHeight <= 0 {
			return apperr.New(apperr.ErrCodeInvalidInput, "--max must be positive, got %d", f.maxHeight)
		}
		cfg.MaxHeight = f.maxHeight
	}
	if f.flags.Changed("seed") {
		cfg.Seed = f.seed
	}
	return nil
}

// parseFormats parses a comma-separated format string into a slice.
// "jpg" is accepted as an alias for "jpeg" and "yml" for "yaml".
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.DefaultFormat}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		switch f {
		case "jpg":
			f = pipeline.FormatJPEG
		case "yml":
			f = pipeline.FormatYAML
		}
		out = append(out, f)
	}
	return out
}

// formatFromPath infers an output format from a file extension, falling
// back to png.
func formatFromPath(path string) string {
	f := parseFormats(strings.TrimPrefix(filepath.Ext(path), "."))[0]
	if pipeline.ValidFormats[f] {
		return f
	}
	return pipeline.DefaultFormat
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. If output has a
// known format extension, it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		if input == "-" {
			return appName
		}
		return strings.TrimSuffix(input, filepath.Ext(input)) + ".boxes"
	}
	ext := filepath.Ext(output)
	if f := parseFormats(strings.TrimPrefix(ext, ".")); pipeline.ValidFormats[f[0]] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns the file for one format when several are written.
func outputPath(base, format string) string {
	ext := "." + format
	if format == pipeline.FormatJPEG {
		ext = ".jpg"
	}
	return base + ext
}
