// Package pipeline runs boxshuffle headlessly.
//
// This package implements the load → layout → render pipeline used by the
// generate command. It drives the same session the interactive editor uses,
// so a scripted run and a hand-edited one produce identical results for the
// same seed and pointer events.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: decode the source image (file or stdin)
//  2. Layout: fit the display extent, generate rectangles, replay pointer events
//  3. Render: build the composite and encode every requested format
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Input:   "photo.jpg",
//	    Config:  config.Default(),
//	    Formats: []string{"png", "json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boxshuffle/pkg/config"
	apperr "github.com/matzehuels/boxshuffle/pkg/errors"
	"github.com/matzehuels/boxshuffle/pkg/geom"
	"github.com/matzehuels/boxshuffle/pkg/imageio"
	"github.com/matzehuels/boxshuffle/pkg/interact"
	"github.com/matzehuels/boxshuffle/pkg/session"
)

// =============================================================================
// Formats
// =============================================================================

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = FormatPNG

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatJPEG: true,
	FormatJSON: true,
	FormatYAML: true,
}

// IsRaster reports whether format is an image encoding.
func IsRaster(format string) bool {
	return format == FormatPNG || format == FormatJPEG
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperr.New(apperr.ErrCodeInvalidFormat, "invalid format: %q (must be one of: png, jpeg, json, yaml)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	// Load options
	Input string // image path, "-" for stdin

	// Layout options
	Config config.Config
	Events []interact.Event // replayed after the initial layout

	// Render options
	Formats []string
	Preview bool // render the display-size preview instead of the full composite

	// Runtime options
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks the input path.
func (o *Options) ValidateForLoad() error {
	if o.Input == "" {
		return apperr.New(apperr.ErrCodeInvalidInput, "input image is required")
	}
	o.setLogger()
	return nil
}

// ValidateForLayout validates the configuration.
func (o *Options) ValidateForLayout() error {
	o.setLogger()
	return o.Config.Validate()
}

// ValidateForRender validates and defaults the output formats.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	o.setLogger()
	return ValidateFormats(o.Formats)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Source is the decoded input image.
	Source imageio.Source

	// Session is the session after layout and replayed events.
	Session *session.Session

	// Rects is the final set in display space.
	Rects geom.Set

	// Image is the rendered raster (composite or preview).
	Image image.Image

	// Artifacts contains encoded outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and layout information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Count      int
	Overlaps   int
	Events     int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}
