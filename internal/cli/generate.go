package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/boxshuffle/pkg/errors"
	"github.com/matzehuels/boxshuffle/pkg/interact"
	"github.com/matzehuels/boxshuffle/pkg/pipeline"
	"github.com/matzehuels/boxshuffle/pkg/render/sink"
)

// newClipboard returns the sink behind --clipboard and the editor's copy key.
var newClipboard = func() sink.Sink { return sink.NewClipboard() }

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	layout     layoutFlags
	output     string // output file, base path for several formats, or "-" for stdout
	formats    string // comma-separated output formats
	clipboard  bool   // copy the png composite to the system clipboard
	scriptPath string // YAML pointer events to replay
	fill       bool   // fill rectangles as well as stroking them
	preview    bool   // export the display-size preview instead of the full composite
}

// generateCommand creates the generate command for headless layouts.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [image]",
		Short: "Lay out rectangles on an image and export the composite",
		Long: `Lay out rectangles on an image and export the composite.

The image is fitted into the display box (1280x720 by default), a fresh random
layout is generated, and the optional --script events are replayed against it
as if they came from a pointer. The result is exported at the image's original
resolution.

Formats png and jpeg export the composite; json and yaml export a layout
document listing the rectangles in display and source coordinates.

Use "-" as the image to read from stdin and as --output to write to stdout.`,
		Example: `  boxshuffle generate photo.jpg -n 8 -o boxed.png
  boxshuffle generate photo.jpg --seed 42 -f png,json -o out/photo
  cat photo.png | boxshuffle generate - --clipboard
  boxshuffle generate photo.jpg --script drag.yaml -o dragged.png`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeImage,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args[0], opts)
		},
	}

	opts.layout.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): png, jpeg, json, yaml (comma-separated; default from the -o extension, else png)")
	cmd.Flags().BoolVar(&opts.clipboard, "clipboard", false, "copy the png composite to the clipboard")
	cmd.Flags().StringVar(&opts.scriptPath, "script", "", "YAML file of pointer events to replay")
	cmd.Flags().BoolVar(&opts.fill, "fill", false, "fill rectangles with a translucent color")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "export at display size instead of full resolution")

	return cmd
}

// runGenerate runs the pipeline and writes every requested artifact.
func (c *CLI) runGenerate(ctx context.Context, input string, opts generateOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if err := opts.layout.apply(&cfg); err != nil {
		return err
	}
	if opts.fill {
		cfg.Stroke.Fill = true
	}
	if cfg.Bounds().Inverted() {
		printWarning("min height %d exceeds max height %d; every rectangle will be %d tall",
			cfg.MinHeight, cfg.MaxHeight, max(1, cfg.MinHeight))
	}

	formats := parseFormats(opts.formats)
	if opts.formats == "" && opts.output != "" && opts.output != "-" {
		formats = []string{formatFromPath(opts.output)}
	}
	if err := pipeline.ValidateFormats(formats); err != nil {
		return err
	}
	// The clipboard's png is rendered but only written to disk if requested.
	rendered := formats
	if opts.clipboard && !slices.Contains(rendered, pipeline.FormatPNG) {
		rendered = append(slices.Clone(formats), pipeline.FormatPNG)
	}
	if opts.output != "" {
		if err := apperr.ValidateOutputPath(opts.output); err != nil {
			return err
		}
	}

	var events []interact.Event
	if opts.scriptPath != "" {
		if events, err = interact.LoadScript(opts.scriptPath); err != nil {
			return err
		}
		c.Logger.Debug("loaded script", "path", opts.scriptPath, "events", len(events))
	}

	runner := c.newRunner()
	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Input:   input,
		Config:  cfg,
		Events:  events,
		Formats: rendered,
		Preview: opts.preview,
		Logger:  c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Generated %d rectangles", result.Stats.Count))
	printStats(result.Stats.Count, result.Stats.Overlaps, result.Stats.Events)

	delivered := 0
	if opts.clipboard {
		if err := runner.Deliver(ctx, result, pipeline.FormatPNG, newClipboard()); err != nil {
			if !apperr.Recoverable(err) {
				return err
			}
			printWarning("%s", apperr.UserMessage(err))
		} else {
			delivered++
			printSuccess("Copied to clipboard")
		}
	}

	if opts.output != "" || opts.formats != "" || !opts.clipboard {
		written, err := c.writeArtifacts(ctx, runner, result, input, opts.output, formats)
		if err != nil {
			return err
		}
		delivered += written
	}

	if delivered == 0 {
		return apperr.New(apperr.ErrCodeSinkRejected, "nothing was exported")
	}
	if input != "-" && opts.output != "-" {
		printNextStep("Adjust interactively", appName+" edit "+input)
	}
	return nil
}

// writeArtifacts writes each format to its file. A single format goes to
// output as given; several formats share output as a base path.
func (c *CLI) writeArtifacts(ctx context.Context, runner *pipeline.Runner, result *pipeline.Result, input, output string, formats []string) (int, error) {
	if len(formats) == 1 && output != "" {
		if err := runner.Deliver(ctx, result, formats[0], sink.ForPath(output)); err != nil {
			return 0, err
		}
		if output != "-" {
			printFile(output)
		}
		return 1, nil
	}

	if output == "-" {
		return 0, apperr.New(apperr.ErrCodeInvalidInput, "cannot write %d formats to stdout", len(formats))
	}
	base := basePath(output, input)
	for _, format := range formats {
		path := outputPath(base, format)
		if err := runner.Deliver(ctx, result, format, sink.NewFile(path)); err != nil {
			return 0, err
		}
		printFile(path)
	}
	return len(formats), nil
}
