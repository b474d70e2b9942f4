package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/boxshuffle/pkg/config"
	apperr "github.com/matzehuels/boxshuffle/pkg/errors"
	"github.com/matzehuels/boxshuffle/pkg/imageio"
)

// editCommand creates the edit command, an interactive terminal editor.
func (c *CLI) editCommand() *cobra.Command {
	var (
		flags  layoutFlags
		output string
		fill   bool
	)

	cmd := &cobra.Command{
		Use:   "edit [image]",
		Short: "Edit a layout interactively in the terminal",
		Long: `Edit a layout interactively in the terminal.

The image is drawn with half-block characters and a random layout is placed
on it. Drag a rectangle to move it and drag its bottom-right corner to resize
it; rectangles always stay inside the image and keep their proportions.

Keys:
  s        shuffle the whole layout
  + / -    add or remove a rectangle
  [ / ]    lower or raise the minimum height
  { / }    lower or raise the maximum height
  c        copy the full-resolution composite to the clipboard
  w        write the composite to the --output file
  q        quit

Requires a terminal with mouse support.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeImage,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if err := flags.apply(&cfg); err != nil {
				return err
			}
			if fill {
				cfg.Stroke.Fill = true
			}
			if output != "" {
				if err := apperr.ValidateOutputPath(output); err != nil {
					return err
				}
				if output == "-" {
					return apperr.New(apperr.ErrCodeInvalidInput, "edit cannot write to stdout")
				}
			}
			return c.runEdit(cmd.Context(), args[0], cfg, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "file written by the w key (png, jpeg, json or yaml by extension)")
	cmd.Flags().BoolVar(&fill, "fill", false, "fill rectangles with a translucent color")

	return cmd
}

// runEdit loads the image and runs the editor until the user quits.
func (c *CLI) runEdit(ctx context.Context, input string, cfg config.Config, output string) error {
	src, err := imageio.Load(input)
	if err != nil {
		return err
	}

	sess := cfg.NewSession()
	sess.Load(src.Image)
	c.Logger.Debug("editing", "session", sess.ID, "image", input, "format", src.Format)

	// The alternate screen owns the terminal; hold log output until it closes.
	level := c.Logger.GetLevel()
	c.Logger.SetLevel(log.FatalLevel)
	defer c.Logger.SetLevel(level)

	model := newEditorModel(ctx, sess, src, cfg.Style(), output)
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("editor: %w", err)
	}

	c.Logger.SetLevel(level)
	printSuccess("Finished with %d rectangles", len(sess.Rects()))
	return nil
}
