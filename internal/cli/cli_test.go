package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/boxshuffle/pkg/config"
	apperr "github.com/matzehuels/boxshuffle/pkg/errors"
	"github.com/matzehuels/boxshuffle/pkg/render/sink"
)

func TestParseFormats(t *testing.T) {
	assert.Equal(t, []string{"png"}, parseFormats(""))
	assert.Equal(t, []string{"png", "jpeg", "yaml"}, parseFormats("png, JPG,yml"))
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"out.png":    "png",
		"out.JPG":    "jpeg",
		"out.jpeg":   "jpeg",
		"out.json":   "json",
		"out.yml":    "yaml",
		"out":        "png",
		"out.tiff":   "png",
		"dir/a.yaml": "yaml",
	}
	for path, want := range tests {
		assert.Equal(t, want, formatFromPath(path), path)
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "photo.jpg", "photo.boxes"},
		{"", "-", "boxshuffle"},
		{"out/result.png", "photo.jpg", "out/result"},
		{"out/result", "photo.jpg", "out/result"},
		{"out/result.v2", "photo.jpg", "out/result.v2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, basePath(tt.output, tt.input))
	}
	assert.Equal(t, "a.jpg", outputPath("a", "jpeg"))
	assert.Equal(t, "a.yaml", outputPath("a", "yaml"))
}

func parsedLayoutFlags(t *testing.T, args ...string) *layoutFlags {
	t.Helper()
	var f layoutFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return &f
}

func TestLayoutFlagsApply(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, parsedLayoutFlags(t).apply(&cfg))
	assert.Equal(t, config.Default(), cfg, "unset flags keep config values")

	f := parsedLayoutFlags(t, "-n", "0", "--min", "10", "--max", "20", "--seed", "9")
	require.NoError(t, f.apply(&cfg))
	assert.Equal(t, 0, cfg.Count)
	assert.Equal(t, 10, cfg.MinHeight)
	assert.Equal(t, 20, cfg.MaxHeight)
	assert.Equal(t, uint64(9), cfg.Seed)
}

func TestLayoutFlagsRejectInvalid(t *testing.T) {
	for _, args := range [][]string{
		{"--count=-3"},
		{"--min=0"},
		{"--max=-5"},
	} {
		cfg := config.Default()
		err := parsedLayoutFlags(t, args...).apply(&cfg)
		assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidInput), "%v", args)
		assert.Equal(t, config.Default(), cfg)
	}
}

// runCLI executes the root command with args in an isolated config home.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	status := captureStatus(t)

	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	return status.String(), err
}

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "photo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
	require.NoError(t, f.Close())
	return path
}

func TestGenerateSingleOutput(t *testing.T) {
	in := writeTestPNG(t, 640, 480)
	out := filepath.Join(t.TempDir(), "boxed.png")

	status, err := runCLI(t, "generate", in, "-n", "4", "--seed", "11", "-o", out)
	require.NoError(t, err)
	assert.Contains(t, status, out)
	assert.Contains(t, status, "4 rects")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)
}

func TestGenerateMultipleFormats(t *testing.T) {
	in := writeTestPNG(t, 300, 200)
	base := filepath.Join(t.TempDir(), "result")

	_, err := runCLI(t, "generate", in, "--seed", "2", "-f", "png,json,yaml", "-o", base)
	require.NoError(t, err)

	for _, ext := range []string{".png", ".json", ".yaml"} {
		assert.FileExists(t, base+ext)
	}

	data, err := os.ReadFile(base + ".json")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc["rects"], 5)
}

func TestGenerateScript(t *testing.T) {
	in := writeTestPNG(t, 400, 300)
	script := filepath.Join(t.TempDir(), "events.yaml")
	require.NoError(t, os.WriteFile(script, []byte("events:\n  - {kind: down, x: -5, y: -5}\n  - {kind: up}\n"), 0o644))
	out := filepath.Join(t.TempDir(), "out.json")

	status, err := runCLI(t, "generate", in, "-n", "2", "--script", script, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, status, "2 events")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc), "format follows the output extension")
	assert.Len(t, doc["source_rects"], 2)
}

func TestGenerateErrors(t *testing.T) {
	in := writeTestPNG(t, 100, 100)

	_, err := runCLI(t, "generate", filepath.Join(t.TempDir(), "missing.png"))
	assert.True(t, apperr.Is(err, apperr.ErrCodeFileNotFound))

	_, err = runCLI(t, "generate", in, "-f", "svg")
	assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidFormat))

	_, err = runCLI(t, "generate", in, "--script", filepath.Join(t.TempDir(), "none.yaml"))
	assert.True(t, apperr.Is(err, apperr.ErrCodeFileNotFound))

	_, err = runCLI(t, "generate", in, "-f", "png,json", "-o", "-")
	assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidInput))

	_, err = runCLI(t, "generate", in, "--count=-3")
	assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidInput))
}

func TestGenerateClipboardKeepsRequestedOutputs(t *testing.T) {
	var clip bytes.Buffer
	old := newClipboard
	newClipboard = func() sink.Sink { return &sink.Writer{W: &clip, Label: "clipboard"} }
	t.Cleanup(func() { newClipboard = old })

	in := writeTestPNG(t, 200, 100)
	dir := t.TempDir()
	out := filepath.Join(dir, "out.json")

	status, err := runCLI(t, "generate", in, "--seed", "3", "--clipboard", "-o", out)
	require.NoError(t, err)
	assert.Contains(t, status, "Copied to clipboard")

	assert.FileExists(t, out)
	assert.NoFileExists(t, filepath.Join(dir, "out.png"))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	img, err := png.Decode(&clip)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}

func TestGenerateInvertedBoundsWarns(t *testing.T) {
	in := writeTestPNG(t, 200, 200)
	out := filepath.Join(t.TempDir(), "out.png")
	status, err := runCLI(t, "generate", in, "--min", "60", "--max", "30", "-o", out)
	require.NoError(t, err)
	assert.Contains(t, status, "exceeds max height")
}

func TestConfigCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	captureStatus(t)
	cfgPath := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("count = 9\n"), 0o644))

	var out bytes.Buffer
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs([]string{"--config", cfgPath, "config"})
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	require.NoError(t, root.ExecuteContext(context.Background()))

	assert.Contains(t, out.String(), "count = 9")
	assert.Contains(t, out.String(), "[stroke]")
}

func TestConfigCommandRejectsUnknownKeys(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("colour = 1\n"), 0o644))

	_, err := runCLI(t, "--config", cfgPath, "config")
	assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidConfig))
}
