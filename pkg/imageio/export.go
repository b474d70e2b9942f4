package imageio

import (
	"encoding/json"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/boxshuffle/pkg/coords"
	apperr "github.com/matzehuels/boxshuffle/pkg/errors"
	"github.com/matzehuels/boxshuffle/pkg/geom"
)

// Format is a layout document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", apperr.New(apperr.ErrCodeInvalidFormat, "unknown layout format %q (want json or yaml)", s)
}

// Document is the exported description of a layout.
type Document struct {
	Image       ImageInfo   `json:"image" yaml:"image"`
	Display     geom.Extent `json:"display" yaml:"display"`
	Scale       Scale       `json:"scale" yaml:"scale"`
	Rects       geom.Set    `json:"rects" yaml:"rects"`
	SourceRects geom.Set    `json:"source_rects" yaml:"source_rects"`
}

// ImageInfo identifies the image a layout was made for.
type ImageInfo struct {
	Path   string  `json:"path,omitempty" yaml:"path,omitempty"`
	Format string  `json:"format,omitempty" yaml:"format,omitempty"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Scale holds the display-to-source factors.
type Scale struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// NewDocument builds a document for set, given in display space.
func NewDocument(src Source, m coords.Mapper, set geom.Set) Document {
	rects := set.Clone()
	if rects == nil {
		rects = geom.Set{}
	}
	return Document{
		Image: ImageInfo{
			Path:   src.Path,
			Format: src.Format,
			Width:  m.Source.Width,
			Height: m.Source.Height,
		},
		Display:     m.Display,
		Scale:       Scale{X: m.ScaleX(), Y: m.ScaleY()},
		Rects:       rects,
		SourceRects: m.ToSourceSet(rects),
	}
}

// WriteJSON encodes doc as indented JSON.
func WriteJSON(doc Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return apperr.Wrap(apperr.ErrCodeEncodeFailed, err, "encode layout json")
	}
	return nil
}

// WriteYAML encodes doc as YAML.
func WriteYAML(doc Document, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return apperr.Wrap(apperr.ErrCodeEncodeFailed, err, "encode layout yaml")
	}
	if err := enc.Close(); err != nil {
		return apperr.Wrap(apperr.ErrCodeEncodeFailed, err, "encode layout yaml")
	}
	return nil
}

// Write encodes doc in the given format.
func Write(doc Document, f Format, w io.Writer) error {
	switch f {
	case FormatJSON:
		return WriteJSON(doc, w)
	case FormatYAML:
		return WriteYAML(doc, w)
	}
	return apperr.New(apperr.ErrCodeInvalidFormat, "unknown layout format %q", f)
}
