package interact

import (
	"os"

	"gopkg.in/yaml.v3"

	apperr "github.com/matzehuels/boxshuffle/pkg/errors"
	"github.com/matzehuels/boxshuffle/pkg/geom"
)

// EventKind names a pointer event.
type EventKind string

const (
	EventDown  EventKind = "down"
	EventMove  EventKind = "move"
	EventUp    EventKind = "up"
	EventLeave EventKind = "leave"
)

// Event is a pointer event in display space.
type Event struct {
	Kind EventKind `yaml:"kind"`
	X    float64   `yaml:"x"`
	Y    float64   `yaml:"y"`
}

// Point returns the event position.
func (e Event) Point() geom.Point { return geom.Point{X: e.X, Y: e.Y} }

type script struct {
	Events []Event `yaml:"events"`
}

// ParseScript decodes a YAML pointer script:
//
//	events:
//	  - {kind: down, x: 30, y: 30}
//	  - {kind: move, x: 500, y: 500}
//	  - {kind: up}
func ParseScript(data []byte) ([]Event, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "parse pointer script")
	}
	for i, ev := range s.Events {
		switch ev.Kind {
		case EventDown, EventMove, EventUp, EventLeave:
		default:
			return nil, apperr.New(apperr.ErrCodeInvalidInput, "event %d: unknown kind %q", i, ev.Kind)
		}
	}
	return s.Events, nil
}

// LoadScript reads and decodes a pointer script file.
func LoadScript(path string) ([]Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "pointer script %s", path)
		}
		return nil, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "read pointer script %s", path)
	}
	return ParseScript(data)
}
