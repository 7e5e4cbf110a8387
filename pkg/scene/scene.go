// Package scene defines the snowflake scene data model: named flakes
// with stroke colors, scene-wide defaults, and validation.
package scene

import (
	"github.com/chazu/frost/pkg/geom"
)

// DefaultLevel is the recursion depth used when a flake omits :level.
const DefaultLevel = 2

// DefaultColor is the stroke color used when a flake omits :color.
const DefaultColor = "#4A90D9"

// Flake describes one snowflake to generate: the starting triangle
// (centroid plus one vertex), the recursion level, and presentation
// metadata for the drawing collaborator.
type Flake struct {
	Name     string     `json:"name"`
	Centroid geom.Point `json:"centroid"`
	Vertex   geom.Point `json:"vertex"`
	Level    int        `json:"level"`
	Color    string     `json:"color"`
}

// Defaults contains scene-wide default settings applied to flakes that
// omit the corresponding fields.
type Defaults struct {
	Level int    `json:"level"`
	Color string `json:"color"`
}

// Scene is the top-level data structure produced by script evaluation.
// Flake order is meaningful: it is the order paths are traced in. The
// scene is never mutated after evaluation; each evaluation produces a
// new scene.
type Scene struct {
	Flakes    []*Flake       `json:"flakes"`
	NameIndex map[string]int `json:"-"`
	Defaults  Defaults       `json:"defaults"`
}

// New creates an empty Scene with default settings.
func New() *Scene {
	return &Scene{
		NameIndex: make(map[string]int),
		Defaults: Defaults{
			Level: DefaultLevel,
			Color: DefaultColor,
		},
	}
}

// AddFlake appends a flake to the scene. It does not check for
// duplicate names; validation reports those.
func (s *Scene) AddFlake(f *Flake) {
	s.Flakes = append(s.Flakes, f)
	if f.Name != "" {
		s.NameIndex[f.Name] = len(s.Flakes) - 1
	}
}

// Lookup returns the flake with the given name, or nil.
func (s *Scene) Lookup(name string) *Flake {
	i, ok := s.NameIndex[name]
	if !ok {
		return nil
	}
	return s.Flakes[i]
}

// FlakeCount returns the number of flakes in the scene.
func (s *Scene) FlakeCount() int {
	return len(s.Flakes)
}
