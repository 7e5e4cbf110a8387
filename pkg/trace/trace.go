// Package trace walks a scene and produces one point path per flake
// using the koch generator. It also defines the Plotter interface, the
// in-process boundary to whatever component does the actual drawing.
package trace

import (
	"fmt"

	"github.com/chazu/frost/pkg/geom"
	"github.com/chazu/frost/pkg/koch"
	"github.com/chazu/frost/pkg/scene"
)

// Path is an ordered point sequence tracing one snowflake outline,
// ready for a drawing consumer. The first point is the move-to target;
// every following point is drawn to with the pen down.
type Path struct {
	Name   string       `json:"name"`
	Color  string       `json:"color"`
	Points []geom.Point `json:"points"`
}

// PointCount returns the number of points in the path.
func (p *Path) PointCount() int {
	return len(p.Points)
}

// IsEmpty returns true if the path has no points.
func (p *Path) IsEmpty() bool {
	return len(p.Points) == 0
}

// Start returns the path's first point.
func (p *Path) Start() geom.Point {
	return p.Points[0]
}

// Trace validates the scene and produces one path per flake, in scene
// order. The tracer is read-only and never mutates the scene. Blocking
// validation findings abort the trace; a non-finite coordinate in
// generated output does the same, since it means a degenerate input
// slipped past validation.
func Trace(s *scene.Scene) ([]*Path, error) {
	if s == nil {
		return nil, nil
	}

	result := scene.Validate(s)
	if !result.OK() {
		return nil, fmt.Errorf("trace: invalid scene: %w", result.Errors[0])
	}

	var paths []*Path
	for _, f := range s.Flakes {
		pts := koch.Outline(f.Centroid, f.Vertex, f.Level)
		for _, p := range pts {
			if !geom.Finite(p) {
				return nil, fmt.Errorf("trace: flake %q produced a non-finite coordinate", f.Name)
			}
		}
		paths = append(paths, &Path{
			Name:   f.Name,
			Color:  f.Color,
			Points: pts,
		})
	}
	return paths, nil
}

// Plotter is the drawing collaborator. Implementations position a pen:
// MoveTo repositions it without drawing, LineTo draws a straight line
// from the current position.
type Plotter interface {
	MoveTo(p geom.Point)
	LineTo(p geom.Point)
}

// Draw feeds a path to a plotter: one MoveTo to the start, then a
// LineTo for each remaining point, without lifting the pen.
func Draw(p *Path, plt Plotter) {
	if p.IsEmpty() {
		return
	}
	plt.MoveTo(p.Points[0])
	for _, pt := range p.Points[1:] {
		plt.LineTo(pt)
	}
}
