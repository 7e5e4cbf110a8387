package geom

import "math"

// Slope snapping tolerances. Slopes this close to zero are treated as
// exactly horizontal, and slopes this steep as exactly vertical, so the
// perpendicular-slope step never divides by a near-zero value.
const (
	slopeZeroTol = 1e-5
	slopeVertTol = 1e6
)

// LineKind distinguishes the three line representations. A vertical
// line has no slope at all, which is not the same thing as a slope of
// zero; keeping the distinction in the type avoids the nullable-slope
// ambiguity.
type LineKind int

const (
	LineSloped     LineKind = iota // y = Slope*x + Intercept
	LineHorizontal                 // y = Intercept
	LineVertical                   // x fixed, no slope
)

func (k LineKind) String() string {
	switch k {
	case LineSloped:
		return "sloped"
	case LineHorizontal:
		return "horizontal"
	case LineVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Line is a line equation in slope/intercept form with an explicit kind
// tag. Slope is meaningful only for LineSloped; Intercept for LineSloped
// and LineHorizontal.
type Line struct {
	Kind      LineKind
	Slope     float64
	Intercept float64
}

// YAt evaluates the line at x. It must not be called on a vertical line.
func (l Line) YAt(x float64) float64 {
	if l.Kind == LineHorizontal {
		return l.Intercept
	}
	return l.Slope*x + l.Intercept
}

// LineThrough derives the line equation of the segment from s1 to s2,
// snapping near-horizontal slopes to horizontal and near-vertical
// slopes to vertical.
func LineThrough(s1, s2 Point) Line {
	if s2.X == s1.X {
		return Line{Kind: LineVertical}
	}
	m := (s2.Y - s1.Y) / (s2.X - s1.X)
	switch {
	case math.Abs(m) < slopeZeroTol:
		return Line{Kind: LineHorizontal, Intercept: s2.Y}
	case math.Abs(m) > slopeVertTol:
		return Line{Kind: LineVertical}
	default:
		return Line{Kind: LineSloped, Slope: m, Intercept: s2.Y - m*s2.X}
	}
}

// Perpendicular returns the line perpendicular to l passing through p.
func Perpendicular(l Line, p Point) Line {
	switch l.Kind {
	case LineVertical:
		return Line{Kind: LineHorizontal, Intercept: p.Y}
	case LineHorizontal:
		return Line{Kind: LineVertical}
	default:
		m := -1 / l.Slope
		return Line{Kind: LineSloped, Slope: m, Intercept: p.Y - m*p.X}
	}
}
