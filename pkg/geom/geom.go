// Package geom provides the plane geometry underlying snowflake
// generation: points, segments, line equations with a tagged slope
// representation, and the one-level bump subdivision that is applied
// recursively by pkg/koch.
package geom

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Point is a 2D point or vector. It aliases the sdfx v2 vector type so
// the usual vector arithmetic (Add, Sub, MulScalar, Length) is available
// directly on points.
type Point = v2.Vec

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Segment is a directed line segment from Start to End. Direction
// matters: subdivision traverses a segment from Start to End so that
// concatenated subdivisions form a connected path.
type Segment struct {
	Start, End Point
}

// Finite reports whether both coordinates are finite. A non-finite
// coordinate in generated output means a precondition was violated
// upstream (typically coincident segment endpoints).
func Finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
