// Package koch generates the ordered vertex sequence of a Koch
// snowflake. A snowflake starts from an equilateral triangle given by
// its centroid and one vertex; each side is recursively subdivided by
// the bump generator in pkg/geom.
package koch

import (
	"math"

	"github.com/chazu/frost/pkg/geom"
)

// Rotation by 120 degrees, the angle between triangle vertices as seen
// from the centroid.
const cos120 = -0.5

var sin120 = math.Sqrt(3) / 2

// Triangle is the equilateral starting triangle of a snowflake. The
// outline is traced A -> B -> C -> A; this order is what keeps every
// bump produced by geom.Subdivide pointing away from the centroid, so
// it must not be changed independently of the subdivision arithmetic.
type Triangle struct {
	Centroid geom.Point
	A, B, C  geom.Point
}

// NewTriangle builds the starting triangle from its centroid and one
// vertex. B and C are obtained by rotating the centroid-to-A vector by
// 120 degrees counterclockwise and clockwise about the centroid, so
// all three vertices are equidistant from the centroid.
func NewTriangle(centroid, vertexA geom.Point) Triangle {
	d := vertexA.Sub(centroid)
	b := geom.Point{
		X: cos120*d.X - sin120*d.Y,
		Y: sin120*d.X + cos120*d.Y,
	}.Add(centroid)
	c := geom.Point{
		X: cos120*d.X + sin120*d.Y,
		Y: -sin120*d.X + cos120*d.Y,
	}.Add(centroid)
	return Triangle{Centroid: centroid, A: vertexA, B: b, C: c}
}

// PointsPerSide returns the number of points Side produces for one side
// at the given level: 4^level for level >= 1, and 1 for level <= 0.
func PointsPerSide(level int) int {
	if level <= 0 {
		return 1
	}
	return 1 << (2 * level)
}

// Side generates the points for one side of the snowflake, traversed
// from v1 to v2, subdivided level times. The returned sequence does not
// include v1: the starting point of a side is supplied by the caller's
// previous segment, so sides concatenate without duplicate vertices.
//
//	level <= 0: [v2]
//	level == 1: the four points of one subdivision
//	level  > 1: each of the four sub-segments expanded at level-1
func Side(v1, v2 geom.Point, level int) []geom.Point {
	if level <= 0 {
		return []geom.Point{v2}
	}
	q := geom.Subdivide(v1, v2)
	if level == 1 {
		return q[:]
	}
	subs := []geom.Segment{
		{Start: v1, End: q[0]},
		{Start: q[0], End: q[1]},
		{Start: q[1], End: q[2]},
		{Start: q[2], End: v2},
	}
	pts := make([]geom.Point, 0, PointsPerSide(level))
	for _, s := range subs {
		pts = append(pts, Side(s.Start, s.End, level-1)...)
	}
	return pts
}

// Outline generates the full closed outline of the triangle's
// snowflake: the starting vertex A followed by the three sides in
// traversal order. The sequence ends back at A; a consumer moves to the
// first point and draws a line to each point after it.
func (t Triangle) Outline(level int) []geom.Point {
	pts := make([]geom.Point, 0, 1+3*PointsPerSide(level))
	pts = append(pts, t.A)
	pts = append(pts, Side(t.A, t.B, level)...)
	pts = append(pts, Side(t.B, t.C, level)...)
	pts = append(pts, Side(t.C, t.A, level)...)
	return pts
}

// Outline is shorthand for NewTriangle(centroid, vertexA).Outline(level).
func Outline(centroid, vertexA geom.Point, level int) []geom.Point {
	return NewTriangle(centroid, vertexA).Outline(level)
}
