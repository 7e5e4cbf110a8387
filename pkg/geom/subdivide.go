package geom

import "math"

var sqrt3 = math.Sqrt(3)

// Subdivide replaces the segment s1-s2 with the four points of a Koch
// bump and returns them as [p1, p2, p3, s2]:
//
//	p1, p3 — the trisection points at 1/3 and 2/3 along the segment
//	p2     — the apex of the equilateral triangle erected on p1-p3
//	s2     — the original endpoint, echoed so four-point chunks can be
//	         concatenated without duplicating endpoints at call sites
//
// The apex lands on the side fixed by the sign conventions below. The
// branch structure must stay exactly as written: swapping a sign flips
// the bump to the wrong side of the segment for some orientations, and
// whether that side is "outward" depends on the traversal direction
// chosen by the caller.
//
// Subdivide is a pure function. Coincident endpoints are a precondition
// violation; the result for s1 == s2 is unspecified.
func Subdivide(s1, s2 Point) [4]Point {
	line := LineThrough(s1, s2)

	// Midpoint of the segment, base of the bump's altitude.
	pa := s1.Add(s2).MulScalar(0.5)
	perp := Perpendicular(line, pa)

	// Trisection points, stepping along x for non-vertical segments and
	// along y for vertical ones, in the direction from s1 to s2.
	var p1, p3 Point
	if line.Kind == LineVertical {
		step := (s2.Y - s1.Y) / 3
		p1 = Point{X: s1.X, Y: s1.Y + step}
		p3 = Point{X: s1.X, Y: p1.Y + step}
	} else {
		step := (s2.X - s1.X) / 3
		p1 = Point{X: s1.X + step, Y: line.YAt(s1.X + step)}
		p3 = Point{X: p1.X + step, Y: line.YAt(p1.X + step)}
	}

	// Apex: walk the perpendicular away from pa so that |p1 pa p2| is
	// the altitude of an equilateral triangle on the p1-p3 base, i.e.
	// sqrt(3) times the p1-to-pa offset.
	var p2 Point
	if perp.Kind == LineVertical {
		p2 = Point{X: pa.X, Y: pa.Y - sqrt3*(pa.X-p1.X)}
	} else {
		x := pa.X + sqrt3*(pa.Y-p1.Y)
		p2 = Point{X: x, Y: perp.YAt(x)}
	}

	return [4]Point{p1, p2, p3, s2}
}
