package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// segments used for property checks, covering all line kinds and both
// traversal directions.
var propertySegments = []struct {
	name   string
	s1, s2 Point
}{
	{"sloped up", Pt(0, 0), Pt(9, 9)},
	{"sloped down", Pt(0, 20), Pt(-17.32, -10)},
	{"sloped reversed", Pt(-17.32, -10), Pt(0, 20)},
	{"horizontal", Pt(-17.32, -10), Pt(17.32, -10)},
	{"horizontal reversed", Pt(17.32, -10), Pt(-17.32, -10)},
	{"vertical", Pt(0, 0), Pt(0, 9)},
	{"vertical reversed", Pt(0, 9), Pt(0, 0)},
	{"steep", Pt(1, 1), Pt(1.001, 31)},
}

func TestSubdivideTrisection(t *testing.T) {
	for _, c := range propertySegments {
		t.Run(c.name, func(t *testing.T) {
			q := Subdivide(c.s1, c.s2)
			length := c.s2.Sub(c.s1).Length()

			d1 := q[0].Sub(c.s1).Length()
			if !scalar.EqualWithinAbs(d1, length/3, 1e-6) {
				t.Errorf("p1 at distance %g from s1, expected %g", d1, length/3)
			}
			d3 := q[2].Sub(c.s1).Length()
			if !scalar.EqualWithinAbs(d3, 2*length/3, 1e-6) {
				t.Errorf("p3 at distance %g from s1, expected %g", d3, 2*length/3)
			}
		})
	}
}

func TestSubdivideApexEquilateral(t *testing.T) {
	for _, c := range propertySegments {
		t.Run(c.name, func(t *testing.T) {
			q := Subdivide(c.s1, c.s2)
			base := q[2].Sub(q[0]).Length()

			d1 := q[1].Sub(q[0]).Length()
			d3 := q[1].Sub(q[2]).Length()
			if !scalar.EqualWithinAbs(d1, base, 1e-4) {
				t.Errorf("|p2-p1| = %g, expected %g", d1, base)
			}
			if !scalar.EqualWithinAbs(d3, base, 1e-4) {
				t.Errorf("|p2-p3| = %g, expected %g", d3, base)
			}
		})
	}
}

func TestSubdivideEchoesEndpoint(t *testing.T) {
	for _, c := range propertySegments {
		q := Subdivide(c.s1, c.s2)
		if q[3] != c.s2 {
			t.Errorf("%s: q[3] = %v, expected the original endpoint %v", c.name, q[3], c.s2)
		}
	}
}

func TestSubdivideVerticalSegment(t *testing.T) {
	q := Subdivide(Pt(0, 0), Pt(0, 9))

	if q[0] != Pt(0, 3) {
		t.Errorf("p1 = %v, expected (0,3)", q[0])
	}
	if q[2] != Pt(0, 6) {
		t.Errorf("p3 = %v, expected (0,6)", q[2])
	}

	// Apex sits off the x=0 line on the horizontal perpendicular
	// through the midpoint (0, 4.5), at sqrt(3)*1.5 to the right.
	wantX := math.Sqrt(3) * 1.5
	if !scalar.EqualWithinAbs(q[1].X, wantX, 1e-9) {
		t.Errorf("apex x = %g, expected %g", q[1].X, wantX)
	}
	if !scalar.EqualWithinAbs(q[1].Y, 4.5, 1e-9) {
		t.Errorf("apex y = %g, expected 4.5", q[1].Y)
	}
}

func TestSubdivideHorizontalSegment(t *testing.T) {
	q := Subdivide(Pt(0, 0), Pt(9, 0))

	if q[0] != Pt(3, 0) {
		t.Errorf("p1 = %v, expected (3,0)", q[0])
	}
	if q[2] != Pt(6, 0) {
		t.Errorf("p3 = %v, expected (6,0)", q[2])
	}

	// Apex sits below the segment on the vertical perpendicular
	// through (4.5, 0): left-to-right traversal bumps downward.
	if !scalar.EqualWithinAbs(q[1].X, 4.5, 1e-9) {
		t.Errorf("apex x = %g, expected 4.5", q[1].X)
	}
	wantY := -math.Sqrt(3) * 1.5
	if !scalar.EqualWithinAbs(q[1].Y, wantY, 1e-9) {
		t.Errorf("apex y = %g, expected %g", q[1].Y, wantY)
	}
}

// TestSubdivideFirstSide pins the reference values for the first side
// of the canonical triangle (centroid at the origin, top vertex at
// (0,20)), traversed top vertex to bottom-left vertex.
func TestSubdivideFirstSide(t *testing.T) {
	q := Subdivide(Pt(0, 20), Pt(-17.32, -10))

	// Trisection points of the segment.
	if !scalar.EqualWithinAbs(q[0].X, -17.32/3, 1e-9) {
		t.Errorf("p1 x = %g, expected %g", q[0].X, -17.32/3)
	}
	if !scalar.EqualWithinAbs(q[0].Y, 10, 1e-9) {
		t.Errorf("p1 y = %g, expected 10", q[0].Y)
	}
	if !scalar.EqualWithinAbs(q[2].X, -2*17.32/3, 1e-9) {
		t.Errorf("p3 x = %g, expected %g", q[2].X, -2*17.32/3)
	}
	if !scalar.EqualWithinAbs(q[2].Y, 0, 1e-9) {
		t.Errorf("p3 y = %g, expected 0", q[2].Y)
	}

	// Apex points away from the centroid at the origin.
	if !scalar.EqualWithinAbs(q[1].X, -17.3203, 1e-3) {
		t.Errorf("apex x = %g, expected about -17.32", q[1].X)
	}
	if !scalar.EqualWithinAbs(q[1].Y, 10, 1e-3) {
		t.Errorf("apex y = %g, expected about 10", q[1].Y)
	}
	if q[1].Length() <= Pt(-17.32/3, 10).Length() {
		t.Error("apex should be farther from the centroid than the base points")
	}
}

func TestSubdivideDeterministic(t *testing.T) {
	for _, c := range propertySegments {
		a := Subdivide(c.s1, c.s2)
		b := Subdivide(c.s1, c.s2)
		if a != b {
			t.Errorf("%s: repeated subdivision differs: %v vs %v", c.name, a, b)
		}
	}
}
