package koch_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/chazu/frost/pkg/geom"
	"github.com/chazu/frost/pkg/koch"
)

func TestNewTriangleCanonical(t *testing.T) {
	tri := koch.NewTriangle(geom.Pt(0, 0), geom.Pt(0, 20))

	want := 20 * math.Sqrt(3) / 2 // 17.320508...
	if !scalar.EqualWithinAbs(tri.B.X, -want, 1e-6) ||
		!scalar.EqualWithinAbs(tri.B.Y, -10, 1e-6) {
		t.Errorf("B = %v, expected (%g, -10)", tri.B, -want)
	}
	if !scalar.EqualWithinAbs(tri.C.X, want, 1e-6) ||
		!scalar.EqualWithinAbs(tri.C.Y, -10, 1e-6) {
		t.Errorf("C = %v, expected (%g, -10)", tri.C, want)
	}
}

func TestNewTriangleEquidistant(t *testing.T) {
	cases := []struct {
		name             string
		centroid, vertex geom.Point
	}{
		{"origin up", geom.Pt(0, 0), geom.Pt(0, 20)},
		{"offset", geom.Pt(100, -40), geom.Pt(130, -40)},
		{"tilted", geom.Pt(-3, 7), geom.Pt(5, 19)},
		{"tiny", geom.Pt(0.25, 0.25), geom.Pt(0.25, 0.75)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tri := koch.NewTriangle(c.centroid, c.vertex)
			r := c.vertex.Sub(c.centroid).Length()

			rb := tri.B.Sub(c.centroid).Length()
			rc := tri.C.Sub(c.centroid).Length()
			if !scalar.EqualWithinAbs(rb, r, 1e-9) {
				t.Errorf("|M-B| = %g, expected %g", rb, r)
			}
			if !scalar.EqualWithinAbs(rc, r, 1e-9) {
				t.Errorf("|M-C| = %g, expected %g", rc, r)
			}
		})
	}
}

func TestNewTriangleVertexAngles(t *testing.T) {
	tri := koch.NewTriangle(geom.Pt(-3, 7), geom.Pt(5, 19))
	m := tri.Centroid

	angle := func(p, q geom.Point) float64 {
		u := p.Sub(m)
		v := q.Sub(m)
		return math.Acos(u.Dot(v) / (u.Length() * v.Length()))
	}

	want := 2 * math.Pi / 3
	for _, pair := range [][2]geom.Point{
		{tri.A, tri.B},
		{tri.B, tri.C},
		{tri.C, tri.A},
	} {
		if got := angle(pair[0], pair[1]); !scalar.EqualWithinAbs(got, want, 1e-9) {
			t.Errorf("angle at centroid = %g rad, expected %g", got, want)
		}
	}
}

func TestSideLevelZero(t *testing.T) {
	v1 := geom.Pt(0, 20)
	v2 := geom.Pt(-17.32, -10)

	pts := koch.Side(v1, v2, 0)
	if len(pts) != 1 || pts[0] != v2 {
		t.Fatalf("Side(v1, v2, 0) = %v, expected [v2]", pts)
	}

	// Negative levels behave like level 0.
	pts = koch.Side(v1, v2, -3)
	if len(pts) != 1 || pts[0] != v2 {
		t.Fatalf("Side(v1, v2, -3) = %v, expected [v2]", pts)
	}
}

func TestSideLevelZeroConcrete(t *testing.T) {
	tri := koch.NewTriangle(geom.Pt(0, 0), geom.Pt(0, 20))
	pts := koch.Side(tri.A, tri.B, 0)
	if len(pts) != 1 || pts[0] != tri.B {
		t.Fatalf("Side(A, B, 0) = %v, expected exactly [B]", pts)
	}
}

func TestSidePointCount(t *testing.T) {
	v1 := geom.Pt(0, 20)
	v2 := geom.Pt(-17.32, -10)

	for level := 1; level <= 5; level++ {
		want := 1
		for i := 0; i < level; i++ {
			want *= 4
		}
		got := len(koch.Side(v1, v2, level))
		if got != want {
			t.Errorf("level %d: %d points, expected %d", level, got, want)
		}
		if koch.PointsPerSide(level) != want {
			t.Errorf("PointsPerSide(%d) = %d, expected %d", level, koch.PointsPerSide(level), want)
		}
	}
}

func TestSideEndsAtTerminalVertex(t *testing.T) {
	v1 := geom.Pt(0, 20)
	v2 := geom.Pt(-17.32, -10)
	for level := 0; level <= 4; level++ {
		pts := koch.Side(v1, v2, level)
		if pts[len(pts)-1] != v2 {
			t.Errorf("level %d: last point %v, expected %v", level, pts[len(pts)-1], v2)
		}
	}
}

// Subdividing a side into 4^level segments leaves every segment with
// length L/3^level, where L is the side length.
func TestSideUniformSegmentLength(t *testing.T) {
	v1 := geom.Pt(0, 20)
	v2 := geom.Pt(-17.32, -10)
	level := 3

	want := v2.Sub(v1).Length() / 27

	prev := v1
	for i, p := range koch.Side(v1, v2, level) {
		got := p.Sub(prev).Length()
		if !scalar.EqualWithinAbs(got, want, 1e-6) {
			t.Fatalf("segment %d has length %g, expected %g", i, got, want)
		}
		prev = p
	}
}

func TestSideLevelOneMatchesSubdivide(t *testing.T) {
	v1 := geom.Pt(0, 0)
	v2 := geom.Pt(0, 9)

	q := geom.Subdivide(v1, v2)
	pts := koch.Side(v1, v2, 1)
	if len(pts) != 4 {
		t.Fatalf("expected 4 points, got %d", len(pts))
	}
	for i := range q {
		if pts[i] != q[i] {
			t.Errorf("point %d = %v, expected %v", i, pts[i], q[i])
		}
	}
}

func TestOutlineShape(t *testing.T) {
	for level := 0; level <= 3; level++ {
		pts := koch.Outline(geom.Pt(0, 0), geom.Pt(0, 20), level)

		want := 1 + 3*koch.PointsPerSide(level)
		if len(pts) != want {
			t.Errorf("level %d: %d points, expected %d", level, len(pts), want)
		}
		if pts[0] != geom.Pt(0, 20) {
			t.Errorf("level %d: outline starts at %v, expected the starting vertex", level, pts[0])
		}
		// The outline is a closed path back to the starting vertex.
		if pts[len(pts)-1] != pts[0] {
			t.Errorf("level %d: outline ends at %v, expected %v", level, pts[len(pts)-1], pts[0])
		}
	}
}

func TestOutlineDeterministic(t *testing.T) {
	a := koch.Outline(geom.Pt(3, -2), geom.Pt(11, 6), 4)
	b := koch.Outline(geom.Pt(3, -2), geom.Pt(11, 6), 4)

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

// Every bump apex must land on the far side of its base relative to
// the centroid; spot-check that all outline points at level 1 are at
// least as far from the centroid as the triangle's inradius.
func TestOutlineBumpsPointOutward(t *testing.T) {
	centroid := geom.Pt(0, 0)
	pts := koch.Outline(centroid, geom.Pt(0, 20), 1)

	// Inradius of the starting triangle is half the circumradius.
	inradius := 10.0
	for i, p := range pts {
		if d := p.Sub(centroid).Length(); d < inradius-1e-6 {
			t.Errorf("point %d = %v is inside the starting triangle (distance %g)", i, p, d)
		}
	}
}

func TestPointsPerSideLevelZero(t *testing.T) {
	if koch.PointsPerSide(0) != 1 {
		t.Errorf("PointsPerSide(0) = %d, expected 1", koch.PointsPerSide(0))
	}
	if koch.PointsPerSide(-2) != 1 {
		t.Errorf("PointsPerSide(-2) = %d, expected 1", koch.PointsPerSide(-2))
	}
}
