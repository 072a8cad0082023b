package soft3d

import (
	"testing"

	"github.com/solarlune/soft3d/math32"
)

func TestSphereMesh(t *testing.T) {

	tests := []struct {
		lat, lon            int
		vertices, triangles int
	}{
		{16, 16, 17 * 17, 16 * 16 * 2},
		{4, 8, 5 * 9, 4 * 8 * 2},
		{0, 0, 3 * 4, 2 * 3 * 2}, // clamped to the minimum
	}

	for _, test := range tests {

		sphere := NewSphereMesh(test.lat, test.lon)

		if len(sphere.Vertices) != test.vertices || len(sphere.Triangles) != test.triangles {
			t.Errorf("%d x %d: expected %d vertices and %d triangles, got %d and %d",
				test.lat, test.lon, test.vertices, test.triangles, len(sphere.Vertices), len(sphere.Triangles))
		}

		if err := sphere.Validate(); err != nil {
			t.Error(err)
		}

		for _, v := range sphere.Vertices {
			if math32.Abs(v.Magnitude()-1) > 1e-5 {
				t.Fatalf("vertex %s doesn't lie on the unit sphere", v)
			}
		}

	}

}

func TestSphereMeshWinding(t *testing.T) {

	sphere := NewSphereMesh(8, 8)

	// Seen from outside with +Y up, each non-degenerate triangle winds clockwise, so its
	// counter-clockwise normal points inwards.
	for i, tri := range sphere.Triangles {

		a, b, c := sphere.Vertices[tri[0]], sphere.Vertices[tri[1]], sphere.Vertices[tri[2]]
		normal := b.Sub(a).Cross(c.Sub(a))

		if normal.MagnitudeSquared() < 1e-10 {
			continue // pole
		}

		center := a.Add(b).Add(c).Scale(1.0 / 3)

		if normal.Dot(center) >= 0 {
			t.Fatalf("triangle %d winds the wrong way", i)
		}

	}

}

func TestCubeMesh(t *testing.T) {

	cube := NewCubeMesh(3)

	if len(cube.Vertices) != 8 || len(cube.Triangles) != 12 {
		t.Fatalf("expected 8 vertices and 12 triangles, got %d and %d", len(cube.Vertices), len(cube.Triangles))
	}

	if span := cube.Dimensions().MaxSpan(); span != 3 {
		t.Errorf("expected a span of 3, got %f", span)
	}

	for i, tri := range cube.Triangles {

		a, b, c := cube.Vertices[tri[0]], cube.Vertices[tri[1]], cube.Vertices[tri[2]]
		normal := b.Sub(a).Cross(c.Sub(a))
		center := a.Add(b).Add(c).Scale(1.0 / 3)

		if normal.Dot(center) >= 0 {
			t.Errorf("triangle %d winds the wrong way", i)
		}

	}

}
