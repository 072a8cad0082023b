package soft3d

import (
	"os"
	"testing"
)

func BenchmarkLoadGLTFData(b *testing.B) {
	b.StopTimer()
	data, err := os.ReadFile("./testdata/quad.gltf")
	if err != nil {
		b.Fatal(err)
	}
	b.StartTimer()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		_, err = LoadGLTFData(data)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func TestLoadGLTFFile(t *testing.T) {

	meshes, err := LoadGLTFFile("./testdata/quad.gltf")
	if err != nil {
		t.Fatal(err)
	}

	if len(meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(meshes))
	}

	quad := meshes[0]

	if quad.Name != "Quad" {
		t.Errorf("unexpected name %q", quad.Name)
	}

	// The points primitive is skipped.
	if len(quad.Vertices) != 4 || len(quad.Triangles) != 2 {
		t.Fatalf("expected 4 vertices and 2 triangles, got %d and %d", len(quad.Vertices), len(quad.Triangles))
	}

	if quad.Triangles[0] != [3]int{0, 2, 1} || quad.Triangles[1] != [3]int{0, 3, 2} {
		t.Errorf("expected the triangles to be flipped to clockwise winding, got %v", quad.Triangles)
	}

	if !quad.Vertices[2].Equals(NewVector3(1, 1, 0)) {
		t.Errorf("unexpected vertex %s", quad.Vertices[2])
	}

	// The quad faces +Z, so a camera on +Z looking at it draws both triangles.
	fb := NewFramebuffer(32, 32)
	pipeline := NewPipeline(32, 32)
	view := NewLookAtMatrix(NewVector3(0, 0, 5), NewVector3Zero(), WorldUp)
	projection := NewProjectionPerspective(1, 1, 0.1, 100)

	pipeline.DrawMeshObject(fb, NewDrawCall(NewMatrix4(), view, projection, NewColorRGB(255, 255, 255)), quad)

	if pipeline.DebugInfo.DrawnTris != 2 {
		t.Errorf("expected both triangles to be drawn: %+v", pipeline.DebugInfo)
	}

}

func TestLoadGLTFDataErrors(t *testing.T) {

	if _, err := LoadGLTFData([]byte("not a gltf file")); err == nil {
		t.Error("expected garbage data to fail")
	}

	if _, err := LoadGLTFFile("./testdata/missing.gltf"); err == nil {
		t.Error("expected a missing file to fail")
	}

}
