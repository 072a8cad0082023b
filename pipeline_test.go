package soft3d

import (
	"strings"
	"testing"

	"github.com/solarlune/soft3d/math32"
)

// sphereScene renders a unit sphere from 5 units away into a 200x200 Framebuffer with a 60 degree vertical field of view.
func sphereScene(pipeline *Pipeline, fb *Framebuffer, c Color) {

	sphere := NewSphereMesh(16, 16)

	view := NewLookAtMatrix(NewVector3(0, 0, 5), NewVector3Zero(), WorldUp)
	projection := NewProjectionPerspective(math32.ToRadians(60), 1, 0.1, 100)

	pipeline.Draw(fb, NewDrawCall(NewMatrix4(), view, projection, c), sphere.Vertices, sphere.Triangles)

}

func BenchmarkDrawSphere(b *testing.B) {

	fb := NewFramebuffer(200, 200)
	pipeline := NewPipeline(200, 200)
	c := NewColorRGB(68, 170, 255)

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		fb.Clear(0)
		sphereScene(pipeline, fb, c)
	}

}

func TestProjectPoint(t *testing.T) {

	mvp := NewMVPMatrix(
		NewMatrix4(),
		NewLookAtMatrix(NewVector3(0, 0, 5), NewVector3Zero(), WorldUp),
		NewProjectionPerspective(math32.ToRadians(60), 1, 0.1, 100),
	)

	center, ok := ProjectPoint(mvp, NewVector3Zero(), 200, 100)

	if !ok {
		t.Fatal("the origin is in front of the camera")
	}

	if math32.Abs(center.X-100) > 1e-3 || math32.Abs(center.Y-50) > 1e-3 {
		t.Errorf("the origin should land on the center of the viewport, got %f, %f", center.X, center.Y)
	}

	if center.Depth <= -1 || center.Depth >= 1 {
		t.Errorf("depth should lie between the near and far planes, got %f", center.Depth)
	}

	// +Y in the world is up, which is towards smaller screen Y.
	up, _ := ProjectPoint(mvp, NewVector3(0, 1, 0), 200, 100)
	if up.Y >= center.Y {
		t.Errorf("a point above the origin should project higher up on screen: %f vs %f", up.Y, center.Y)
	}

	right, _ := ProjectPoint(mvp, NewVector3(1, 0, 0), 200, 100)
	if right.X <= center.X {
		t.Errorf("a point to the right of the origin should project further right: %f vs %f", right.X, center.X)
	}

	// Nearer points have smaller depth values.
	nearer, _ := ProjectPoint(mvp, NewVector3(0, 0, 2), 200, 100)
	if nearer.Depth >= center.Depth {
		t.Errorf("nearer point should have a smaller depth: %f vs %f", nearer.Depth, center.Depth)
	}

	if _, ok := ProjectPoint(mvp, NewVector3(0, 0, 10), 200, 100); ok {
		t.Error("a point behind the camera should be rejected")
	}

	if _, ok := ProjectPoint(mvp, NewVector3(0, 0, 5), 200, 100); ok {
		t.Error("a point at the eye should be rejected")
	}

}

func TestPipelineSphere(t *testing.T) {

	fb := NewFramebuffer(200, 200)
	pipeline := NewPipeline(200, 200)
	blue := NewColorRGB(68, 170, 255)

	sphereScene(pipeline, fb, blue)

	if c, _ := fb.Pixel(100, 100); c != blue {
		t.Errorf("the center of the sphere should be filled, got %08x", c)
	}

	for _, corner := range [][2]int{{0, 0}, {199, 0}, {0, 199}, {199, 199}} {
		if c, _ := fb.Pixel(corner[0], corner[1]); c != 0 {
			t.Errorf("corner %v should be empty, got %08x", corner, c)
		}
	}

	// The silhouette of a sphere of radius 1 seen from 5 units away spans tan(asin(1/5)) / tan(30deg) of the half-height.
	expected := math32.Tan(math32.Asin(1.0/5)) / math32.Tan(math32.ToRadians(30)) * 100

	left, right := -1, -1
	for x := 0; x < 200; x++ {
		if c, _ := fb.Pixel(x, 100); c == blue {
			if left < 0 {
				left = x
			}
			right = x
		}
	}

	halfWidth := float32(right-left+1) / 2

	// The tessellated silhouette is a little smaller than the true one.
	if math32.Abs(halfWidth-expected) > 2.5 {
		t.Errorf("expected a silhouette radius of about %f pixels, got %f", expected, halfWidth)
	}

	area := float32(countColor(fb, blue))
	if radius := math32.Sqrt(area / math32.Pi); math32.Abs(radius-expected)/expected > 0.1 {
		t.Errorf("filled area implies a radius of %f pixels, expected about %f", radius, expected)
	}

	info := pipeline.DebugInfo

	if info.TotalTris != 16*16*2 {
		t.Errorf("expected %d triangles submitted, got %d", 16*16*2, info.TotalTris)
	}

	// Roughly half the sphere faces away from the camera.
	if info.CulledTris == 0 || info.DrawnTris == 0 {
		t.Errorf("expected both drawn and culled triangles: %+v", info)
	}

	if info.DrawnTris+info.CulledTris+info.RejectedTris != info.TotalTris {
		t.Errorf("triangle counts don't add up: %+v", info)
	}

	if info.RejectedTris != 0 {
		t.Errorf("nothing is behind the camera: %+v", info)
	}

	if info.PixelsWritten < int(area) {
		t.Errorf("at least %d pixels should have been written, got %d", int(area), info.PixelsWritten)
	}

}

func TestPipelineBehindCamera(t *testing.T) {

	fb := NewFramebuffer(64, 64)
	pipeline := NewPipeline(64, 64)

	view := NewLookAtMatrix(NewVector3(0, 0, 5), NewVector3Zero(), WorldUp)
	projection := NewProjectionPerspective(math32.ToRadians(60), 1, 0.1, 100)

	// Sitting behind the camera.
	vertices := []Vector3{{-1, -1, 10}, {-1, 1, 10}, {1, -1, 10}}

	pipeline.Draw(fb, NewDrawCall(NewMatrix4(), view, projection, NewColorRGB(255, 0, 0)), vertices, [][3]int{{0, 1, 2}})

	if pipeline.DebugInfo.RejectedTris != 1 || pipeline.DebugInfo.PixelsWritten != 0 {
		t.Errorf("triangle behind the camera should be rejected: %+v", pipeline.DebugInfo)
	}

	for _, p := range fb.ColorBuffer() {
		if p != 0 {
			t.Fatal("nothing should have been written")
		}
	}

	// One vertex behind the camera is enough to drop the whole triangle.
	vertices[0] = NewVector3(-1, -1, 0)
	vertices[1] = NewVector3(-1, 1, 0)

	pipeline.ResetDebugInfo()
	pipeline.Draw(fb, NewDrawCall(NewMatrix4(), view, projection, NewColorRGB(255, 0, 0)), vertices, [][3]int{{0, 1, 2}})

	if pipeline.DebugInfo.RejectedTris != 1 || pipeline.DebugInfo.DrawnTris != 0 {
		t.Errorf("partially visible triangle should be dropped as a whole: %+v", pipeline.DebugInfo)
	}

}

func TestPipelineVertexAtEyePlane(t *testing.T) {

	fb := NewFramebuffer(64, 64)
	pipeline := NewPipeline(64, 64)

	projection := NewProjectionPerspective(1, 1, 0.1, 100)

	// Barely in front of the eye, so these project to enormous screen coordinates off to the right and below.
	vertices := []Vector3{{1, -1, -1e-20}, {3, -2, -1e-20}, {2, -3, -1e-20}}

	pipeline.Draw(fb, NewDrawCall(NewMatrix4(), NewMatrix4(), projection, NewColorRGB(255, 0, 0)), vertices, [][3]int{{0, 1, 2}, {0, 2, 1}})

	info := pipeline.DebugInfo

	if info.RejectedTris+info.CulledTris+info.DrawnTris != 2 || info.PixelsWritten != 0 {
		t.Errorf("off-screen triangles shouldn't write anything: %+v", info)
	}

	for _, p := range fb.ColorBuffer() {
		if p != 0 {
			t.Fatal("nothing should have been written")
		}
	}

}

func TestPipelineInvalidIndexPanics(t *testing.T) {

	fb := NewFramebuffer(16, 16)
	pipeline := NewPipeline(16, 16)

	defer func() {
		if r := recover(); r == nil {
			t.Error("drawing a triangle with an out-of-range index should panic")
		} else if msg, ok := r.(string); !ok || !strings.HasPrefix(msg, "Error:") {
			t.Errorf("unexpected panic value: %v", r)
		}
	}()

	pipeline.DrawMesh(fb, []Vector3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, [][3]int{{0, 1, 3}})

}

func TestPipelineDrawCallState(t *testing.T) {

	pipeline := NewPipeline(200, 200)

	initial := pipeline.CurrentDrawCall()
	if !initial.MVP.IsIdentity() || initial.Color != NewColorRGB(255, 255, 255) {
		t.Errorf("unexpected initial draw call: %+v", initial)
	}

	view := NewLookAtMatrix(NewVector3(0, 0, 5), NewVector3Zero(), WorldUp)
	projection := NewProjectionPerspective(math32.ToRadians(60), 1, 0.1, 100)
	blue := NewColorRGB(68, 170, 255)

	call := NewDrawCall(NewMatrix4(), view, projection, blue)

	// Drawing with an explicit DrawCall doesn't touch the current one.
	explicit := NewFramebuffer(200, 200)
	sphere := NewSphereMesh(16, 16)
	pipeline.DrawMeshObject(explicit, call, sphere)

	if pipeline.CurrentDrawCall() != initial {
		t.Error("Draw shouldn't change the current draw call")
	}

	// The setters build up the same DrawCall.
	pipeline.SetMVP(call.MVP)
	pipeline.SetColor(call.Color)

	if pipeline.CurrentDrawCall() != call {
		t.Errorf("expected the current draw call to match: %+v vs %+v", pipeline.CurrentDrawCall(), call)
	}

	stateful := NewFramebuffer(200, 200)
	pipeline.DrawMesh(stateful, sphere.Vertices, sphere.Triangles)

	for i := range explicit.ColorBuffer() {
		if explicit.ColorBuffer()[i] != stateful.ColorBuffer()[i] {
			t.Fatalf("explicit and stateful drawing differ at pixel %d, %d", i%200, i/200)
		}
	}

}

func TestPipelineCube(t *testing.T) {

	fb := NewFramebuffer(100, 100)
	pipeline := NewPipeline(100, 100)
	red := NewColorRGB(255, 0, 0)

	view := NewLookAtMatrix(NewVector3(0, 0, 5), NewVector3Zero(), WorldUp)
	projection := NewProjectionPerspective(math32.ToRadians(60), 1, 0.1, 100)

	cube := NewCubeMesh(2)

	pipeline.DrawMeshObject(fb, NewDrawCall(NewMatrix4(), view, projection, red), cube)

	// Looking straight on, only the front face is drawn; the side faces point away from the eye.
	if pipeline.DebugInfo.DrawnTris < 2 {
		t.Errorf("the front face should be drawn: %+v", pipeline.DebugInfo)
	}

	if c, _ := fb.Pixel(50, 50); c != red {
		t.Errorf("cube center should be filled, got %08x", c)
	}

	// Flipping the winding turns the cube inside out, so the far faces get drawn instead.
	flipped := cube.Clone()
	flipped.FlipWinding()

	fb.Clear(0)
	pipeline.ResetDebugInfo()
	pipeline.DrawMeshObject(fb, NewDrawCall(NewMatrix4(), view, projection, red), flipped)

	inside, _ := fb.Depth(50, 50)

	fb.Clear(0)
	pipeline.DrawMeshObject(fb, NewDrawCall(NewMatrix4(), view, projection, red), cube)

	outside, _ := fb.Depth(50, 50)

	if inside <= outside {
		t.Errorf("flipped cube should show its far side: depth %f vs %f", inside, outside)
	}

}

func TestDebugInfoString(t *testing.T) {

	info := DebugInfo{DrawCalls: 2, TotalTris: 10, DrawnTris: 4, CulledTris: 6, PixelsWritten: 123}

	s := info.String()

	for _, part := range []string{"Draw calls: 2", "4/10", "Culled: 6", "Pixels: 123"} {
		if !strings.Contains(s, part) {
			t.Errorf("%q missing from %q", part, s)
		}
	}

}
