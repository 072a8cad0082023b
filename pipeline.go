package soft3d

import (
	"fmt"
	"time"
)

// DrawCall is everything a single Draw needs besides the geometry: the model-view-projection matrix to transform
// vertices with and the flat color to fill triangles with. DrawCalls are plain values; building one never touches
// the Pipeline's state.
type DrawCall struct {
	MVP   Matrix4
	Color Color
}

// NewDrawCall returns a DrawCall combining the model, view, and projection matrices given (projection * view * model).
func NewDrawCall(model, view, projection Matrix4, color Color) DrawCall {
	return DrawCall{
		MVP:   NewMVPMatrix(model, view, projection),
		Color: color,
	}
}

// DebugInfo is a struct that holds debugging information for the Pipeline's render calls since the last ResetDebugInfo().
type DebugInfo struct {
	FrameTime     time.Duration // Time spent inside Draw calls
	DrawCalls     int           // Number of Draw calls made
	TotalTris     int           // Total number of triangles submitted
	DrawnTris     int           // Number of triangles rasterized
	CulledTris    int           // Number of triangles skipped as back-facing or degenerate
	RejectedTris  int           // Number of triangles skipped because a vertex was at or behind the eye
	PixelsWritten int           // Number of pixels that passed the depth test
}

// String returns a multi-line summary of the DebugInfo, suitable for DrawDebugText.
func (info DebugInfo) String() string {
	return fmt.Sprintf(
		"Draw calls: %d\nFrame time: %.2fms\nTriangles: %d/%d drawn\nCulled: %d  Rejected: %d\nPixels: %d",
		info.DrawCalls,
		float64(info.FrameTime.Microseconds())/1000,
		info.DrawnTris,
		info.TotalTris,
		info.CulledTris,
		info.RejectedTris,
		info.PixelsWritten,
	)
}

// Pipeline turns indexed triangle meshes into filled, depth-tested pixels in a Framebuffer.
// A Pipeline remembers a current DrawCall for the SetMVP / SetColor / DrawMesh style of drawing; Draw itself
// takes its DrawCall explicitly and doesn't read or change the current one.
type Pipeline struct {
	width, height float32
	current       DrawCall

	DebugInfo DebugInfo
}

// NewPipeline creates a new Pipeline that projects into a viewport of the size given. The current DrawCall starts
// out with an identity MVP matrix and opaque white.
func NewPipeline(width, height int) *Pipeline {

	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("Error: NewPipeline() needs a positive viewport size; got %d x %d", width, height))
	}

	return &Pipeline{
		width:  float32(width),
		height: float32(height),
		current: DrawCall{
			MVP:   NewMatrix4(),
			Color: NewColorRGB(255, 255, 255),
		},
	}

}

// Viewport returns the size of the viewport the Pipeline projects into.
func (p *Pipeline) Viewport() (width, height int) {
	return int(p.width), int(p.height)
}

// SetViewport changes the size of the viewport the Pipeline projects into, for example after the Framebuffer has been recreated.
func (p *Pipeline) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("Error: Pipeline.SetViewport() needs a positive viewport size; got %d x %d", width, height))
	}
	p.width = float32(width)
	p.height = float32(height)
}

// SetMVP sets the MVP matrix of the Pipeline's current DrawCall.
func (p *Pipeline) SetMVP(mvp Matrix4) {
	p.current.MVP = mvp
}

// SetColor sets the fill color of the Pipeline's current DrawCall.
func (p *Pipeline) SetColor(c Color) {
	p.current.Color = c
}

// CurrentDrawCall returns a copy of the Pipeline's current DrawCall.
func (p *Pipeline) CurrentDrawCall() DrawCall {
	return p.current
}

// ProjectPoint transforms the point given by the MVP matrix and maps it into a viewport of the given size:
// X and Y in pixels (Y growing downwards), Depth as the normalized device Z. ok is false if the point lies at
// or behind the eye (clip-space W <= 0), in which case the ScreenVertex is meaningless.
func ProjectPoint(mvp Matrix4, point Vector3, width, height float32) (ScreenVertex, bool) {

	clip := mvp.MultVec4(NewVector4Point(point))

	if clip.W <= 0 {
		return ScreenVertex{}, false
	}

	ndc := clip.ToVector3()

	return ScreenVertex{
		X:     (ndc.X + 1) * 0.5 * width,
		Y:     (1 - ndc.Y) * 0.5 * height,
		Depth: ndc.Z,
	}, true

}

// Project transforms the point given into the Pipeline's viewport. See ProjectPoint.
func (p *Pipeline) Project(mvp Matrix4, point Vector3) (ScreenVertex, bool) {
	return ProjectPoint(mvp, point, p.width, p.height)
}

// Draw transforms, culls, and rasterizes the triangles given into the Framebuffer using the DrawCall's MVP matrix and color.
// A triangle with any vertex at or behind the eye is skipped as a whole; there's no near-plane clipping.
// Draw panics if a triangle references a vertex index outside of vertices.
func (p *Pipeline) Draw(fb *Framebuffer, call DrawCall, vertices []Vector3, triangles [][3]int) {

	start := time.Now()

	p.DebugInfo.DrawCalls++
	p.DebugInfo.TotalTris += len(triangles)

	count := len(vertices)

	projected := [3]ScreenVertex{}

	for t, tri := range triangles {

		visible := true

		for i, index := range tri {

			if index < 0 || index >= count {
				panic(fmt.Sprintf("Error: triangle %d references vertex %d, but only %d vertices were given", t, index, count))
			}

			sv, ok := p.Project(call.MVP, vertices[index])
			if !ok {
				visible = false
			}
			projected[i] = sv

		}

		if !visible {
			p.DebugInfo.RejectedTris++
			continue
		}

		stats := DrawFilledTriangle(fb, projected, call.Color)

		if stats.Culled {
			p.DebugInfo.CulledTris++
			continue
		}

		p.DebugInfo.DrawnTris++
		p.DebugInfo.PixelsWritten += stats.PixelsWritten

	}

	p.DebugInfo.FrameTime += time.Since(start)

}

// DrawMesh draws the triangles given using the Pipeline's current DrawCall. See Draw.
func (p *Pipeline) DrawMesh(fb *Framebuffer, vertices []Vector3, triangles [][3]int) {
	p.Draw(fb, p.current, vertices, triangles)
}

// DrawMeshObject draws the Mesh given using the DrawCall given. See Draw.
func (p *Pipeline) DrawMeshObject(fb *Framebuffer, call DrawCall, mesh *Mesh) {
	p.Draw(fb, call, mesh.Vertices, mesh.Triangles)
}

// ResetDebugInfo zeroes the Pipeline's DebugInfo. Call it once at the start of each frame.
func (p *Pipeline) ResetDebugInfo() {
	p.DebugInfo = DebugInfo{}
}
