package solar

import (
	"github.com/solarlune/soft3d"
	"github.com/solarlune/soft3d/colors"
)

// System is a sun with planets orbiting it. Every Body is drawn with the same unit sphere Mesh.
type System struct {
	Sun     *Body
	Planets []*Body
	Mesh    *soft3d.Mesh
}

// NewSystem creates a new System out of the sphere Mesh, sun, and planets given.
func NewSystem(mesh *soft3d.Mesh, sun *Body, planets ...*Body) *System {
	return &System{
		Sun:     sun,
		Planets: planets,
		Mesh:    mesh,
	}
}

// NewDefaultSystem creates the stock System: a large yellow sun with three planets at increasing distances.
func NewDefaultSystem(mesh *soft3d.Mesh) *System {
	return NewSystem(
		mesh,
		NewBody("Sun", 4, 0, 0, 0.3, colors.SunYellow()),
		NewBody("PlanetA", 1.5, 10, 0.4, 0.8, colors.SkyBlue()),
		NewBody("PlanetB", 1, 16, 0.3, 1.2, colors.Orange()),
		NewBody("PlanetC", 2.5, 24, 0.1, 0.4, colors.Lime()),
	)
}

// Bodies returns the sun followed by every planet.
func (system *System) Bodies() []*Body {
	bodies := make([]*Body, 0, len(system.Planets)+1)
	if system.Sun != nil {
		bodies = append(bodies, system.Sun)
	}
	return append(bodies, system.Planets...)
}

// Planet returns the planet at the index given, or nil if there isn't one.
func (system *System) Planet(index int) *Body {
	if index < 0 || index >= len(system.Planets) {
		return nil
	}
	return system.Planets[index]
}

// Update advances every Body by dt seconds.
func (system *System) Update(dt float32) {
	for _, body := range system.Bodies() {
		body.Update(dt)
	}
}

// Render draws every Body into the Framebuffer through the Pipeline's current DrawCall, sun first.
func (system *System) Render(fb *soft3d.Framebuffer, pipeline *soft3d.Pipeline, view, projection soft3d.Matrix4) {

	viewProjection := projection.Mult(view)

	for _, body := range system.Bodies() {
		pipeline.SetColor(body.Color)
		pipeline.SetMVP(viewProjection.Mult(body.ModelMatrix()))
		pipeline.DrawMesh(fb, system.Mesh.Vertices, system.Mesh.Triangles)
	}

}
