package solar

import (
	"github.com/solarlune/soft3d"
	"github.com/solarlune/soft3d/colors"
)

// Ship is a model that rides along in front of a FreeCamera, turning with it. Its Mesh should point its nose down -Z.
type Ship struct {
	Mesh         *soft3d.Mesh
	Color        soft3d.Color
	Scale        float32 // Uniform scale applied to the Mesh
	Distance     float32 // How far ahead of the camera the Ship floats
	HeightOffset float32 // World-space vertical offset, so the Ship sits below the center of the view

	Position   soft3d.Vector3
	Yaw, Pitch float32
}

// NewShip creates a new Ship for the Mesh given, floating 6 units ahead of and 1 unit below the camera.
func NewShip(mesh *soft3d.Mesh) *Ship {
	return &Ship{
		Mesh:         mesh,
		Color:        colors.White(),
		Scale:        0.4,
		Distance:     6,
		HeightOffset: -1,
	}
}

// Follow places the Ship in front of the camera and turns it to face the way the camera looks.
func (ship *Ship) Follow(cam *FreeCamera) {
	ship.Yaw = cam.Yaw
	ship.Pitch = cam.Pitch
	ship.Position = cam.Position.Add(cam.Forward().Scale(ship.Distance)).Add(soft3d.NewVector3(0, ship.HeightOffset, 0))
}

// ModelMatrix returns the Ship's model matrix: scaled, pitched, turned, then moved into place.
// A yaw turns a view to the right, which is a negative rotation around +Y.
func (ship *Ship) ModelMatrix() soft3d.Matrix4 {
	return soft3d.NewTransformMatrix(
		ship.Position,
		soft3d.NewVector3(ship.Pitch, -ship.Yaw, 0),
		soft3d.NewVector3(ship.Scale, ship.Scale, ship.Scale),
	)
}

// Render draws the Ship with its own DrawCall.
func (ship *Ship) Render(fb *soft3d.Framebuffer, pipeline *soft3d.Pipeline, view, projection soft3d.Matrix4) {
	pipeline.DrawMeshObject(fb, soft3d.NewDrawCall(ship.ModelMatrix(), view, projection, ship.Color), ship.Mesh)
}
