package solar

import (
	"github.com/solarlune/soft3d"
	"github.com/solarlune/soft3d/math32"
)

// MaxPitch is how far, in radians, a FreeCamera can look up or down.
const MaxPitch = 1.5

// FreeCamera is a fly-through camera steered by a yaw (turning around world +Y) and a pitch (looking up or down).
// At a yaw and pitch of 0 it looks down -Z, like a view matrix expects.
type FreeCamera struct {
	Position    soft3d.Vector3
	Yaw         float32 // Rotation around the world's Y axis in radians; positive turns right
	Pitch       float32 // Rotation up (positive) or down (negative) in radians, clamped to +/- MaxPitch by Look
	Speed       float32 // Movement speed in world units per second
	Sensitivity float32 // Radians turned per pixel of mouse movement
}

// NewFreeCamera creates a new FreeCamera at the position given.
func NewFreeCamera(position soft3d.Vector3) *FreeCamera {
	return &FreeCamera{
		Position:    position,
		Speed:       12,
		Sensitivity: 0.002,
	}
}

// Forward returns the unit direction the camera is looking in.
func (cam *FreeCamera) Forward() soft3d.Vector3 {
	return soft3d.NewVector3(
		math32.Sin(cam.Yaw)*math32.Cos(cam.Pitch),
		math32.Sin(cam.Pitch),
		-math32.Cos(cam.Yaw)*math32.Cos(cam.Pitch),
	).Unit()
}

// Right returns the unit direction to the camera's right. It always lies flat on the XZ plane.
func (cam *FreeCamera) Right() soft3d.Vector3 {
	return soft3d.NewVector3(math32.Cos(cam.Yaw), 0, math32.Sin(cam.Yaw))
}

// Up returns the camera's unit up direction, perpendicular to Forward and Right.
func (cam *FreeCamera) Up() soft3d.Vector3 {
	return cam.Right().Cross(cam.Forward()).Unit()
}

// MoveForward moves the camera along Forward by the distance given; negative distances move it backwards.
func (cam *FreeCamera) MoveForward(distance float32) {
	cam.Position = cam.Position.Add(cam.Forward().Scale(distance))
}

// MoveRight moves the camera along Right by the distance given; negative distances move it to the left.
func (cam *FreeCamera) MoveRight(distance float32) {
	cam.Position = cam.Position.Add(cam.Right().Scale(distance))
}

// MoveUp moves the camera straight up along world +Y by the distance given, regardless of where it's looking.
func (cam *FreeCamera) MoveUp(distance float32) {
	cam.Position.Y += distance
}

// Look turns the camera by a mouse movement of dx, dy pixels. Moving the mouse down (positive dy) looks down.
func (cam *FreeCamera) Look(dx, dy float32) {
	cam.Yaw += dx * cam.Sensitivity
	cam.Pitch = math32.Clamp(cam.Pitch-dy*cam.Sensitivity, -MaxPitch, MaxPitch)
}

// ViewMatrix returns the camera's view matrix.
func (cam *FreeCamera) ViewMatrix() soft3d.Matrix4 {
	return soft3d.NewLookAtMatrix(cam.Position, cam.Position.Add(cam.Forward()), soft3d.WorldUp)
}
