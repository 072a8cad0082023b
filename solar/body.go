package solar

import (
	"github.com/solarlune/soft3d"
	"github.com/solarlune/soft3d/math32"
)

// Body is a celestial body: a colored sphere that spins around its own Y axis while orbiting the origin on the XZ plane.
type Body struct {
	Name        string
	Radius      float32      // Radius of the sphere, in world units
	OrbitRadius float32      // Distance from the origin; 0 keeps the Body in the center
	OrbitSpeed  float32      // Orbital angular speed, in radians per second
	SpinSpeed   float32      // Angular speed around the Body's own axis, in radians per second
	OrbitAngle  float32      // Current orbital angle, in radians
	Spin        float32      // Current rotation around the Body's own axis, in radians
	Color       soft3d.Color // Fill color of the Body
}

// NewBody creates a new Body at the start of its orbit.
func NewBody(name string, radius, orbitRadius, orbitSpeed, spinSpeed float32, color soft3d.Color) *Body {
	return &Body{
		Name:        name,
		Radius:      radius,
		OrbitRadius: orbitRadius,
		OrbitSpeed:  orbitSpeed,
		SpinSpeed:   spinSpeed,
		Color:       color,
	}
}

// Update advances the Body's orbit and spin by dt seconds.
func (body *Body) Update(dt float32) {
	body.OrbitAngle += body.OrbitSpeed * dt
	body.Spin += body.SpinSpeed * dt
}

// Position returns the Body's current position in world space.
func (body *Body) Position() soft3d.Vector3 {
	return soft3d.NewVector3(
		body.OrbitRadius*math32.Cos(body.OrbitAngle),
		0,
		body.OrbitRadius*math32.Sin(body.OrbitAngle),
	)
}

// ModelMatrix returns the matrix that takes a unit sphere to the Body's size, spin, and position.
func (body *Body) ModelMatrix() soft3d.Matrix4 {
	return soft3d.NewTransformMatrix(
		body.Position(),
		soft3d.NewVector3(0, body.Spin, 0),
		soft3d.NewVector3(body.Radius, body.Radius, body.Radius),
	)
}
