package soft3d

import (
	"strconv"

	"github.com/solarlune/soft3d/math32"
)

// WorldRight represents a unit vector in the global direction of WorldRight on the right-handed OpenGL / soft3d coordinate system (+X).
var WorldRight = NewVector3(1, 0, 0)

// WorldUp represents a unit vector in the global direction of WorldUp on the right-handed OpenGL / soft3d coordinate system (+Y).
var WorldUp = NewVector3(0, 1, 0)

// WorldBackward represents a unit vector in the global direction of WorldBackward on the right-handed OpenGL / soft3d coordinate system (+Z, towards the viewer).
var WorldBackward = NewVector3(0, 0, 1)

// Vector3 represents a 3D Vector, which can be used for usual 3D applications (position, direction, velocity, etc).
// Whether it is a point or a direction depends only on the operation applied to it (see Matrix4.MultPoint and Matrix4.MultDirection).
// Any Vector3 functions that modify the calling Vector3 return copies of the modified Vector3, meaning you can do method-chaining easily.
type Vector3 struct {
	X float32 // The X (1st) component of the Vector
	Y float32 // The Y (2nd) component of the Vector
	Z float32 // The Z (3rd) component of the Vector
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// NewVector3Zero creates a new "zero-ed out" Vector3.
func NewVector3Zero() Vector3 {
	return Vector3{}
}

// Add returns a copy of the calling vector, added together with the other Vector3 provided.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale scales a Vector3 by the given scalar.
func (vec Vector3) Scale(scalar float32) Vector3 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Divide divides a Vector3 by the given scalar.
func (vec Vector3) Divide(scalar float32) Vector3 {
	vec.X /= scalar
	vec.Y /= scalar
	vec.Z /= scalar
	return vec
}

// Invert returns a copy of the Vector3 with all components negated.
func (vec Vector3) Invert() Vector3 {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// MultComp multiplies the calling Vector3 by the other Vector3 provided component-wise.
func (vec Vector3) MultComp(other Vector3) Vector3 {
	vec.X *= other.X
	vec.Y *= other.Y
	vec.Z *= other.Z
	return vec
}

// Dot returns the dot product of a Vector3 and another Vector3.
func (vec Vector3) Dot(other Vector3) float32 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Cross returns a new Vector3, indicating the cross product of the calling Vector3 and the provided Other Vector3.
func (vec Vector3) Cross(other Vector3) Vector3 {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Magnitude returns the length of the Vector3.
func (vec Vector3) Magnitude() float32 {
	return math32.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector3; this is faster than Magnitude() as it avoids using math32.Sqrt().
func (vec Vector3) MagnitudeSquared() float32 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Distance returns the distance from the calling Vector3 to the other Vector3 provided.
func (vec Vector3) Distance(other Vector3) float32 {
	return vec.Sub(other).Magnitude()
}

// DistanceSquared returns the squared distance from the calling Vector3 to the other Vector3 provided.
func (vec Vector3) DistanceSquared(other Vector3) float32 {
	return vec.Sub(other).MagnitudeSquared()
}

// Unit returns a copy of the Vector3, normalized (set to be of unit length).
// A Vector3 with (near) zero length is returned unchanged, so NaNs never enter a transform chain.
func (vec Vector3) Unit() Vector3 {
	l := vec.Magnitude()
	if l < 1e-8 {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Lerp returns a Vector3 linearly interpolated from the calling Vector3 towards the other by t. t is not clamped.
func (vec Vector3) Lerp(other Vector3, t float32) Vector3 {
	vec.X += (other.X - vec.X) * t
	vec.Y += (other.Y - vec.Y) * t
	vec.Z += (other.Z - vec.Z) * t
	return vec
}

// Reflect reflects the Vector3 about the normal provided; the normal is expected to be of unit length.
func (vec Vector3) Reflect(normal Vector3) Vector3 {
	return vec.Sub(normal.Scale(2 * vec.Dot(normal)))
}

// Equals returns true if the two Vectors are close enough in all values.
func (vec Vector3) Equals(other Vector3) bool {

	eps := float32(1e-4)

	if math32.Abs(vec.X-other.X) > eps || math32.Abs(vec.Y-other.Y) > eps || math32.Abs(vec.Z-other.Z) > eps {
		return false
	}

	return true

}

// IsZero returns true if the values in the Vector3 are extremely close to 0.
func (vec Vector3) IsZero() bool {
	eps := float32(1e-8)
	return math32.Abs(vec.X) <= eps && math32.Abs(vec.Y) <= eps && math32.Abs(vec.Z) <= eps
}

// String returns the Vector3 as "{X, Y, Z}".
func (vec Vector3) String() string {
	return "{" + strconv.FormatFloat(float64(vec.X), 'f', -1, 32) + ", " +
		strconv.FormatFloat(float64(vec.Y), 'f', -1, 32) + ", " +
		strconv.FormatFloat(float64(vec.Z), 'f', -1, 32) + "}"
}

// Vector4 is a homogeneous coordinate. A W of 1 denotes a point, a W of 0 a direction.
// It's only used as an intermediate value when applying a Matrix4.
type Vector4 struct {
	X, Y, Z, W float32
}

// NewVector4 creates a new Vector4 with the specified components.
func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// NewVector4Point creates a Vector4 from the point provided (W = 1), so translation applies to it.
func NewVector4Point(vec Vector3) Vector4 {
	return Vector4{X: vec.X, Y: vec.Y, Z: vec.Z, W: 1}
}

// NewVector4Direction creates a Vector4 from the direction provided (W = 0), so translation doesn't apply to it.
func NewVector4Direction(vec Vector3) Vector4 {
	return Vector4{X: vec.X, Y: vec.Y, Z: vec.Z, W: 0}
}

// Add returns a copy of the calling Vector4 with the other added to it (including W).
func (vec Vector4) Add(other Vector4) Vector4 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	vec.W += other.W
	return vec
}

// Sub returns a copy of the calling Vector4 with the other subtracted from it (including W).
func (vec Vector4) Sub(other Vector4) Vector4 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	vec.W -= other.W
	return vec
}

// Scale returns a copy of the calling Vector4 with all four components scaled.
func (vec Vector4) Scale(scalar float32) Vector4 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	vec.W *= scalar
	return vec
}

// ToVector3 performs the perspective divide, dividing X, Y, and Z by W. If W is 0, the components are returned as-is.
func (vec Vector4) ToVector3() Vector3 {
	if vec.W != 0 {
		return Vector3{X: vec.X / vec.W, Y: vec.Y / vec.W, Z: vec.Z / vec.W}
	}
	return Vector3{X: vec.X, Y: vec.Y, Z: vec.Z}
}

// ToVector3NoDivide drops W without dividing; use this for directions, where W is always 0.
func (vec Vector4) ToVector3NoDivide() Vector3 {
	return Vector3{X: vec.X, Y: vec.Y, Z: vec.Z}
}
