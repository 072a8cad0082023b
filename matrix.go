package soft3d

import (
	"strconv"

	"github.com/solarlune/soft3d/math32"
)

// Matrix4 represents a 4x4 matrix for translation, scale, rotation, and projection. A Matrix4 in soft3d is indexed
// as matrix[row][column] and transforms column vectors, so the translation lives in the last column (matrix[0][3], matrix[1][3], matrix[2][3]).
// Combining matrices with Mult applies the right-most matrix first: T.Mult(R).Mult(S) scales, then rotates, then translates.
type Matrix4 [4][4]float32

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {

	mat := Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	return mat

}

// NewEmptyMatrix4 returns a new Matrix4 with all values set to 0.
func NewEmptyMatrix4() Matrix4 {
	return Matrix4{}
}

// NewMatrix4Translate returns a new identity Matrix4, but with the x, y, and z translation components set as provided.
func NewMatrix4Translate(x, y, z float32) Matrix4 {
	mat := NewMatrix4()
	mat[0][3] = x
	mat[1][3] = y
	mat[2][3] = z
	return mat
}

// NewMatrix4Scale returns a new identity Matrix4, but with the scale components set as provided. 1, 1, 1 is the default.
func NewMatrix4Scale(x, y, z float32) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = x
	mat[1][1] = y
	mat[2][2] = z
	return mat
}

// NewMatrix4RotateX returns a Matrix4 rotating counter-clockwise (right-hand rule) around the X axis by the angle given in radians.
func NewMatrix4RotateX(angle float32) Matrix4 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return Matrix4{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4RotateY returns a Matrix4 rotating counter-clockwise (right-hand rule) around the Y axis by the angle given in radians.
func NewMatrix4RotateY(angle float32) Matrix4 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return Matrix4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4RotateZ returns a Matrix4 rotating counter-clockwise (right-hand rule) around the Z axis by the angle given in radians.
func NewMatrix4RotateZ(angle float32) Matrix4 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return Matrix4{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4Rotate returns a new Matrix4 designed to rotate by the angle given (in radians) along the axis given.
// This rotation works as though you pierced the object utilizing the matrix through by the axis, and then rotated it
// counter-clockwise by the angle in radians (Rodrigues' rotation formula). The axis doesn't need to be normalized.
func NewMatrix4Rotate(axis Vector3, angle float32) Matrix4 {

	// Default to spinning on +Y axis if there is no valid axis
	if axis.IsZero() {
		axis = WorldUp
	}

	mat := NewMatrix4()
	vector := axis.Unit()
	s := math32.Sin(angle)
	c := math32.Cos(angle)
	m := 1 - c

	x, y, z := vector.X, vector.Y, vector.Z

	mat[0][0] = m*x*x + c
	mat[0][1] = m*x*y - z*s
	mat[0][2] = m*x*z + y*s

	mat[1][0] = m*x*y + z*s
	mat[1][1] = m*y*y + c
	mat[1][2] = m*y*z - x*s

	mat[2][0] = m*x*z - y*s
	mat[2][1] = m*y*z + x*s
	mat[2][2] = m*z*z + c

	return mat

}

// NewLookAtMatrix generates a view Matrix4 for an eye at the position given, looking towards center, with up being
// the rough upwards direction (usually +Y). The camera looks down its own -Z axis, so the third row is the negated forward vector.
func NewLookAtMatrix(eye, center, up Vector3) Matrix4 {

	f := center.Sub(eye).Unit()
	s := f.Cross(up).Unit()
	u := s.Cross(f)

	return Matrix4{
		{s.X, s.Y, s.Z, -s.Dot(eye)},
		{u.X, u.Y, u.Z, -u.Dot(eye)},
		{-f.X, -f.Y, -f.Z, f.Dot(eye)},
		{0, 0, 0, 1},
	}

}

// NewProjectionPerspective generates a right-handed perspective projection Matrix4. fovY is the vertical field of view in radians,
// aspect is the width / height ratio of the render target, and near and far are the clipping planes.
// The resulting clip-space W is the negated view-space Z; after division, Z maps to -1 to 1 across near to far.
func NewProjectionPerspective(fovY, aspect, near, far float32) Matrix4 {

	tanHalfFov := math32.Tan(fovY / 2)

	return Matrix4{
		{1 / (aspect * tanHalfFov), 0, 0, 0},
		{0, 1 / tanHalfFov, 0, 0},
		{0, 0, -(far + near) / (far - near), -(2 * far * near) / (far - near)},
		{0, 0, -1, 0},
	}

}

// NewProjectionOrthographic generates an orthographic projection Matrix4 mapping the box given to the -1 to 1 cube.
func NewProjectionOrthographic(left, right, bottom, top, near, far float32) Matrix4 {
	return Matrix4{
		{2 / (right - left), 0, 0, -(right + left) / (right - left)},
		{0, 2 / (top - bottom), 0, -(top + bottom) / (top - bottom)},
		{0, 0, -2 / (far - near), -(far + near) / (far - near)},
		{0, 0, 0, 1},
	}
}

// NewTransformMatrix builds a model Matrix4 that scales, then rotates by the euler angles given (X first, then Y, then Z),
// then translates.
func NewTransformMatrix(position, eulerRotation, scale Vector3) Matrix4 {
	t := NewMatrix4Translate(position.X, position.Y, position.Z)
	rx := NewMatrix4RotateX(eulerRotation.X)
	ry := NewMatrix4RotateY(eulerRotation.Y)
	rz := NewMatrix4RotateZ(eulerRotation.Z)
	s := NewMatrix4Scale(scale.X, scale.Y, scale.Z)
	return t.Mult(rz).Mult(ry).Mult(rx).Mult(s)
}

// NewMVPMatrix combines model, view, and projection matrices into a single model-view-projection Matrix4 (projection * view * model).
func NewMVPMatrix(model, view, projection Matrix4) Matrix4 {
	return projection.Mult(view).Mult(model)
}

// Mult multiplies a Matrix4 by another provided Matrix4 - this effectively combines them. The other Matrix4 is applied first.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	newMat := NewEmptyMatrix4()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			newMat[i][j] = matrix[i][0]*other[0][j] + matrix[i][1]*other[1][j] + matrix[i][2]*other[2][j] + matrix[i][3]*other[3][j]
		}
	}

	return newMat

}

// MultVec4 multiplies the homogeneous Vector4 provided by the Matrix4 (each row dotted with the vector).
func (matrix Matrix4) MultVec4(vec Vector4) Vector4 {
	return Vector4{
		X: matrix[0][0]*vec.X + matrix[0][1]*vec.Y + matrix[0][2]*vec.Z + matrix[0][3]*vec.W,
		Y: matrix[1][0]*vec.X + matrix[1][1]*vec.Y + matrix[1][2]*vec.Z + matrix[1][3]*vec.W,
		Z: matrix[2][0]*vec.X + matrix[2][1]*vec.Y + matrix[2][2]*vec.Z + matrix[2][3]*vec.W,
		W: matrix[3][0]*vec.X + matrix[3][1]*vec.Y + matrix[3][2]*vec.Z + matrix[3][3]*vec.W,
	}
}

// MultPoint transforms the point provided (W = 1) by the Matrix4, dividing by the resulting W when it's non-zero.
func (matrix Matrix4) MultPoint(point Vector3) Vector3 {
	return matrix.MultVec4(NewVector4Point(point)).ToVector3()
}

// MultDirection transforms the direction provided (W = 0) by the Matrix4; translation doesn't affect it and no division happens.
func (matrix Matrix4) MultDirection(direction Vector3) Vector3 {
	return matrix.MultVec4(NewVector4Direction(direction)).ToVector3NoDivide()
}

// Transposed returns a transposed copy of the Matrix4 (rows become columns).
func (matrix Matrix4) Transposed() Matrix4 {

	newMat := NewEmptyMatrix4()

	for r := range matrix {
		for c := range matrix[r] {
			newMat[c][r] = matrix[r][c]
		}
	}

	return newMat

}

// WithoutTranslation returns a copy of the Matrix4 with its translation column zeroed out.
func (matrix Matrix4) WithoutTranslation() Matrix4 {
	matrix[0][3] = 0
	matrix[1][3] = 0
	matrix[2][3] = 0
	return matrix
}

// Row returns the indicated row as a Vector4.
func (matrix Matrix4) Row(rowIndex int) Vector4 {
	return Vector4{
		matrix[rowIndex][0],
		matrix[rowIndex][1],
		matrix[rowIndex][2],
		matrix[rowIndex][3],
	}
}

// Column returns the indicated column as a Vector4.
func (matrix Matrix4) Column(columnIndex int) Vector4 {
	return Vector4{
		matrix[0][columnIndex],
		matrix[1][columnIndex],
		matrix[2][columnIndex],
		matrix[3][columnIndex],
	}
}

// Equals returns true if the two matrices are close enough in all values.
func (matrix Matrix4) Equals(other Matrix4) bool {
	eps := float32(1e-4)
	for i := 0; i < len(matrix); i++ {
		for j := 0; j < len(matrix[i]); j++ {
			if math32.Abs(matrix[i][j]-other[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix.Equals(NewMatrix4())
}

// String returns the Matrix4's rows, one per line.
func (matrix Matrix4) String() string {
	s := "{"
	for i, y := range matrix {
		for _, x := range y {
			s += strconv.FormatFloat(float64(x), 'f', -1, 32) + ", "
		}
		if i < len(matrix)-1 {
			s += "\n"
		}
	}
	s += "}"
	return s
}
