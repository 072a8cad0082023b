package soft3d

import (
	"errors"
	"fmt"

	"github.com/solarlune/soft3d/math32"
)

// ErrInvalidMesh is returned by Mesh.Validate (and the loaders) when a triangle indexes a vertex that doesn't exist.
var ErrInvalidMesh = errors.New("invalid mesh")

// Dimensions represents the minimum and maximum spatial dimensions of a Mesh.
type Dimensions struct {
	Min, Max Vector3
}

// Width returns the size of the Dimensions on the X axis.
func (dim Dimensions) Width() float32 {
	return dim.Max.X - dim.Min.X
}

// Height returns the size of the Dimensions on the Y axis.
func (dim Dimensions) Height() float32 {
	return dim.Max.Y - dim.Min.Y
}

// Depth returns the size of the Dimensions on the Z axis.
func (dim Dimensions) Depth() float32 {
	return dim.Max.Z - dim.Min.Z
}

// Center returns the center point inbetween the two corners of the dimension set.
func (dim Dimensions) Center() Vector3 {
	return dim.Min.Add(dim.Max).Scale(0.5)
}

// MaxSpan returns the maximum span out of width, height, and depth.
func (dim Dimensions) MaxSpan() float32 {
	return math32.Max(math32.Max(dim.Width(), dim.Height()), dim.Depth())
}

// Mesh is an indexed triangle list: a slice of vertex positions and a slice of triangles, each holding three indices into Vertices.
// Every index must be less than len(Vertices); drawing a Mesh that breaks this panics.
// Front faces wind clockwise when seen from outside (with +Y up); that's what survives the rasterizer's backface test
// once the pipeline flips Y into screen space. Use FlipWinding for counter-clockwise data.
type Mesh struct {
	Name      string
	Vertices  []Vector3
	Triangles [][3]int
}

// NewMesh creates a new Mesh from the vertices and triangles given. The slices aren't copied.
func NewMesh(name string, vertices []Vector3, triangles [][3]int) *Mesh {
	return &Mesh{
		Name:      name,
		Vertices:  vertices,
		Triangles: triangles,
	}
}

// Clone returns a deep copy of the Mesh.
func (mesh *Mesh) Clone() *Mesh {
	newMesh := &Mesh{
		Name:      mesh.Name,
		Vertices:  make([]Vector3, len(mesh.Vertices)),
		Triangles: make([][3]int, len(mesh.Triangles)),
	}
	copy(newMesh.Vertices, mesh.Vertices)
	copy(newMesh.Triangles, mesh.Triangles)
	return newMesh
}

// Validate returns an error wrapping ErrInvalidMesh if any triangle references a vertex out of range.
func (mesh *Mesh) Validate() error {
	count := len(mesh.Vertices)
	for t, tri := range mesh.Triangles {
		for _, index := range tri {
			if index < 0 || index >= count {
				return fmt.Errorf("%w: mesh %q triangle %d references vertex %d, but there are only %d vertices", ErrInvalidMesh, mesh.Name, t, index, count)
			}
		}
	}
	return nil
}

// Dimensions returns the axis-aligned bounds of the Mesh's vertices. An empty Mesh has zero-sized Dimensions at the origin.
func (mesh *Mesh) Dimensions() Dimensions {

	if len(mesh.Vertices) == 0 {
		return Dimensions{}
	}

	dim := Dimensions{Min: mesh.Vertices[0], Max: mesh.Vertices[0]}

	for _, v := range mesh.Vertices {
		dim.Min.X = math32.Min(dim.Min.X, v.X)
		dim.Min.Y = math32.Min(dim.Min.Y, v.Y)
		dim.Min.Z = math32.Min(dim.Min.Z, v.Z)
		dim.Max.X = math32.Max(dim.Max.X, v.X)
		dim.Max.Y = math32.Max(dim.Max.Y, v.Y)
		dim.Max.Z = math32.Max(dim.Max.Z, v.Z)
	}

	return dim

}

// Scale scales every vertex of the Mesh by the factor given, relative to the origin.
func (mesh *Mesh) Scale(factor float32) {
	for i := range mesh.Vertices {
		mesh.Vertices[i] = mesh.Vertices[i].Scale(factor)
	}
}

// Translate moves every vertex of the Mesh by the offset given.
func (mesh *Mesh) Translate(offset Vector3) {
	for i := range mesh.Vertices {
		mesh.Vertices[i] = mesh.Vertices[i].Add(offset)
	}
}

// Center moves the Mesh so that the center of its bounding box sits at the origin.
func (mesh *Mesh) Center() {
	if len(mesh.Vertices) == 0 {
		return
	}
	mesh.Translate(mesh.Dimensions().Center().Invert())
}

// ApplyMatrix applies the Matrix4 provided to all vertices on the Mesh. You can use this to, for example, translate (move) all vertices
// of a Mesh to the right by 5 units ( mesh.ApplyMatrix(soft3d.NewMatrix4Translate(5, 0, 0)) ).
func (mesh *Mesh) ApplyMatrix(matrix Matrix4) {
	for i := range mesh.Vertices {
		mesh.Vertices[i] = matrix.MultPoint(mesh.Vertices[i])
	}
}

// FlipWinding reverses the winding order of every triangle, turning front faces into back faces and vice versa.
func (mesh *Mesh) FlipWinding() {
	for i, tri := range mesh.Triangles {
		mesh.Triangles[i] = [3]int{tri[0], tri[2], tri[1]}
	}
}
