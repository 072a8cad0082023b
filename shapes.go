package soft3d

import (
	"github.com/solarlune/soft3d/math32"
)

// NewSphereMesh creates a unit UV sphere centered on the origin, with latSegments rings from pole to pole
// and lonSegments slices around the Y axis. The seam column of vertices is duplicated, so the Mesh has
// (latSegments+1) * (lonSegments+1) vertices and 2 * latSegments * lonSegments triangles, all facing outwards.
func NewSphereMesh(latSegments, lonSegments int) *Mesh {

	latSegments = math32.Max(latSegments, 2)
	lonSegments = math32.Max(lonSegments, 3)

	vertices := make([]Vector3, 0, (latSegments+1)*(lonSegments+1))
	triangles := make([][3]int, 0, latSegments*lonSegments*2)

	for i := 0; i <= latSegments; i++ {

		theta := float32(i) * math32.Pi / float32(latSegments)
		sinTheta := math32.Sin(theta)
		cosTheta := math32.Cos(theta)

		for j := 0; j <= lonSegments; j++ {

			phi := float32(j) * 2 * math32.Pi / float32(lonSegments)

			vertices = append(vertices, Vector3{
				X: sinTheta * math32.Cos(phi),
				Y: cosTheta,
				Z: sinTheta * math32.Sin(phi),
			})

		}

	}

	for i := 0; i < latSegments; i++ {
		for j := 0; j < lonSegments; j++ {
			first := i*(lonSegments+1) + j
			second := first + lonSegments + 1
			triangles = append(triangles,
				[3]int{first, second, first + 1},
				[3]int{second, second + 1, first + 1},
			)
		}
	}

	return NewMesh("Sphere", vertices, triangles)

}

// NewCubeMesh creates a cube centered on the origin with sides of the length given, made of 8 shared vertices and 12 outward-facing triangles.
func NewCubeMesh(size float32) *Mesh {

	h := size / 2

	vertices := []Vector3{
		{-h, -h, h},  // 0: front bottom left
		{h, -h, h},   // 1: front bottom right
		{h, h, h},    // 2: front top right
		{-h, h, h},   // 3: front top left
		{-h, -h, -h}, // 4: back bottom left
		{h, -h, -h},  // 5: back bottom right
		{h, h, -h},   // 6: back top right
		{-h, h, -h},  // 7: back top left
	}

	// Clockwise when seen from outside the cube.
	triangles := [][3]int{
		{0, 2, 1}, {0, 3, 2}, // +Z
		{5, 7, 4}, {5, 6, 7}, // -Z
		{1, 6, 5}, {1, 2, 6}, // +X
		{4, 3, 0}, {4, 7, 3}, // -X
		{3, 6, 2}, {3, 7, 6}, // +Y
		{4, 1, 5}, {4, 0, 1}, // -Y
	}

	return NewMesh("Cube", vertices, triangles)

}
