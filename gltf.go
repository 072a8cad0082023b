package soft3d

import (
	"bytes"
	"fmt"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTFFile loads a .gltf or .glb file from the filepath given. See LoadGLTFData.
func LoadGLTFFile(path string) ([]*Mesh, error) {

	fileData, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("soft3d: open %s: %w", path, err)
	}

	meshes, err := LoadGLTFData(fileData)

	if err != nil {
		return nil, fmt.Errorf("soft3d: load %s: %w", path, err)
	}

	return meshes, nil

}

// LoadGLTFData loads a .gltf or .glb file from the byte data given, returning one Mesh for each mesh in the document.
// All triangle-list primitives of a glTF mesh are merged into its Mesh; primitives of any other mode (points, lines, strips, fans)
// are skipped. Node transforms aren't applied, so each Mesh is in its own local space.
// glTF front faces wind counter-clockwise, so each triangle is flipped to the clockwise winding Meshes use.
func LoadGLTFData(data []byte) ([]*Mesh, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	err := decoder.Decode(doc)

	if err != nil {
		return nil, fmt.Errorf("gltf: %w", err)
	}

	meshes := make([]*Mesh, 0, len(doc.Meshes))

	for meshIndex, mesh := range doc.Meshes {

		name := mesh.Name
		if name == "" {
			name = fmt.Sprintf("Mesh.%03d", meshIndex)
		}

		newMesh := NewMesh(name, []Vector3{}, [][3]int{})

		for primIndex, v := range mesh.Primitives {

			if v.Mode != gltf.PrimitiveTriangles {
				Logger().Warn("skipping unsupported glTF primitive", "mesh", name, "primitive", primIndex, "mode", v.Mode)
				continue
			}

			posAccessor, exists := v.Attributes[gltf.POSITION]
			if !exists {
				Logger().Warn("skipping glTF primitive without positions", "mesh", name, "primitive", primIndex)
				continue
			}

			posBuffer := [][3]float32{}
			vertPos, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], posBuffer)

			if err != nil {
				return nil, fmt.Errorf("gltf: mesh %q primitive %d positions: %w", name, primIndex, err)
			}

			var indices []uint32

			if v.Indices != nil {

				indexBuffer := []uint32{}

				indices, err = modeler.ReadIndices(doc, doc.Accessors[*v.Indices], indexBuffer)

				if err != nil {
					return nil, fmt.Errorf("gltf: mesh %q primitive %d indices: %w", name, primIndex, err)
				}

			} else {

				indices = make([]uint32, len(vertPos))
				for i := range indices {
					indices[i] = uint32(i)
				}

			}

			if len(indices)%3 != 0 {
				return nil, fmt.Errorf("%w: gltf mesh %q primitive %d has %d indices, which isn't a multiple of 3", ErrInvalidMesh, name, primIndex, len(indices))
			}

			offset := len(newMesh.Vertices)

			for _, p := range vertPos {
				newMesh.Vertices = append(newMesh.Vertices, Vector3{X: p[0], Y: p[1], Z: p[2]})
			}

			for i := 0; i < len(indices); i += 3 {
				newMesh.Triangles = append(newMesh.Triangles, [3]int{
					offset + int(indices[i]),
					offset + int(indices[i+2]),
					offset + int(indices[i+1]),
				})
			}

		}

		if err := newMesh.Validate(); err != nil {
			return nil, err
		}

		Logger().Debug("gltf mesh loaded", "name", name, "vertices", len(newMesh.Vertices), "triangles", len(newMesh.Triangles))

		meshes = append(meshes, newMesh)

	}

	return meshes, nil

}
