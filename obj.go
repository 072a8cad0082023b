package soft3d

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadOBJFile loads a Wavefront OBJ file from the filepath given. See LoadOBJData.
func LoadOBJFile(path string, scale float32) (*Mesh, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("soft3d: open %s: %w", path, err)
	}

	defer f.Close()

	mesh, err := LoadOBJData(f, scale)
	if err != nil {
		return nil, fmt.Errorf("soft3d: load %s: %w", path, err)
	}

	if mesh.Name == "" {
		mesh.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return mesh, nil

}

// LoadOBJData reads a Wavefront OBJ stream into a single Mesh. Only vertex positions ("v") and faces ("f") are used;
// of each face corner ("v/vt/vn") only the position index is read. Indices are 1-based, and negative indices count
// backwards from the last vertex read so far. Faces with more than three corners are triangulated as a fan.
// OBJ faces wind counter-clockwise, so each triangle is flipped to the clockwise winding Meshes use.
// The loaded Mesh is centered on the origin and then scaled by the factor given.
func LoadOBJData(r io.Reader, scale float32) (*Mesh, error) {

	mesh := NewMesh("", []Vector3{}, [][3]int{})

	scanner := bufio.NewScanner(r)

	lineNumber := 0

	corners := []int{}

	for scanner.Scan() {

		lineNumber++

		line := strings.TrimSpace(scanner.Text())

		if line == "" || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)

		switch fields[0] {

		case "o":
			if mesh.Name == "" && len(fields) > 1 {
				mesh.Name = strings.Join(fields[1:], " ")
			}

		case "v":

			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: vertex needs 3 coordinates, got %d", lineNumber, len(fields)-1)
			}

			v := Vector3{}

			for i, dst := range []*float32{&v.X, &v.Y, &v.Z} {
				f, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", lineNumber, err)
				}
				*dst = float32(f)
			}

			mesh.Vertices = append(mesh.Vertices, v)

		case "f":

			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: face needs at least 3 corners, got %d", lineNumber, len(fields)-1)
			}

			corners = corners[:0]

			for _, corner := range fields[1:] {

				index, err := parseOBJIndex(corner, len(mesh.Vertices))
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", lineNumber, err)
				}

				corners = append(corners, index)

			}

			for i := 1; i < len(corners)-1; i++ {
				mesh.Triangles = append(mesh.Triangles, [3]int{corners[0], corners[i+1], corners[i]})
			}

		case "l", "p":
			Logger().Warn("skipping unsupported OBJ element", "line", lineNumber, "type", fields[0])

		}

	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}

	if len(mesh.Vertices) == 0 {
		return nil, fmt.Errorf("%w: obj data holds no vertices", ErrInvalidMesh)
	}

	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	mesh.Center()
	mesh.Scale(scale)

	Logger().Debug("obj loaded", "name", mesh.Name, "vertices", len(mesh.Vertices), "triangles", len(mesh.Triangles))

	return mesh, nil

}

// parseOBJIndex turns a face corner ("7", "7/2", "7//3", "-1/-1") into a 0-based vertex index.
func parseOBJIndex(corner string, vertexCount int) (int, error) {

	if slash := strings.IndexByte(corner, '/'); slash >= 0 {
		corner = corner[:slash]
	}

	index, err := strconv.Atoi(corner)
	if err != nil {
		return 0, err
	}

	if index == 0 {
		return 0, fmt.Errorf("%w: vertex index 0 is invalid; OBJ indices start at 1", ErrInvalidMesh)
	}

	if index < 0 {
		return vertexCount + index, nil
	}

	return index - 1, nil

}
