package soft3d

import (
	"github.com/solarlune/soft3d/math32"
)

// degenerateEpsilon is the smallest barycentric denominator (twice the triangle's area, in pixels) that still counts as a triangle.
const degenerateEpsilon = 1e-4

// ScreenVertex is a projected vertex: X and Y in pixels (Y growing downwards) and Depth in normalized device coordinates.
type ScreenVertex struct {
	X, Y  float32
	Depth float32
}

// RasterStats reports what a call to DrawFilledTriangle did.
type RasterStats struct {
	Culled        bool // True if the triangle was back-facing, degenerate, or too large to interpolate, and nothing was tested
	PixelsTested  int  // Number of pixel centers inside the bounding box
	PixelsCovered int  // Number of pixel centers inside the triangle
	PixelsWritten int  // Number of pixels that passed the depth test
}

// SignedArea2 returns twice the signed area of the triangle a, b, c (the shoelace formula on X and Y only).
// Triangles the pipeline should draw have a positive area; back-facing and degenerate ones have an area <= 0.
func SignedArea2(a, b, c ScreenVertex) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Barycentric returns the barycentric weights u, v, w of the point px, py relative to the triangle a, b, c,
// so that the point equals u*a + v*b + w*c and u + v + w = 1. ok is false when the triangle is degenerate
// (its vertices are collinear), in which case the weights are meaningless.
func Barycentric(px, py float32, a, b, c ScreenVertex) (u, v, w float32, ok bool) {

	denom := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)

	if !(math32.Abs(denom) >= degenerateEpsilon) {
		return 0, 0, 0, false
	}

	u = ((b.Y-c.Y)*(px-c.X) + (c.X-b.X)*(py-c.Y)) / denom
	v = ((c.Y-a.Y)*(px-c.X) + (a.X-c.X)*(py-c.Y)) / denom
	w = 1 - u - v

	return u, v, w, true

}

// PointInTriangle returns true if the point px, py lies inside of the triangle a, b, c or on one of its edges.
// Degenerate triangles contain no points.
func PointInTriangle(px, py float32, a, b, c ScreenVertex) bool {
	u, v, w, ok := Barycentric(px, py, a, b, c)
	return ok && u >= 0 && v >= 0 && w >= 0
}

// DrawFilledTriangle fills the triangle formed by the three projected vertices with a solid color, depth-testing every pixel.
// Back-facing and degenerate triangles are skipped without touching the Framebuffer. Pixel centers lying exactly on an
// edge count as inside, so neighboring triangles may both cover pixels along a shared edge; the depth test decides between them.
func DrawFilledTriangle(fb *Framebuffer, tri [3]ScreenVertex, c Color) RasterStats {

	stats := RasterStats{}

	v0, v1, v2 := tri[0], tri[1], tri[2]

	// The barycentric denominator has the same magnitude as the signed area, so this also rejects collinear vertices.
	// Written as a negation so a NaN area is culled too; an area that overflowed can't be interpolated across.
	if area := SignedArea2(v0, v1, v2); !(area >= degenerateEpsilon) || math32.IsInf(area, 1) {
		stats.Culled = true
		return stats
	}

	right, bottom := float32(fb.width-1), float32(fb.height-1)

	boxMinX := math32.Floor(math32.Min(v0.X, math32.Min(v1.X, v2.X)))
	boxMaxX := math32.Ceil(math32.Max(v0.X, math32.Max(v1.X, v2.X)))
	boxMinY := math32.Floor(math32.Min(v0.Y, math32.Min(v1.Y, v2.Y)))
	boxMaxY := math32.Ceil(math32.Max(v0.Y, math32.Max(v1.Y, v2.Y)))

	// Entirely off-screen, or with coordinates that aren't numbers.
	if !(boxMaxX >= 0 && boxMinX <= right && boxMaxY >= 0 && boxMinY <= bottom) {
		return stats
	}

	// Both ends are clamped while still floats; far off-screen coordinates overflow an int.
	minX := int(math32.Clamp(boxMinX, 0, right))
	maxX := int(math32.Clamp(boxMaxX, 0, right))
	minY := int(math32.Clamp(boxMinY, 0, bottom))
	maxY := int(math32.Clamp(boxMaxY, 0, bottom))

	for py := minY; py <= maxY; py++ {

		cy := float32(py) + 0.5

		for px := minX; px <= maxX; px++ {

			stats.PixelsTested++

			u, v, w, ok := Barycentric(float32(px)+0.5, cy, v0, v1, v2)

			if !ok || !(u >= 0 && v >= 0 && w >= 0) {
				continue
			}

			stats.PixelsCovered++

			z := u*v0.Depth + v*v1.Depth + w*v2.Depth

			if fb.SetPixelWithDepth(px, py, c, z) {
				stats.PixelsWritten++
			}

		}

	}

	return stats

}
