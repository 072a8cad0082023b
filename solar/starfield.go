package solar

import (
	"math/rand"

	"github.com/solarlune/soft3d"
	"github.com/solarlune/soft3d/colors"
)

// StarfieldRadius is the radius of the sphere stars are scattered on.
const StarfieldRadius = 300

// Starfield is a backdrop of stars infinitely far away: camera movement doesn't shift them, only turning does.
type Starfield struct {
	Stars []soft3d.Vector3
	Color soft3d.Color
	Size  int // Width and height of each star, in pixels
}

// NewStarfield scatters count stars over a sphere of StarfieldRadius. The same seed always gives the same sky.
func NewStarfield(count int, seed int64) *Starfield {

	rng := rand.New(rand.NewSource(seed))

	stars := make([]soft3d.Vector3, 0, count)

	for len(stars) < count {

		dir := soft3d.NewVector3(rng.Float32()*2-1, rng.Float32()*2-1, rng.Float32()*2-1)

		// Too short to normalize reliably.
		if dir.MagnitudeSquared() < 1e-6 {
			continue
		}

		stars = append(stars, dir.Unit().Scale(StarfieldRadius))

	}

	return &Starfield{
		Stars: stars,
		Color: colors.White(),
		Size:  2,
	}

}

// Render draws each star in front of the camera as a small square, ignoring the view's translation.
// It doesn't depth-test, so draw it right after clearing the Framebuffer.
func (field *Starfield) Render(fb *soft3d.Framebuffer, view, projection soft3d.Matrix4) {

	viewProjection := projection.Mult(view.WithoutTranslation())

	width, height := float32(fb.Width()), float32(fb.Height())

	for _, star := range field.Stars {

		sv, visible := soft3d.ProjectPoint(viewProjection, star, width, height)

		if !visible {
			continue
		}

		fb.FillRect(int(sv.X), int(sv.Y), field.Size, field.Size, field.Color)

	}

}
