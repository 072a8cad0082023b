package solar

import (
	"testing"

	"github.com/solarlune/soft3d"
	"github.com/solarlune/soft3d/math32"
)

func TestShipFollow(t *testing.T) {

	ship := NewShip(soft3d.NewCubeMesh(1))
	cam := NewFreeCamera(soft3d.NewVector3(0, 5, 30))

	for i := 0; i < 20; i++ {

		cam.Yaw = float32(i) * 0.4
		cam.Pitch = math32.Clamp(float32(i)*0.2-2, -MaxPitch, MaxPitch)

		ship.Follow(cam)

		expected := cam.Position.Add(cam.Forward().Scale(6)).Add(soft3d.NewVector3(0, -1, 0))
		if !ship.Position.Equals(expected) {
			t.Fatalf("expected the ship at %s, got %s", expected, ship.Position)
		}

		// The ship's nose (-Z in model space) points the way the camera looks.
		nose := ship.ModelMatrix().MultDirection(soft3d.NewVector3(0, 0, -1)).Unit()
		if !nose.Equals(cam.Forward()) {
			t.Fatalf("ship points at %s, camera looks at %s", nose, cam.Forward())
		}

	}

}

func TestShipRender(t *testing.T) {

	ship := NewShip(soft3d.NewCubeMesh(2))
	cam := NewFreeCamera(soft3d.NewVector3(0, 0, 10))
	ship.Follow(cam)

	fb := soft3d.NewFramebuffer(64, 64)
	pipeline := soft3d.NewPipeline(64, 64)

	projection := soft3d.NewProjectionPerspective(math32.ToRadians(60), 1, 0.1, 100)

	ship.Render(fb, pipeline, cam.ViewMatrix(), projection)

	if pipeline.DebugInfo.DrawnTris == 0 {
		t.Errorf("the ship should be visible: %+v", pipeline.DebugInfo)
	}

	// Rendering with an explicit DrawCall leaves the pipeline's current one alone.
	if pipeline.CurrentDrawCall().Color != soft3d.NewColorRGB(255, 255, 255) || !pipeline.CurrentDrawCall().MVP.IsIdentity() {
		t.Error("Ship.Render shouldn't change the current draw call")
	}

}
