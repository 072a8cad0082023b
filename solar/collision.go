package solar

import "github.com/solarlune/soft3d"

// ResolveCollisions returns position pushed out of every Body in the System it's closer than Radius * margin to.
// A position sitting exactly on a Body's center has no direction to be pushed in, so it's left alone.
func ResolveCollisions(system *System, position soft3d.Vector3, margin float32) soft3d.Vector3 {

	for _, body := range system.Bodies() {

		center := body.Position()
		minDist := body.Radius * margin

		offset := position.Sub(center)
		dist := offset.Magnitude()

		if dist < minDist && dist > 0.0001 {
			position = center.Add(offset.Divide(dist).Scale(minDist))
		}

	}

	return position

}
