package solar

import (
	"strings"

	"github.com/solarlune/soft3d"
	"github.com/solarlune/soft3d/math32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultWarpDuration is how long a warp takes, in seconds, unless told otherwise.
const DefaultWarpDuration = 1.5

// SmoothStep is an easing function following the smoothstep curve (3t^2 - 2t^3); it's the default for warps.
func SmoothStep(t, b, c, d float32) float32 {
	return b + c*math32.SmoothStep(t/d)
}

var easings = map[string]ease.TweenFunc{
	"smoothstep": SmoothStep,
	"linear":     ease.Linear,
	"inoutquad":  ease.InOutQuad,
	"inoutcubic": ease.InOutCubic,
	"inoutsine":  ease.InOutSine,
}

// EasingByName returns the easing function with the name given (case-insensitive), such as "smoothstep", "linear", or "inOutCubic",
// and false if there's no such easing.
func EasingByName(name string) (ease.TweenFunc, bool) {
	fn, ok := easings[strings.ToLower(name)]
	return fn, ok
}

// Warp flies a position from one point to another over a fixed duration, eased so that it starts and ends gently.
type Warp struct {
	Duration float32
	Easing   ease.TweenFunc

	from, to soft3d.Vector3
	tween    *gween.Tween
	active   bool
}

// NewWarp creates a new, inactive Warp that takes the duration given (in seconds). A nil easing uses SmoothStep.
func NewWarp(duration float32, easing ease.TweenFunc) *Warp {
	if easing == nil {
		easing = SmoothStep
	}
	return &Warp{
		Duration: duration,
		Easing:   easing,
	}
}

// Start begins warping from one position to another, replacing any warp already in progress.
func (warp *Warp) Start(from, to soft3d.Vector3) {
	warp.from = from
	warp.to = to
	warp.tween = gween.New(0, 1, warp.Duration, warp.Easing)
	warp.active = true
}

// Update advances the warp by dt seconds. While the warp is active it returns the interpolated position and true;
// on the update that reaches the end it returns the destination exactly and deactivates. An inactive Warp returns
// position unchanged and false.
func (warp *Warp) Update(dt float32, position soft3d.Vector3) (soft3d.Vector3, bool) {

	if !warp.active {
		return position, false
	}

	t, finished := warp.tween.Update(dt)

	if finished {
		warp.active = false
		return warp.to, true
	}

	return warp.from.Lerp(warp.to, t), true

}

// Active returns whether the Warp is in progress.
func (warp *Warp) Active() bool {
	return warp.active
}
