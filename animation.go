package storyview

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates one float64 field towards a target. Call Update(dt) each
// frame; the field is written on every update and Done is set on the frame
// the target is reached.
//
// There is no global animation manager. The DragCoordinator and the Pager
// each own their tween and advance it from their own Update.
type Tween struct {
	tween *gween.Tween
	field *float64
	to    float64
	Done  bool
}

// NewTween creates a tween from the field's current value to to. A zero or
// negative duration jumps straight to the target on the first Update.
func NewTween(field *float64, to float64, duration float32, fn ease.TweenFunc) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	if duration <= 0 {
		duration = 1e-6
	}
	return &Tween{
		tween: gween.New(float32(*field), float32(to), duration, fn),
		field: field,
		to:    to,
	}
}

// Update advances the tween by dt seconds and writes the value to the field.
// The last frame writes the target exactly.
func (t *Tween) Update(dt float32) {
	if t == nil || t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	if finished {
		*t.field = t.to
	} else {
		*t.field = float64(val)
	}
	t.Done = finished
}

// Stop ends the tween where it is.
func (t *Tween) Stop() {
	if t != nil {
		t.Done = true
	}
}

// Running reports whether the tween still has frames to play.
func (t *Tween) Running() bool {
	return t != nil && !t.Done
}
