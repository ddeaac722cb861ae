package storyview

import "math"

const (
	defaultDragDeadZone = 4.0 // pixels

	// DefaultLongPressDelay is how long, in seconds, a pointer must stay
	// inside the dead zone before it counts as a long press.
	DefaultLongPressDelay = 0.5

	// velocitySmoothing is the weight of the newest sample in the
	// exponentially smoothed release velocity.
	velocitySmoothing = 0.6
)

// PointerSample is the state of the primary pointer on one frame, in
// viewport coordinates.
type PointerSample struct {
	X, Y    float64
	Pressed bool
}

// GestureHandler receives the gestures recognized by a PointerTracker.
// DragCoordinator implements it.
type GestureHandler interface {
	Begin(translationY, velocityY float64)
	Move(translationY, velocityY float64)
	End(translationY, velocityY float64)
	Cancel()
	LongPress(pressed bool)
}

// HorizontalHandler receives horizontal drags, which belong to the pager.
// Pager implements it.
type HorizontalHandler interface {
	DragStart()
	DragBy(dx float64)
	DragEnd(velocityX float64)
}

// PointerTracker is a per-pointer state machine: press, dead zone, then
// either a vertical drag (sent to the gesture handler), a horizontal drag
// (sent to the pager) or a long press. It is fed one PointerSample per frame.
type PointerTracker struct {
	gestures   GestureHandler
	horizontal HorizontalHandler

	deadZone       float64
	longPressDelay float64

	down      bool
	startX    float64
	startY    float64
	lastX     float64
	lastY     float64
	held      float64 // seconds since press while inside the dead zone
	axis      dragAxis
	longPress bool
	velX      float64
	velY      float64

	injectQueue []PointerSample
}

type dragAxis uint8

const (
	axisNone dragAxis = iota
	axisVertical
	axisHorizontal
)

// NewPointerTracker creates a tracker. horizontal may be nil when the
// surface pages on its own.
func NewPointerTracker(gestures GestureHandler, horizontal HorizontalHandler) *PointerTracker {
	return &PointerTracker{
		gestures:       gestures,
		horizontal:     horizontal,
		deadZone:       defaultDragDeadZone,
		longPressDelay: DefaultLongPressDelay,
	}
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (p *PointerTracker) SetDragDeadZone(pixels float64) {
	p.deadZone = pixels
}

// SetLongPressDelay sets the hold time in seconds before a long press fires.
func (p *PointerTracker) SetLongPressDelay(seconds float64) {
	p.longPressDelay = seconds
}

// Dragging reports whether a vertical drag is in progress.
func (p *PointerTracker) Dragging() bool {
	return p.axis == axisVertical
}

// Horizontal reports whether a horizontal drag is in progress.
func (p *PointerTracker) Horizontal() bool {
	return p.axis == axisHorizontal
}

// Update consumes one frame. If synthetic samples are queued the oldest one
// replaces s.
func (p *PointerTracker) Update(s PointerSample, dt float64) {
	if len(p.injectQueue) > 0 {
		s = p.injectQueue[0]
		copy(p.injectQueue, p.injectQueue[1:])
		p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]
	}
	p.process(s, dt)
}

// Cancel aborts the current interaction, e.g. when the window loses focus.
// A vertical drag is cancelled so paging resumes; a long press is released.
func (p *PointerTracker) Cancel() {
	if !p.down {
		return
	}
	switch p.axis {
	case axisVertical:
		p.gestures.Cancel()
	case axisHorizontal:
		if p.horizontal != nil {
			p.horizontal.DragEnd(0)
		}
	}
	p.releaseLongPress()
	p.reset()
}

func (p *PointerTracker) process(s PointerSample, dt float64) {
	switch {
	case s.Pressed && !p.down:
		p.down = true
		p.startX, p.startY = s.X, s.Y
		p.lastX, p.lastY = s.X, s.Y
		p.held = 0
		p.axis = axisNone
		p.velX, p.velY = 0, 0

	case !s.Pressed && p.down:
		p.track(s, dt)
		switch p.axis {
		case axisVertical:
			p.gestures.End(s.Y-p.startY, p.velY)
		case axisHorizontal:
			if p.horizontal != nil {
				p.horizontal.DragBy(s.X - p.lastX)
				p.horizontal.DragEnd(p.velX)
			}
		}
		p.releaseLongPress()
		p.reset()

	case s.Pressed && p.down:
		p.track(s, dt)
		dx := s.X - p.startX
		dy := s.Y - p.startY
		if p.axis == axisNone && !p.longPress {
			if math.Sqrt(dx*dx+dy*dy) > p.deadZone {
				p.startAxis(dx, dy)
			} else {
				p.held += dt
				if p.held >= p.longPressDelay {
					p.longPress = true
					p.gestures.LongPress(true)
				}
			}
		} else {
			switch p.axis {
			case axisVertical:
				p.gestures.Move(dy, p.velY)
			case axisHorizontal:
				if p.horizontal != nil {
					p.horizontal.DragBy(s.X - p.lastX)
				}
			}
		}
		p.lastX, p.lastY = s.X, s.Y
	}
}

func (p *PointerTracker) startAxis(dx, dy float64) {
	if math.Abs(dy) > math.Abs(dx) {
		p.axis = axisVertical
		p.gestures.Begin(dy, p.velY)
		return
	}
	p.axis = axisHorizontal
	if p.horizontal != nil {
		p.horizontal.DragStart()
		p.horizontal.DragBy(dx)
	}
}

// track updates the smoothed velocity from the movement since last frame.
func (p *PointerTracker) track(s PointerSample, dt float64) {
	if dt <= 0 {
		return
	}
	vx := (s.X - p.lastX) / dt
	vy := (s.Y - p.lastY) / dt
	p.velX = velocitySmoothing*vx + (1-velocitySmoothing)*p.velX
	p.velY = velocitySmoothing*vy + (1-velocitySmoothing)*p.velY
}

func (p *PointerTracker) releaseLongPress() {
	if p.longPress {
		p.longPress = false
		p.gestures.LongPress(false)
	}
}

func (p *PointerTracker) reset() {
	p.down = false
	p.axis = axisNone
	p.held = 0
}
