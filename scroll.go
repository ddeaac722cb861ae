package storyview

import "go.uber.org/atomic"

// ScrollValue is a read-only view of the horizontal scroll offset in pixels.
// Any number of readers may call Load concurrently with the writer.
type ScrollValue interface {
	Load() float64
}

// ScrollSignal holds the horizontal scroll offset. It has exactly one writer,
// the scroll-event handler; everything else receives it as a ScrollValue.
type ScrollSignal struct {
	v *atomic.Float64
}

// NewScrollSignal creates a signal starting at offset.
func NewScrollSignal(offset float64) *ScrollSignal {
	return &ScrollSignal{v: atomic.NewFloat64(offset)}
}

// Load returns the latest offset.
func (s *ScrollSignal) Load() float64 {
	return s.v.Load()
}

// Store publishes a new offset. Only the scroll observer calls this.
func (s *ScrollSignal) Store(offset float64) {
	s.v.Store(offset)
}

// View returns the read-only handle handed to consumers.
func (s *ScrollSignal) View() ScrollValue {
	return readOnlyScroll{s}
}

// readOnlyScroll hides Store from consumers that type-assert the view.
type readOnlyScroll struct {
	s *ScrollSignal
}

func (r readOnlyScroll) Load() float64 { return r.s.Load() }

// ScrollEvent is what the paging surface reports on every scroll frame.
type ScrollEvent struct {
	ContentOffset Vec2
}

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}
