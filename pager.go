package storyview

import (
	"math"
	"slices"

	"github.com/tanema/gween/ease"
)

const (
	defaultPageSnapDuration = 0.3 // seconds
	defaultFlingVelocity    = 500 // pixels per second
)

// Pager is a horizontally paged list surface for Ebitengine. It owns the
// scroll offset, follows horizontal drags, snaps to pages, and reports both
// the offset and viewability changes to its listeners, which are normally a
// Container's OnScroll and OnViewableItemsChanged.
type Pager struct {
	page      Layout
	itemCount int
	threshold float64

	offset   float64
	enabled  bool
	dragging bool
	tween    *Tween

	onScroll   func(ScrollEvent)
	onViewable func([]ViewToken)

	published    float64
	hasPublished bool
	lastViewable []ViewToken
}

// NewPager creates a pager showing initial. Either listener may be nil.
func NewPager(page Layout, itemCount, initial int, onScroll func(ScrollEvent), onViewable func([]ViewToken)) *Pager {
	p := &Pager{
		page:       page,
		itemCount:  itemCount,
		threshold:  ViewabilityThreshold,
		enabled:    true,
		onScroll:   onScroll,
		onViewable: onViewable,
	}
	p.offset = p.pageOffset(initial)
	return p
}

// SetListeners replaces the listeners. Useful when the pager is created
// before the container that consumes it.
func (p *Pager) SetListeners(onScroll func(ScrollEvent), onViewable func([]ViewToken)) {
	p.onScroll = onScroll
	p.onViewable = onViewable
}

// Offset returns the current horizontal offset in pixels.
func (p *Pager) Offset() float64 {
	return p.offset
}

// ScrollEnabled reports whether user drags move the pager.
func (p *Pager) ScrollEnabled() bool {
	return p.enabled
}

// SetScrollEnabled enables or disables user scrolling. Disabling mid-drag
// settles on the nearest page.
func (p *Pager) SetScrollEnabled(enabled bool) {
	p.enabled = enabled
	if !enabled && p.dragging {
		p.dragging = false
		p.snapTo(p.nearestPage())
	}
}

// ScrollToIndex animates to page index, clamped to the valid range.
func (p *Pager) ScrollToIndex(index int) {
	p.dragging = false
	p.snapTo(index)
}

// DragStart begins a horizontal drag. It is ignored while scrolling is
// disabled.
func (p *Pager) DragStart() {
	if !p.enabled {
		return
	}
	p.dragging = true
	p.tween.Stop()
	p.tween = nil
}

// DragBy moves the content by dx pixels of finger travel.
func (p *Pager) DragBy(dx float64) {
	if !p.dragging {
		return
	}
	p.offset = p.clampOffset(p.offset - dx)
}

// DragEnd releases the drag with the given horizontal finger velocity and
// snaps to a page. A fast fling always moves at least one page.
func (p *Pager) DragEnd(velocityX float64) {
	if !p.dragging {
		return
	}
	p.dragging = false
	target := p.nearestPage()
	if p.page.Width > 0 {
		pos := p.offset / p.page.Width
		switch {
		case velocityX < -defaultFlingVelocity:
			target = int(math.Floor(pos)) + 1
		case velocityX > defaultFlingVelocity:
			target = int(math.Ceil(pos)) - 1
		}
	}
	p.snapTo(target)
}

// Update advances the snap animation and notifies listeners of any offset
// or viewability change.
func (p *Pager) Update(dt float32) {
	if p.tween.Running() {
		p.tween.Update(dt)
		if p.tween.Done {
			p.tween = nil
		}
	}
	p.publish()
}

// Animating reports whether a snap animation is running.
func (p *Pager) Animating() bool {
	return p.tween.Running()
}

func (p *Pager) publish() {
	if p.hasPublished && p.offset == p.published {
		return
	}
	p.hasPublished = true
	p.published = p.offset
	if p.onScroll != nil {
		p.onScroll(ScrollEvent{ContentOffset: Vec2{X: p.offset}})
	}
	tokens := EvaluateViewability(p.offset, p.page.Width, p.itemCount, p.threshold)
	if slices.Equal(tokens, p.lastViewable) {
		return
	}
	p.lastViewable = tokens
	if p.onViewable != nil {
		p.onViewable(tokens)
	}
}

func (p *Pager) snapTo(index int) {
	target := p.pageOffset(index)
	if target == p.offset {
		p.tween = nil
		return
	}
	p.tween = NewTween(&p.offset, target, defaultPageSnapDuration, ease.OutCubic)
}

func (p *Pager) nearestPage() int {
	if p.page.Width <= 0 {
		return 0
	}
	return int(math.Round(p.offset / p.page.Width))
}

func (p *Pager) pageOffset(index int) float64 {
	if index < 0 {
		index = 0
	}
	if p.itemCount > 0 && index >= p.itemCount {
		index = p.itemCount - 1
	}
	return float64(index) * p.page.Width
}

func (p *Pager) clampOffset(x float64) float64 {
	maxOffset := float64(max(p.itemCount-1, 0)) * p.page.Width
	return math.Max(0, math.Min(x, maxOffset))
}
