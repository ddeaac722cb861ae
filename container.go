package storyview

import "log/slog"

// Options configures a Container. Zero values pick sensible defaults.
type Options struct {
	InitialIndex    int
	ItemCount       int
	Page            Layout
	BackgroundColor Color
	Mode            TransitionMode
	ScaleFloor      float64 // TransitionScale only; 0 means DefaultScaleFloor
	Drag            DragConfig

	// OnScrollBeginDrag and OnScrollEndDrag suspend and resume horizontal
	// paging around a vertical drag. When nil the container toggles the
	// surface's scroll-enabled capability itself.
	OnScrollBeginDrag func()
	OnScrollEndDrag   func()
	HandleLongPress   func(visible bool)
	OnComplete        func()
	OnIndexChange     func(index int)

	Logger *slog.Logger
}

// Container wires the scroll signal, index tracker, transition computer,
// drag coordinator and keyboard gate of one story viewer. Its methods are the
// outputs a render surface consumes.
type Container struct {
	opts    Options
	surface PagingSurface
	scroll  *ScrollSignal
	tracker *IndexTracker
	drag    *DragCoordinator
	gate    *KeyboardGate
	log     *slog.Logger
}

// NewContainer creates a container for the given surface, which may be nil
// until the list mounts (see Attach).
func NewContainer(surface PagingSurface, opts Options) *Container {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.ScaleFloor <= 0 || opts.ScaleFloor > 1 {
		opts.ScaleFloor = DefaultScaleFloor
	}
	if opts.BackgroundColor == (Color{}) {
		opts.BackgroundColor = ColorBlack
	}
	c := &Container{
		opts:    opts,
		surface: surface,
		scroll:  NewScrollSignal(float64(opts.InitialIndex) * opts.Page.Width),
		gate:    NewKeyboardGate(surface),
		log:     opts.Logger,
	}
	c.tracker = NewIndexTracker(opts.InitialIndex, opts.ItemCount, opts.OnIndexChange, opts.Logger)

	begin, end := opts.OnScrollBeginDrag, opts.OnScrollEndDrag
	if begin == nil {
		begin = func() { c.setScrollEnabled(false) }
	}
	if end == nil {
		end = func() { c.setScrollEnabled(true) }
	}
	c.drag = NewDragCoordinator(DragOptions{
		BackgroundColor:   opts.BackgroundColor,
		OnComplete:        opts.OnComplete,
		OnScrollBeginDrag: begin,
		OnScrollEndDrag:   end,
		HandleLongPress:   opts.HandleLongPress,
		Config:            opts.Drag,
		ScreenHeight:      opts.Page.Height,
		Logger:            opts.Logger,
	})
	return c
}

// Attach sets the paging surface once the list has mounted.
func (c *Container) Attach(surface PagingSurface) {
	c.surface = surface
	c.gate.Attach(surface)
}

// Scroll returns the read-only scroll signal handle.
func (c *Container) Scroll() ScrollValue {
	return c.scroll.View()
}

// OnScroll is the scroll-event handler. It is the only writer of the scroll
// signal.
func (c *Container) OnScroll(ev ScrollEvent) {
	c.scroll.Store(ev.ContentOffset.X)
}

// OnViewableItemsChanged is the viewability callback.
func (c *Container) OnViewableItemsChanged(snapshot []ViewToken) {
	c.tracker.OnViewableItemsChanged(snapshot)
}

// ViewabilityThreshold returns the percentage of the viewport an item must
// cover to count as viewable.
func (c *Container) ViewabilityThreshold() float64 {
	return ViewabilityThreshold
}

// StoryIndex returns the settled story index.
func (c *Container) StoryIndex() int {
	return c.tracker.StoryIndex()
}

// SetStoryIndex jumps to a story and scrolls the surface there. Out of range
// indices are ignored. Pages the surface passes on the way are not reported
// as index changes.
func (c *Container) SetStoryIndex(index int) {
	from := c.tracker.StoryIndex()
	if !c.tracker.SetStoryIndex(index) {
		return
	}
	if c.surface == nil {
		return
	}
	if index != from {
		c.tracker.awaitJump(index)
	}
	c.surface.ScrollToIndex(index)
}

// ComputeStyle returns the transform of page index at the current scroll
// offset.
func (c *Container) ComputeStyle(index int) Transform {
	return computeStyle(index, c.scroll.Load(), c.opts.Mode, c.opts.Page, c.opts.ScaleFloor)
}

// PageMatrix returns the full matrix of page index for this frame: its
// transition transform followed by the list's drag translation.
func (c *Container) PageMatrix(index int) [6]float64 {
	return c.ComputeStyle(index).Then(c.drag.ListStyle().Matrix())
}

// Gesture returns the drag coordinator that receives pan and long-press
// events.
func (c *Container) Gesture() *DragCoordinator {
	return c.drag
}

// ListStyle returns the list style for this frame.
func (c *Container) ListStyle() ListStyle {
	return c.drag.ListStyle()
}

// RootStyle returns the root style for this frame.
func (c *Container) RootStyle() RootStyle {
	return c.drag.RootStyle()
}

// Mode returns the transition mode.
func (c *Container) Mode() TransitionMode {
	return c.opts.Mode
}

// SetKeyboardVisible feeds the keyboard visibility signal to both the gate
// and the drag coordinator.
// Paging stays off when the keyboard hides during a vertical drag; the drag's
// release turns it back on.
func (c *Container) SetKeyboardVisible(visible bool) {
	if !visible && c.drag.Phase() == PhaseDragging {
		c.gate.record(visible)
	} else {
		c.gate.Observe(visible)
	}
	c.drag.SetKeyboardVisible(visible)
}

// KeyboardVisible returns the last observed keyboard visibility.
func (c *Container) KeyboardVisible() bool {
	return c.gate.Visible()
}

// Update advances animations by dt seconds. It does nothing after Dispose.
func (c *Container) Update(dt float32) {
	c.drag.Update(dt)
}

// Dispose tears the container down. Late viewability callbacks are dropped
// and a running release animation stops without calling onComplete.
func (c *Container) Dispose() {
	c.tracker.Dispose()
	c.drag.Dispose()
	c.log.Debug("storyview: container disposed")
}

func (c *Container) setScrollEnabled(enabled bool) {
	if c.surface != nil {
		c.surface.SetScrollEnabled(enabled)
	}
}
