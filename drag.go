package storyview

import (
	"log/slog"

	"github.com/tanema/gween/ease"
)

// ListStyle is the style of the paged list while a drag is in progress.
type ListStyle struct {
	TranslateY float64
}

// Matrix returns the list translation as an affine matrix.
func (s ListStyle) Matrix() [6]float64 {
	return translateMatrix(0, s.TranslateY)
}

// RootStyle is the style of the viewer root: the translation it shares with
// the list and the background behind it, faded as the drag progresses.
type RootStyle struct {
	TranslateY float64
	Background Color
}

// RestListStyle is the list style outside of any gesture.
var RestListStyle = ListStyle{}

// RestRootStyle returns the root style outside of any gesture.
func RestRootStyle(bg Color) RootStyle {
	return RootStyle{Background: bg}
}

// DragOptions configures a DragCoordinator. Every callback is optional.
type DragOptions struct {
	BackgroundColor   Color
	OnComplete        func()
	OnScrollBeginDrag func()
	OnScrollEndDrag   func()
	HandleLongPress   func(visible bool)
	KeyboardVisible   bool
	Config            DragConfig
	ScreenHeight      float64 // distance the root travels when dismissed
	Logger            *slog.Logger
}

// DragCoordinator runs the drag-to-dismiss state machine against the real
// world: it calls the paging callbacks, plays the release animations and
// fires onComplete at most once per gesture.
type DragCoordinator struct {
	opts  DragOptions
	cfg   DragConfig
	state DragState

	// animated translation; equals state.TranslationY while dragging
	translateY float64
	tween      *Tween
	disposed   bool
	log        *slog.Logger
}

// NewDragCoordinator creates an idle coordinator.
func NewDragCoordinator(opts DragOptions) *DragCoordinator {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &DragCoordinator{
		opts:  opts,
		cfg:   opts.Config.withDefaults(),
		state: DragState{KeyboardVisible: opts.KeyboardVisible},
		log:   log,
	}
}

// Phase returns the current phase.
func (c *DragCoordinator) Phase() DragPhase {
	return c.state.Phase
}

// State returns a copy of the machine state.
func (c *DragCoordinator) State() DragState {
	return c.state
}

// Config returns the effective thresholds.
func (c *DragCoordinator) Config() DragConfig {
	return c.cfg
}

// Begin reports that the vertical pan recognizer became active.
func (c *DragCoordinator) Begin(translationY, velocityY float64) {
	c.dispatch(GestureEvent{Type: EventBegin, TranslationY: translationY, VelocityY: velocityY})
}

// Move reports finger movement during the pan.
func (c *DragCoordinator) Move(translationY, velocityY float64) {
	c.dispatch(GestureEvent{Type: EventUpdate, TranslationY: translationY, VelocityY: velocityY})
}

// End reports that the finger lifted.
func (c *DragCoordinator) End(translationY, velocityY float64) {
	c.dispatch(GestureEvent{Type: EventEnd, TranslationY: translationY, VelocityY: velocityY})
}

// Cancel reports that the gesture was interrupted. Paging is resumed just as
// on a normal release.
func (c *DragCoordinator) Cancel() {
	c.dispatch(GestureEvent{Type: EventCancel})
}

// SetKeyboardVisible tells the coordinator whether the soft keyboard is up.
// While it is, new drags are ignored.
func (c *DragCoordinator) SetKeyboardVisible(visible bool) {
	c.dispatch(GestureEvent{Type: EventKeyboard, KeyboardVisible: visible})
}

// LongPress forwards a long-press start (true) or end (false). It does not
// interact with the drag state machine.
func (c *DragCoordinator) LongPress(pressed bool) {
	if c.opts.HandleLongPress != nil {
		c.opts.HandleLongPress(pressed)
	}
}

// Update advances the release animation by dt seconds.
func (c *DragCoordinator) Update(dt float32) {
	if !c.tween.Running() {
		return
	}
	c.tween.Update(dt)
	if c.tween.Done {
		c.tween = nil
		c.dispatch(GestureEvent{Type: EventSettled})
	}
}

// Reset returns an idle coordinator to rest, e.g. when a dismissed viewer is
// shown again. It does nothing while a gesture or animation is in flight.
func (c *DragCoordinator) Reset() {
	if c.state.Phase != PhaseIdle {
		return
	}
	c.translateY = 0
	c.state.Completed = false
}

// ListStyle returns the list style for the current frame.
func (c *DragCoordinator) ListStyle() ListStyle {
	return ListStyle{TranslateY: c.translateY}
}

// RootStyle returns the root style for the current frame.
func (c *DragCoordinator) RootStyle() RootStyle {
	bg := c.opts.BackgroundColor
	fade := c.Progress()
	return RootStyle{
		TranslateY: c.translateY,
		Background: bg.WithAlpha(bg.A * (1 - fade)),
	}
}

// Progress returns |translationY| / DismissThreshold clamped to [0, 1].
func (c *DragCoordinator) Progress() float64 {
	t := c.translateY
	if t < 0 {
		t = -t
	}
	return clamp01(t / c.cfg.DismissThreshold)
}

// Dispose stops any release animation. Later events and updates are
// ignored, so onComplete never fires after teardown.
func (c *DragCoordinator) Dispose() {
	c.disposed = true
	c.tween.Stop()
	c.tween = nil
}

func (c *DragCoordinator) dispatch(ev GestureEvent) {
	if c.disposed {
		return
	}
	prev := c.state.Phase
	next, effects := Step(c.state, ev, c.cfg)
	c.state = next
	if next.Phase == PhaseDragging || (prev == PhaseDragging && ev.Type == EventEnd) {
		c.translateY = next.TranslationY
	}
	if prev != next.Phase {
		c.log.Debug("storyview: drag phase", "from", prev.String(), "to", next.Phase.String(),
			"translationY", next.TranslationY, "velocityY", next.VelocityY)
	}
	for _, eff := range effects {
		c.apply(eff)
	}
}

func (c *DragCoordinator) apply(eff Effect) {
	switch eff {
	case EffectBeginScrollDrag:
		if c.opts.OnScrollBeginDrag != nil {
			c.opts.OnScrollBeginDrag()
		}
	case EffectEndScrollDrag:
		if c.opts.OnScrollEndDrag != nil {
			c.opts.OnScrollEndDrag()
		}
	case EffectAnimateDismiss:
		c.tween = NewTween(&c.translateY, c.dismissTarget(), c.cfg.DismissDuration, ease.OutQuad)
	case EffectAnimateSnapBack:
		c.tween = NewTween(&c.translateY, 0, c.cfg.SnapBackDuration, ease.OutCubic)
	case EffectComplete:
		c.log.Info("storyview: dismissed")
		if c.opts.OnComplete != nil {
			c.opts.OnComplete()
		}
	}
}

// dismissTarget is a translation that puts the root fully below the screen.
func (c *DragCoordinator) dismissTarget() float64 {
	h := c.opts.ScreenHeight
	if h <= 0 {
		h = 2 * c.cfg.DismissThreshold
	}
	if c.translateY > h {
		return c.translateY
	}
	return h
}
