package storyview

// DragPhase is the phase of the drag-to-dismiss state machine.
type DragPhase uint8

const (
	PhaseIdle         DragPhase = iota // no gesture, styles at rest
	PhaseDragging                      // finger down, styles follow translation
	PhaseCommitting                    // released past threshold, animating out
	PhaseSnappingBack                  // released short of threshold, animating home
)

func (p DragPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseCommitting:
		return "committing"
	case PhaseSnappingBack:
		return "snapping-back"
	default:
		return "unknown"
	}
}

// GestureEventType identifies an input to the drag state machine.
type GestureEventType uint8

const (
	EventBegin    GestureEventType = iota // recognizer became active
	EventUpdate                           // finger moved
	EventEnd                              // finger lifted
	EventCancel                           // gesture interrupted by the system
	EventSettled                          // release animation finished
	EventKeyboard                         // keyboard visibility changed
)

// GestureEvent is one input to Step.
type GestureEvent struct {
	Type            GestureEventType
	TranslationY    float64
	VelocityY       float64 // pixels per second, positive downward
	KeyboardVisible bool    // EventKeyboard only
}

// DragState is everything the machine remembers. It is a value; Step never
// mutates its argument.
type DragState struct {
	Phase           DragPhase
	TranslationY    float64
	VelocityY       float64
	KeyboardVisible bool
	Completed       bool // onComplete fired for the current gesture
}

// Effect is a side effect requested by Step and carried out by the
// DragCoordinator.
type Effect uint8

const (
	EffectBeginScrollDrag Effect = iota // suspend horizontal paging
	EffectEndScrollDrag                 // resume horizontal paging
	EffectAnimateDismiss                // animate the root off-screen
	EffectAnimateSnapBack               // animate the translation to zero
	EffectComplete                      // invoke onComplete
)

// DragConfig tunes the dismiss decision and the release animations.
type DragConfig struct {
	DismissThreshold  float64 // pixels of downward travel that commit a dismiss
	VelocityThreshold float64 // pixels per second of downward release speed that commit a dismiss
	DismissDuration   float32 // seconds
	SnapBackDuration  float32 // seconds
}

// DefaultDragConfig returns the stock thresholds.
func DefaultDragConfig() DragConfig {
	return DragConfig{
		DismissThreshold:  150,
		VelocityThreshold: 800,
		DismissDuration:   0.25,
		SnapBackDuration:  0.2,
	}
}

// withDefaults fills zero fields from DefaultDragConfig.
func (c DragConfig) withDefaults() DragConfig {
	def := DefaultDragConfig()
	if c.DismissThreshold <= 0 {
		c.DismissThreshold = def.DismissThreshold
	}
	if c.VelocityThreshold <= 0 {
		c.VelocityThreshold = def.VelocityThreshold
	}
	if c.DismissDuration <= 0 {
		c.DismissDuration = def.DismissDuration
	}
	if c.SnapBackDuration <= 0 {
		c.SnapBackDuration = def.SnapBackDuration
	}
	return c
}

// ShouldDismiss reports whether a release with the given translation and
// velocity commits the dismissal.
func (c DragConfig) ShouldDismiss(translationY, velocityY float64) bool {
	return translationY > c.DismissThreshold || velocityY > c.VelocityThreshold
}

// Step is the transition function of the drag state machine. It is pure:
// the returned effects are the only way it affects the outside world.
func Step(s DragState, ev GestureEvent, cfg DragConfig) (DragState, []Effect) {
	if ev.Type == EventKeyboard {
		s.KeyboardVisible = ev.KeyboardVisible
		return s, nil
	}

	switch s.Phase {
	case PhaseIdle:
		if ev.Type != EventBegin || s.KeyboardVisible || ev.TranslationY == 0 {
			return s, nil
		}
		return DragState{
			Phase:           PhaseDragging,
			TranslationY:    ev.TranslationY,
			VelocityY:       ev.VelocityY,
			KeyboardVisible: s.KeyboardVisible,
		}, []Effect{EffectBeginScrollDrag}

	case PhaseDragging:
		switch ev.Type {
		case EventUpdate:
			s.TranslationY = ev.TranslationY
			s.VelocityY = ev.VelocityY
			return s, nil
		case EventEnd:
			s.TranslationY = ev.TranslationY
			s.VelocityY = ev.VelocityY
			if cfg.ShouldDismiss(ev.TranslationY, ev.VelocityY) {
				s.Phase = PhaseCommitting
				return s, s.release(EffectAnimateDismiss)
			}
			s.Phase = PhaseSnappingBack
			return s, s.release(EffectAnimateSnapBack)
		case EventCancel:
			s.Phase = PhaseSnappingBack
			return s, s.release(EffectAnimateSnapBack)
		}

	case PhaseCommitting:
		if ev.Type == EventSettled {
			var effects []Effect
			if !s.Completed {
				effects = []Effect{EffectComplete}
			}
			return DragState{Phase: PhaseIdle, KeyboardVisible: s.KeyboardVisible, Completed: true}, effects
		}

	case PhaseSnappingBack:
		if ev.Type == EventSettled {
			return DragState{Phase: PhaseIdle, KeyboardVisible: s.KeyboardVisible}, nil
		}
	}
	return s, nil
}

// release returns the effects of leaving PhaseDragging. Paging resumes unless
// the keyboard appeared mid-drag, in which case the keyboard gate owns it.
func (s DragState) release(anim Effect) []Effect {
	if s.KeyboardVisible {
		return []Effect{anim}
	}
	return []Effect{anim, EffectEndScrollDrag}
}
