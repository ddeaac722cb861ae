package storyview

import (
	"math"
	"testing"
)

type dragRecorder struct {
	begins, ends, completes int
	longPress               []bool
}

func newRecordedCoordinator(bg Color) (*DragCoordinator, *dragRecorder) {
	r := &dragRecorder{}
	c := NewDragCoordinator(DragOptions{
		BackgroundColor:   bg,
		OnComplete:        func() { r.completes++ },
		OnScrollBeginDrag: func() { r.begins++ },
		OnScrollEndDrag:   func() { r.ends++ },
		HandleLongPress:   func(v bool) { r.longPress = append(r.longPress, v) },
		Config:            testDrag,
		ScreenHeight:      640,
	})
	return c, r
}

func TestDragSnapBackReturnsToRest(t *testing.T) {
	bg := Color{R: 0.1, G: 0.2, B: 0.3, A: 1}
	c, r := newRecordedCoordinator(bg)

	c.Begin(10, 0)
	c.Move(60, 120)
	if c.ListStyle().TranslateY != 60 {
		t.Errorf("list TranslateY = %v, want 60", c.ListStyle().TranslateY)
	}
	c.End(80, 200)
	if c.Phase() != PhaseSnappingBack {
		t.Fatalf("phase = %s, want snapping-back", c.Phase())
	}

	c.Update(0.05)
	if c.Phase() != PhaseSnappingBack {
		t.Fatal("snap back finished too early")
	}
	mid := c.ListStyle().TranslateY
	if mid <= 0 || mid >= 80 {
		t.Errorf("mid-animation TranslateY = %v, want in (0, 80)", mid)
	}

	c.Update(1)
	if c.Phase() != PhaseIdle {
		t.Fatalf("phase = %s, want idle", c.Phase())
	}
	if c.ListStyle() != RestListStyle {
		t.Errorf("ListStyle = %+v, want rest", c.ListStyle())
	}
	if c.RootStyle() != RestRootStyle(bg) {
		t.Errorf("RootStyle = %+v, want %+v", c.RootStyle(), RestRootStyle(bg))
	}
	if r.completes != 0 {
		t.Errorf("onComplete called %d times", r.completes)
	}
	if r.begins != 1 || r.ends != 1 {
		t.Errorf("begins %d ends %d, want 1 and 1", r.begins, r.ends)
	}
}

func TestDragDismissCompletesExactlyOnce(t *testing.T) {
	c, r := newRecordedCoordinator(ColorBlack)

	c.Begin(10, 0)
	c.Move(200, 300)
	c.End(220, 300)
	if c.Phase() != PhaseCommitting {
		t.Fatalf("phase = %s, want committing", c.Phase())
	}
	if r.completes != 0 {
		t.Fatal("onComplete fired before the root left the screen")
	}
	// A stray second release for the same gesture.
	c.End(260, 300)

	c.Update(1)
	if r.completes != 1 {
		t.Fatalf("completes = %d, want 1", r.completes)
	}
	if c.Phase() != PhaseIdle {
		t.Errorf("phase = %s, want idle", c.Phase())
	}
	if got := c.RootStyle().TranslateY; math.Abs(got-640) > 0.01 {
		t.Errorf("root TranslateY = %v, want off-screen 640", got)
	}

	c.Update(1)
	c.End(300, 0)
	c.Update(1)
	if r.completes != 1 {
		t.Errorf("completes = %d after extra frames, want 1", r.completes)
	}
	if r.ends != 1 {
		t.Errorf("ends = %d, want 1", r.ends)
	}
}

func TestDragFlickDismisses(t *testing.T) {
	c, r := newRecordedCoordinator(ColorBlack)
	c.Begin(5, 0)
	c.End(40, 1200)
	c.Update(1)
	if r.completes != 1 {
		t.Errorf("completes = %d, want 1", r.completes)
	}
}

func TestDragBackgroundFadesWithProgress(t *testing.T) {
	bg := Color{R: 1, G: 1, B: 1, A: 0.8}
	c, _ := newRecordedCoordinator(bg)

	c.Begin(75, 0)
	assertNear(t, "progress", c.Progress(), 0.5)
	assertNear(t, "alpha", c.RootStyle().Background.A, 0.4)
	assertNear(t, "root TranslateY", c.RootStyle().TranslateY, 75)

	c.Move(-75, 0)
	assertNear(t, "upward progress", c.Progress(), 0.5)

	c.Move(400, 0)
	assertNear(t, "clamped progress", c.Progress(), 1)
	assertNear(t, "clamped alpha", c.RootStyle().Background.A, 0)
}

func TestDragIgnoredWhileKeyboardVisible(t *testing.T) {
	c, r := newRecordedCoordinator(ColorBlack)
	c.SetKeyboardVisible(true)
	c.Begin(50, 0)
	if c.Phase() != PhaseIdle || r.begins != 0 {
		t.Errorf("drag started with keyboard up: phase %s begins %d", c.Phase(), r.begins)
	}

	c.SetKeyboardVisible(false)
	c.Begin(50, 0)
	if c.Phase() != PhaseDragging || r.begins != 1 {
		t.Errorf("drag did not start after keyboard hid: phase %s begins %d", c.Phase(), r.begins)
	}
}

func TestDragCancelResumesPaging(t *testing.T) {
	c, r := newRecordedCoordinator(ColorBlack)
	c.Begin(30, 0)
	c.Move(90, 0)
	c.Cancel()
	if r.ends != 1 {
		t.Errorf("ends = %d, want 1", r.ends)
	}
	c.Update(1)
	if c.Phase() != PhaseIdle || c.ListStyle() != RestListStyle || r.completes != 0 {
		t.Errorf("after cancel: phase %s list %+v completes %d", c.Phase(), c.ListStyle(), r.completes)
	}
}

func TestDragLongPressIndependentOfPhase(t *testing.T) {
	c, r := newRecordedCoordinator(ColorBlack)
	c.LongPress(true)
	c.Begin(20, 0)
	c.LongPress(false)
	if len(r.longPress) != 2 || !r.longPress[0] || r.longPress[1] {
		t.Errorf("longPress = %v, want [true false]", r.longPress)
	}
	if c.Phase() != PhaseDragging {
		t.Errorf("long press changed phase to %s", c.Phase())
	}
}

func TestDragResetAfterDismiss(t *testing.T) {
	c, _ := newRecordedCoordinator(ColorBlack)
	c.Begin(10, 0)
	c.End(300, 0)
	c.Reset()
	if c.Phase() != PhaseCommitting {
		t.Fatal("Reset must not interrupt an animation")
	}
	c.Update(1)
	c.Reset()
	if c.ListStyle() != RestListStyle {
		t.Errorf("ListStyle = %+v after Reset", c.ListStyle())
	}
}

func TestDragNilCallbacks(t *testing.T) {
	c := NewDragCoordinator(DragOptions{})
	c.Begin(10, 0)
	c.LongPress(true)
	c.End(500, 0)
	c.Update(1)
	if c.Phase() != PhaseIdle {
		t.Errorf("phase = %s, want idle", c.Phase())
	}
	if c.Config() != DefaultDragConfig() {
		t.Errorf("Config = %+v, want defaults", c.Config())
	}
}
