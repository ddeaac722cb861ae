package storyview

import "testing"

func TestInjectDragConsumesOneSamplePerFrame(t *testing.T) {
	r := &gestureRecorder{}
	p := NewPointerTracker(r, r)

	// Press at y=100, moves at 140, 180, 220, 260, release at 300.
	p.InjectDrag(100, 100, 100, 300, 6)
	if p.Pending() != 6 {
		t.Fatalf("Pending = %d, want 6", p.Pending())
	}

	for i := 0; p.Pending() > 0; i++ {
		// Real input is ignored while synthetic samples are queued.
		p.Update(PointerSample{X: 999, Y: 999, Pressed: false}, frame)
		if i > 10 {
			t.Fatal("inject queue never drained")
		}
	}

	if r.count("begin") != 1 || r.count("move") != 3 || r.count("end") != 1 {
		t.Errorf("events = %v", r.events)
	}
	if r.lastTY != 200 {
		t.Errorf("end translation = %v, want 200", r.lastTY)
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	p := NewPointerTracker(&gestureRecorder{}, nil)
	p.InjectDrag(0, 0, 0, 10, 1)
	if p.Pending() != 2 {
		t.Errorf("Pending = %d, want 2", p.Pending())
	}
}

func TestInjectHold(t *testing.T) {
	r := &gestureRecorder{}
	p := NewPointerTracker(r, r)
	p.SetLongPressDelay(0.1)
	p.InjectPress(10, 10)
	p.InjectHold(10, 10, 12)
	p.InjectRelease(10, 10)
	for p.Pending() > 0 {
		p.Update(PointerSample{}, frame)
	}
	if r.count("longpress:true") != 1 || r.count("longpress:false") != 1 {
		t.Errorf("events = %v", r.events)
	}
}
