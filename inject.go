package storyview

// InjectPress queues a press at the given viewport coordinates. Queued
// samples replace real input, one per Update call.
func (p *PointerTracker) InjectPress(x, y float64) {
	p.injectQueue = append(p.injectQueue, PointerSample{X: x, Y: y, Pressed: true})
}

// InjectMove queues a move with the pointer held down. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (p *PointerTracker) InjectMove(x, y float64) {
	p.injectQueue = append(p.injectQueue, PointerSample{X: x, Y: y, Pressed: true})
}

// InjectRelease queues a release at the given viewport coordinates.
func (p *PointerTracker) InjectRelease(x, y float64) {
	p.injectQueue = append(p.injectQueue, PointerSample{X: x, Y: y})
}

// InjectHold queues frames samples of the pointer held still at (x, y).
func (p *PointerTracker) InjectHold(x, y float64, frames int) {
	for i := 0; i < frames; i++ {
		p.InjectMove(x, y)
	}
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, and a release at (toX, toY). The sequence consumes
// frames Update calls; the minimum is 2.
func (p *PointerTracker) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	p.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic samples.
func (p *PointerTracker) Pending() int {
	return len(p.injectQueue)
}
