package storyview

import "math"

// DefaultScaleFloor is the scale of a page one full page away from centre in
// TransitionScale mode.
const DefaultScaleFloor = 0.8

// CubeAwayLeft returns the transform of a page that has rotated fully away
// to the left (d >= 1). It has zero width at the left edge of the viewport.
func CubeAwayLeft(page Layout) Transform {
	return Transform{X: 0, ScaleX: 0, ScaleY: 1, RotateY: math.Pi / 2}
}

// CubeAwayRight returns the transform of a page that has not yet rotated in
// from the right (d <= -1). It has zero width at the right edge.
func CubeAwayRight(page Layout) Transform {
	return Transform{X: page.Width, ScaleX: 0, ScaleY: 1, RotateY: -math.Pi / 2}
}

// PageDistance returns how many pages the viewport has moved past item:
// 0 when item is centred, 1 when it has fully left to the left, -1 when it
// is the next page waiting on the right.
func PageDistance(itemIndex int, scrollOffset float64, page Layout) float64 {
	if page.Width <= 0 {
		return 0
	}
	return scrollOffset/page.Width - float64(itemIndex)
}

// ComputeStyle returns the transform of item at the given scroll offset. It
// is pure and cheap enough to call for every rendered page on every frame.
func ComputeStyle(itemIndex int, scrollOffset float64, mode TransitionMode, page Layout) Transform {
	return computeStyle(itemIndex, scrollOffset, mode, page, DefaultScaleFloor)
}

func computeStyle(itemIndex int, scrollOffset float64, mode TransitionMode, page Layout, floor float64) Transform {
	d := PageDistance(itemIndex, scrollOffset, page)
	switch mode {
	case TransitionCube:
		return cubeTransition(d, page)
	case TransitionScale:
		return scaleTransition(d, page, floor)
	default:
		return defaultTransition(d, page)
	}
}

// defaultTransition moves the page 1:1 with the scroll offset.
func defaultTransition(d float64, page Layout) Transform {
	if d == 0 {
		return IdentityTransform
	}
	return Transform{X: -d * page.Width, ScaleX: 1, ScaleY: 1}
}

// scaleTransition shrinks the page linearly towards floor as |d| reaches 1
// while keeping it centred in its slot.
func scaleTransition(d float64, page Layout, floor float64) Transform {
	if d == 0 {
		return IdentityTransform
	}
	s := 1 - (1-floor)*math.Min(math.Abs(d), 1)
	return Transform{
		X:      -d*page.Width + (1-s)*page.Width/2,
		Y:      (1 - s) * page.Height / 2,
		ScaleX: s,
		ScaleY: s,
	}
}

// cubeTransition projects the page as a face of a cube rotating about the
// vertical axis. The outgoing face (d > 0) and the incoming face (d < 0)
// share an edge at every offset. d is clamped so pages outside the
// neighbour range stay rotated away.
func cubeTransition(d float64, page Layout) Transform {
	switch {
	case d == 0:
		return IdentityTransform
	case d >= 1:
		return CubeAwayLeft(page)
	case d <= -1:
		return CubeAwayRight(page)
	}

	w := page.Width
	theta := d * math.Pi / 2
	if d > 0 {
		sin, cos := math.Sincos(theta)
		return Transform{
			X:       w/2 - w/2*(cos+sin),
			ScaleX:  cos,
			ScaleY:  1,
			RotateY: theta,
		}
	}
	sin, cos := math.Sincos(-theta)
	right := w/2 + w/2*(cos+sin)
	return Transform{
		X:       right - w*cos,
		ScaleX:  cos,
		ScaleY:  1,
		RotateY: theta,
	}
}
