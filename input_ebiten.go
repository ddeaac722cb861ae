package storyview

import "github.com/hajimehoshi/ebiten/v2"

// ReadPointer samples the primary pointer from Ebitengine: the first active
// touch if there is one, otherwise the mouse with its left button.
// touchBuf is reused between frames to avoid allocating.
func ReadPointer(touchBuf []ebiten.TouchID) (PointerSample, []ebiten.TouchID) {
	touchBuf = ebiten.AppendTouchIDs(touchBuf[:0])
	if len(touchBuf) > 0 {
		tx, ty := ebiten.TouchPosition(touchBuf[0])
		return PointerSample{X: float64(tx), Y: float64(ty), Pressed: true}, touchBuf
	}
	mx, my := ebiten.CursorPosition()
	return PointerSample{
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}, touchBuf
}

// FrameDelta returns the duration of one Update tick in seconds.
func FrameDelta() float64 {
	return 1.0 / float64(ebiten.TPS())
}
