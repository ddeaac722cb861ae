package storyview

// KeyboardGate disables horizontal paging while the soft keyboard is
// visible. A gate without a surface drops the update; the next transition
// applies the then-current value.
type KeyboardGate struct {
	surface  PagingSurface
	visible  bool
	observed bool
}

// NewKeyboardGate creates a gate. surface may be nil until the list mounts.
func NewKeyboardGate(surface PagingSurface) *KeyboardGate {
	return &KeyboardGate{surface: surface}
}

// Attach sets the surface. It does not re-apply the last value.
func (g *KeyboardGate) Attach(surface PagingSurface) {
	g.surface = surface
}

// Observe feeds the keyboard visibility signal. Only transitions (and the
// very first observation) touch the surface.
func (g *KeyboardGate) Observe(visible bool) {
	if g.observed && visible == g.visible {
		return
	}
	g.observed = true
	g.visible = visible
	if g.surface == nil {
		return
	}
	g.surface.SetScrollEnabled(!visible)
}

// record notes the visibility without touching the surface.
func (g *KeyboardGate) record(visible bool) {
	g.observed = true
	g.visible = visible
}

// Visible returns the last observed visibility.
func (g *KeyboardGate) Visible() bool {
	return g.visible
}
