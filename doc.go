// Package storyview is the navigation and transition controller of a
// horizontally paged story viewer for [Ebitengine].
//
// It keeps a settled story index in step with a continuously changing scroll
// offset, computes per-page transforms for three transition styles, and
// coordinates a vertical drag-to-dismiss gesture that suspends horizontal
// paging while it runs.
//
// # Quick start
//
// A [Container] wires everything for one viewer. Give it a [PagingSurface]
// (the bundled [Pager] works with Ebitengine) and feed it frames:
//
//	cfg := storyview.DefaultConfig()
//	pager := storyview.NewPager(cfg.Layout(), cfg.Pages, 0, nil, nil)
//	opts := cfg.Options()
//	opts.OnComplete = func() { closed = true }
//	c := storyview.NewContainer(pager, opts)
//	pager.SetListeners(c.OnScroll, c.OnViewableItemsChanged)
//	input := storyview.NewPointerTracker(c.Gesture(), pager)
//
//	// every Update:
//	sample, touches = storyview.ReadPointer(touches)
//	input.Update(sample, dt)
//	pager.Update(float32(dt))
//	c.Update(float32(dt))
//
//	// every Draw, for the current page and its neighbours:
//	m := c.PageMatrix(i)
//
// # Pieces
//
// [ScrollSignal] holds the scroll offset with a single writer and read-only
// [ScrollValue] views. [ComputeStyle] maps (page, offset, mode) to a
// [Transform]. [IndexTracker] commits a new index only when exactly one page
// is viewable. [Step] is the pure drag state machine and [DragCoordinator]
// carries out its effects with [gween] tweens. [KeyboardGate] turns paging
// off while a soft keyboard is up.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package storyview
