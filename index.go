package storyview

import (
	"log/slog"

	"go.uber.org/atomic"
)

// IndexTracker turns viewability snapshots into a settled story index. A new
// index is committed only when exactly one item is viewable and it differs
// from the last committed one, so the overlap window while two pages share
// the screen never causes the index to flip back and forth.
type IndexTracker struct {
	storyIndex int
	previous   int
	itemCount  int
	onChange   func(index int)
	alive      *atomic.Bool

	// target of a programmatic jump still scrolling; -1 when none
	pending int
	log        *slog.Logger
}

// NewIndexTracker creates a tracker settled on initial. itemCount bounds
// accepted indices; zero disables the bounds check. onChange may be nil.
func NewIndexTracker(initial, itemCount int, onChange func(int), log *slog.Logger) *IndexTracker {
	if log == nil {
		log = slog.Default()
	}
	return &IndexTracker{
		storyIndex: initial,
		previous:   initial,
		itemCount:  itemCount,
		onChange:   onChange,
		alive:      atomic.NewBool(true),
		pending:    -1,
		log:        log,
	}
}

// StoryIndex returns the settled index.
func (t *IndexTracker) StoryIndex() int {
	return t.storyIndex
}

// OnViewableItemsChanged consumes one viewability evaluation. Snapshots with
// zero or several viewable items, repeats of the current index, indices out
// of range and calls after Dispose are all ignored.
func (t *IndexTracker) OnViewableItemsChanged(snapshot []ViewToken) {
	if !t.alive.Load() {
		return
	}
	index, ok := singleViewable(snapshot)
	if !ok {
		return
	}
	if t.pending >= 0 {
		if index != t.pending {
			return
		}
		t.pending = -1
	}
	if index == t.previous {
		return
	}
	if !t.inRange(index) {
		t.log.Debug("storyview: viewable index out of range", "index", index, "count", t.itemCount)
		return
	}
	t.commit(index)
}

// SetStoryIndex moves the settled index directly, e.g. when the owner jumps
// to a story. The previous index follows so the next matching snapshot is
// treated as redundant.
func (t *IndexTracker) SetStoryIndex(index int) bool {
	if !t.alive.Load() || !t.inRange(index) {
		return false
	}
	if index == t.storyIndex && index == t.previous {
		return true
	}
	t.commit(index)
	return true
}

// awaitJump holds the index on target until the list reports it, so the
// pages passed while the surface scrolls there are not committed.
func (t *IndexTracker) awaitJump(target int) {
	t.pending = target
}

// Dispose stops the tracker. Viewability callbacks already queued by the
// list are dropped when they arrive.
func (t *IndexTracker) Dispose() {
	t.alive.Store(false)
}

// Disposed reports whether Dispose has been called.
func (t *IndexTracker) Disposed() bool {
	return !t.alive.Load()
}

func (t *IndexTracker) commit(index int) {
	t.storyIndex = index
	t.previous = index
	t.log.Debug("storyview: story index committed", "index", index)
	if t.onChange != nil {
		t.onChange(index)
	}
}

func (t *IndexTracker) inRange(index int) bool {
	if index < 0 {
		return false
	}
	return t.itemCount <= 0 || index < t.itemCount
}

// singleViewable returns the index of the only viewable token.
func singleViewable(snapshot []ViewToken) (int, bool) {
	index, n := 0, 0
	for _, tok := range snapshot {
		if !tok.IsViewable {
			continue
		}
		index = tok.Index
		n++
	}
	return index, n == 1
}
