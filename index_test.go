package storyview

import "testing"

func viewable(indices ...int) []ViewToken {
	out := make([]ViewToken, len(indices))
	for i, idx := range indices {
		out[i] = ViewToken{Index: idx, IsViewable: true}
	}
	return out
}

func newTestTracker(initial int) (*IndexTracker, *[]int) {
	var changes []int
	tr := NewIndexTracker(initial, 10, func(i int) { changes = append(changes, i) }, nil)
	return tr, &changes
}

func TestIndexTrackerCommitsSingleNewItem(t *testing.T) {
	tr, changes := newTestTracker(2)
	tr.OnViewableItemsChanged(viewable(3))

	if tr.StoryIndex() != 3 {
		t.Errorf("StoryIndex = %d, want 3", tr.StoryIndex())
	}
	if tr.previous != 3 {
		t.Errorf("previous = %d, want 3", tr.previous)
	}
	if len(*changes) != 1 || (*changes)[0] != 3 {
		t.Errorf("changes = %v, want [3]", *changes)
	}
}

func TestIndexTrackerIgnoresOverlap(t *testing.T) {
	tr, changes := newTestTracker(2)
	tr.OnViewableItemsChanged(viewable(2, 3))

	if tr.StoryIndex() != 2 {
		t.Errorf("StoryIndex = %d, want 2", tr.StoryIndex())
	}
	if len(*changes) != 0 {
		t.Errorf("unexpected changes %v", *changes)
	}
}

func TestIndexTrackerRepeatIsNoop(t *testing.T) {
	tr, changes := newTestTracker(2)
	tr.OnViewableItemsChanged(viewable(2))
	tr.OnViewableItemsChanged(viewable(2))

	if tr.StoryIndex() != 2 || tr.previous != 2 {
		t.Errorf("state changed: index %d previous %d", tr.StoryIndex(), tr.previous)
	}
	if len(*changes) != 0 {
		t.Errorf("unexpected changes %v", *changes)
	}
}

func TestIndexTrackerMalformedSnapshots(t *testing.T) {
	tests := []struct {
		name     string
		snapshot []ViewToken
	}{
		{"nil", nil},
		{"empty", []ViewToken{}},
		{"not viewable", []ViewToken{{Index: 4, IsViewable: false}}},
		{"three items", viewable(3, 4, 5)},
		{"negative", viewable(-1)},
		{"past end", viewable(10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, changes := newTestTracker(2)
			tr.OnViewableItemsChanged(tt.snapshot)
			if tr.StoryIndex() != 2 || len(*changes) != 0 {
				t.Errorf("index %d changes %v, want 2 and none", tr.StoryIndex(), *changes)
			}
		})
	}
}

func TestIndexTrackerCountsOnlyViewableTokens(t *testing.T) {
	tr, _ := newTestTracker(2)
	tr.OnViewableItemsChanged([]ViewToken{{Index: 2, IsViewable: false}, {Index: 3, IsViewable: true}})
	if tr.StoryIndex() != 3 {
		t.Errorf("StoryIndex = %d, want 3", tr.StoryIndex())
	}
}

func TestIndexTrackerSequenceThroughOverlap(t *testing.T) {
	tr, changes := newTestTracker(0)
	for _, snap := range [][]ViewToken{
		viewable(0), viewable(0, 1), viewable(1), viewable(1, 2), viewable(1), viewable(2),
	} {
		tr.OnViewableItemsChanged(snap)
	}
	want := []int{1, 2}
	if len(*changes) != len(want) {
		t.Fatalf("changes = %v, want %v", *changes, want)
	}
	for i := range want {
		if (*changes)[i] != want[i] {
			t.Errorf("changes[%d] = %d, want %d", i, (*changes)[i], want[i])
		}
	}
}

func TestIndexTrackerDisposeDropsLateCallbacks(t *testing.T) {
	tr, changes := newTestTracker(0)
	tr.Dispose()
	tr.OnViewableItemsChanged(viewable(4))

	if !tr.Disposed() {
		t.Error("expected Disposed")
	}
	if tr.StoryIndex() != 0 || len(*changes) != 0 {
		t.Errorf("disposed tracker changed: index %d changes %v", tr.StoryIndex(), *changes)
	}
	if tr.SetStoryIndex(3) {
		t.Error("SetStoryIndex should fail after Dispose")
	}
}

func TestIndexTrackerSetStoryIndex(t *testing.T) {
	tr, changes := newTestTracker(0)
	if !tr.SetStoryIndex(5) {
		t.Fatal("SetStoryIndex(5) failed")
	}
	if tr.StoryIndex() != 5 || tr.previous != 5 {
		t.Errorf("index %d previous %d, want 5", tr.StoryIndex(), tr.previous)
	}
	// The list then reports the page we jumped to: nothing new.
	tr.OnViewableItemsChanged(viewable(5))
	if len(*changes) != 1 {
		t.Errorf("changes = %v, want one", *changes)
	}
	if tr.SetStoryIndex(99) {
		t.Error("SetStoryIndex(99) should be rejected")
	}
}

func TestIndexTrackerUnboundedWhenCountUnknown(t *testing.T) {
	tr := NewIndexTracker(0, 0, nil, nil)
	tr.OnViewableItemsChanged(viewable(42))
	if tr.StoryIndex() != 42 {
		t.Errorf("StoryIndex = %d, want 42", tr.StoryIndex())
	}
}

func TestIndexTrackerJumpIgnoresPassedPages(t *testing.T) {
	tr, changes := newTestTracker(0)
	tr.SetStoryIndex(4)
	tr.awaitJump(4)
	for _, snap := range [][]ViewToken{viewable(1), viewable(1, 2), viewable(2), viewable(3), viewable(4)} {
		tr.OnViewableItemsChanged(snap)
	}
	if tr.StoryIndex() != 4 || len(*changes) != 1 {
		t.Errorf("index %d changes %v, want 4 and [4]", tr.StoryIndex(), *changes)
	}
	tr.OnViewableItemsChanged(viewable(3))
	if tr.StoryIndex() != 3 {
		t.Errorf("StoryIndex = %d once the jump landed, want 3", tr.StoryIndex())
	}
}
