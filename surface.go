package storyview

// PagingSurface is the part of the horizontally paged list the controller
// drives. Pager implements it for Ebitengine; other renderers wrap their
// list in an adapter.
type PagingSurface interface {
	SetScrollEnabled(enabled bool)
	ScrollToIndex(index int)
}
