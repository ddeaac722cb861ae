package storyview

import "math"

// ViewabilityThreshold is the percentage of the viewport an item must cover
// to be reported as viewable.
const ViewabilityThreshold = 70

// ViewToken is one entry of a viewability snapshot.
type ViewToken struct {
	Index      int
	IsViewable bool
}

// EvaluateViewability returns the snapshot a paged list delivers at the given
// offset: every item covering at least thresholdPercent of the viewport, in
// index order. While two pages share the screen roughly evenly neither
// qualifies at 70%, and at 50% both may, which is the overlap window the
// IndexTracker ignores.
func EvaluateViewability(offset, pageWidth float64, itemCount int, thresholdPercent float64) []ViewToken {
	if pageWidth <= 0 || itemCount <= 0 {
		return nil
	}
	first := int(math.Floor(offset / pageWidth))
	var tokens []ViewToken
	for i := first; i <= first+1; i++ {
		if i < 0 || i >= itemCount {
			continue
		}
		left := math.Max(float64(i)*pageWidth, offset)
		right := math.Min(float64(i+1)*pageWidth, offset+pageWidth)
		visible := (right - left) * 100 / pageWidth
		if visible >= thresholdPercent {
			tokens = append(tokens, ViewToken{Index: i, IsViewable: true})
		}
	}
	return tokens
}
