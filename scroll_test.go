package storyview

import (
	"sync"
	"testing"
)

func TestScrollSignalStoreLoad(t *testing.T) {
	s := NewScrollSignal(12)
	view := s.View()
	if view.Load() != 12 {
		t.Errorf("Load = %v, want 12", view.Load())
	}
	s.Store(360)
	if view.Load() != 360 || s.Load() != 360 {
		t.Errorf("Load after Store = %v, want 360", view.Load())
	}
}

func TestScrollViewIsReadOnly(t *testing.T) {
	view := NewScrollSignal(0).View()
	if _, ok := view.(interface{ Store(float64) }); ok {
		t.Error("view exposes Store")
	}
}

func TestScrollSignalConcurrentReaders(t *testing.T) {
	s := NewScrollSignal(0)
	view := s.View()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if v := view.Load(); v < 0 || v > 1000 {
					t.Errorf("torn read %v", v)
					return
				}
			}
		}()
	}
	for j := 0; j <= 1000; j++ {
		s.Store(float64(j))
	}
	wg.Wait()
}
