package journey

import (
	"sync"
	"testing"

	"github.com/gigly/copilot/internal/geo"
)

func TestUnsetByDefault(t *testing.T) {
	s := New()
	if s.IsSet() {
		t.Error("fresh state should not have a corridor")
	}
	ld, wp := s.Corridor()
	if ld != nil || wp != nil {
		t.Errorf("expected nil corridor, got %v, %v", ld, wp)
	}
}

func TestSetReplacesWholesale(t *testing.T) {
	s := New()
	s.Set(geo.Point{Lat: 1, Lng: 2}, geo.Point{Lat: 3, Lng: 4})
	s.Set(geo.Point{Lat: 5, Lng: 6}, geo.Point{Lat: 7, Lng: 8})

	if !s.IsSet() {
		t.Fatal("expected corridor set")
	}
	ld, wp := s.Corridor()
	if ld.Lat != 5 || ld.Lng != 6 || wp.Lat != 7 || wp.Lng != 8 {
		t.Errorf("unexpected corridor: %v -> %v", ld, wp)
	}
}

func TestCorridorReturnsCopies(t *testing.T) {
	s := New()
	s.Set(geo.Point{Lat: 1, Lng: 2}, geo.Point{Lat: 3, Lng: 4})

	ld, _ := s.Corridor()
	ld.Lat = 99

	again, _ := s.Corridor()
	if again.Lat != 1 {
		t.Errorf("mutating a snapshot leaked into state: %v", again)
	}
}

func TestPairNeverTornUnderConcurrency(t *testing.T) {
	s := New()
	s.Set(geo.Point{Lat: 0, Lng: 0}, geo.Point{Lat: 0, Lng: 0})

	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(v float64) {
			defer wg.Done()
			s.Set(geo.Point{Lat: v, Lng: v}, geo.Point{Lat: v, Lng: v})
		}(float64(i))
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			ld, wp := s.Corridor()
			if ld == nil {
				t.Error("corridor became unset")
				return
			}
			// Both points are written with identical coordinates, so any
			// mismatch means a torn pair.
			if ld.Lat != wp.Lat {
				t.Errorf("torn corridor pair: %v vs %v", ld, wp)
				return
			}
		}
	}()
	wg.Wait()
	<-done
}
