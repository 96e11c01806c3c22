package domain

import (
	"math/rand"
	"testing"
)

func TestPlacement_StaysInRange(t *testing.T) {
	p := NewPlacement(rand.New(rand.NewSource(42)))
	region := Area(750.0, 800.0, 0.0, 600.0)
	grid := Area(600, 750, 100, 500)

	for i := 0; i < 1000; i++ {
		if pos := p.Continuous(region.X, region.Y); !region.Contains(pos) {
			t.Fatalf("Continuous draw %v outside %+v", pos, region)
		}
		if pos := p.Grid(grid.X, grid.Y); !grid.Contains(pos) {
			t.Fatalf("Grid draw %v outside %+v", pos, grid)
		}
	}
}

func TestPlacement_SeededIsDeterministic(t *testing.T) {
	a := NewPlacement(rand.New(rand.NewSource(7)))
	b := NewPlacement(rand.New(rand.NewSource(7)))

	for i := 0; i < 10; i++ {
		pa := a.Grid(Span(0, 800), Span(0, 600))
		pb := b.Grid(Span(0, 800), Span(0, 600))
		if pa != pb {
			t.Fatalf("draw %d differs: %v vs %v", i, pa, pb)
		}
	}
}

func TestPlacement_SingleValueRange(t *testing.T) {
	p := NewPlacement(rand.New(rand.NewSource(1)))
	pos := p.Grid(Span(5, 6), Span(9, 10))
	if pos != Pos(5, 9) {
		t.Errorf("Grid = %v, want (5,9)", pos)
	}
}

func TestPlacement_EmptyRangePanics(t *testing.T) {
	p := NewPlacement(rand.New(rand.NewSource(1)))

	tests := []struct {
		name string
		draw func()
	}{
		{"grid empty", func() { p.Grid(Span(5, 5), Span(0, 10)) }},
		{"grid inverted", func() { p.Grid(Span(0, 10), Span(10, 0)) }},
		{"continuous empty", func() { p.Continuous(Span(1.0, 1.0), Span(0.0, 1.0)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic on empty range")
				}
			}()
			tt.draw()
		})
	}
}

func TestNewPlacement_NilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil rng")
		}
	}()
	NewPlacement(nil)
}
