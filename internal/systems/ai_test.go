package systems

import (
	"math"
	"testing"

	"spacecake-server/internal/domain"
)

const eps = 1e-9

func TestPursue(t *testing.T) {
	target := domain.Pos(400.0, 300.0)

	t.Run("Lands exactly on close target", func(t *testing.T) {
		got := Pursue(domain.Pos(405.0, 300.0), target, 50)
		if got != target {
			t.Errorf("Pursue = %v, want %v", got, target)
		}
	})

	t.Run("Coincident is no-op", func(t *testing.T) {
		got := Pursue(target, target, 5)
		if got != target {
			t.Errorf("Pursue = %v, want %v", got, target)
		}
		if math.IsNaN(got.X) || math.IsNaN(got.Y) {
			t.Error("NaN leaked from zero-length vector")
		}
	})

	t.Run("Zero speed is no-op", func(t *testing.T) {
		from := domain.Pos(0.0, 0.0)
		if got := Pursue(from, target, 0); got != from {
			t.Errorf("Pursue = %v, want %v", got, from)
		}
	})

	t.Run("Diagonal step", func(t *testing.T) {
		got := Pursue(domain.Pos(0.0, 0.0), domain.Pos(30.0, 40.0), 5)
		if math.Abs(got.X-3) > eps || math.Abs(got.Y-4) > eps {
			t.Errorf("Pursue = %v, want (3,4)", got)
		}
	})
}

func TestPursue_ClosesBySpeed(t *testing.T) {
	target := domain.Pos(400.0, 300.0)
	starts := []domain.Position[float64]{
		domain.Pos(0.0, 0.0),
		domain.Pos(800.0, 600.0),
		domain.Pos(7.5, 55.2),
		domain.Pos(399.0, 100.0),
	}

	for _, speed := range []float64{0.5, 1.5, 10} {
		for _, from := range starts {
			before := domain.Distance(from, target)
			if before <= speed {
				continue
			}
			after := domain.Distance(Pursue(from, target, speed), target)
			if math.Abs(after-(before-speed)) > 1e-6 {
				t.Errorf("speed %v from %v: distance %v -> %v, want %v", speed, from, before, after, before-speed)
			}
			if after < 0 {
				t.Errorf("overshoot from %v", from)
			}
		}
	}
}
