package systems

import (
	"math"
	"testing"

	"spacecake-server/internal/domain"
)

func TestCalculateMove(t *testing.T) {
	bounds := Bounds{Width: 800, Height: 600, WallRadius: 35}
	walls := []domain.Wall{domain.NewWall(200, 300)}

	tests := []struct {
		name      string
		from      domain.Position[float64]
		dx, dy    float64
		want      domain.Position[float64]
		moved     bool
		blockedBy int
	}{
		{"free move", domain.Pos(400.0, 300.0), 5, 0, domain.Pos(405.0, 300.0), true, -1},
		// Кандидат (170,300) в 30 от стены (200,300) - ход отклонен
		{"into wall", domain.Pos(165.0, 300.0), 5, 0, domain.Pos(170.0, 300.0), false, 0},
		{"exactly on radius is free", domain.Pos(160.0, 300.0), 5, 0, domain.Pos(165.0, 300.0), true, -1},
		{"clamp left", domain.Pos(2.0, 10.0), -5, 0, domain.Pos(0.0, 10.0), true, -1},
		{"clamp bottom right", domain.Pos(798.0, 598.0), 5, 5, domain.Pos(800.0, 600.0), true, -1},
		{"nan is zero", domain.Pos(10.0, 10.0), math.NaN(), 1, domain.Pos(10.0, 10.0), true, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CalculateMove(tt.from, tt.dx, tt.dy, bounds, walls)
			if res.HasMoved != tt.moved {
				t.Errorf("HasMoved = %v, want %v", res.HasMoved, tt.moved)
			}
			if res.Target != tt.want {
				t.Errorf("Target = %v, want %v", res.Target, tt.want)
			}
			if res.BlockedBy != tt.blockedBy {
				t.Errorf("BlockedBy = %d, want %d", res.BlockedBy, tt.blockedBy)
			}
		})
	}
}

func TestClampToBounds_AlwaysInside(t *testing.T) {
	points := []domain.Position[float64]{
		domain.Pos(-100.0, -100.0),
		domain.Pos(1e9, 1e9),
		domain.Pos(400.0, -0.5),
		domain.Pos(800.5, 300.0),
	}
	for _, p := range points {
		got := ClampToBounds(p, 800, 600)
		if got.X < 0 || got.X > 800 || got.Y < 0 || got.Y > 600 {
			t.Errorf("ClampToBounds(%v) = %v escaped the world", p, got)
		}
	}
}
