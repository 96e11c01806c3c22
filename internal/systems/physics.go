package systems

import (
	"spacecake-server/internal/domain"
)

// Touching - строго ближе радиуса значит касаются
func Touching[A, B domain.Scalar](a domain.Position[A], b domain.Position[B], radius float64) bool {
	return domain.Distance(a, b) < radius
}

// FirstWallHit возвращает индекс первой стены, в радиус которой попадает точка, или -1.
func FirstWallHit(pos domain.Position[float64], walls []domain.Wall, radius float64) int {
	for i := range walls {
		if Touching(pos, walls[i].Position(), radius) {
			return i
		}
	}
	return -1
}

// ClampToBounds прижимает точку к прямоугольнику [0, width] x [0, height]
func ClampToBounds(pos domain.Position[float64], width, height float64) domain.Position[float64] {
	return domain.Position[float64]{
		X: clamp(pos.X, 0, width),
		Y: clamp(pos.Y, 0, height),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
