package systems

import (
	"math"

	"spacecake-server/internal/domain"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	Target    domain.Position[float64] // Кандидат после клэмпинга
	HasMoved  bool
	BlockedBy int // Индекс стены, -1 если не уперлись
}

// Bounds - размеры мира и радиус стен для проверки хода
type Bounds struct {
	Width, Height float64
	WallRadius    float64
}

// CalculateMove вычисляет новую позицию. Не меняет состояние мира!
// Ход либо принимается целиком, либо отклоняется целиком: никакого скольжения вдоль стен.
func CalculateMove(from domain.Position[float64], dx, dy float64, b Bounds, walls []domain.Wall) MovementResult {
	if !finite(dx) || !finite(dy) {
		dx, dy = 0, 0
	}

	// 1. Границы
	target := ClampToBounds(from.Shift(dx, dy), b.Width, b.Height)
	res := MovementResult{Target: target, BlockedBy: -1}

	// 2. Стены
	if hit := FirstWallHit(target, walls, b.WallRadius); hit >= 0 {
		res.BlockedBy = hit
		return res
	}

	res.HasMoved = true
	return res
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
