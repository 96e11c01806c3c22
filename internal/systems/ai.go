package systems

import (
	"math"

	"spacecake-server/internal/domain"
)

// Pursue вычисляет следующую позицию преследователя.
// Шаг фиксированной длины speed к цели; если цель ближе шага - встаем ровно на нее.
// Нулевая дистанция и неположительная скорость - ход пропускается.
func Pursue(from, target domain.Position[float64], speed float64) domain.Position[float64] {
	if speed <= 0 || math.IsNaN(speed) {
		return from
	}

	dx := target.X - from.X
	dy := target.Y - from.Y
	dist := math.Hypot(dx, dy)

	if dist == 0 {
		return from // Уже на месте, делить на ноль нельзя
	}
	if dist <= speed {
		return target // Не перелетаем цель
	}

	ratio := speed / dist
	return domain.Position[float64]{
		X: from.X + dx*ratio,
		Y: from.Y + dy*ratio,
	}
}
