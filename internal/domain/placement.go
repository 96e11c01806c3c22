package domain

import (
	"fmt"
	"math/rand"
)

// Placement выдает случайные позиции внутри заданных диапазонов.
// Единственный источник недетерминизма в симуляции: генератор передается снаружи,
// чтобы тесты могли подставить сид.
type Placement struct {
	rng *rand.Rand
}

// NewPlacement оборачивает генератор. nil - ошибка конфигурации хоста.
func NewPlacement(rng *rand.Rand) *Placement {
	if rng == nil {
		panic("placement: nil random source")
	}
	return &Placement{rng: rng}
}

// Continuous возвращает точку с независимыми равномерными X и Y из [Min, Max).
// Пустой или перевернутый диапазон - нарушение контракта, паникуем.
func (p *Placement) Continuous(xr, yr Range[float64]) Position[float64] {
	mustDraw(xr, "x")
	mustDraw(yr, "y")
	return Position[float64]{
		X: xr.Min + p.rng.Float64()*(xr.Max-xr.Min),
		Y: yr.Min + p.rng.Float64()*(yr.Max-yr.Min),
	}
}

// Grid - то же самое для целочисленной сетки
func (p *Placement) Grid(xr, yr Range[int]) Position[int] {
	mustDraw(xr, "x")
	mustDraw(yr, "y")
	return Position[int]{
		X: xr.Min + p.rng.Intn(xr.Max-xr.Min),
		Y: yr.Min + p.rng.Intn(yr.Max-yr.Min),
	}
}

// Chance - испытание Бернулли с вероятностью успеха prob
func (p *Placement) Chance(prob float64) bool {
	return p.rng.Float64() < prob
}

func mustDraw[T Scalar](r Range[T], axis string) {
	if err := r.Validate(); err != nil {
		panic(fmt.Sprintf("placement: %s %v", axis, err))
	}
}
