package domain

import "fmt"

// Range - полуинтервал [Min, Max) для случайной выборки по одной оси
type Range[T Scalar] struct {
	Min T `json:"min"`
	Max T `json:"max"`
}

// Span создает диапазон
func Span[T Scalar](min, max T) Range[T] {
	return Range[T]{Min: min, Max: max}
}

// Validate проверяет, что из диапазона вообще можно что-то выбрать.
func (r Range[T]) Validate() error {
	if r.Min >= r.Max {
		return fmt.Errorf("empty range [%v, %v)", r.Min, r.Max)
	}
	return nil
}

// Contains проверяет попадание значения в диапазон
func (r Range[T]) Contains(v T) bool {
	return v >= r.Min && v < r.Max
}

// Region - прямоугольная подобласть мира для спавна
type Region[T Scalar] struct {
	X Range[T] `json:"x"`
	Y Range[T] `json:"y"`
}

// Area создает регион из двух диапазонов
func Area[T Scalar](xMin, xMax, yMin, yMax T) Region[T] {
	return Region[T]{X: Span(xMin, xMax), Y: Span(yMin, yMax)}
}

// Validate проверяет обе оси региона
func (r Region[T]) Validate() error {
	if err := r.X.Validate(); err != nil {
		return fmt.Errorf("x axis: %w", err)
	}
	if err := r.Y.Validate(); err != nil {
		return fmt.Errorf("y axis: %w", err)
	}
	return nil
}

// Contains проверяет, лежит ли точка внутри региона
func (r Region[T]) Contains(p Position[T]) bool {
	return r.X.Contains(p.X) && r.Y.Contains(p.Y)
}
