package domain

import "math"

// Scalar - допустимые типы координат.
// int - для сеточных сущностей (стены, бонус), float64 - для движущихся (игрок, враги).
type Scalar interface {
	~int | ~float64
}

// Position - точка на плоскости. Нулевое значение - начало координат.
// Границы мира сама позиция не проверяет, это забота вызывающего.
type Position[T Scalar] struct {
	X T `json:"x"`
	Y T `json:"y"`
}

// Pos создает позицию
func Pos[T Scalar](x, y T) Position[T] {
	return Position[T]{X: x, Y: y}
}

// ToFloat переводит позицию в непрерывные координаты
func (p Position[T]) ToFloat() Position[float64] {
	return Position[float64]{X: float64(p.X), Y: float64(p.Y)}
}

// Shift возвращает новую позицию со смещением (текущая не меняется)
func (p Position[T]) Shift(dx, dy T) Position[T] {
	return Position[T]{X: p.X + dx, Y: p.Y + dy}
}

// Distance возвращает евклидово расстояние между точками любых типов координат
func Distance[A, B Scalar](a Position[A], b Position[B]) float64 {
	dx := float64(a.X) - float64(b.X)
	dy := float64(a.Y) - float64(b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
