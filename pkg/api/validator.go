package api

import (
	"errors"
	"math"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p DirectionPayload) Validate() error {
	if math.IsNaN(p.Dx) || math.IsNaN(p.Dy) || math.IsInf(p.Dx, 0) || math.IsInf(p.Dy, 0) {
		return errors.New("movement vector must be finite")
	}
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 {
		return errors.New("movement step too large")
	}
	return nil
}

func (p ItemPayload) Validate() error {
	if p.Index < 0 {
		return errors.New("item index must be non-negative")
	}
	return nil
}
