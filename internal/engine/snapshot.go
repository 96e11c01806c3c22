package engine

import (
	"time"

	"spacecake-server/internal/domain"
)

// PlayerSnapshot - копия состояния игрока для рендера/UI.
// Stats и Inventory скопированы, изменения снимка на симуляцию не влияют.
type PlayerSnapshot struct {
	Position          domain.Position[float64]
	Speed             float64
	Health            int
	MaxHealth         int
	Alive             bool
	Stats             *domain.Stats
	Inventory         []domain.Item
	InventoryCapacity int
}

// WorldSnapshot - полный слепок мира на конец тика
type WorldSnapshot struct {
	Tick        int
	Elapsed     time.Duration
	Width       float64
	Height      float64
	Player      PlayerSnapshot
	Enemies     []domain.Position[float64]
	Walls       []domain.Position[int]
	Collectible domain.Position[int]
}

// Player возвращает снимок игрока
func (s *Simulation) Player() PlayerSnapshot {
	p := s.player
	snap := PlayerSnapshot{
		Position:  p.Position(),
		Speed:     p.Speed(),
		Health:    p.Health(),
		MaxHealth: p.MaxHealth(),
		Alive:     p.IsAlive(),
	}
	if st := p.Stats(); st != nil {
		cp := *st
		snap.Stats = &cp
	}
	if inv := p.Inventory(); inv != nil {
		snap.Inventory = inv.Items()
		snap.InventoryCapacity = inv.Capacity()
	}
	return snap
}

// Snapshot собирает слепок всего мира
func (s *Simulation) Snapshot() WorldSnapshot {
	snap := WorldSnapshot{
		Tick:        s.tick,
		Elapsed:     s.elapsed,
		Width:       s.cfg.Width,
		Height:      s.cfg.Height,
		Player:      s.Player(),
		Enemies:     make([]domain.Position[float64], len(s.enemies)),
		Walls:       make([]domain.Position[int], len(s.walls)),
		Collectible: s.collectible.Position(),
	}
	for i, e := range s.enemies {
		snap.Enemies[i] = e.Position()
	}
	for i, w := range s.walls {
		snap.Walls[i] = w.Position()
	}
	return snap
}
