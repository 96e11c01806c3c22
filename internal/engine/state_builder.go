package engine

import (
	"spacecake-server/internal/domain"
	"spacecake-server/pkg/api"
)

// BuildResponse превращает снимок мира и накопленные события в DTO для клиента.
func BuildResponse(snap WorldSnapshot, events []domain.Event) api.ServerResponse {
	resp := api.ServerResponse{
		Type:    "UPDATE",
		Tick:    snap.Tick,
		Elapsed: snap.Elapsed.Milliseconds(),
		World:   &api.WorldMeta{Width: snap.Width, Height: snap.Height},
		Player:  toPlayerView(snap.Player),
		Collectible: &api.EntityView{
			Type: domain.EntityTypeCollectible,
			Pos:  vec(snap.Collectible.ToFloat()),
		},
	}

	for _, e := range snap.Enemies {
		resp.Enemies = append(resp.Enemies, api.EntityView{Type: domain.EntityTypeEnemy, Pos: vec(e)})
	}
	for _, w := range snap.Walls {
		resp.Walls = append(resp.Walls, api.EntityView{Type: domain.EntityTypeWall, Pos: vec(w.ToFloat())})
	}
	for _, e := range events {
		resp.Events = append(resp.Events, toEventView(e))
	}
	return resp
}

func toPlayerView(p PlayerSnapshot) *api.PlayerView {
	view := &api.PlayerView{
		Pos:       vec(p.Position),
		Health:    p.Health,
		MaxHealth: p.MaxHealth,
		IsDead:    !p.Alive,
	}

	if st := p.Stats; st != nil {
		view.Stats = &api.StatsView{
			Level:        st.Level,
			Experience:   st.Experience,
			Strength:     st.Strength,
			Dexterity:    st.Dexterity,
			Intelligence: st.Intelligence,
			MaxHP:        st.MaxHealth,
			HP:           st.CurrentHealth,
			MaxMana:      st.MaxMana,
			Mana:         st.CurrentMana,
		}
	}

	if p.InventoryCapacity > 0 {
		inv := &api.InventoryView{Items: make([]api.ItemView, 0, len(p.Inventory)), MaxSlots: p.InventoryCapacity}
		for _, it := range p.Inventory {
			inv.Items = append(inv.Items, api.ItemView{
				ID:       it.ID,
				Name:     it.Name,
				Category: it.Category.String(),
				Value:    it.Value,
				Damage:   it.Damage,
				Defense:  it.Defense,
			})
		}
		view.Inventory = inv
	}
	return view
}

func toEventView(e domain.Event) api.EventView {
	view := api.EventView{
		Type:   e.Type.String(),
		Tick:   e.Tick,
		Source: e.Source,
	}
	switch e.Type {
	case domain.EventDamage:
		view.Amount = e.Amount
		view.Health = e.HealthAfter
	case domain.EventLevelUp:
		view.Level = e.Level
	case domain.EventRespawn:
		to := vec(e.To.ToFloat())
		view.To = &to
	}
	return view
}

func vec(p domain.Position[float64]) api.Vec2 {
	return api.Vec2{X: p.X, Y: p.Y}
}
