package domain

import "testing"

func TestPlayerBuilder_Defaults(t *testing.T) {
	p := NewPlayerBuilder().Build()

	if p.Health() != 100 || p.MaxHealth() != 100 {
		t.Errorf("health = %d/%d, want 100/100", p.Health(), p.MaxHealth())
	}
	if p.Speed() != 0 {
		t.Errorf("Speed() = %v, want 0", p.Speed())
	}
	if p.Stats() != nil || p.Inventory() != nil {
		t.Error("stats and inventory are optional and off by default")
	}
}

func TestPlayerBuilder_Full(t *testing.T) {
	p := NewPlayerBuilder().
		Speed(2).
		Health(50).
		At(Pos(10.0, 20.0)).
		Stats(3).
		InventoryCapacity(4).
		Build()

	if p.Position() != Pos(10.0, 20.0) {
		t.Errorf("Position() = %v", p.Position())
	}
	if p.Stats() == nil || p.Stats().Level != 3 {
		t.Errorf("Stats() = %+v, want level 3", p.Stats())
	}
	if p.Inventory().Capacity() != 4 {
		t.Errorf("Capacity() = %d, want 4", p.Inventory().Capacity())
	}
}

func TestPlayer_TakeDamage(t *testing.T) {
	p := NewPlayerBuilder().Health(25).Build()

	if p.TakeDamage(10) {
		t.Error("15 hp left, should not be dead")
	}
	if p.TakeDamage(0) || p.TakeDamage(-3) {
		t.Error("non-positive damage must be ignored")
	}
	if p.Health() != 15 {
		t.Errorf("Health() = %d, want 15", p.Health())
	}

	if !p.TakeDamage(40) {
		t.Error("overkill should report death")
	}
	if p.Health() != 0 || p.IsAlive() {
		t.Errorf("Health() = %d alive=%v, want 0/false", p.Health(), p.IsAlive())
	}

	// Повторный удар по трупу ничего не делает
	if p.TakeDamage(10) {
		t.Error("dead player cannot die twice")
	}
}

func TestPlayer_Heal(t *testing.T) {
	p := NewPlayerBuilder().Health(100).Build()
	p.TakeDamage(30)
	p.Heal(50)
	if p.Health() != 100 {
		t.Errorf("Health() = %d, want capped 100", p.Health())
	}

	p.TakeDamage(100)
	p.Heal(50)
	if p.Health() != 0 {
		t.Errorf("dead player healed to %d", p.Health())
	}
}

func TestDistanceMixedScalars(t *testing.T) {
	got := Distance(Pos(165.0, 300.0), Pos(200, 300))
	if got != 35 {
		t.Errorf("Distance = %v, want 35", got)
	}
	if Distance(Pos(0, 0), Pos(3, 4)) != 5 {
		t.Error("3-4-5 triangle")
	}
}

func TestRegion_Validate(t *testing.T) {
	tests := []struct {
		name    string
		region  Region[int]
		wantErr bool
	}{
		{"ok", Area(0, 10, 0, 10), false},
		{"empty x", Area(5, 5, 0, 10), true},
		{"inverted y", Area(0, 10, 10, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.region.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
