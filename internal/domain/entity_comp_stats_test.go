package domain

import "testing"

func TestNewStats(t *testing.T) {
	s := NewStats(1)
	if s.Strength != 11 || s.Dexterity != 11 || s.Intelligence != 11 {
		t.Errorf("attributes = %d/%d/%d, want 11/11/11", s.Strength, s.Dexterity, s.Intelligence)
	}
	if s.MaxHealth != 110 || s.CurrentHealth != 110 {
		t.Errorf("health = %d/%d, want 110/110", s.CurrentHealth, s.MaxHealth)
	}
	if s.MaxMana != 55 || s.CurrentMana != 55 {
		t.Errorf("mana = %d/%d, want 55/55", s.CurrentMana, s.MaxMana)
	}
}

func TestGainExperience_LevelUp(t *testing.T) {
	s := NewStats(1)
	s.CurrentHealth = 40
	s.CurrentMana = 1

	if !s.GainExperience(100) {
		t.Fatal("expected level up at 100 experience")
	}

	if s.Level != 2 {
		t.Errorf("Level = %d, want 2", s.Level)
	}
	if s.Experience != 0 {
		t.Errorf("Experience = %d, want 0", s.Experience)
	}
	if s.Strength != 13 || s.Dexterity != 13 || s.Intelligence != 13 {
		t.Errorf("attributes = %d/%d/%d, want 13/13/13", s.Strength, s.Dexterity, s.Intelligence)
	}
	if s.MaxHealth != 120 || s.CurrentHealth != 120 {
		t.Errorf("health = %d/%d, want refilled 120/120", s.CurrentHealth, s.MaxHealth)
	}
	if s.MaxMana != 60 || s.CurrentMana != 60 {
		t.Errorf("mana = %d/%d, want refilled 60/60", s.CurrentMana, s.MaxMana)
	}
}

func TestGainExperience_BelowThreshold(t *testing.T) {
	s := NewStats(2)

	if s.GainExperience(150) {
		t.Fatal("150 < 200, no level up expected")
	}
	if s.Level != 2 || s.Experience != 150 {
		t.Errorf("got level %d exp %d, want 2/150", s.Level, s.Experience)
	}

	// Накопление добивает порог
	if !s.GainExperience(60) {
		t.Fatal("expected level up after crossing 200")
	}
	if s.Level != 3 || s.Experience != 0 {
		t.Errorf("got level %d exp %d, want 3/0", s.Level, s.Experience)
	}
}

func TestGainExperience_IgnoresNonPositive(t *testing.T) {
	s := NewStats(1)
	if s.GainExperience(0) || s.GainExperience(-5) {
		t.Error("non-positive experience must not level up")
	}
	if s.Experience != 0 {
		t.Errorf("Experience = %d, want 0", s.Experience)
	}
}

func TestRestoreCapsAtMax(t *testing.T) {
	s := NewStats(1)
	s.CurrentMana = 50
	s.CurrentHealth = 100

	s.RestoreMana(100)
	s.RestoreHealth(100)

	if s.CurrentMana != s.MaxMana {
		t.Errorf("CurrentMana = %d, want %d", s.CurrentMana, s.MaxMana)
	}
	if s.CurrentHealth != s.MaxHealth {
		t.Errorf("CurrentHealth = %d, want %d", s.CurrentHealth, s.MaxHealth)
	}
}
