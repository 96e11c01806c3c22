package domain

// Порог опыта на уровень: level * ExperiencePerLevel
const ExperiencePerLevel = 100

// Stats - прогрессия игрока: уровень, опыт, атрибуты и ресурсы
type Stats struct {
	Level         int `json:"level"`
	Experience    int `json:"experience"`
	Strength      int `json:"strength"`
	Dexterity     int `json:"dexterity"`
	Intelligence  int `json:"intelligence"`
	MaxHealth     int `json:"maxHealth"`
	CurrentHealth int `json:"currentHealth"`
	MaxMana       int `json:"maxMana"`
	CurrentMana   int `json:"currentMana"`
}

// NewStats создает статы для заданного уровня с полными ресурсами
func NewStats(level int) *Stats {
	if level < 0 {
		level = 0
	}
	return &Stats{
		Level:         level,
		Strength:      10 + level,
		Dexterity:     10 + level,
		Intelligence:  10 + level,
		MaxHealth:     100 + level*10,
		CurrentHealth: 100 + level*10,
		MaxMana:       50 + level*5,
		CurrentMana:   50 + level*5,
	}
}

// GainExperience начисляет опыт. Возвращает true, если случился level up.
// За один вызов - не больше одного уровня.
func (s *Stats) GainExperience(amount int) bool {
	if amount <= 0 {
		return false
	}
	s.Experience += amount

	if s.Experience >= s.Level*ExperiencePerLevel {
		s.levelUp()
		return true
	}
	return false
}

func (s *Stats) levelUp() {
	s.Level++
	s.Strength += 2
	s.Dexterity += 2
	s.Intelligence += 2
	s.MaxHealth += 10
	s.CurrentHealth = s.MaxHealth
	s.MaxMana += 5
	s.CurrentMana = s.MaxMana
	s.Experience = 0 // Копим заново
}

// RestoreMana восстанавливает ману (не выше максимума)
func (s *Stats) RestoreMana(amount int) {
	if amount <= 0 {
		return
	}
	s.CurrentMana = min(s.CurrentMana+amount, s.MaxMana)
}

// RestoreHealth восстанавливает здоровье в статах (не выше максимума)
func (s *Stats) RestoreHealth(amount int) {
	if amount <= 0 {
		return
	}
	s.CurrentHealth = min(s.CurrentHealth+amount, s.MaxHealth)
}
