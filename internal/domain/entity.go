package domain

// --- ИГРОК ---

// Player - управляемая сущность. Здоровье только убывает (кроме явного Heal),
// при нуле игрок мертв навсегда.
type Player struct {
	pos       Position[float64]
	speed     float64
	health    int
	maxHealth int

	// Компоненты (nil - значит свойство отсутствует)
	stats     *Stats
	inventory *Inventory
}

func (p Player) Position() Position[float64] { return p.pos }
func (p Player) Speed() float64 { return p.speed }
func (p Player) Health() int { return p.health }
func (p Player) MaxHealth() int { return p.maxHealth }
func (p Player) Stats() *Stats { return p.stats }
func (p Player) Inventory() *Inventory { return p.inventory }

// IsAlive - жив ли игрок
func (p Player) IsAlive() bool {
	return p.health > 0
}

// TakeDamage наносит урон. Возвращает true, если именно этот удар убил игрока.
func (p *Player) TakeDamage(amount int) bool {
	if !p.IsAlive() || amount <= 0 {
		return false
	}
	p.health = max(p.health-amount, 0)
	return p.health == 0
}

// Heal лечит игрока. Мертвых не лечим.
func (p *Player) Heal(amount int) {
	if !p.IsAlive() || amount <= 0 {
		return
	}
	p.health = min(p.health+amount, p.maxHealth)
}

// MoveTo переставляет игрока. Проверки границ и стен делает вызывающий.
func (p *Player) MoveTo(pos Position[float64]) {
	p.pos = pos
}

// PlayerBuilder фиксирует начальные параметры игрока
type PlayerBuilder struct {
	pos               Position[float64]
	speed             float64
	health            int
	level             int
	withStats         bool
	inventoryCapacity int
}

// NewPlayerBuilder - по умолчанию скорость 0 и 100 здоровья
func NewPlayerBuilder() *PlayerBuilder {
	return &PlayerBuilder{health: 100}
}

func (b *PlayerBuilder) Speed(speed float64) *PlayerBuilder {
	b.speed = speed
	return b
}

func (b *PlayerBuilder) Health(health int) *PlayerBuilder {
	b.health = health
	return b
}

func (b *PlayerBuilder) At(pos Position[float64]) *PlayerBuilder {
	b.pos = pos
	return b
}

// Stats включает прогрессию с заданного уровня
func (b *PlayerBuilder) Stats(level int) *PlayerBuilder {
	b.withStats = true
	b.level = level
	return b
}

// InventoryCapacity включает инвентарь (0 - без инвентаря)
func (b *PlayerBuilder) InventoryCapacity(capacity int) *PlayerBuilder {
	b.inventoryCapacity = capacity
	return b
}

func (b *PlayerBuilder) Build() Player {
	p := Player{
		pos:       b.pos,
		speed:     b.speed,
		health:    max(b.health, 0),
		maxHealth: max(b.health, 0),
	}
	if b.withStats {
		p.stats = NewStats(b.level)
	}
	if b.inventoryCapacity > 0 {
		p.inventory = NewInventory(b.inventoryCapacity)
	}
	return p
}

// --- ВРАГ ---

// Enemy преследует игрока со скоростью speed за тик
type Enemy struct {
	pos   Position[float64]
	speed float64
}

func NewEnemy(speed float64) Enemy {
	return Enemy{speed: speed}
}

func (e Enemy) Position() Position[float64] { return e.pos }
func (e Enemy) Speed() float64 { return e.speed }

func (e *Enemy) MoveTo(pos Position[float64]) {
	e.pos = pos
}

// --- СТЕНА ---

// Wall - неподвижное круглое препятствие на сетке
type Wall struct {
	pos Position[int]
}

func NewWall(x, y int) Wall {
	return Wall{pos: Position[int]{X: x, Y: y}}
}

func (w Wall) Position() Position[int] { return w.pos }

// Place ставит стену. Вызывается только при инициализации.
func (w *Wall) Place(pos Position[int]) {
	w.pos = pos
}

// --- БОНУС ---

// Collectible - подбираемый предмет. При подборе переезжает, но не исчезает.
type Collectible struct {
	pos Position[int]
}

func NewCollectible(x, y int) Collectible {
	return Collectible{pos: Position[int]{X: x, Y: y}}
}

func (c Collectible) Position() Position[int] { return c.pos }

func (c *Collectible) Place(pos Position[int]) {
	c.pos = pos
}
