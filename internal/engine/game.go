package engine

import (
	"fmt"
	"math/rand"
	"time"

	"spacecake-server/internal/domain"
	"spacecake-server/internal/systems"
	"spacecake-server/pkg/logger"
	"spacecake-server/pkg/utils"
)

// Observer получает события симуляции (урон, смерть, переезд бонуса, level up).
// Вызывается синхронно внутри тика, поэтому должен быть быстрым.
type Observer func(domain.Event)

// Option настраивает Simulation при создании
type Option func(*Simulation)

// WithObserver добавляет наблюдателя событий
func WithObserver(o Observer) Option {
	return func(s *Simulation) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// Simulation владеет всеми сущностями партии и продвигает мир по тикам.
// Не потокобезопасна: ей владеет одна горутина хоста.
//
// Политика времени - фиксированный шаг: скорости задаются в единицах за тик,
// elapsed только накапливается для статистики.
type Simulation struct {
	cfg       Config
	placement *domain.Placement
	observers []Observer

	player      domain.Player
	enemies     []domain.Enemy
	walls       []domain.Wall
	collectible domain.Collectible

	tick        int
	elapsed     time.Duration
	initialized bool
	deathSent   bool
}

// NewSimulation проверяет конфиг и собирает ростер. Позиции расставит Initialize.
// rng == nil - генератор создается из cfg.Seed.
func NewSimulation(cfg Config, rng *rand.Rand, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if rng == nil {
		rng = utils.NewRNG(cfg.Seed)
	}

	s := &Simulation{
		cfg:       cfg,
		placement: domain.NewPlacement(rng),
		player: domain.NewPlayerBuilder().
			Speed(cfg.PlayerSpeed).
			Health(cfg.PlayerHealth).
			Stats(cfg.PlayerLevel).
			InventoryCapacity(cfg.InventoryCapacity).
			Build(),
		enemies: make([]domain.Enemy, cfg.EnemyCount),
		walls:   make([]domain.Wall, cfg.WallCount),
	}
	for i := range s.enemies {
		s.enemies[i] = domain.NewEnemy(cfg.EnemySpeed)
	}

	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Initialize расставляет сущности. Вызывается ровно один раз до первого Advance.
func (s *Simulation) Initialize() {
	if s.initialized {
		logger.Log.WithField("component", "simulation").Warn("Initialize called twice, ignoring")
		return
	}

	// Игрок - в стартовой точке (внутри мира)
	s.player.MoveTo(systems.ClampToBounds(s.cfg.PlayerStart, s.cfg.Width, s.cfg.Height))

	// Враги - по краям, сторона выбирается монеткой
	for i := range s.enemies {
		region := s.cfg.EnemySpawnRight
		if s.placement.Chance(s.cfg.EnemySideChance) {
			region = s.cfg.EnemySpawnLeft
		}
		s.enemies[i].MoveTo(s.placement.Continuous(region.X, region.Y))
	}

	// Стены - каждая в своей полосе
	for i := range s.walls {
		region := s.cfg.WallRegion(i)
		s.walls[i].Place(s.placement.Grid(region.X, region.Y))
	}

	// Бонус - подальше от игрока
	spawn := s.cfg.CollectibleSpawn
	s.collectible.Place(s.placement.Grid(spawn.X, spawn.Y))

	s.initialized = true
}

// ApplyMovementIntent двигает игрока по направлению (dx, dy).
// Ход атомарный: либо целиком, либо никак. Возвращает true, если игрок сдвинулся.
func (s *Simulation) ApplyMovementIntent(dx, dy float64) bool {
	if !s.initialized || !s.player.IsAlive() {
		return false
	}

	step := s.player.Speed() * s.cfg.MovementMultiplier
	res := systems.CalculateMove(s.player.Position(), dx*step, dy*step, s.bounds(), s.walls)

	if !res.HasMoved {
		s.emit(domain.Event{Type: domain.EventMoveBlocked, Tick: s.tick, Source: res.BlockedBy})
		return false
	}

	s.player.MoveTo(res.Target)
	return true
}

// Advance продвигает мир на один тик.
// Порядок важен: сначала все враги идут, потом считаем урон, потом подбор.
func (s *Simulation) Advance(elapsed time.Duration) {
	if !s.initialized || !s.player.IsAlive() {
		return // Мертвый игрок замораживает мир
	}

	s.tick++
	if elapsed > 0 {
		s.elapsed += elapsed
	}

	// 1. Преследование
	target := s.player.Position()
	for i := range s.enemies {
		e := &s.enemies[i]
		e.MoveTo(systems.Pursue(e.Position(), target, e.Speed()))
	}

	// 2. Урон (по позициям ПОСЛЕ движения)
	for i := range s.enemies {
		if !systems.Touching(s.enemies[i].Position(), s.player.Position(), s.cfg.EnemyCollisionRadius) {
			continue
		}
		s.hitPlayer(i)
	}

	if !s.player.IsAlive() {
		return
	}

	// 3. Подбор бонуса
	if systems.Touching(s.player.Position(), s.collectible.Position(), s.cfg.PickupRadius) {
		s.collect()
	}
}

func (s *Simulation) hitPlayer(enemyIdx int) {
	before := s.player.Health()
	died := s.player.TakeDamage(s.cfg.DamagePerHit)
	after := s.player.Health()

	if before != after {
		s.emit(domain.Event{
			Type:         domain.EventDamage,
			Tick:         s.tick,
			Source:       enemyIdx,
			Amount:       before - after,
			HealthBefore: before,
			HealthAfter:  after,
		})
	}

	if died && !s.deathSent {
		s.deathSent = true
		s.emit(domain.Event{Type: domain.EventDeath, Tick: s.tick, Source: enemyIdx, HealthBefore: before})
	}
}

func (s *Simulation) collect() {
	from := s.collectible.Position()
	region := s.cfg.CollectibleRespawn
	to := s.placement.Grid(region.X, region.Y)
	s.collectible.Place(to)

	s.emit(domain.Event{Type: domain.EventRespawn, Tick: s.tick, Source: -1, From: from, To: to})

	// Награда за подбор - точка расширения, по умолчанию 0
	stats := s.player.Stats()
	if stats == nil || s.cfg.PickupExperience <= 0 {
		return
	}
	if stats.GainExperience(s.cfg.PickupExperience) {
		s.emit(domain.Event{Type: domain.EventLevelUp, Tick: s.tick, Source: -1, Level: stats.Level})
	}
}

// UseItem применяет предмет из инвентаря игрока
func (s *Simulation) UseItem(index int) (string, error) {
	return systems.UseItem(&s.player, index)
}

func (s *Simulation) bounds() systems.Bounds {
	return systems.Bounds{
		Width:      s.cfg.Width,
		Height:     s.cfg.Height,
		WallRadius: s.cfg.WallCollisionRadius,
	}
}

func (s *Simulation) emit(e domain.Event) {
	for _, o := range s.observers {
		o(e)
	}
}

// --- Чтение состояния ---

func (s *Simulation) Config() Config { return s.cfg }
func (s *Simulation) Tick() int { return s.tick }
func (s *Simulation) Elapsed() time.Duration { return s.elapsed }
func (s *Simulation) IsAlive() bool { return s.player.IsAlive() }
func (s *Simulation) Initialized() bool { return s.initialized }
func (s *Simulation) Collectible() domain.Collectible { return s.collectible }

// Enemies возвращает копию ростера врагов
func (s *Simulation) Enemies() []domain.Enemy {
	out := make([]domain.Enemy, len(s.enemies))
	copy(out, s.enemies)
	return out
}

// Walls возвращает копию списка стен
func (s *Simulation) Walls() []domain.Wall {
	out := make([]domain.Wall, len(s.walls))
	copy(out, s.walls)
	return out
}
