package engine

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"spacecake-server/internal/domain"
	"spacecake-server/pkg/utils"

	"github.com/joho/godotenv"
)

// Config хранит параметры запуска движка и все настраиваемые константы мира.
type Config struct {
	// Seed - мастер-зерно. Партия N играет на Seed + N.
	Seed int64

	// Мир
	Width, Height float64

	// Игрок
	PlayerStart        domain.Position[float64]
	PlayerSpeed        float64
	PlayerHealth       int
	PlayerLevel        int
	InventoryCapacity  int
	MovementMultiplier float64 // множитель намерения движения

	// Враги
	EnemyCount      int
	EnemySpeed      float64 // длина шага за тик
	EnemySpawnLeft  domain.Region[float64]
	EnemySpawnRight domain.Region[float64]
	EnemySideChance float64 // вероятность левого края

	// Стены: стена i в [(i+1)*Spacing - Jitter, (i+1)*Spacing + Jitter) x BandY
	WallCount   int
	WallSpacing int
	WallJitter  int
	WallBandY   domain.Range[int]

	// Бонус
	CollectibleSpawn   domain.Region[int]
	CollectibleRespawn domain.Region[int]
	PickupExperience   int // 0 - подбор ничего не дает, кроме переезда

	// Радиусы и урон
	EnemyCollisionRadius float64
	PickupRadius         float64
	WallCollisionRadius  float64
	DamagePerHit         int

	// Хост
	TickRate int // тиков в секунду
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed: utils.RandomSeed(),

		Width:  800,
		Height: 600,

		PlayerStart:        domain.Pos(400.0, 300.0),
		PlayerSpeed:        1.0,
		PlayerHealth:       100,
		PlayerLevel:        1,
		InventoryCapacity:  10,
		MovementMultiplier: 5.0,

		EnemyCount:      2,
		EnemySpeed:      1.5,
		EnemySpawnLeft:  domain.Area(5.0, 10.0, 5.0, 100.0),
		EnemySpawnRight: domain.Area(750.0, 800.0, 0.0, 600.0),
		EnemySideChance: 0.5,

		WallCount:   3,
		WallSpacing: 200,
		WallJitter:  50,
		WallBandY:   domain.Span(250, 350),

		CollectibleSpawn:   domain.Area(600, 750, 100, 500),
		CollectibleRespawn: domain.Area(0, 800, 0, 600),

		EnemyCollisionRadius: 30,
		PickupRadius:         30,
		WallCollisionRadius:  35,
		DamagePerHit:         10,

		TickRate: 60,
	}
}

// WallRegion возвращает подобласть спавна стены с индексом i
func (c Config) WallRegion(i int) domain.Region[int] {
	center := (i + 1) * c.WallSpacing
	return domain.Region[int]{
		X: domain.Span(center-c.WallJitter, center+c.WallJitter),
		Y: c.WallBandY,
	}
}

// Validate проверяет конфиг до старта симуляции.
// Пустые регионы спавна здесь - обычная ошибка; во время игры они же были бы паникой.
func (c Config) Validate() error {
	var errs []error

	if !(c.Width > 0) || !(c.Height > 0) || math.IsInf(c.Width, 0) || math.IsInf(c.Height, 0) {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.Width, c.Height))
	}
	if c.PlayerHealth <= 0 {
		errs = append(errs, fmt.Errorf("player health must be positive, got %d", c.PlayerHealth))
	}
	if c.PlayerSpeed < 0 || c.MovementMultiplier < 0 || c.EnemySpeed < 0 {
		errs = append(errs, errors.New("speeds and movement multiplier must be non-negative"))
	}
	if c.EnemyCount < 0 || c.WallCount < 0 {
		errs = append(errs, errors.New("roster sizes must be non-negative"))
	}
	if c.EnemyCollisionRadius < 0 || c.PickupRadius < 0 || c.WallCollisionRadius < 0 {
		errs = append(errs, errors.New("radii must be non-negative"))
	}
	if c.DamagePerHit < 0 || c.PickupExperience < 0 {
		errs = append(errs, errors.New("damage and pickup experience must be non-negative"))
	}
	if c.EnemySideChance < 0 || c.EnemySideChance > 1 {
		errs = append(errs, fmt.Errorf("enemy side chance must be in [0,1], got %v", c.EnemySideChance))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rate must be positive, got %d", c.TickRate))
	}

	// Регионы проверяем только если они реально используются
	if c.EnemyCount > 0 {
		if c.EnemySideChance > 0 {
			errs = appendRegionErr(errs, "enemy left spawn", c.EnemySpawnLeft.Validate())
		}
		if c.EnemySideChance < 1 {
			errs = appendRegionErr(errs, "enemy right spawn", c.EnemySpawnRight.Validate())
		}
	}
	for i := 0; i < c.WallCount; i++ {
		errs = appendRegionErr(errs, fmt.Sprintf("wall %d region", i), c.WallRegion(i).Validate())
	}
	errs = appendRegionErr(errs, "collectible spawn", c.CollectibleSpawn.Validate())
	errs = appendRegionErr(errs, "collectible respawn", c.CollectibleRespawn.Validate())

	return errors.Join(errs...)
}

func appendRegionErr(errs []error, name string, err error) []error {
	if err != nil {
		return append(errs, fmt.Errorf("%s: %w", name, err))
	}
	return errs
}

// LoadConfig собирает конфиг: дефолты -> .env (если есть) -> переменные SC_*.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := NewConfig()
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(c *Config) error {
	ints := map[string]*int{
		"SC_PLAYER_HEALTH":      &c.PlayerHealth,
		"SC_PLAYER_LEVEL":       &c.PlayerLevel,
		"SC_INVENTORY_CAPACITY": &c.InventoryCapacity,
		"SC_ENEMY_COUNT":        &c.EnemyCount,
		"SC_WALL_COUNT":         &c.WallCount,
		"SC_DAMAGE":             &c.DamagePerHit,
		"SC_PICKUP_EXPERIENCE":  &c.PickupExperience,
		"SC_TICK_RATE":          &c.TickRate,
	}
	floats := map[string]*float64{
		"SC_WIDTH":           &c.Width,
		"SC_HEIGHT":          &c.Height,
		"SC_PLAYER_SPEED":    &c.PlayerSpeed,
		"SC_MOVE_MULTIPLIER": &c.MovementMultiplier,
		"SC_ENEMY_SPEED":     &c.EnemySpeed,
		"SC_ENEMY_RADIUS":    &c.EnemyCollisionRadius,
		"SC_PICKUP_RADIUS":   &c.PickupRadius,
		"SC_WALL_RADIUS":     &c.WallCollisionRadius,
	}

	if v, ok := os.LookupEnv("SC_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SC_SEED: %w", err)
		}
		c.Seed = seed
	}
	for key, dst := range ints {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
	}
	for key, dst := range floats {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = f
	}
	return nil
}
