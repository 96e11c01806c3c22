package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Полный "снимок" мира на конец тика. Отправляется каждый тик всем подписчикам.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE" или "ERROR".
	Type string `json:"type"`

	// Tick номер тика симуляции.
	Tick int `json:"tick"`

	// Elapsed накопленное время симуляции в миллисекундах.
	Elapsed int64 `json:"elapsed"`

	// SessionID ID сессии получателя.
	SessionID string `json:"sessionId,omitempty"`

	// World размеры игрового поля.
	World *WorldMeta `json:"world,omitempty"`

	Player      *PlayerView  `json:"player,omitempty"`
	Enemies     []EntityView `json:"enemies,omitempty"`
	Walls       []EntityView `json:"walls,omitempty"`
	Collectible *EntityView  `json:"collectible,omitempty"`

	// Events события, произошедшие с прошлого снимка.
	Events []EventView `json:"events,omitempty"`

	// Error текст ошибки для Type == "ERROR".
	Error string `json:"error,omitempty"`
}

// WorldMeta содержит размеры поля, чтобы клиент мог подготовить холст.
type WorldMeta struct {
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
}

// Vec2 - позиция на поле
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EntityView это DTO для врага, стены или бонуса.
type EntityView struct {
	Type string `json:"type"` // ENEMY, WALL, COLLECTIBLE
	Pos  Vec2   `json:"pos"`
}

// PlayerView это DTO игрока. Видит его только владелец сессии, поэтому отдаем всё.
type PlayerView struct {
	Pos       Vec2           `json:"pos"`
	Health    int            `json:"health"`
	MaxHealth int            `json:"maxHealth"`
	IsDead    bool           `json:"isDead"`
	Stats     *StatsView     `json:"stats,omitempty"`
	Inventory *InventoryView `json:"inventory,omitempty"`
}

// StatsView это DTO для характеристик игрока.
type StatsView struct {
	Level        int `json:"level"`
	Experience   int `json:"experience"`
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
	MaxHP        int `json:"maxHp"`
	HP           int `json:"hp"`
	MaxMana      int `json:"maxMana"`
	Mana         int `json:"mana"`
}

// ItemView представляет предмет для клиента
type ItemView struct {
	ID       uint32 `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Value    uint32 `json:"value,omitempty"`
	Damage   uint32 `json:"damage,omitempty"`
	Defense  uint32 `json:"defense,omitempty"`
}

// InventoryView представляет инвентарь для клиента
type InventoryView struct {
	Items    []ItemView `json:"items"`
	MaxSlots int        `json:"maxSlots"`
}

// EventView - событие симуляции для клиентского лога.
type EventView struct {
	Type   string `json:"type"` // DAMAGE, DEATH, RESPAWN, LEVEL_UP, MOVE_BLOCKED
	Tick   int    `json:"tick"`
	Source int    `json:"source"`
	Amount int    `json:"amount,omitempty"`
	Health int    `json:"health,omitempty"`
	Level  int    `json:"level,omitempty"`
	To     *Vec2  `json:"to,omitempty"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название действия: INIT, MOVE, STOP, USE, RESTART.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// DirectionPayload используется для MOVE. Компоненты в диапазоне [-1, 1].
type DirectionPayload struct {
	Dx float64 `json:"dx"`
	Dy float64 `json:"dy"`
}

// ItemPayload используется для USE.
type ItemPayload struct {
	Index int `json:"index"`
}
