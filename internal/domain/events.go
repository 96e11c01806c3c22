package domain

import "strings"

// EventType - Внутренний числовой идентификатор события симуляции
type EventType uint8

const (
	EventUnknown EventType = iota
	EventDamage            // враг задел игрока
	EventDeath             // игрок погиб
	EventRespawn           // бонус подобран и переехал
	EventLevelUp           // новый уровень
	EventMoveBlocked       // ход отклонен стеной
)

var eventStringToType = map[string]EventType{
	"DAMAGE":       EventDamage,
	"DEATH":        EventDeath,
	"RESPAWN":      EventRespawn,
	"LEVEL_UP":     EventLevelUp,
	"MOVE_BLOCKED": EventMoveBlocked,
}

var eventTypeToString = map[EventType]string{
	EventDamage:      "DAMAGE",
	EventDeath:       "DEATH",
	EventRespawn:     "RESPAWN",
	EventLevelUp:     "LEVEL_UP",
	EventMoveBlocked: "MOVE_BLOCKED",
}

// ParseEvent конвертирует строку в EventType
func ParseEvent(s string) EventType {
	upper := strings.ToUpper(s)
	if val, ok := eventStringToType[upper]; ok {
		return val
	}
	return EventUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (e EventType) String() string {
	if val, ok := eventTypeToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// Event - то, что произошло за тик. Заполняются только поля, относящиеся к типу.
type Event struct {
	Type   EventType
	Tick   int
	Source int // индекс врага (DAMAGE) или стены (MOVE_BLOCKED), иначе -1

	Amount       int // урон
	HealthBefore int
	HealthAfter  int
	Level        int // новый уровень (LEVEL_UP)

	From Position[int] // старая позиция бонуса (RESPAWN)
	To   Position[int] // новая позиция бонуса (RESPAWN)
}
