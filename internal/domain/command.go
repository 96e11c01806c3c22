package domain

import "encoding/json"

// InternalCommand - команда для движка.
// Использует ActionType вместо string.
type InternalCommand struct {
	Action  ActionType
	Session string          // ID сессии-отправителя
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}
