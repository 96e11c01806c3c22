package handlers

import (
	"encoding/json"
)

// Controller - то, чем хендлер может управлять. Service неявно реализует этот интерфейс.
// Хендлер не видит симуляцию напрямую, только эти операции.
type Controller interface {
	SetIntent(dx, dy float64)
	UseItem(index int) (string, error)
	Restart() error
}

// Context передает хендлеру хоста и отправителя команды.
type Context struct {
	Game    Controller
	Session string // Кто прислал команду
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в сокет напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст для лога
	MsgType string // INFO, ERROR
	Resend  bool   // Отправить отправителю свежий снимок вне очереди тиков
}

// HandlerFunc - это контракт для любой команды (MOVE, USE, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
