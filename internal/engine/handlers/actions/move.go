package actions

import (
	"spacecake-server/internal/engine/handlers"
	"spacecake-server/pkg/api"
)

// HandleMove запоминает направление. Применяется оно на каждом тике, пока не придет STOP.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	ctx.Game.SetIntent(p.Dx, p.Dy)
	return handlers.EmptyResult(), nil
}

// HandleStop обнуляет направление
func HandleStop(ctx handlers.Context) (handlers.Result, error) {
	ctx.Game.SetIntent(0, 0)
	return handlers.EmptyResult(), nil
}
