package actions

import (
	"fmt"

	"spacecake-server/internal/engine/handlers"
)

// HandleRestart пересобирает партию со следующим сидом
func HandleRestart(ctx handlers.Context) (handlers.Result, error) {
	if err := ctx.Game.Restart(); err != nil {
		return handlers.Result{}, fmt.Errorf("restart: %w", err)
	}
	return handlers.Result{Msg: "New round.", MsgType: "INFO", Resend: true}, nil
}
