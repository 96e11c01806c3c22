package actions

import "spacecake-server/internal/engine/handlers"

// HandleInit просит свежий снимок. Ход не тратит.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Welcome to Spacecake.",
		MsgType: "INFO",
		Resend:  true,
	}, nil
}
