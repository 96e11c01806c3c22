package actions

import (
	"spacecake-server/internal/engine/handlers"
	"spacecake-server/pkg/api"
	"spacecake-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleUse обрабатывает команду USE - использование расходника из слота
func HandleUse(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	msg, err := ctx.Game.UseItem(p.Index)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "use_handler",
			"session":   ctx.Session,
			"index":     p.Index,
		}).WithError(err).Warn("Item use rejected")
		return handlers.Result{Msg: err.Error(), MsgType: "ERROR"}, nil
	}
	return handlers.Result{Msg: msg, MsgType: "INFO", Resend: true}, nil
}
