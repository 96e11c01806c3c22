package engine

import (
	"spacecake-server/internal/domain"
	"spacecake-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// LogObserver пишет события симуляции в структурированный лог.
// MOVE_BLOCKED идет на debug: при упоре в стену он летит каждый кадр.
func LogObserver(session string) Observer {
	return func(e domain.Event) {
		entry := logger.Log.WithFields(logrus.Fields{
			"component": "simulation",
			"session":   session,
			"event":     e.Type.String(),
			"tick":      e.Tick,
		})

		switch e.Type {
		case domain.EventDamage:
			entry.WithFields(logrus.Fields{
				"enemy":     e.Source,
				"damage":    e.Amount,
				"hp_before": e.HealthBefore,
				"hp_after":  e.HealthAfter,
			}).Info("Player hit.")
		case domain.EventDeath:
			entry.WithField("enemy", e.Source).Warn("Player died.")
		case domain.EventRespawn:
			entry.WithFields(logrus.Fields{
				"from": e.From,
				"to":   e.To,
			}).Info("Collectible gathered.")
		case domain.EventLevelUp:
			entry.WithField("level", e.Level).Info("Level up.")
		case domain.EventMoveBlocked:
			entry.WithField("wall", e.Source).Debug("Movement blocked by wall.")
		default:
			entry.Debug("Unknown event.")
		}
	}
}
