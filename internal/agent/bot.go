package agent

import (
	"context"
	"encoding/json"
	"math"

	"spacecake-server/internal/domain"
	"spacecake-server/internal/engine"
	"spacecake-server/pkg/api"
	"spacecake-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Bot - автопилот (Headless Agent). Подключается к хабу как обычная сессия,
// получает снимки и шлет те же команды, что и живой игрок.
// Тянется к бонусу и отталкивается от близких врагов.
type Bot struct {
	Session string
	Service *engine.Service
	Inbox   chan api.ServerResponse

	// DangerRadius - ближе этого враг начинает отталкивать
	DangerRadius float64
	// AutoRestart - после смерти сразу просить новую партию
	AutoRestart bool

	last      api.DirectionPayload
	sidestep  float64
	restarted int // тик, на котором уже просили рестарт
	log       *logrus.Entry
}

func NewBot(session string, service *engine.Service) *Bot {
	b := &Bot{
		Session:      session,
		Service:      service,
		Inbox:        service.Hub.Register(session),
		DangerRadius: 120,
		AutoRestart:  true,
		sidestep:     1,
		restarted:    -1,
		log:          logger.Log.WithFields(logrus.Fields{"component": "bot", "session": session}),
	}
	b.log.Info("Bot attached")
	return b
}

// Run слушает Inbox до отмены контекста или закрытия канала. Запускать в горутине.
func (b *Bot) Run(ctx context.Context) {
	defer b.Service.Hub.Unregister(b.Session)

	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-b.Inbox:
			if !ok {
				b.log.Info("Bot inbox closed")
				return
			}
			b.react(state)
		}
	}
}

func (b *Bot) react(state api.ServerResponse) {
	if state.Type != "UPDATE" || state.Player == nil {
		return
	}

	if state.Player.IsDead {
		if b.AutoRestart && b.restarted != state.Tick {
			b.restarted = state.Tick
			b.send(api.ClientCommand{Action: domain.ActionRestart.String()})
		}
		return
	}

	dir := b.Decide(state)
	if dir == b.last {
		return // Направление удерживается сервером, повторять не нужно
	}
	b.last = dir

	payload, err := json.Marshal(dir)
	if err != nil {
		b.log.WithError(err).Error("encode move")
		return
	}
	b.send(api.ClientCommand{Action: domain.ActionMove.String(), Payload: payload})
}

func (b *Bot) send(cmd api.ClientCommand) {
	if err := b.Service.ProcessCommand(b.Session, cmd); err != nil {
		b.log.WithError(err).Warn("Bot command rejected")
	}
}

// Decide выбирает направление по снимку. Результат всегда в [-1, 1] по каждой оси.
func (b *Bot) Decide(state api.ServerResponse) api.DirectionPayload {
	me := toPos(state.Player.Pos)
	var fx, fy float64

	// 1. Притяжение к бонусу
	if state.Collectible != nil {
		target := toPos(state.Collectible.Pos)
		if d := domain.Distance(me, target); d > 0 {
			fx += (target.X - me.X) / d
			fy += (target.Y - me.Y) / d
		}
	}

	// 2. Отталкивание от врагов, сильнее вблизи
	for _, e := range state.Enemies {
		pos := toPos(e.Pos)
		d := domain.Distance(me, pos)
		if d >= b.DangerRadius {
			continue
		}
		if d == 0 {
			fx += 2 // стоим вплотную - бежим куда угодно
			continue
		}
		w := 2 * (b.DangerRadius - d) / b.DangerRadius
		fx += w * (me.X - pos.X) / d
		fy += w * (me.Y - pos.Y) / d
	}

	// 3. Уперлись в стену - шаг вбок, перпендикулярно текущему курсу
	for _, ev := range state.Events {
		if ev.Type == domain.EventMoveBlocked.String() {
			fx, fy = -fy*b.sidestep, fx*b.sidestep
			b.sidestep = -b.sidestep
			break
		}
	}

	return normalize(fx, fy)
}

// normalize масштабирует вектор так, чтобы большая компонента была равна 1
func normalize(x, y float64) api.DirectionPayload {
	m := math.Max(math.Abs(x), math.Abs(y))
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return api.DirectionPayload{}
	}
	return api.DirectionPayload{Dx: x / m, Dy: y / m}
}

func toPos(v api.Vec2) domain.Position[float64] {
	return domain.Pos(v.X, v.Y)
}
