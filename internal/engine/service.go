package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"spacecake-server/internal/domain"
	"spacecake-server/internal/engine/handlers"
	"spacecake-server/internal/engine/handlers/actions"
	"spacecake-server/internal/network"
	"spacecake-server/pkg/api"
	"spacecake-server/pkg/logger"
	"spacecake-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

var ErrUnknownAction = errors.New("unknown action")

// Service - хост симуляции. Владеет одной партией в одной горутине,
// принимает команды из сокетов и рассылает снимки каждый тик.
// Правил игры здесь нет, только расписание и транспорт.
type Service struct {
	cfg   Config
	sim   *Simulation
	round int // номер партии, из него выводится сид

	intentX, intentY float64
	pending          []domain.Event

	CommandChan chan domain.InternalCommand
	Hub         *network.Broadcaster

	handlers map[domain.ActionType]handlers.HandlerFunc

	mu     sync.RWMutex
	latest api.ServerResponse
}

func NewService(cfg Config) (*Service, error) {
	s := &Service{
		cfg:         cfg,
		CommandChan: make(chan domain.InternalCommand, 100),
		Hub:         network.NewBroadcaster(),
		handlers:    make(map[domain.ActionType]handlers.HandlerFunc),
	}

	if err := s.startRound(); err != nil {
		return nil, err
	}
	s.registerHandlers()
	s.storeLatest(BuildResponse(s.sim.Snapshot(), nil))
	return s, nil
}

func (s *Service) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.ActionStop] = handlers.WithEmptyPayload(actions.HandleStop)
	s.handlers[domain.ActionUse] = handlers.WithPayload(actions.HandleUse)
	s.handlers[domain.ActionRestart] = handlers.WithEmptyPayload(actions.HandleRestart)
}

// startRound собирает новую партию с сидом текущего раунда
func (s *Service) startRound() error {
	cfg := s.cfg
	cfg.Seed = utils.DeriveSeed(s.cfg.Seed, s.round)

	sim, err := NewSimulation(cfg, nil,
		WithObserver(s.record),
		WithObserver(LogObserver(fmt.Sprintf("round-%d", s.round))),
	)
	if err != nil {
		return err
	}
	sim.Initialize()

	s.sim = sim
	s.intentX, s.intentY = 0, 0
	s.pending = nil

	logger.Log.WithFields(logrus.Fields{
		"component": "service",
		"round":     s.round,
		"seed":      cfg.Seed,
	}).Info("Round started")
	return nil
}

func (s *Service) record(e domain.Event) {
	s.pending = append(s.pending, e)
}

// Run крутит игровой цикл до отмены контекста
func (s *Service) Run(ctx context.Context) error {
	interval := time.Second / time.Duration(s.cfg.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Log.WithFields(logrus.Fields{
		"component": "service",
		"interval":  interval,
	}).Info("Game loop started")

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			logger.Log.WithField("component", "service").Info("Game loop stopped")
			return nil
		case cmd := <-s.CommandChan:
			s.execute(cmd)
		case now := <-ticker.C:
			s.Step(now.Sub(last))
			last = now
		}
	}
}

// Step выполняет один тик синхронно: ход по удерживаемому направлению,
// продвижение мира, рассылка снимка.
func (s *Service) Step(elapsed time.Duration) {
	if s.intentX != 0 || s.intentY != 0 {
		s.sim.ApplyMovementIntent(s.intentX, s.intentY)
	}
	s.sim.Advance(elapsed)
	s.publish()
}

func (s *Service) publish() {
	resp := BuildResponse(s.sim.Snapshot(), s.pending)
	s.pending = nil
	s.storeLatest(resp)
	s.Hub.Broadcast(resp)
}

// ProcessCommand принимает команду от внешнего мира (WebSocket)
func (s *Service) ProcessCommand(session string, cmd api.ClientCommand) error {
	actionType := domain.ParseAction(cmd.Action)
	if actionType == domain.ActionUnknown {
		return fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}

	s.CommandChan <- domain.InternalCommand{
		Action:  actionType,
		Session: session,
		Payload: cmd.Payload,
	}
	return nil
}

// execute выполняет хендлер в горутине цикла
func (s *Service) execute(cmd domain.InternalCommand) {
	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return
	}

	log := logger.Log.WithFields(logrus.Fields{
		"component": "service",
		"session":   cmd.Session,
		"action":    cmd.Action.String(),
	})

	result, err := handler(handlers.Context{Game: s, Session: cmd.Session}, cmd.Payload)
	if err != nil {
		log.WithError(err).Warn("Command rejected")
		s.Hub.SendTo(cmd.Session, api.ServerResponse{Type: "ERROR", Tick: s.sim.Tick(), Error: err.Error()})
		return
	}

	if result.Msg != "" {
		log.WithField("msg_type", result.MsgType).Debug(result.Msg)
	}
	if result.MsgType == "ERROR" {
		s.Hub.SendTo(cmd.Session, api.ServerResponse{Type: "ERROR", Tick: s.sim.Tick(), Error: result.Msg})
	}
	if result.Resend {
		s.Hub.SendTo(cmd.Session, BuildResponse(s.sim.Snapshot(), nil))
	}
}

// --- handlers.Controller ---

func (s *Service) SetIntent(dx, dy float64) {
	s.intentX, s.intentY = dx, dy
}

func (s *Service) UseItem(index int) (string, error) {
	return s.sim.UseItem(index)
}

// Restart начинает новую партию. Сид - следующий в цепочке от мастер-сида.
func (s *Service) Restart() error {
	s.round++
	if err := s.startRound(); err != nil {
		s.round--
		return err
	}
	s.storeLatest(BuildResponse(s.sim.Snapshot(), nil))
	return nil
}

// --- Чтение из других горутин ---

func (s *Service) storeLatest(resp api.ServerResponse) {
	s.mu.Lock()
	s.latest = resp
	s.mu.Unlock()
}

// Latest возвращает последний разосланный снимок. Безопасен для HTTP-горутин.
func (s *Service) Latest() api.ServerResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// Simulation дает доступ к текущей партии. Только для горутины цикла и тестов.
func (s *Service) Simulation() *Simulation { return s.sim }
