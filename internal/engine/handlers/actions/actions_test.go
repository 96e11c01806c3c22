package actions

import (
	"errors"
	"testing"

	"spacecake-server/internal/engine/handlers"
	"spacecake-server/pkg/api"
)

type fakeGame struct {
	dx, dy   float64
	used     []int
	useErr   error
	restarts int
}

func (f *fakeGame) SetIntent(dx, dy float64) { f.dx, f.dy = dx, dy }

func (f *fakeGame) UseItem(index int) (string, error) {
	if f.useErr != nil {
		return "", f.useErr
	}
	f.used = append(f.used, index)
	return "used", nil
}

func (f *fakeGame) Restart() error {
	f.restarts++
	return nil
}

func TestHandleMoveAndStop(t *testing.T) {
	g := &fakeGame{}
	ctx := handlers.Context{Game: g, Session: "s1"}

	if _, err := HandleMove(ctx, api.DirectionPayload{Dx: 1, Dy: -1}); err != nil {
		t.Fatal(err)
	}
	if g.dx != 1 || g.dy != -1 {
		t.Errorf("Intent not set: (%v,%v)", g.dx, g.dy)
	}

	if _, err := HandleStop(ctx); err != nil {
		t.Fatal(err)
	}
	if g.dx != 0 || g.dy != 0 {
		t.Errorf("Intent not cleared: (%v,%v)", g.dx, g.dy)
	}
}

func TestHandleUse(t *testing.T) {
	g := &fakeGame{}
	ctx := handlers.Context{Game: g}

	res, err := HandleUse(ctx, api.ItemPayload{Index: 2})
	if err != nil || res.MsgType != "INFO" || !res.Resend {
		t.Errorf("Unexpected result %+v, err %v", res, err)
	}
	if len(g.used) != 1 || g.used[0] != 2 {
		t.Errorf("Expected slot 2 used, got %v", g.used)
	}

	// Отказ движка - это не ошибка протокола, а сообщение игроку
	g.useErr = errors.New("item not found")
	res, err = HandleUse(ctx, api.ItemPayload{Index: 9})
	if err != nil {
		t.Errorf("Rejected use should not fail the command: %v", err)
	}
	if res.MsgType != "ERROR" {
		t.Errorf("Expected ERROR message, got %+v", res)
	}
}

func TestHandleInitAndRestart(t *testing.T) {
	g := &fakeGame{}
	ctx := handlers.Context{Game: g}

	res, _ := HandleInit(ctx)
	if !res.Resend {
		t.Error("INIT must request a snapshot")
	}

	if _, err := HandleRestart(ctx); err != nil {
		t.Fatal(err)
	}
	if g.restarts != 1 {
		t.Errorf("Expected 1 restart, got %d", g.restarts)
	}
}
