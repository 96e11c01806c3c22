package engine

import (
	"bytes"
	"strings"
	"testing"

	"spacecake-server/internal/domain"
	"spacecake-server/pkg/logger"
)

func TestSnapshot_IsDeepCopy(t *testing.T) {
	sim, _ := createTestSim(t, testConfig(), domain.Pos(400.0, 300.0),
		[]domain.Enemy{enemyAt(700, 300, 1)}, []domain.Wall{domain.NewWall(100, 100)})
	sim.player.Inventory().Add(domain.NewWeapon(1, "Sword", 10, 5))

	snap := sim.Snapshot()
	snap.Player.Stats.Level = 99
	snap.Player.Inventory[0].Name = "Stick"
	snap.Enemies[0] = domain.Pos(0.0, 0.0)

	again := sim.Snapshot()
	if again.Player.Stats.Level != 1 {
		t.Error("Snapshot stats must not alias live stats")
	}
	if again.Player.Inventory[0].Name != "Sword" {
		t.Error("Snapshot inventory must not alias live inventory")
	}
	if again.Enemies[0] != domain.Pos(700.0, 300.0) {
		t.Error("Snapshot enemies must not alias roster")
	}
	if again.Width != 800 || again.Height != 600 || len(again.Walls) != 1 {
		t.Errorf("Unexpected snapshot %+v", again)
	}
}

func TestBuildResponse(t *testing.T) {
	sim, _ := createTestSim(t, testConfig(), domain.Pos(400.0, 300.0),
		[]domain.Enemy{enemyAt(405, 300, 50)}, []domain.Wall{domain.NewWall(100, 100)})

	events := []domain.Event{
		{Type: domain.EventDamage, Tick: 1, Source: 0, Amount: 10, HealthBefore: 100, HealthAfter: 90},
		{Type: domain.EventRespawn, Tick: 1, Source: -1, To: domain.Pos(5, 6)},
	}
	resp := BuildResponse(sim.Snapshot(), events)

	if resp.Type != "UPDATE" || resp.World.Width != 800 {
		t.Errorf("Bad header: %+v", resp)
	}
	if len(resp.Enemies) != 1 || resp.Enemies[0].Type != domain.EntityTypeEnemy {
		t.Errorf("Bad enemies: %+v", resp.Enemies)
	}
	if len(resp.Walls) != 1 || resp.Walls[0].Pos.X != 100 {
		t.Errorf("Bad walls: %+v", resp.Walls)
	}
	if resp.Player.Stats == nil || resp.Player.Inventory == nil || resp.Player.Inventory.MaxSlots != 10 {
		t.Errorf("Player view incomplete: %+v", resp.Player)
	}
	if len(resp.Events) != 2 || resp.Events[0].Health != 90 || resp.Events[1].To == nil || resp.Events[1].To.X != 5 {
		t.Errorf("Bad events: %+v", resp.Events)
	}
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithOutput(&buf)
	defer logger.Init()

	obs := LogObserver("test")
	obs(domain.Event{Type: domain.EventDamage, Tick: 3, Amount: 10, HealthBefore: 100, HealthAfter: 90})
	obs(domain.Event{Type: domain.EventDeath, Tick: 4})

	out := buf.String()
	if !strings.Contains(out, "Player hit.") || !strings.Contains(out, "Player died.") {
		t.Errorf("Expected damage and death lines, got:\n%s", out)
	}
}
