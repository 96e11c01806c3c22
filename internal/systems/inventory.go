package systems

import (
	"errors"
	"fmt"

	"spacecake-server/internal/domain"
	"spacecake-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

var (
	ErrNoInventory   = errors.New("no inventory")
	ErrItemNotFound  = errors.New("item not found")
	ErrNotConsumable = errors.New("item cannot be used")
	ErrPlayerDead    = errors.New("player is dead")
)

// --- USE (Consumables) ---

// UseItem применяет расходник из слота index и убирает его из инвентаря.
// Оружие и броня не используются; инвентарь в этом случае не меняется.
func UseItem(p *domain.Player, index int) (string, error) {
	if !p.IsAlive() {
		return "", ErrPlayerDead
	}
	inv := p.Inventory()
	if inv == nil {
		return "", ErrNoInventory
	}

	item, ok := inv.At(index)
	if !ok {
		return "", fmt.Errorf("slot %d: %w", index, ErrItemNotFound)
	}
	if item.Category != domain.ItemCategoryConsumable {
		return "", fmt.Errorf("%s (%s): %w", item.Name, item.Category, ErrNotConsumable)
	}

	hpBefore := p.Health()
	p.Heal(int(item.HealthRestore))

	if stats := p.Stats(); stats != nil {
		stats.RestoreHealth(int(item.HealthRestore))
		stats.RestoreMana(int(item.ManaRestore))
	}

	inv.Remove(index)

	logger.Log.WithFields(logrus.Fields{
		"component": "inventory_system",
		"item_id":   item.ID,
		"item_name": item.Name,
		"hp_before": hpBefore,
		"hp_after":  p.Health(),
	}).Info("Consumable used.")

	return fmt.Sprintf("Used %s: +%d HP, +%d MP.", item.Name, item.HealthRestore, item.ManaRestore), nil
}
