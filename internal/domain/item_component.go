package domain

// Item - предмет инвентаря.
// Какие поля осмысленны, зависит от Category.
type Item struct {
	ID       uint32       `json:"id"`
	Name     string       `json:"name"`
	Category ItemCategory `json:"category"`
	Value    uint32       `json:"value"` // стоимость

	// Оружие
	Damage uint32 `json:"damage,omitempty"`

	// Броня
	Defense uint32 `json:"defense,omitempty"`

	// Расходники
	HealthRestore uint32 `json:"healthRestore,omitempty"`
	ManaRestore   uint32 `json:"manaRestore,omitempty"`
}

// NewWeapon создает оружие
func NewWeapon(id uint32, name string, value, damage uint32) Item {
	return Item{ID: id, Name: name, Category: ItemCategoryWeapon, Value: value, Damage: damage}
}

// NewArmor создает броню
func NewArmor(id uint32, name string, value, defense uint32) Item {
	return Item{ID: id, Name: name, Category: ItemCategoryArmor, Value: value, Defense: defense}
}

// NewConsumable создает расходник (зелья, еда)
func NewConsumable(id uint32, name string, value, healthRestore, manaRestore uint32) Item {
	return Item{
		ID:            id,
		Name:          name,
		Category:      ItemCategoryConsumable,
		Value:         value,
		HealthRestore: healthRestore,
		ManaRestore:   manaRestore,
	}
}

// Inventory - упорядоченный список предметов фиксированной вместимости
type Inventory struct {
	items    []Item
	capacity int
}

// NewInventory создает пустой инвентарь
func NewInventory(capacity int) *Inventory {
	if capacity < 0 {
		capacity = 0
	}
	return &Inventory{
		items:    make([]Item, 0, capacity),
		capacity: capacity,
	}
}

// Add кладет предмет в конец. При полном инвентаре возвращает false и ничего не меняет.
func (inv *Inventory) Add(item Item) bool {
	if inv == nil || len(inv.items) >= inv.capacity {
		return false
	}
	inv.items = append(inv.items, item)
	return true
}

// Remove вынимает предмет по индексу, сохраняя порядок остальных.
func (inv *Inventory) Remove(index int) (Item, bool) {
	if inv == nil || index < 0 || index >= len(inv.items) {
		return Item{}, false
	}
	item := inv.items[index]
	inv.items = append(inv.items[:index], inv.items[index+1:]...)
	return item, true
}

// At возвращает предмет по индексу без удаления
func (inv *Inventory) At(index int) (Item, bool) {
	if inv == nil || index < 0 || index >= len(inv.items) {
		return Item{}, false
	}
	return inv.items[index], true
}

func (inv *Inventory) Len() int {
	if inv == nil {
		return 0
	}
	return len(inv.items)
}

func (inv *Inventory) Capacity() int {
	if inv == nil {
		return 0
	}
	return inv.capacity
}

// Items возвращает копию содержимого
func (inv *Inventory) Items() []Item {
	if inv == nil {
		return nil
	}
	out := make([]Item, len(inv.items))
	copy(out, inv.items)
	return out
}
