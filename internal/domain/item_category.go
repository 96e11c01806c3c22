package domain

import "strings"

// ItemCategory - вид предмета
type ItemCategory uint8

const (
	ItemCategoryUnknown    ItemCategory = iota // 0
	ItemCategoryWeapon                         // 1
	ItemCategoryArmor                          // 2
	ItemCategoryConsumable                     // 3
)

var itemCategoryToString = map[ItemCategory]string{
	ItemCategoryWeapon:     "WEAPON",
	ItemCategoryArmor:      "ARMOR",
	ItemCategoryConsumable: "CONSUMABLE",
}

var itemCategoryStringToType = map[string]ItemCategory{
	"WEAPON":     ItemCategoryWeapon,
	"ARMOR":      ItemCategoryArmor,
	"CONSUMABLE": ItemCategoryConsumable,
}

func (c ItemCategory) String() string {
	if val, ok := itemCategoryToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseItemCategory(s string) ItemCategory {
	upper := strings.ToUpper(s)
	if val, ok := itemCategoryStringToType[upper]; ok {
		return val
	}
	return ItemCategoryUnknown
}
