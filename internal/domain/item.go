package domain

import "github.com/google/uuid"

// ItemType classifies catalog items; each shop trades exactly one type.
type ItemType string

const (
	ItemTypeSpells  ItemType = "SPELLS"
	ItemTypeArmour  ItemType = "ARMOUR"
	ItemTypeWeapons ItemType = "WEAPONS"
	ItemTypePotions ItemType = "POTIONS"
)

// Valid reports whether t is one of the fixed item types.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeSpells, ItemTypeArmour, ItemTypeWeapons, ItemTypePotions:
		return true
	}
	return false
}

// Item is a catalog definition of a purchasable item kind. Items are
// created by admin action and are read-only at trade time; PriceMin and
// PriceMax bound the base price a stocking event may pick.
type Item struct {
	ID          uuid.UUID `json:"item_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        ItemType  `json:"type"`
	PriceMin    Money     `json:"price_min"`
	PriceMax    Money     `json:"price_max"`
}
