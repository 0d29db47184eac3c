package domain

import "github.com/google/uuid"

// OwnerKind distinguishes the two kinds of inventory owners.
type OwnerKind string

const (
	OwnerKindChampion OwnerKind = "CHAMPION"
	OwnerKindShop     OwnerKind = "SHOP"
)

// Inventory is the per-owner slot collection. Exactly one exists per owner
// and it lives and dies with the owner.
type Inventory struct {
	ID        uuid.UUID `json:"inventory_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	OwnerKind OwnerKind `json:"owner_kind"`
	Capacity  int       `json:"capacity"`
}

// InventorySlot is the unit of stock, identified by (inventory, item,
// rarity). Quantity is never negative; UnitPrice is fixed at slot creation.
type InventorySlot struct {
	InventoryID uuid.UUID `json:"inventory_id"`
	ItemID      uuid.UUID `json:"item_id"`
	Rarity      Rarity    `json:"rarity"`
	Quantity    int       `json:"quantity"`
	UnitPrice   Money     `json:"unit_price"`
}

// InventoryView is the inventory snapshot returned by trade operations.
type InventoryView struct {
	Inventory Inventory       `json:"inventory"`
	Slots     []InventorySlot `json:"slots"`
}

// FindSlot returns the index of the slot holding itemID, or -1.
// Slot lookup is by item id; the rarity rides on the slot itself.
func (v *InventoryView) FindSlot(itemID uuid.UUID) int {
	for i, slot := range v.Slots {
		if slot.ItemID == itemID {
			return i
		}
	}
	return -1
}
