package domain

import "github.com/google/uuid"

// Shop is a non-player trading counterpart. A shop stocks exactly one item
// type and has no balance of its own: selling to a shop never fails for
// lack of shop funds.
type Shop struct {
	ID   uuid.UUID `json:"shop_id"`
	Name string    `json:"name"`
	Type ItemType  `json:"type"`
}

// MayStock reports whether the shop's type restriction allows the item.
// Checked at stocking time and when a sale would add a new shop slot.
func (s *Shop) MayStock(item *Item) bool {
	return s.Type == item.Type
}
