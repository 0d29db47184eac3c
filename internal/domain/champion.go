package domain

import "github.com/google/uuid"

// Champion is a player-owned game character. It holds exactly one inventory
// and one money balance; the balance lives on the champion row but is
// treated as its own consistency domain by the trade engine.
type Champion struct {
	ID     uuid.UUID `json:"champion_id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Money  Money     `json:"money"`
}

// OwnedBy reports whether the champion belongs to the given user.
func (c *Champion) OwnedBy(userID uuid.UUID) bool {
	return c.UserID == userID
}
