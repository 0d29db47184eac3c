package domain

import "github.com/google/uuid"

// TradePurchasedPayload is the typed payload for trade.purchased events.
// Amount carries the committed total as a fixed-point string.
type TradePurchasedPayload struct {
	ShopID     uuid.UUID `json:"shop_id"`
	ChampionID uuid.UUID `json:"champion_id"`
	ItemID     uuid.UUID `json:"item_id"`
	Rarity     Rarity    `json:"rarity"`
	Quantity   int       `json:"quantity"`
	Amount     string    `json:"amount"`
	Timestamp  int64     `json:"timestamp"`
}

// TradeSoldPayload is the typed payload for trade.sold events.
type TradeSoldPayload struct {
	ShopID     uuid.UUID `json:"shop_id"`
	ChampionID uuid.UUID `json:"champion_id"`
	ItemID     uuid.UUID `json:"item_id"`
	Rarity     Rarity    `json:"rarity"`
	Quantity   int       `json:"quantity"`
	Amount     string    `json:"amount"`
	Timestamp  int64     `json:"timestamp"`
}
