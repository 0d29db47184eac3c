package domain

import "github.com/shopspring/decimal"

// Rarity represents the scarcity tier of a stocked item. A slot's unit
// price is derived once, at slot creation, from the item's base price and
// the rarity multiplier; it never changes as quantity moves.
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
)

var rarityMultipliers = map[Rarity]decimal.Decimal{
	RarityCommon:    decimal.NewFromFloat(1.0),
	RarityUncommon:  decimal.NewFromFloat(1.2),
	RarityRare:      decimal.NewFromFloat(1.5),
	RarityEpic:      decimal.NewFromFloat(2.0),
	RarityLegendary: decimal.NewFromFloat(3.0),
}

// Valid reports whether r is a known rarity tier.
func (r Rarity) Valid() bool {
	_, ok := rarityMultipliers[r]
	return ok
}

// Multiplier returns the fixed price multiplier for the rarity tier.
// Unknown tiers fall back to the common multiplier.
func (r Rarity) Multiplier() decimal.Decimal {
	if m, ok := rarityMultipliers[r]; ok {
		return m
	}
	return rarityMultipliers[RarityCommon]
}

// PriceFor derives a slot unit price from a base price, rounded half-up to
// 2 fractional digits.
func (r Rarity) PriceFor(basePrice Money) Money {
	return NewMoney(basePrice.Decimal().Mul(r.Multiplier()).Round(2))
}
