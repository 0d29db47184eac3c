package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/calenfir/bazaar/internal/domain"
)

// Champion defines the interface for champion persistence, including the
// money ledger. AdjustBalance must be race-free relative to concurrent
// adjustments on the same champion.
type Champion interface {
	GetChampion(ctx context.Context, championID uuid.UUID) (*domain.Champion, error)
	GetBalance(ctx context.Context, championID uuid.UUID) (domain.Money, error)
	AdjustBalance(ctx context.Context, championID uuid.UUID, delta domain.Money) (domain.Money, error)
}
