package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/calenfir/bazaar/internal/domain"
)

// ChampionRepository implements the champion repository for PostgreSQL
type ChampionRepository struct {
	db *pgxpool.Pool
}

// NewChampionRepository creates a new ChampionRepository
func NewChampionRepository(db *pgxpool.Pool) *ChampionRepository {
	return &ChampionRepository{db: db}
}

// GetChampion retrieves a champion by id
func (r *ChampionRepository) GetChampion(ctx context.Context, championID uuid.UUID) (*domain.Champion, error) {
	return getChampion(ctx, r.db, championID, false)
}

// GetBalance retrieves a champion's current money balance
func (r *ChampionRepository) GetBalance(ctx context.Context, championID uuid.UUID) (domain.Money, error) {
	query := `SELECT money::text FROM champions WHERE champion_id = $1`
	var raw string
	if err := r.db.QueryRow(ctx, query, championID).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Money{}, domain.ErrChampionNotFound
		}
		return domain.Money{}, fmt.Errorf(ErrMsgGetChampionFailed, err)
	}
	return scanMoney(raw)
}

// AdjustBalance applies money += delta atomically, never below zero
func (r *ChampionRepository) AdjustBalance(ctx context.Context, championID uuid.UUID, delta domain.Money) (domain.Money, error) {
	return adjustBalance(ctx, r.db, championID, delta)
}

func getChampion(ctx context.Context, q querier, championID uuid.UUID, forUpdate bool) (*domain.Champion, error) {
	query := `
		SELECT champion_id, user_id, name, money::text
		FROM champions
		WHERE champion_id = $1
	`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var champ domain.Champion
	var raw string
	err := q.QueryRow(ctx, query, championID).Scan(&champ.ID, &champ.UserID, &champ.Name, &raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrChampionNotFound
		}
		return nil, fmt.Errorf(ErrMsgGetChampionFailed, mapConcurrencyError(err))
	}
	money, err := scanMoney(raw)
	if err != nil {
		return nil, err
	}
	champ.Money = money
	return &champ, nil
}
