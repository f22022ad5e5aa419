package postgres

import (
	"context"
	"errors"
	"fmt"

	"uma-vasp-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UmaRepo implements ports.UmaRepository.
type UmaRepo struct {
	pool Pool
}

// NewUmaRepo creates a new UmaRepo.
func NewUmaRepo(pool Pool) *UmaRepo {
	return &UmaRepo{pool: pool}
}

const umaColumns = `id, username, default_uma, user_id, wallet_id, created_at`

// Create inserts a new UMA address into the database.
func (r *UmaRepo) Create(ctx context.Context, u *domain.Uma) error {
	query := `INSERT INTO umas (` + umaColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Username, u.Default, u.UserID, u.WalletID, u.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert uma: %w", err)
	}
	return nil
}

// GetByUsername fetches an UMA address by its username.
func (r *UmaRepo) GetByUsername(ctx context.Context, username string) (*domain.Uma, error) {
	query := `SELECT ` + umaColumns + ` FROM umas WHERE username = $1`
	return r.scanUma(r.pool.QueryRow(ctx, query, username))
}

// GetDefaultByUserID fetches a user's default UMA address.
func (r *UmaRepo) GetDefaultByUserID(ctx context.Context, userID uuid.UUID) (*domain.Uma, error) {
	query := `SELECT ` + umaColumns + ` FROM umas WHERE user_id = $1 AND default_uma = TRUE`
	return r.scanUma(r.pool.QueryRow(ctx, query, userID))
}

func (r *UmaRepo) scanUma(row pgx.Row) (*domain.Uma, error) {
	u := &domain.Uma{}
	err := row.Scan(&u.ID, &u.Username, &u.Default, &u.UserID, &u.WalletID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan uma: %w", err)
	}
	return u, nil
}
