package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UserCurrencyRepo implements ports.UserCurrencyRepository.
type UserCurrencyRepo struct {
	pool Pool
}

// NewUserCurrencyRepo creates a new UserCurrencyRepo.
func NewUserCurrencyRepo(pool Pool) *UserCurrencyRepo {
	return &UserCurrencyRepo{pool: pool}
}

// ListByUserID returns the codes of the currencies the user receives in.
func (r *UserCurrencyRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query := `SELECT code FROM user_currencies WHERE user_id = $1 ORDER BY code`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list user currencies: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan currency code: %w", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate currency rows: %w", err)
	}
	return codes, nil
}

// Replace swaps the user's currency list for the given codes.
func (r *UserCurrencyRepo) Replace(ctx context.Context, userID uuid.UUID, codes []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin currency replace: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM user_currencies WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear user currencies: %w", err)
	}
	for _, code := range codes {
		_, err := tx.Exec(ctx,
			`INSERT INTO user_currencies (id, user_id, code) VALUES ($1, $2, $3)`,
			uuid.New(), userID, code,
		)
		if err != nil {
			return fmt.Errorf("insert user currency: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit currency replace: %w", err)
	}
	return nil
}
