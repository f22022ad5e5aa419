package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"uma-vasp-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// QuoteRepo implements ports.QuoteRepository.
type QuoteRepo struct {
	pool Pool
}

// NewQuoteRepo creates a new QuoteRepo.
func NewQuoteRepo(pool Pool) *QuoteRepo {
	return &QuoteRepo{pool: pool}
}

const quoteColumns = `id, payment_hash, expires_at, multiplier, sending_currency_code, receiving_currency_code, fees, total_sending_amount, total_receiving_amount, callback_uuid, user_id, settled_at, created_at`

// Create inserts a new quote into the database.
func (r *QuoteRepo) Create(ctx context.Context, q *domain.Quote) error {
	query := `INSERT INTO quotes (` + quoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		q.ID, q.PaymentHash, q.ExpiresAt, q.Multiplier,
		q.SendingCurrencyCode, q.ReceivingCurrencyCode, q.Fees,
		q.TotalSendingAmount, q.TotalReceivingAmount,
		q.CallbackUUID, q.UserID, q.SettledAt, q.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByPaymentHash fetches a quote by its invoice payment hash.
func (r *QuoteRepo) GetByPaymentHash(ctx context.Context, paymentHash string) (*domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE payment_hash = $1`

	q := &domain.Quote{}
	err := r.pool.QueryRow(ctx, query, paymentHash).Scan(
		&q.ID, &q.PaymentHash, &q.ExpiresAt, &q.Multiplier,
		&q.SendingCurrencyCode, &q.ReceivingCurrencyCode, &q.Fees,
		&q.TotalSendingAmount, &q.TotalReceivingAmount,
		&q.CallbackUUID, &q.UserID, &q.SettledAt, &q.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote by payment hash: %w", err)
	}
	return q, nil
}

// MarkSettled records the settlement time of an executed quote.
func (r *QuoteRepo) MarkSettled(ctx context.Context, id uuid.UUID, settledAt time.Time) error {
	query := `UPDATE quotes SET settled_at = $1 WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, settledAt, id)
	if err != nil {
		return fmt.Errorf("mark quote settled: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("quote not found: %s", id)
	}
	return nil
}
