package postgres

import (
	"context"
	"errors"
	"fmt"

	"uma-vasp-backend/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PayReqDataRepo implements ports.PayReqDataRepository.
type PayReqDataRepo struct {
	pool Pool
}

// NewPayReqDataRepo creates a new PayReqDataRepo.
func NewPayReqDataRepo(pool Pool) *PayReqDataRepo {
	return &PayReqDataRepo{pool: pool}
}

const payReqColumns = `id, user_id, uma_id, payment_hash, amount_in_lowest_denom, currency_code, exchange_fees_msats, multiplier, expires_at, sender_uma, created_at`

// Create records an issued pay request response.
func (r *PayReqDataRepo) Create(ctx context.Context, d *domain.PayReqData) error {
	query := `INSERT INTO payreq_data (` + payReqColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		d.ID, d.UserID, d.UmaID, d.PaymentHash,
		d.AmountInLowestDenom, d.CurrencyCode, d.ExchangeFeesMsats,
		d.Multiplier, d.ExpiresAt, d.SenderUma, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payreq data: %w", err)
	}
	return nil
}

// GetByPaymentHash fetches an issued pay request response by payment hash.
func (r *PayReqDataRepo) GetByPaymentHash(ctx context.Context, paymentHash string) (*domain.PayReqData, error) {
	query := `SELECT ` + payReqColumns + ` FROM payreq_data WHERE payment_hash = $1`

	d := &domain.PayReqData{}
	err := r.pool.QueryRow(ctx, query, paymentHash).Scan(
		&d.ID, &d.UserID, &d.UmaID, &d.PaymentHash,
		&d.AmountInLowestDenom, &d.CurrencyCode, &d.ExchangeFeesMsats,
		&d.Multiplier, &d.ExpiresAt, &d.SenderUma, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payreq data by payment hash: %w", err)
	}
	return d, nil
}
