package postgres

import (
	"context"
	"fmt"

	"uma-vasp-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

const transactionColumns = `id, user_id, uma_id, transaction_hash, amount_in_lowest_denom, currency_code, sender_uma, receiver_uma, created_at`

// Create inserts a ledger entry within a database transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.UserID, t.UmaID, t.TransactionHash,
		t.AmountInLowestDenom, t.CurrencyCode,
		t.SenderUma, t.ReceiverUma, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ExistsByHash reports whether a ledger entry with the given transaction
// hash already exists. The incoming payment webhook uses this for
// idempotent settlement.
func (r *TransactionRepo) ExistsByHash(ctx context.Context, transactionHash string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM transactions WHERE transaction_hash = $1)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, transactionHash).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check transaction exists: %w", err)
	}
	return exists, nil
}

// ListByUserID fetches a user's ledger entries, newest first.
func (r *TransactionRepo) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t := domain.Transaction{}
		err := rows.Scan(
			&t.ID, &t.UserID, &t.UmaID, &t.TransactionHash,
			&t.AmountInLowestDenom, &t.CurrencyCode,
			&t.SenderUma, &t.ReceiverUma, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txns, nil
}
