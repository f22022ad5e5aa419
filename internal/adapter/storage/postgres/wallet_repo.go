package postgres

import (
	"context"
	"errors"
	"fmt"

	"uma-vasp-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

const walletColumns = `w.id, w.user_id, w.amount_in_lowest_denom, w.currency_code, w.color, w.device_token, w.created_at, w.updated_at`

// Create inserts a new wallet into the database.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (id, user_id, amount_in_lowest_denom, currency_code, color, device_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.UserID, w.AmountInLowestDenom, w.CurrencyCode,
		w.Color, w.DeviceToken, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByUserID fetches a user's wallet (non-locking read).
func (r *WalletRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets w WHERE w.user_id = $1`
	return r.scanWallet(r.pool.QueryRow(ctx, query, userID))
}

// GetByUmaUsername fetches the wallet bound to an UMA username (non-locking read).
func (r *WalletRepo) GetByUmaUsername(ctx context.Context, username string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets w
		JOIN umas u ON u.wallet_id = w.id WHERE u.username = $1`
	return r.scanWallet(r.pool.QueryRow(ctx, query, username))
}

// GetByUmaUsernameForUpdate fetches the wallet bound to an UMA username with
// pessimistic locking. This MUST be called within a transaction.
func (r *WalletRepo) GetByUmaUsernameForUpdate(ctx context.Context, tx pgx.Tx, username string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets w
		JOIN umas u ON u.wallet_id = w.id WHERE u.username = $1 FOR UPDATE OF w`
	return r.scanWallet(tx.QueryRow(ctx, query, username))
}

// UpdateBalance sets a wallet's balance within a transaction.
func (r *WalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, amountInLowestDenom int64) error {
	query := `UPDATE wallets SET amount_in_lowest_denom = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, amountInLowestDenom, walletID)
	if err != nil {
		return fmt.Errorf("update wallet balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", walletID)
	}
	return nil
}

func (r *WalletRepo) scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(
		&w.ID, &w.UserID, &w.AmountInLowestDenom, &w.CurrencyCode,
		&w.Color, &w.DeviceToken, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan wallet: %w", err)
	}
	return w, nil
}
