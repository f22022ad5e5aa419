package ports

import (
	"context"
	"time"

	"uma-vasp-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	GetByUmaUsername(ctx context.Context, username string) (*domain.Wallet, error)
	GetByUmaUsernameForUpdate(ctx context.Context, tx pgx.Tx, username string) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, amountInLowestDenom int64) error
}

// UmaRepository defines persistence operations for UMA addresses.
type UmaRepository interface {
	Create(ctx context.Context, uma *domain.Uma) error
	GetByUsername(ctx context.Context, username string) (*domain.Uma, error)
	GetDefaultByUserID(ctx context.Context, userID uuid.UUID) (*domain.Uma, error)
}

// TransactionRepository defines persistence operations for ledger entries.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	ExistsByHash(ctx context.Context, transactionHash string) (bool, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Transaction, error)
}

// QuoteRepository defines persistence operations for quotes.
type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.Quote) error
	GetByPaymentHash(ctx context.Context, paymentHash string) (*domain.Quote, error)
	MarkSettled(ctx context.Context, id uuid.UUID, settledAt time.Time) error
}

// PayReqDataRepository records issued pay request responses so that the
// incoming payment webhook can settle them by payment hash.
type PayReqDataRepository interface {
	Create(ctx context.Context, data *domain.PayReqData) error
	GetByPaymentHash(ctx context.Context, paymentHash string) (*domain.PayReqData, error)
}

// UserCurrencyRepository manages the currencies a user can receive in.
type UserCurrencyRepository interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]string, error)
	Replace(ctx context.Context, userID uuid.UUID, codes []string) error
}

// PushSubscriptionRepository defines persistence for web push targets.
type PushSubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.PushSubscription) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.PushSubscription, error)
}

// WebAuthnCredentialRepository defines persistence for passkeys.
type WebAuthnCredentialRepository interface {
	Create(ctx context.Context, cred *domain.WebAuthnCredential) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.WebAuthnCredential, error)
	UpdateSignCount(ctx context.Context, credentialID []byte, signCount uint32) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
