package service

import (
	"context"
	"time"

	"uma-vasp-backend/internal/core/domain"
	"uma-vasp-backend/internal/core/ports"
	"uma-vasp-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WalletLedgerService implements ports.LedgerService. Every balance
// mutation locks the wallet row and writes exactly one transaction row in
// the same database transaction.
type WalletLedgerService struct {
	transactor   ports.DBTransactor
	wallets      ports.WalletRepository
	umas         ports.UmaRepository
	transactions ports.TransactionRepository
	log          zerolog.Logger
}

// NewWalletLedgerService creates a new ledger service.
func NewWalletLedgerService(
	transactor ports.DBTransactor,
	wallets ports.WalletRepository,
	umas ports.UmaRepository,
	transactions ports.TransactionRepository,
	log zerolog.Logger,
) *WalletLedgerService {
	return &WalletLedgerService{
		transactor:   transactor,
		wallets:      wallets,
		umas:         umas,
		transactions: transactions,
		log:          log.With().Str("component", "ledger_service").Logger(),
	}
}

// Balance returns the current balance of the wallet behind the given UMA
// username.
func (s *WalletLedgerService) Balance(ctx context.Context, uma string) (int64, error) {
	wallet, err := s.wallets.GetByUmaUsername(ctx, uma)
	if err != nil {
		return 0, apperror.ErrDatabaseError(err)
	}
	if wallet == nil {
		return 0, apperror.ErrNotFound("Wallet")
	}
	return wallet.AmountInLowestDenom, nil
}

// Add credits the wallet and records the transaction.
func (s *WalletLedgerService) Add(ctx context.Context, params ports.LedgerEntryParams) (int64, error) {
	return s.mutate(ctx, params, params.Amount)
}

// Subtract debits the wallet and records the transaction. Fails without
// mutating anything when the balance is insufficient.
func (s *WalletLedgerService) Subtract(ctx context.Context, params ports.LedgerEntryParams) (int64, error) {
	return s.mutate(ctx, params, -params.Amount)
}

func (s *WalletLedgerService) mutate(ctx context.Context, params ports.LedgerEntryParams, delta int64) (int64, error) {
	if params.Amount <= 0 {
		return 0, apperror.ErrInvalidAmount()
	}

	uma, err := s.umas.GetByUsername(ctx, params.Uma)
	if err != nil {
		return 0, apperror.ErrDatabaseError(err)
	}
	if uma == nil {
		return 0, apperror.ErrNotFound("UMA")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.ErrDatabaseError(err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.wallets.GetByUmaUsernameForUpdate(ctx, dbTx, params.Uma)
	if err != nil {
		return 0, apperror.ErrDatabaseError(err)
	}
	if wallet == nil {
		return 0, apperror.ErrNotFound("Wallet")
	}

	newBalance := wallet.AmountInLowestDenom + delta
	if newBalance < 0 {
		return 0, apperror.ErrInsufficientFunds()
	}

	if err := s.wallets.UpdateBalance(ctx, dbTx, wallet.ID, newBalance); err != nil {
		return 0, apperror.ErrDatabaseError(err)
	}

	transaction := &domain.Transaction{
		ID:                  uuid.New(),
		UserID:              wallet.UserID,
		UmaID:               uma.ID,
		TransactionHash:     params.TransactionHash,
		AmountInLowestDenom: delta,
		CurrencyCode:        params.CurrencyCode,
		SenderUma:           params.SenderUma,
		ReceiverUma:         params.ReceiverUma,
		CreatedAt:           time.Now(),
	}
	if err := s.transactions.Create(ctx, dbTx, transaction); err != nil {
		return 0, apperror.ErrDatabaseError(err)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return 0, apperror.ErrDatabaseError(err)
	}

	s.log.Info().
		Str("uma", params.Uma).
		Int64("delta", delta).
		Int64("balance", newBalance).
		Str("transaction_hash", params.TransactionHash).
		Msg("ledger mutation committed")

	return newBalance, nil
}
