package service

import (
	"context"
	"crypto/rand"
	"math/big"
	"regexp"
	"time"

	"uma-vasp-backend/config"
	"uma-vasp-backend/internal/core/domain"
	"uma-vasp-backend/internal/core/ports"
	"uma-vasp-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._+-]{3,64}$`)

const defaultTransactionLimit = 50

// AccountService implements ports.UserService. Registration provisions the
// full demo account: user, funded wallet and default UMA address.
type AccountService struct {
	users          ports.UserRepository
	wallets        ports.WalletRepository
	umas           ports.UmaRepository
	userCurrencies ports.UserCurrencyRepository
	transactions   ports.TransactionRepository
	subscriptions  ports.PushSubscriptionRepository
	hash           ports.HashService
	token          ports.TokenService
	cfg            config.UmaConfig
	log            zerolog.Logger
}

// NewAccountService creates a new account service.
func NewAccountService(
	users ports.UserRepository,
	wallets ports.WalletRepository,
	umas ports.UmaRepository,
	userCurrencies ports.UserCurrencyRepository,
	transactions ports.TransactionRepository,
	subscriptions ports.PushSubscriptionRepository,
	hash ports.HashService,
	token ports.TokenService,
	cfg config.UmaConfig,
	log zerolog.Logger,
) *AccountService {
	return &AccountService{
		users:          users,
		wallets:        wallets,
		umas:           umas,
		userCurrencies: userCurrencies,
		transactions:   transactions,
		subscriptions:  subscriptions,
		hash:           hash,
		token:          token,
		cfg:            cfg,
		log:            log.With().Str("component", "user_service").Logger(),
	}
}

func randomWalletColor() domain.WalletColor {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(domain.WalletColors))))
	if err != nil {
		return domain.WalletColors[0]
	}
	return domain.WalletColors[n.Int64()]
}

// Register creates a user with a funded wallet and a default UMA address.
func (s *AccountService) Register(ctx context.Context, req ports.RegisterRequest) (*domain.User, error) {
	if !usernamePattern.MatchString(req.Username) {
		return nil, apperror.Validation("Username must be 3-64 characters of letters, digits, . _ + -")
	}
	if len(req.Password) < 8 {
		return nil, apperror.Validation("Password must be at least 8 characters")
	}

	existing, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if existing != nil {
		return nil, apperror.ErrUsernameExists()
	}

	passwordHash, err := s.hash.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	webAuthnID := make([]byte, 32)
	if _, err := rand.Read(webAuthnID); err != nil {
		return nil, apperror.InternalError(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		WebAuthnID:   webAuthnID,
		KycStatus:    domain.KycStatusVerified,
		EmailAddress: req.EmailAddress,
		FullName:     req.FullName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	wallet := &domain.Wallet{
		ID:                  uuid.New(),
		UserID:              user.ID,
		AmountInLowestDenom: s.cfg.InitialBalance,
		CurrencyCode:        "SAT",
		Color:               randomWalletColor(),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.wallets.Create(ctx, wallet); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	umaRecord := &domain.Uma{
		ID:        uuid.New(),
		Username:  req.Username,
		Default:   true,
		UserID:    user.ID,
		WalletID:  wallet.ID,
		CreatedAt: now,
	}
	if err := s.umas.Create(ctx, umaRecord); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	s.log.Info().Str("username", user.Username).Str("user_id", user.ID.String()).Msg("registered new user")
	return user, nil
}

// Login verifies credentials and returns a signed JWT.
func (s *AccountService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, apperror.ErrDatabaseError(err)
	}
	if user == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	ok, err := s.hash.Verify(password, user.PasswordHash)
	if err != nil || !ok {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiresAt, err := s.token.Generate(user.ID)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(err)
	}
	return token, expiresAt, nil
}

// Profile returns the user's account view with UMA and balance.
func (s *AccountService) Profile(ctx context.Context, userID uuid.UUID) (*ports.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if user == nil {
		return nil, apperror.ErrNotFound("User")
	}
	umaRecord, err := s.umas.GetDefaultByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if umaRecord == nil {
		return nil, apperror.ErrNotFound("UMA")
	}
	wallet, err := s.wallets.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("Wallet")
	}

	return &ports.Profile{
		User:     user,
		Uma:      umaRecord.Address(s.cfg.VaspDomain),
		Balance:  wallet.AmountInLowestDenom,
		Currency: wallet.CurrencyCode,
		Color:    string(wallet.Color),
	}, nil
}

// Balance returns the wallet balance and its currency code.
func (s *AccountService) Balance(ctx context.Context, userID uuid.UUID) (int64, string, error) {
	wallet, err := s.wallets.GetByUserID(ctx, userID)
	if err != nil {
		return 0, "", apperror.ErrDatabaseError(err)
	}
	if wallet == nil {
		return 0, "", apperror.ErrNotFound("Wallet")
	}
	return wallet.AmountInLowestDenom, wallet.CurrencyCode, nil
}

// Transactions returns the user's ledger history, newest first.
func (s *AccountService) Transactions(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultTransactionLimit
	}
	transactions, err := s.transactions.ListByUserID(ctx, userID, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return transactions, nil
}

// Currencies returns the user's receivable currency codes. Falls back to
// the wallet currency when nothing is configured.
func (s *AccountService) Currencies(ctx context.Context, userID uuid.UUID) ([]string, error) {
	codes, err := s.userCurrencies.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if len(codes) > 0 {
		return codes, nil
	}
	wallet, err := s.wallets.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("Wallet")
	}
	return []string{wallet.CurrencyCode}, nil
}

// SetCurrencies replaces the user's receivable currency list.
func (s *AccountService) SetCurrencies(ctx context.Context, userID uuid.UUID, codes []string) error {
	if len(codes) == 0 {
		return apperror.Validation("At least one currency is required")
	}
	for _, code := range codes {
		if !IsSupportedCurrency(code) {
			return apperror.ErrUnsupportedCurrency(code)
		}
	}
	if err := s.userCurrencies.Replace(ctx, userID, codes); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return nil
}

// RegisterPushSubscription stores a browser push target for the user.
func (s *AccountService) RegisterPushSubscription(ctx context.Context, sub *domain.PushSubscription) error {
	if sub.Endpoint == "" || sub.P256dh == "" || sub.Auth == "" {
		return apperror.Validation("endpoint, p256dh and auth are required")
	}
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}
	if err := s.subscriptions.Create(ctx, sub); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return nil
}
