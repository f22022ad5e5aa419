package service

import (
	"context"
	"testing"
	"time"

	"uma-vasp-backend/config"
	"uma-vasp-backend/internal/core/domain"
	"uma-vasp-backend/internal/core/ports"
	"uma-vasp-backend/internal/core/ports/mocks"
	"uma-vasp-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type accountTestDeps struct {
	svc            *AccountService
	users          *mocks.MockUserRepository
	wallets        *mocks.MockWalletRepository
	umas           *mocks.MockUmaRepository
	userCurrencies *mocks.MockUserCurrencyRepository
	transactions   *mocks.MockTransactionRepository
	subscriptions  *mocks.MockPushSubscriptionRepository
	hash           *mocks.MockHashService
	token          *mocks.MockTokenService
	ctrl           *gomock.Controller
}

func setupAccountService(t *testing.T) *accountTestDeps {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	wallets := mocks.NewMockWalletRepository(ctrl)
	umas := mocks.NewMockUmaRepository(ctrl)
	userCurrencies := mocks.NewMockUserCurrencyRepository(ctrl)
	transactions := mocks.NewMockTransactionRepository(ctrl)
	subscriptions := mocks.NewMockPushSubscriptionRepository(ctrl)
	hash := mocks.NewMockHashService(ctrl)
	token := mocks.NewMockTokenService(ctrl)

	cfg := config.UmaConfig{VaspDomain: "vasp.example", InitialBalance: 100_000}
	svc := NewAccountService(users, wallets, umas, userCurrencies, transactions, subscriptions, hash, token, cfg, zerolog.Nop())

	return &accountTestDeps{
		svc:            svc,
		users:          users,
		wallets:        wallets,
		umas:           umas,
		userCurrencies: userCurrencies,
		transactions:   transactions,
		subscriptions:  subscriptions,
		hash:           hash,
		token:          token,
		ctrl:           ctrl,
	}
}

func TestRegister_ProvisionsUserWalletAndUma(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	d.users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
	d.hash.EXPECT().Hash("supersecret").Return("argon2hash", nil)
	d.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *domain.User) error {
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "argon2hash", user.PasswordHash)
			assert.Equal(t, domain.KycStatusVerified, user.KycStatus)
			assert.Len(t, user.WebAuthnID, 32)
			return nil
		})
	d.wallets.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, wallet *domain.Wallet) error {
			assert.Equal(t, int64(100_000), wallet.AmountInLowestDenom)
			assert.Equal(t, "SAT", wallet.CurrencyCode)
			assert.Contains(t, domain.WalletColors, wallet.Color)
			return nil
		})
	d.umas.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, uma *domain.Uma) error {
			assert.Equal(t, "alice", uma.Username)
			assert.True(t, uma.Default)
			return nil
		})

	user, err := d.svc.Register(context.Background(), ports.RegisterRequest{Username: "alice", Password: "supersecret"})

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestRegister_ValidatesInput(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	tests := []struct {
		name string
		req  ports.RegisterRequest
	}{
		{"short username", ports.RegisterRequest{Username: "ab", Password: "supersecret"}},
		{"invalid characters", ports.RegisterRequest{Username: "alice!", Password: "supersecret"}},
		{"short password", ports.RegisterRequest{Username: "alice", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.svc.Register(context.Background(), tt.req)
			require.Error(t, err)
			appErr, ok := err.(*apperror.AppError)
			require.True(t, ok)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	d.users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&domain.User{ID: uuid.New(), Username: "alice"}, nil)

	_, err := d.svc.Register(context.Background(), ports.RegisterRequest{Username: "alice", Password: "supersecret"})

	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Contains(t, appErr.Message, "already exists")
}

func TestLogin_ReturnsToken(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	userID := uuid.New()
	expiresAt := time.Now().Add(time.Hour)
	d.users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&domain.User{ID: userID, Username: "alice", PasswordHash: "argon2hash"}, nil)
	d.hash.EXPECT().Verify("supersecret", "argon2hash").Return(true, nil)
	d.token.EXPECT().Generate(userID).Return("jwt-token", expiresAt, nil)

	token, tokenExpiry, err := d.svc.Login(context.Background(), "alice", "supersecret")

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, expiresAt, tokenExpiry)
}

func TestLogin_WrongPassword(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	d.users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&domain.User{ID: uuid.New(), PasswordHash: "argon2hash"}, nil)
	d.hash.EXPECT().Verify("wrong", "argon2hash").Return(false, nil)

	_, _, err := d.svc.Login(context.Background(), "alice", "wrong")

	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	d.users.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

	_, _, err := d.svc.Login(context.Background(), "ghost", "whatever")

	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

func TestProfile(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	userID := uuid.New()
	wallet := testWallet(userID, "SAT", 42_000)
	d.users.EXPECT().GetByID(gomock.Any(), userID).Return(&domain.User{ID: userID, Username: "alice"}, nil)
	d.umas.EXPECT().GetDefaultByUserID(gomock.Any(), userID).Return(testUma("alice", userID, wallet.ID), nil)
	d.wallets.EXPECT().GetByUserID(gomock.Any(), userID).Return(wallet, nil)

	profile, err := d.svc.Profile(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, "$alice@vasp.example", profile.Uma)
	assert.Equal(t, int64(42_000), profile.Balance)
	assert.Equal(t, "SAT", profile.Currency)
}

func TestTransactions_DefaultLimit(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	userID := uuid.New()
	d.transactions.EXPECT().ListByUserID(gomock.Any(), userID, 50).Return([]domain.Transaction{}, nil)

	_, err := d.svc.Transactions(context.Background(), userID, 0)

	require.NoError(t, err)
}

func TestSetCurrencies(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	userID := uuid.New()
	d.userCurrencies.EXPECT().Replace(gomock.Any(), userID, []string{"SAT", "USD"}).Return(nil)

	require.NoError(t, d.svc.SetCurrencies(context.Background(), userID, []string{"SAT", "USD"}))
}

func TestSetCurrencies_RejectsUnsupported(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	err := d.svc.SetCurrencies(context.Background(), uuid.New(), []string{"SAT", "EUR"})

	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestRegisterPushSubscription_FillsDefaults(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	userID := uuid.New()
	d.subscriptions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sub *domain.PushSubscription) error {
			assert.NotEqual(t, uuid.Nil, sub.ID)
			assert.False(t, sub.CreatedAt.IsZero())
			return nil
		})

	err := d.svc.RegisterPushSubscription(context.Background(), &domain.PushSubscription{
		UserID:   userID,
		Endpoint: "https://push.example/sub",
		P256dh:   "p256dh-key",
		Auth:     "auth-secret",
	})

	require.NoError(t, err)
}

func TestRegisterPushSubscription_RequiresKeys(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	err := d.svc.RegisterPushSubscription(context.Background(), &domain.PushSubscription{Endpoint: "https://push.example/sub"})

	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}
