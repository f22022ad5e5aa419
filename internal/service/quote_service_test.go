package service

import (
	"context"
	"testing"
	"time"

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

type quoteTestDeps struct {
	svc         *PaymentQuoteService
	quotes      *mocks.MockQuoteRepository
	sendingVasp *mocks.MockSendingVaspService
	ctrl        *gomock.Controller
}

func setupQuoteService(t *testing.T) *quoteTestDeps {
	ctrl := gomock.NewController(t)
	quotes := mocks.NewMockQuoteRepository(ctrl)
	sendingVasp := mocks.NewMockSendingVaspService(ctrl)

	svc := NewPaymentQuoteService(quotes, sendingVasp, zerolog.Nop())

	return &quoteTestDeps{
		svc:         svc,
		quotes:      quotes,
		sendingVasp: sendingVasp,
		ctrl:        ctrl,
	}
}

func TestCreateQuote_LocksInvoiceTerms(t *testing.T) {
	d := setupQuoteService(t)
	defer d.ctrl.Finish()

	userID := uuid.New()
	callbackID := uuid.New()
	payReqCallbackID := uuid.New()
	expiresAt := time.Now().Add(10 * time.Minute).Unix()

	d.sendingVasp.EXPECT().Lookup(gomock.Any(), userID, "$bob@other.example").
		Return(&ports.LookupResult{CallbackUUID: callbackID}, nil)
	d.sendingVasp.EXPECT().PayRequest(gomock.Any(), userID, callbackID, ports.PayReqParams{
		Amount:                      50_000,
		ReceivingCurrencyCode:       "MXN",
		IsAmountInReceivingCurrency: true,
	}).Return(&ports.PayReqResult{
		CallbackUUID:            payReqCallbackID,
		AmountMsats:             30_000_000,
		ReceivingCurrencyCode:   "MXN",
		AmountReceivingCurrency: 50_000,
		ConversionRate:          600,
		ExchangeFeesMsats:       0,
		PaymentHash:             "hash789",
		InvoiceExpiresAt:        expiresAt,
	}, nil)
	d.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	quote, err := d.svc.CreateQuote(context.Background(), userID, ports.QuoteParams{
		SendingCurrencyCode:   "SAT",
		ReceivingCurrencyCode: "MXN",
		LockedCurrencySide:    "receiving",
		Amount:                50_000,
		ReceiverUma:           "$bob@other.example",
	})

	require.NoError(t, err)
	assert.Equal(t, "hash789", quote.PaymentHash)
	assert.InDelta(t, 0.6, quote.Multiplier, 1e-9)
	assert.Equal(t, int64(0), quote.Fees)
	assert.Equal(t, int64(30_000), quote.TotalSendingAmount)
	assert.Equal(t, int64(50_000), quote.TotalReceivingAmount)
	assert.Equal(t, payReqCallbackID, quote.CallbackUUID)
	assert.Equal(t, userID, quote.UserID)
	assert.Equal(t, expiresAt, quote.ExpiresAt.Unix())
}

func TestCreateQuote_RejectsBadParams(t *testing.T) {
	d := setupQuoteService(t)
	defer d.ctrl.Finish()

	tests := []struct {
		name   string
		params ports.QuoteParams
	}{
		{"zero amount", ports.QuoteParams{SendingCurrencyCode: "SAT", LockedCurrencySide: "sending", Amount: 0}},
		{"bad locked side", ports.QuoteParams{SendingCurrencyCode: "SAT", LockedCurrencySide: "both", Amount: 100}},
		{"unsupported sending currency", ports.QuoteParams{SendingCurrencyCode: "EUR", LockedCurrencySide: "sending", Amount: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.svc.CreateQuote(context.Background(), uuid.New(), tt.params)
			require.Error(t, err)
			appErr, ok := err.(*apperror.AppError)
			require.True(t, ok)
			assert.Equal(t, 400, appErr.HTTPStatus)
		})
	}
}

func TestExecuteQuote_PaysAndSettles(t *testing.T) {
	d := setupQuoteService(t)
	defer d.ctrl.Finish()

	userID := uuid.New()
	settledAt := time.Now()
	quote := &domain.Quote{
		ID:           uuid.New(),
		PaymentHash:  "hash789",
		ExpiresAt:    time.Now().Add(time.Minute),
		CallbackUUID: uuid.New(),
		UserID:       userID,
	}

	d.quotes.EXPECT().GetByPaymentHash(gomock.Any(), "hash789").Return(quote, nil)
	d.sendingVasp.EXPECT().SendPayment(gomock.Any(), userID, quote.CallbackUUID).
		Return(&ports.SendPaymentResult{Status: "SUCCESS", SettledAt: settledAt, Preimage: "preimage01"}, nil)
	d.quotes.EXPECT().MarkSettled(gomock.Any(), quote.ID, settledAt).Return(nil)

	preimage, err := d.svc.ExecuteQuote(context.Background(), userID, "hash789")

	require.NoError(t, err)
	assert.Equal(t, "preimage01", preimage)
}

func TestExecuteQuote_UnknownHash(t *testing.T) {
	d := setupQuoteService(t)
	defer d.ctrl.Finish()

	d.quotes.EXPECT().GetByPaymentHash(gomock.Any(), "nope").Return(nil, nil)

	_, err := d.svc.ExecuteQuote(context.Background(), uuid.New(), "nope")

	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestExecuteQuote_ForeignQuote(t *testing.T) {
	d := setupQuoteService(t)
	defer d.ctrl.Finish()

	quote := &domain.Quote{
		ID:          uuid.New(),
		PaymentHash: "hash789",
		ExpiresAt:   time.Now().Add(time.Minute),
		UserID:      uuid.New(),
	}
	d.quotes.EXPECT().GetByPaymentHash(gomock.Any(), "hash789").Return(quote, nil)

	_, err := d.svc.ExecuteQuote(context.Background(), uuid.New(), "hash789")

	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
	assert.Equal(t, 403, appErr.HTTPStatus)
}

func TestExecuteQuote_Expired(t *testing.T) {
	d := setupQuoteService(t)
	defer d.ctrl.Finish()

	userID := uuid.New()
	quote := &domain.Quote{
		ID:          uuid.New(),
		PaymentHash: "hash789",
		ExpiresAt:   time.Now().Add(-time.Minute),
		UserID:      userID,
	}
	d.quotes.EXPECT().GetByPaymentHash(gomock.Any(), "hash789").Return(quote, nil)

	_, err := d.svc.ExecuteQuote(context.Background(), userID, "hash789")

	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "QUOTE_EXPIRED", appErr.Code)
}

func TestExecuteQuote_AlreadySettled(t *testing.T) {
	d := setupQuoteService(t)
	defer d.ctrl.Finish()

	userID := uuid.New()
	settledAt := time.Now().Add(-time.Hour)
	// A settled quote reports ALREADY_SETTLED even after its expiry.
	quote := &domain.Quote{
		ID:          uuid.New(),
		PaymentHash: "hash789",
		ExpiresAt:   time.Now().Add(-time.Minute),
		UserID:      userID,
		SettledAt:   &settledAt,
	}
	d.quotes.EXPECT().GetByPaymentHash(gomock.Any(), "hash789").Return(quote, nil)

	_, err := d.svc.ExecuteQuote(context.Background(), userID, "hash789")

	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "ALREADY_SETTLED", appErr.Code)
}
