package service

import (
	"context"
	"math"
	"time"

	"uma-vasp-backend/internal/core/domain"
	"uma-vasp-backend/internal/core/ports"
	"uma-vasp-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PaymentQuoteService implements ports.QuoteService. A quote runs the
// lookup and payreq steps up front and locks the resulting invoice in a
// quote row that can be executed until it expires.
type PaymentQuoteService struct {
	quotes      ports.QuoteRepository
	sendingVasp ports.SendingVaspService
	log         zerolog.Logger
}

// NewPaymentQuoteService creates a new quote service.
func NewPaymentQuoteService(
	quotes ports.QuoteRepository,
	sendingVasp ports.SendingVaspService,
	log zerolog.Logger,
) *PaymentQuoteService {
	return &PaymentQuoteService{
		quotes:      quotes,
		sendingVasp: sendingVasp,
		log:         log.With().Str("component", "quote_service").Logger(),
	}
}

// CreateQuote locks in an exchange offer for a payment to receiverUma.
func (s *PaymentQuoteService) CreateQuote(ctx context.Context, userID uuid.UUID, params ports.QuoteParams) (*domain.Quote, error) {
	if params.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if params.LockedCurrencySide != "sending" && params.LockedCurrencySide != "receiving" {
		return nil, apperror.Validation("lockedCurrencySide must be sending or receiving")
	}
	if !IsSupportedCurrency(params.SendingCurrencyCode) {
		return nil, apperror.ErrUnsupportedCurrency(params.SendingCurrencyCode)
	}

	lookup, err := s.sendingVasp.Lookup(ctx, userID, params.ReceiverUma)
	if err != nil {
		return nil, err
	}

	payReq, err := s.sendingVasp.PayRequest(ctx, userID, lookup.CallbackUUID, ports.PayReqParams{
		Amount:                      params.Amount,
		ReceivingCurrencyCode:       params.ReceivingCurrencyCode,
		IsAmountInReceivingCurrency: params.LockedCurrencySide == "receiving",
	})
	if err != nil {
		return nil, err
	}

	quote := &domain.Quote{
		ID:          uuid.New(),
		PaymentHash: payReq.PaymentHash,
		ExpiresAt:   time.Unix(payReq.InvoiceExpiresAt, 0),
		// The invoice multiplier is msats per receiving unit; quotes carry
		// sats per receiving unit.
		Multiplier:            payReq.ConversionRate / 1000,
		SendingCurrencyCode:   params.SendingCurrencyCode,
		ReceivingCurrencyCode: payReq.ReceivingCurrencyCode,
		Fees:                  int64(math.Round(float64(payReq.ExchangeFeesMsats) / 1000)),
		TotalSendingAmount:    int64(math.Round(float64(payReq.AmountMsats+payReq.ExchangeFeesMsats) / 1000)),
		TotalReceivingAmount:  payReq.AmountReceivingCurrency,
		CallbackUUID:          payReq.CallbackUUID,
		UserID:                userID,
		CreatedAt:             time.Now(),
	}
	if err := s.quotes.Create(ctx, quote); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return quote, nil
}

// ExecuteQuote pays the quoted invoice and returns the payment preimage.
func (s *PaymentQuoteService) ExecuteQuote(ctx context.Context, userID uuid.UUID, paymentHash string) (string, error) {
	quote, err := s.quotes.GetByPaymentHash(ctx, paymentHash)
	if err != nil {
		return "", apperror.ErrDatabaseError(err)
	}
	if quote == nil {
		return "", apperror.ErrNotFound("Quote")
	}
	if quote.UserID != userID {
		return "", apperror.ErrForbidden("This quote belongs to another user")
	}
	if quote.IsSettled() {
		return "", apperror.ErrQuoteSettled()
	}
	if quote.IsExpired(time.Now()) {
		return "", apperror.ErrQuoteExpired()
	}

	result, err := s.sendingVasp.SendPayment(ctx, userID, quote.CallbackUUID)
	if err != nil {
		return "", err
	}
	if err := s.quotes.MarkSettled(ctx, quote.ID, result.SettledAt); err != nil {
		return "", apperror.ErrDatabaseError(err)
	}
	return result.Preimage, nil
}
