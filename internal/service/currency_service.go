package service

import (
	"context"
	"math"
	"sync"
	"time"

	"uma-vasp-backend/internal/core/ports"
	"uma-vasp-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/uma-universal-money-address/uma-go-sdk/uma/protocol"
)

const (
	msatsPerBtc  = 1e11
	satsPerBtc   = 1e8
	rateCacheTTL = time.Second
)

type currencyDef struct {
	name        string
	symbol      string
	decimals    int
	minSendable int64
	maxSendable int64
}

// supportedCurrencies is the demo currency set. Min/max are in the
// smallest unit of each currency.
var supportedCurrencies = map[string]currencyDef{
	"SAT": {name: "Satoshis", symbol: "SAT", decimals: 0, minSendable: 1, maxSendable: 100_000_000},
	"USD": {name: "US Dollars", symbol: "$", decimals: 2, minSendable: 1, maxSendable: 1_000_000},
	"MXN": {name: "Mexican Pesos", symbol: "$", decimals: 2, minSendable: 1, maxSendable: 10_000_000},
	"PHP": {name: "Philippine Pesos", symbol: "₱", decimals: 2, minSendable: 1, maxSendable: 10_000_000},
	"CAD": {name: "Canadian Dollars", symbol: "$", decimals: 2, minSendable: 1, maxSendable: 1_000_000},
}

// IsSupportedCurrency reports whether code is in the demo currency set.
func IsSupportedCurrency(code string) bool {
	_, ok := supportedCurrencies[code]
	return ok
}

// ExchangeRateCurrencyService implements ports.CurrencyService on top of a
// rate provider, with a short-lived in-process rate cache.
type ExchangeRateCurrencyService struct {
	provider       ports.RateProvider
	userCurrencies ports.UserCurrencyRepository
	wallets        ports.WalletRepository
	log            zerolog.Logger

	mu        sync.Mutex
	rates     map[string]float64
	fetchedAt time.Time
}

// NewExchangeRateCurrencyService creates a new currency service.
func NewExchangeRateCurrencyService(
	provider ports.RateProvider,
	userCurrencies ports.UserCurrencyRepository,
	wallets ports.WalletRepository,
	log zerolog.Logger,
) *ExchangeRateCurrencyService {
	return &ExchangeRateCurrencyService{
		provider:       provider,
		userCurrencies: userCurrencies,
		wallets:        wallets,
		log:            log.With().Str("component", "currency_service").Logger(),
	}
}

// rate returns how many primary units of code one BTC buys.
func (s *ExchangeRateCurrencyService) rate(ctx context.Context, code string) (float64, error) {
	if _, ok := supportedCurrencies[code]; !ok {
		return 0, apperror.ErrUnsupportedCurrency(code)
	}
	if code == "SAT" {
		return satsPerBtc, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rates == nil || time.Since(s.fetchedAt) > rateCacheTTL {
		rates, err := s.provider.Rates(ctx)
		if err != nil {
			return 0, apperror.Counterparty("Exchange rate provider unavailable", err)
		}
		s.rates = rates
		s.fetchedAt = time.Now()
	}

	r, ok := s.rates[code]
	if !ok || r <= 0 {
		return 0, apperror.ErrUnsupportedCurrency(code)
	}
	return r, nil
}

// MillisatoshiPerUnit returns the msats value of one smallest unit of code.
func (s *ExchangeRateCurrencyService) MillisatoshiPerUnit(ctx context.Context, code string) (float64, error) {
	r, err := s.rate(ctx, code)
	if err != nil {
		return 0, err
	}
	def := supportedCurrencies[code]
	return msatsPerBtc / (r * math.Pow10(def.decimals)), nil
}

// Multiplier returns the conversion rate between primary units.
func (s *ExchangeRateCurrencyService) Multiplier(ctx context.Context, fromCode, toCode string) (float64, error) {
	fromRate, err := s.rate(ctx, fromCode)
	if err != nil {
		return 0, err
	}
	toRate, err := s.rate(ctx, toCode)
	if err != nil {
		return 0, err
	}
	return toRate / fromRate, nil
}

// SmallestUnitMultiplier returns the conversion rate between smallest
// units, corrected for each currency's decimals.
func (s *ExchangeRateCurrencyService) SmallestUnitMultiplier(ctx context.Context, fromCode, toCode string) (float64, error) {
	multiplier, err := s.Multiplier(ctx, fromCode, toCode)
	if err != nil {
		return 0, err
	}
	fromDef := supportedCurrencies[fromCode]
	toDef := supportedCurrencies[toCode]
	return multiplier * math.Pow10(toDef.decimals-fromDef.decimals), nil
}

// Currencies returns the currencies the user can receive, with live rates.
func (s *ExchangeRateCurrencyService) Currencies(ctx context.Context, userID uuid.UUID) ([]protocol.Currency, error) {
	codes, err := s.userCurrencies.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if len(codes) == 0 {
		wallet, err := s.wallets.GetByUserID(ctx, userID)
		if err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}
		if wallet == nil {
			return nil, apperror.ErrNotFound("Wallet")
		}
		codes = []string{wallet.CurrencyCode}
	}

	currencies := make([]protocol.Currency, 0, len(codes))
	for _, code := range codes {
		def, ok := supportedCurrencies[code]
		if !ok {
			s.log.Warn().Str("code", code).Msg("skipping unsupported user currency")
			continue
		}
		msatsPerUnit, err := s.MillisatoshiPerUnit(ctx, code)
		if err != nil {
			return nil, err
		}
		currencies = append(currencies, protocol.Currency{
			Code:                code,
			Name:                def.name,
			Symbol:              def.symbol,
			MillisatoshiPerUnit: msatsPerUnit,
			Convertible: protocol.ConvertibleCurrency{
				MinSendable: def.minSendable,
				MaxSendable: def.maxSendable,
			},
			Decimals:        def.decimals,
			UmaMajorVersion: 1,
		})
	}
	return currencies, nil
}

// exchangeFeesMsats is the receiving-side fee charged per currency.
func exchangeFeesMsats(code string) int64 {
	if code == "SAT" || code == "MXN" {
		return 0
	}
	return 250_000
}
