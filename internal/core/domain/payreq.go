package domain

import (
	"time"

	"github.com/google/uuid"
)

// PayReqData records a pay request response issued to a sending VASP.
// The incoming payment webhook settles against it by payment hash.
type PayReqData struct {
	ID                  uuid.UUID `json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	UmaID               uuid.UUID `json:"uma_id"`
	PaymentHash         string    `json:"payment_hash"`
	AmountInLowestDenom int64     `json:"amount_in_lowest_denom"`
	CurrencyCode        string    `json:"currency_code"`
	ExchangeFeesMsats   int64     `json:"exchange_fees_msats"`
	Multiplier          float64   `json:"multiplier"`
	ExpiresAt           time.Time `json:"expires_at"`
	SenderUma           string    `json:"sender_uma"`
	CreatedAt           time.Time `json:"created_at"`
}

// UserCurrency is a currency a user has opted in to receive.
type UserCurrency struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Code   string    `json:"code"`
}
