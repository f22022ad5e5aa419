package domain

import (
	"time"

	"github.com/google/uuid"
)

// Quote is a locked-in exchange offer for an outgoing payment. It stays
// executable until it expires or settles.
type Quote struct {
	ID                    uuid.UUID  `json:"id"`
	PaymentHash           string     `json:"payment_hash"`
	ExpiresAt             time.Time  `json:"expires_at"`
	Multiplier            float64    `json:"multiplier"`
	SendingCurrencyCode   string     `json:"sending_currency_code"`
	ReceivingCurrencyCode string     `json:"receiving_currency_code"`
	Fees                  int64      `json:"fees"`
	TotalSendingAmount    int64      `json:"total_sending_amount"`
	TotalReceivingAmount  int64      `json:"total_receiving_amount"`
	CallbackUUID          uuid.UUID  `json:"callback_uuid"`
	UserID                uuid.UUID  `json:"user_id"`
	SettledAt             *time.Time `json:"settled_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

// IsExpired reports whether the quote can no longer be executed.
func (q *Quote) IsExpired(now time.Time) bool {
	return now.After(q.ExpiresAt)
}

// IsSettled reports whether the quote has already been paid out.
func (q *Quote) IsSettled() bool {
	return q.SettledAt != nil
}
