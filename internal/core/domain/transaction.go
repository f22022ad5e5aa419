package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is an immutable ledger entry. Credits carry a positive
// amount, debits a negative one. Exactly one row exists per balance
// mutation.
type Transaction struct {
	ID                  uuid.UUID `json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	UmaID               uuid.UUID `json:"uma_id"`
	TransactionHash     string    `json:"transaction_hash"`
	AmountInLowestDenom int64     `json:"amount_in_lowest_denom"`
	CurrencyCode        string    `json:"currency_code"`
	SenderUma           string    `json:"sender_uma"`
	ReceiverUma         string    `json:"receiver_uma"`
	CreatedAt           time.Time `json:"created_at"`
}

// IsCredit returns true if this entry increased the wallet balance.
func (t *Transaction) IsCredit() bool {
	return t.AmountInLowestDenom > 0
}
