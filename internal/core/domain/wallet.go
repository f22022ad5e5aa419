package domain

import (
	"time"

	"github.com/google/uuid"
)

// WalletColor is the display color assigned to a wallet.
type WalletColor string

const (
	WalletColorOne   WalletColor = "ONE"
	WalletColorTwo   WalletColor = "TWO"
	WalletColorThree WalletColor = "THREE"
	WalletColorFour  WalletColor = "FOUR"
	WalletColorFive  WalletColor = "FIVE"
	WalletColorSix   WalletColor = "SIX"
	WalletColorSeven WalletColor = "SEVEN"
	WalletColorEight WalletColor = "EIGHT"
	WalletColorNine  WalletColor = "NINE"
	WalletColorTen   WalletColor = "TEN"
)

// WalletColors lists every assignable color, in order.
var WalletColors = []WalletColor{
	WalletColorOne, WalletColorTwo, WalletColorThree, WalletColorFour,
	WalletColorFive, WalletColorSix, WalletColorSeven, WalletColorEight,
	WalletColorNine, WalletColorTen,
}

// Wallet holds a user's balance in the smallest unit of its currency.
type Wallet struct {
	ID                  uuid.UUID   `json:"id"`
	UserID              uuid.UUID   `json:"user_id"`
	AmountInLowestDenom int64       `json:"amount_in_lowest_denom"`
	CurrencyCode        string      `json:"currency_code"`
	Color               WalletColor `json:"color"`
	DeviceToken         *string     `json:"-"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}
