package domain

import (
	"time"

	"github.com/google/uuid"
)

// KycStatus represents the verification state of a user.
type KycStatus string

const (
	KycStatusUnknown     KycStatus = "UNKNOWN"
	KycStatusNotVerified KycStatus = "NOT_VERIFIED"
	KycStatusPending     KycStatus = "PENDING"
	KycStatusVerified    KycStatus = "VERIFIED"
)

// User represents a registered account holder.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose
	GoogleID     *string   `json:"google_id,omitempty"`
	PhoneNumber  *string   `json:"phone_number,omitempty"`
	WebAuthnID   []byte    `json:"-"`
	KycStatus    KycStatus `json:"kyc_status"`
	EmailAddress *string   `json:"email_address,omitempty"`
	FullName     *string   `json:"full_name,omitempty"`
	Avatar       *string   `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// WebAuthnCredential is a registered passkey belonging to a user.
type WebAuthnCredential struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	CredentialID []byte    `json:"credential_id"`
	PublicKey    []byte    `json:"-"`
	SignCount    uint32    `json:"sign_count"`
	Transports   []string  `json:"transports,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// PushSubscription is a web push target registered by a user's browser.
type PushSubscription struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Endpoint  string    `json:"endpoint"`
	P256dh    string    `json:"p256dh"`
	Auth      string    `json:"auth"`
	CreatedAt time.Time `json:"created_at"`
}
