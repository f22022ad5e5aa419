package postgres

import (
	"context"
	"fmt"

	"uma-vasp-backend/internal/core/domain"

	"github.com/google/uuid"
)

// WebAuthnCredentialRepo implements ports.WebAuthnCredentialRepository.
type WebAuthnCredentialRepo struct {
	pool Pool
}

// NewWebAuthnCredentialRepo creates a new WebAuthnCredentialRepo.
func NewWebAuthnCredentialRepo(pool Pool) *WebAuthnCredentialRepo {
	return &WebAuthnCredentialRepo{pool: pool}
}

// Create stores a newly registered passkey.
func (r *WebAuthnCredentialRepo) Create(ctx context.Context, c *domain.WebAuthnCredential) error {
	query := `INSERT INTO webauthn_credentials (id, user_id, credential_id, public_key, sign_count, transports, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.UserID, c.CredentialID, c.PublicKey, c.SignCount, c.Transports, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webauthn credential: %w", err)
	}
	return nil
}

// ListByUserID fetches all passkeys registered by a user.
func (r *WebAuthnCredentialRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.WebAuthnCredential, error) {
	query := `SELECT id, user_id, credential_id, public_key, sign_count, transports, created_at
		FROM webauthn_credentials WHERE user_id = $1`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list webauthn credentials: %w", err)
	}
	defer rows.Close()

	var creds []domain.WebAuthnCredential
	for rows.Next() {
		c := domain.WebAuthnCredential{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.CredentialID, &c.PublicKey, &c.SignCount, &c.Transports, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan webauthn credential: %w", err)
		}
		creds = append(creds, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate webauthn credential rows: %w", err)
	}
	return creds, nil
}

// UpdateSignCount bumps the authenticator counter after a login.
func (r *WebAuthnCredentialRepo) UpdateSignCount(ctx context.Context, credentialID []byte, signCount uint32) error {
	query := `UPDATE webauthn_credentials SET sign_count = $1 WHERE credential_id = $2`

	tag, err := r.pool.Exec(ctx, query, signCount, credentialID)
	if err != nil {
		return fmt.Errorf("update sign count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("webauthn credential not found")
	}
	return nil
}
