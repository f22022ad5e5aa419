package ports

import (
	"context"
	"net/http"
	"time"

	webauthnprotocol "github.com/go-webauthn/webauthn/protocol"
	"github.com/google/uuid"
)

// WebAuthnService handles passkey registration and login. The finish
// steps consume the raw request because the webauthn library parses the
// attestation/assertion body itself.
type WebAuthnService interface {
	BeginRegistration(ctx context.Context, userID uuid.UUID) (*webauthnprotocol.CredentialCreation, error)
	FinishRegistration(ctx context.Context, userID uuid.UUID, r *http.Request) error
	BeginLogin(ctx context.Context, username string) (*webauthnprotocol.CredentialAssertion, error)
	FinishLogin(ctx context.Context, username string, r *http.Request) (string, time.Time, error)
}
