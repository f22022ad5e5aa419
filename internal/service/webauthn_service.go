package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"uma-vasp-backend/config"
	"uma-vasp-backend/internal/core/domain"
	"uma-vasp-backend/internal/core/ports"
	"uma-vasp-backend/pkg/apperror"

	webauthnprotocol "github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	umautils "github.com/uma-universal-money-address/uma-go-sdk/uma/utils"
)

const webAuthnSessionTTL = 5 * time.Minute

// webAuthnUser adapts a domain user and their stored credentials to the
// webauthn library's user contract.
type webAuthnUser struct {
	user        *domain.User
	credentials []webauthn.Credential
}

func (u *webAuthnUser) WebAuthnID() []byte   { return u.user.WebAuthnID }
func (u *webAuthnUser) WebAuthnName() string { return u.user.Username }

func (u *webAuthnUser) WebAuthnDisplayName() string {
	if u.user.FullName != nil {
		return *u.user.FullName
	}
	return u.user.Username
}
func (u *webAuthnUser) WebAuthnCredentials() []webauthn.Credential { return u.credentials }

// PasskeyService implements ports.WebAuthnService. Challenge session data
// lives in the request cache between the begin and finish steps.
type PasskeyService struct {
	web         *webauthn.WebAuthn
	users       ports.UserRepository
	credentials ports.WebAuthnCredentialRepository
	cache       ports.RequestCache
	token       ports.TokenService
	log         zerolog.Logger
}

// NewPasskeyService creates a new webauthn service for the VASP domain.
func NewPasskeyService(
	cfg config.UmaConfig,
	users ports.UserRepository,
	credentials ports.WebAuthnCredentialRepository,
	cache ports.RequestCache,
	token ports.TokenService,
	log zerolog.Logger,
) (*PasskeyService, error) {
	rpID := strings.Split(cfg.VaspDomain, ":")[0]
	scheme := "https"
	if umautils.IsDomainLocalhost(cfg.VaspDomain) {
		scheme = "http"
	}
	web, err := webauthn.New(&webauthn.Config{
		RPDisplayName: cfg.VaspName,
		RPID:          rpID,
		RPOrigins:     []string{fmt.Sprintf("%s://%s", scheme, cfg.VaspDomain)},
	})
	if err != nil {
		return nil, fmt.Errorf("configuring webauthn: %w", err)
	}
	return &PasskeyService{
		web:         web,
		users:       users,
		credentials: credentials,
		cache:       cache,
		token:       token,
		log:         log.With().Str("component", "webauthn_service").Logger(),
	}, nil
}

func (s *PasskeyService) loadUser(ctx context.Context, userID uuid.UUID) (*webAuthnUser, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if user == nil {
		return nil, apperror.ErrNotFound("User")
	}
	return s.wrapUser(ctx, user)
}

func (s *PasskeyService) loadUserByName(ctx context.Context, username string) (*webAuthnUser, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials()
	}
	return s.wrapUser(ctx, user)
}

func (s *PasskeyService) wrapUser(ctx context.Context, user *domain.User) (*webAuthnUser, error) {
	stored, err := s.credentials.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	credentials := make([]webauthn.Credential, 0, len(stored))
	for _, c := range stored {
		transports := make([]webauthnprotocol.AuthenticatorTransport, 0, len(c.Transports))
		for _, t := range c.Transports {
			transports = append(transports, webauthnprotocol.AuthenticatorTransport(t))
		}
		credentials = append(credentials, webauthn.Credential{
			ID:        c.CredentialID,
			PublicKey: c.PublicKey,
			Transport: transports,
			Authenticator: webauthn.Authenticator{
				SignCount: c.SignCount,
			},
		})
	}
	return &webAuthnUser{user: user, credentials: credentials}, nil
}

func (s *PasskeyService) saveSession(ctx context.Context, key string, session *webauthn.SessionData) error {
	blob, err := json.Marshal(session)
	if err != nil {
		return apperror.InternalError(err)
	}
	if err := s.cache.SaveSession(ctx, key, blob, webAuthnSessionTTL); err != nil {
		return apperror.InternalError(err)
	}
	return nil
}

func (s *PasskeyService) takeSession(ctx context.Context, key string) (*webauthn.SessionData, error) {
	blob, err := s.cache.GetSession(ctx, key)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if blob == nil {
		return nil, apperror.Validation("No pending webauthn challenge, call the begin endpoint first")
	}
	var session webauthn.SessionData
	if err := json.Unmarshal(blob, &session); err != nil {
		return nil, apperror.InternalError(err)
	}
	if err := s.cache.DeleteSession(ctx, key); err != nil {
		s.log.Warn().Err(err).Msg("failed to delete webauthn session")
	}
	return &session, nil
}

// BeginRegistration starts a passkey enrollment for an authenticated user.
func (s *PasskeyService) BeginRegistration(ctx context.Context, userID uuid.UUID) (*webauthnprotocol.CredentialCreation, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	creation, session, err := s.web.BeginRegistration(user)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if err := s.saveSession(ctx, "webauthn:reg:"+userID.String(), session); err != nil {
		return nil, err
	}
	return creation, nil
}

// FinishRegistration validates the attestation and stores the credential.
func (s *PasskeyService) FinishRegistration(ctx context.Context, userID uuid.UUID, r *http.Request) error {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}
	session, err := s.takeSession(ctx, "webauthn:reg:"+userID.String())
	if err != nil {
		return err
	}
	credential, err := s.web.FinishRegistration(user, *session, r)
	if err != nil {
		return apperror.Validation(fmt.Sprintf("Invalid webauthn attestation: %v", err))
	}

	transports := make([]string, 0, len(credential.Transport))
	for _, t := range credential.Transport {
		transports = append(transports, string(t))
	}
	if err := s.credentials.Create(ctx, &domain.WebAuthnCredential{
		ID:           uuid.New(),
		UserID:       userID,
		CredentialID: credential.ID,
		PublicKey:    credential.PublicKey,
		SignCount:    credential.Authenticator.SignCount,
		Transports:   transports,
		CreatedAt:    time.Now(),
	}); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return nil
}

// BeginLogin starts a passkey login challenge for the named user.
func (s *PasskeyService) BeginLogin(ctx context.Context, username string) (*webauthnprotocol.CredentialAssertion, error) {
	user, err := s.loadUserByName(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(user.credentials) == 0 {
		return nil, apperror.ErrInvalidCredentials()
	}
	assertion, session, err := s.web.BeginLogin(user)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if err := s.saveSession(ctx, "webauthn:login:"+username, session); err != nil {
		return nil, err
	}
	return assertion, nil
}

// FinishLogin validates the assertion and returns a signed JWT.
func (s *PasskeyService) FinishLogin(ctx context.Context, username string, r *http.Request) (string, time.Time, error) {
	user, err := s.loadUserByName(ctx, username)
	if err != nil {
		return "", time.Time{}, err
	}
	session, err := s.takeSession(ctx, "webauthn:login:"+username)
	if err != nil {
		return "", time.Time{}, err
	}
	credential, err := s.web.FinishLogin(user, *session, r)
	if err != nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}
	if err := s.credentials.UpdateSignCount(ctx, credential.ID, credential.Authenticator.SignCount); err != nil {
		s.log.Warn().Err(err).Msg("failed to update credential sign count")
	}

	token, expiresAt, err := s.token.Generate(user.user.ID)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(err)
	}
	return token, expiresAt, nil
}
