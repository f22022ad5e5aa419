package handler

import (
	"uma-vasp-backend/internal/adapter/http/dto"
	"uma-vasp-backend/internal/adapter/http/middleware"
	"uma-vasp-backend/internal/core/ports"
	"uma-vasp-backend/pkg/apperror"
	"uma-vasp-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and passkey endpoints.
type AuthHandler struct {
	userSvc     ports.UserService
	webauthnSvc ports.WebAuthnService
	vaspDomain  string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userSvc ports.UserService, webauthnSvc ports.WebAuthnService, vaspDomain string) *AuthHandler {
	return &AuthHandler{userSvc: userSvc, webauthnSvc: webauthnSvc, vaspDomain: vaspDomain}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	user, err := h.userSvc.Register(c.Request.Context(), ports.RegisterRequest{
		Username:     req.Username,
		Password:     req.Password,
		EmailAddress: req.EmailAddress,
		FullName:     req.FullName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.RegisterResponse{
		UserID: user.ID.String(),
		Uma:    "$" + user.Username + "@" + h.vaspDomain,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	token, expiry, err := h.userSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LoginResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}

// WebAuthnRegisterBegin handles POST /api/auth/webauthn/register/begin.
// Requires an authenticated session: passkeys attach to existing accounts.
func (h *AuthHandler) WebAuthnRegisterBegin(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	creation, err := h.webauthnSvc.BeginRegistration(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, creation)
}

// WebAuthnRegisterFinish handles POST /api/auth/webauthn/register/finish.
func (h *AuthHandler) WebAuthnRegisterFinish(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	if err := h.webauthnSvc.FinishRegistration(c.Request.Context(), userID, c.Request); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "OK"})
}

// WebAuthnLoginBegin handles POST /api/auth/webauthn/login/begin.
func (h *AuthHandler) WebAuthnLoginBegin(c *gin.Context) {
	var req dto.WebAuthnLoginBeginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	assertion, err := h.webauthnSvc.BeginLogin(c.Request.Context(), req.Username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, assertion)
}

// WebAuthnLoginFinish handles POST /api/auth/webauthn/login/finish. The
// username rides in a query param because the body is the raw assertion.
func (h *AuthHandler) WebAuthnLoginFinish(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		response.Error(c, apperror.Validation("username query parameter is required"))
		return
	}

	token, expiry, err := h.webauthnSvc.FinishLogin(c.Request.Context(), username, c.Request)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.LoginResponse{Token: token, Expiry: expiry.Unix()})
}
