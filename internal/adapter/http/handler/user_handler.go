package handler

import (
	"strconv"
	"time"

	"uma-vasp-backend/internal/adapter/http/dto"
	"uma-vasp-backend/internal/adapter/http/middleware"
	"uma-vasp-backend/internal/core/domain"
	"uma-vasp-backend/internal/core/ports"
	"uma-vasp-backend/pkg/apperror"
	"uma-vasp-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler serves the authenticated user's account endpoints.
type UserHandler struct {
	userSvc ports.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userSvc ports.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func authedUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	return userID, true
}

// Profile handles GET /api/user.
func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	profile, err := h.userSvc.Profile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, profile)
}

// Balance handles GET /api/user/balance.
func (h *UserHandler) Balance(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	balance, currency, err := h.userSvc.Balance(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{Balance: balance, Currency: currency})
}

// Transactions handles GET /api/user/transactions?limit=N.
func (h *UserHandler) Transactions(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.Error(c, apperror.Validation("limit must be a positive integer"))
			return
		}
		limit = n
	}

	transactions, err := h.userSvc.Transactions(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		items = append(items, dto.TransactionResponse{
			ID:           tx.ID.String(),
			Amount:       tx.AmountInLowestDenom,
			CurrencyCode: tx.CurrencyCode,
			SenderUma:    tx.SenderUma,
			ReceiverUma:  tx.ReceiverUma,
			IsCredit:     tx.IsCredit(),
			CreatedAt:    tx.CreatedAt.Format(time.RFC3339),
		})
	}
	response.OK(c, items)
}

// Currencies handles GET /api/user/currencies.
func (h *UserHandler) Currencies(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	codes, err := h.userSvc.Currencies(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.CurrenciesResponse{Currencies: codes})
}

// SetCurrencies handles PUT /api/user/currencies.
func (h *UserHandler) SetCurrencies(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	var req dto.CurrenciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.userSvc.SetCurrencies(c.Request.Context(), userID, req.Currencies); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.CurrenciesResponse{Currencies: req.Currencies})
}

// RegisterPushSubscription handles POST /api/user/push-subscriptions.
func (h *UserHandler) RegisterPushSubscription(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	var req dto.PushSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	sub := &domain.PushSubscription{
		UserID:   userID,
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
	}
	if err := h.userSvc.RegisterPushSubscription(c.Request.Context(), sub); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"id": sub.ID.String()})
}
