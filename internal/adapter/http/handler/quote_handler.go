package handler

import (
	"uma-vasp-backend/internal/adapter/http/dto"
	"uma-vasp-backend/internal/core/ports"
	"uma-vasp-backend/pkg/apperror"
	"uma-vasp-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// QuoteHandler creates and executes locked-in payment quotes.
type QuoteHandler struct {
	quoteSvc ports.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(quoteSvc ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteSvc: quoteSvc}
}

// Create handles POST /api/quotes.
func (h *QuoteHandler) Create(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	quote, err := h.quoteSvc.CreateQuote(c.Request.Context(), userID, ports.QuoteParams{
		SendingCurrencyCode:   req.SendingCurrencyCode,
		ReceivingCurrencyCode: req.ReceivingCurrencyCode,
		LockedCurrencySide:    req.LockedCurrencySide,
		Amount:                req.Amount,
		ReceiverUma:           req.ReceiverUma,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, quote)
}

// Execute handles POST /api/quotes/:paymentHash/execute.
func (h *QuoteHandler) Execute(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	preimage, err := h.quoteSvc.ExecuteQuote(c.Request.Context(), userID, c.Param("paymentHash"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ExecuteQuoteResponse{Preimage: preimage})
}
