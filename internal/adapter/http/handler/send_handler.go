package handler

import (
	"uma-vasp-backend/internal/adapter/http/dto"
	"uma-vasp-backend/internal/core/ports"
	"uma-vasp-backend/pkg/apperror"
	"uma-vasp-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SendHandler drives the three-step outgoing payment flow.
type SendHandler struct {
	sendingSvc ports.SendingVaspService
}

// NewSendHandler creates a new SendHandler.
func NewSendHandler(sendingSvc ports.SendingVaspService) *SendHandler {
	return &SendHandler{sendingSvc: sendingSvc}
}

// Lookup handles GET /api/umalookup/:receiver.
func (h *SendHandler) Lookup(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	result, err := h.sendingSvc.Lookup(c.Request.Context(), userID, c.Param("receiver"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// PayRequest handles POST /api/umapayreq/:callbackUuid.
func (h *SendHandler) PayRequest(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}
	callbackID, err := uuid.Parse(c.Param("callbackUuid"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid callback id"))
		return
	}

	var req dto.PayReqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.sendingSvc.PayRequest(c.Request.Context(), userID, callbackID, ports.PayReqParams{
		Amount:                      req.Amount,
		ReceivingCurrencyCode:       req.ReceivingCurrencyCode,
		IsAmountInReceivingCurrency: req.IsAmountInReceivingCurrency,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// SendPayment handles POST /api/sendpayment/:callbackUuid.
func (h *SendHandler) SendPayment(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}
	callbackID, err := uuid.Parse(c.Param("callbackUuid"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid callback id"))
		return
	}

	result, err := h.sendingSvc.SendPayment(c.Request.Context(), userID, callbackID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
