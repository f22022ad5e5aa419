package response

import (
	"errors"
	"net/http"

	"uma-vasp-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire shape for every error. UMA counterparties and
// the demo frontend both expect this exact envelope.
type ErrorResponse struct {
	Reason string `json:"reason"`
	Status string `json:"status"`
}

// OK sends a 200 response with the payload as-is. UMA protocol responses
// must not be wrapped in an envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the payload as-is.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorResponse{
			Reason: appErr.Message,
			Status: "ERROR",
		})
		return
	}

	// Unknown error -> 500
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Reason: "Internal server error",
		Status: "ERROR",
	})
}
