package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a 400 with the given reason.
func Validation(message string) *AppError {
	return New("VALIDATION_ERROR", message, http.StatusBadRequest)
}

func ErrInvalidUma(uma string) *AppError {
	return New("VALIDATION_ERROR", fmt.Sprintf("Invalid UMA address: %s", uma), http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VALIDATION_ERROR", "Amount must be a positive integer", http.StatusBadRequest)
}

func ErrUnsupportedCurrency(code string) *AppError {
	return New("VALIDATION_ERROR", fmt.Sprintf("Currency %s is not supported", code), http.StatusBadRequest)
}

// ---- Ledger (LEDGER) ----

func ErrInsufficientFunds() *AppError {
	return New("INSUFFICIENT_FUNDS", "Insufficient balance in wallet", http.StatusBadRequest)
}

// ---- Lookup (NOT_FOUND) ----

func ErrNotFound(entity string) *AppError {
	return New("NOT_FOUND", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("UNAUTHORIZED", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("VALIDATION_ERROR", "Username already exists", http.StatusBadRequest)
}

func ErrInvalidToken() *AppError {
	return New("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden(message string) *AppError {
	return New("FORBIDDEN", message, http.StatusForbidden)
}

func ErrInvalidSignature() *AppError {
	return New("UNAUTHORIZED", "Invalid signature", http.StatusUnauthorized)
}

// ---- Quotes (QUOTE) ----

func ErrQuoteExpired() *AppError {
	return New("QUOTE_EXPIRED", "Quote has expired", http.StatusBadRequest)
}

func ErrQuoteSettled() *AppError {
	return New("ALREADY_SETTLED", "Quote has already been settled", http.StatusBadRequest)
}

// ---- Counterparty VASP (UMA) ----

// Counterparty marks a failure talking to the other VASP as a 424.
func Counterparty(message string, err error) *AppError {
	return Wrap("COUNTERPARTY_ERROR", message, http.StatusFailedDependency, err)
}

func ErrUnsupportedVersion() *AppError {
	return New("UNSUPPORTED_VERSION", "Unsupported UMA protocol version", http.StatusPreconditionFailed)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_LIMITED", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("INTERNAL_ERROR", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a 500.
func InternalError(err error) *AppError {
	return Wrap("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError, err)
}
