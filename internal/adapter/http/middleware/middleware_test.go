package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"uma-vasp-backend/internal/core/ports"
	"uma-vasp-backend/internal/core/ports/mocks"
	"uma-vasp-backend/internal/service"
	"uma-vasp-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func jwtTestRouter(tokenSvc ports.TokenService) (*gin.Engine, *uuid.UUID) {
	r := gin.New()
	var seen uuid.UUID
	r.GET("/protected", JWTAuth(tokenSvc, zerolog.Nop()), func(c *gin.Context) {
		id, ok := UserID(c)
		if ok {
			seen = id
		}
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestJWTAuth_ValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockTokens := mocks.NewMockTokenService(ctrl)
	mockTokens.EXPECT().Validate("good-token").Return(&ports.TokenClaims{UserID: userID}, nil)

	r, seen := jwtTestRouter(mockTokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, *seen)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, _ := jwtTestRouter(mocks.NewMockTokenService(ctrl))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MalformedScheme(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, _ := jwtTestRouter(mocks.NewMockTokenService(ctrl))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokens := mocks.NewMockTokenService(ctrl)
	mockTokens.EXPECT().Validate("bad-token").Return(nil, apperror.ErrInvalidToken())

	r, _ := jwtTestRouter(mockTokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func webhookTestRouter(secret string) (*gin.Engine, *string) {
	sigSvc := service.NewHMACSignatureService()
	r := gin.New()
	var body string
	r.POST("/hook", WebhookAuth(sigSvc, secret, zerolog.Nop()), func(c *gin.Context) {
		b, _ := c.GetRawData()
		body = string(b)
		c.Status(http.StatusOK)
	})
	return r, &body
}

func TestWebhookAuth_ValidSignature(t *testing.T) {
	const secret = "webhook-secret"
	payload := `{"payment_hash":"abc"}`
	signature := service.NewHMACSignatureService().Sign(secret, payload)

	r, seenBody := webhookTestRouter(secret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/hook", strings.NewReader(payload))
	req.Header.Set(HeaderWebhookSignature, signature)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// Body must be readable again downstream of the middleware.
	assert.Equal(t, payload, *seenBody)
}

func TestWebhookAuth_InvalidSignature(t *testing.T) {
	r, _ := webhookTestRouter("webhook-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/hook", strings.NewReader(`{}`))
	req.Header.Set(HeaderWebhookSignature, "deadbeef")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookAuth_MissingSignature(t *testing.T) {
	r, _ := webhookTestRouter("webhook-secret")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/hook", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMaxBodySize_RejectsOversizedBody(t *testing.T) {
	r := gin.New()
	r.POST("/upload", MaxBodySize(16), func(c *gin.Context) {
		if _, err := c.GetRawData(); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(make([]byte, 64)))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestMaxBodySize_AllowsSmallBody(t *testing.T) {
	r := gin.New()
	r.POST("/upload", MaxBodySize(16), func(c *gin.Context) {
		if _, err := c.GetRawData(); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("ok"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecovery_ReturnsInternalError(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zerolog.Nop()))
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Internal server error")
}
