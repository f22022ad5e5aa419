package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"uma-vasp-backend/config"
	"uma-vasp-backend/internal/adapter/http/dto"
	"uma-vasp-backend/internal/adapter/http/middleware"
	"uma-vasp-backend/internal/core/domain"
	"uma-vasp-backend/internal/core/ports"
	"uma-vasp-backend/internal/core/ports/mocks"
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

func testContext(t *testing.T, method, target string, body []byte) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

// --- Auth Handler Tests ---

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserService(ctrl)
	h := NewAuthHandler(mockUsers, nil, "vasp.example")

	userID := uuid.New()
	mockUsers.EXPECT().Register(gomock.Any(), ports.RegisterRequest{
		Username: "alice",
		Password: "password123",
	}).Return(&domain.User{ID: userID, Username: "alice"}, nil)

	body, _ := json.Marshal(dto.RegisterRequest{Username: "alice", Password: "password123"})
	w, c := testContext(t, http.MethodPost, "/api/auth/register", body)

	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID.String(), resp.UserID)
	assert.Equal(t, "$alice@vasp.example", resp.Uma)
}

func TestRegister_BindingError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAuthHandler(mocks.NewMockUserService(ctrl), nil, "vasp.example")

	w, c := testContext(t, http.MethodPost, "/api/auth/register", []byte(`{"username":"a"}`))

	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserService(ctrl)
	h := NewAuthHandler(mockUsers, nil, "vasp.example")

	mockUsers.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrUsernameExists())

	body, _ := json.Marshal(dto.RegisterRequest{Username: "taken", Password: "password123"})
	w, c := testContext(t, http.MethodPost, "/api/auth/register", body)

	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserService(ctrl)
	h := NewAuthHandler(mockUsers, nil, "vasp.example")

	expiry := time.Now().Add(time.Hour)
	mockUsers.EXPECT().Login(gomock.Any(), "alice", "password123").Return("jwt-token", expiry, nil)

	body, _ := json.Marshal(dto.LoginRequest{Username: "alice", Password: "password123"})
	w, c := testContext(t, http.MethodPost, "/api/auth/login", body)

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "jwt-token", resp.Token)
	assert.Equal(t, expiry.Unix(), resp.Expiry)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserService(ctrl)
	h := NewAuthHandler(mockUsers, nil, "vasp.example")

	mockUsers.EXPECT().Login(gomock.Any(), "alice", "wrong").Return("", time.Time{}, apperror.ErrInvalidCredentials())

	body, _ := json.Marshal(dto.LoginRequest{Username: "alice", Password: "wrong"})
	w, c := testContext(t, http.MethodPost, "/api/auth/login", body)

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- User Handler Tests ---

func TestProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserService(ctrl)
	h := NewUserHandler(mockUsers)

	userID := uuid.New()
	mockUsers.EXPECT().Profile(gomock.Any(), userID).Return(&ports.Profile{
		Uma:      "$alice@vasp.example",
		Balance:  100_000,
		Currency: "SAT",
	}, nil)

	w, c := testContext(t, http.MethodGet, "/api/user", nil)
	c.Set(middleware.CtxUserID, userID)

	h.Profile(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ports.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "$alice@vasp.example", resp.Uma)
	assert.Equal(t, int64(100_000), resp.Balance)
}

func TestProfile_NoAuthContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewUserHandler(mocks.NewMockUserService(ctrl))

	w, c := testContext(t, http.MethodGet, "/api/user", nil)

	h.Profile(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTransactions_InvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewUserHandler(mocks.NewMockUserService(ctrl))

	w, c := testContext(t, http.MethodGet, "/api/user/transactions?limit=zero", nil)
	c.Set(middleware.CtxUserID, uuid.New())

	h.Transactions(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransactions_MapsLedgerEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserService(ctrl)
	h := NewUserHandler(mockUsers)

	userID := uuid.New()
	mockUsers.EXPECT().Transactions(gomock.Any(), userID, 5).Return([]domain.Transaction{
		{
			ID:                  uuid.New(),
			AmountInLowestDenom: 2_500,
			CurrencyCode:        "SAT",
			SenderUma:           "$bob@other.example",
			ReceiverUma:         "$alice@vasp.example",
			CreatedAt:           time.Now(),
		},
		{
			ID:                  uuid.New(),
			AmountInLowestDenom: -1_000,
			CurrencyCode:        "SAT",
			SenderUma:           "$alice@vasp.example",
			ReceiverUma:         "$carol@other.example",
			CreatedAt:           time.Now(),
		},
	}, nil)

	w, c := testContext(t, http.MethodGet, "/api/user/transactions?limit=5", nil)
	c.Set(middleware.CtxUserID, userID)

	h.Transactions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var items []dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.True(t, items[0].IsCredit)
	assert.False(t, items[1].IsCredit)
}

func TestSetCurrencies_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserService(ctrl)
	h := NewUserHandler(mockUsers)

	userID := uuid.New()
	mockUsers.EXPECT().SetCurrencies(gomock.Any(), userID, []string{"SAT", "USD"}).Return(nil)

	body, _ := json.Marshal(dto.CurrenciesRequest{Currencies: []string{"SAT", "USD"}})
	w, c := testContext(t, http.MethodPut, "/api/user/currencies", body)
	c.Set(middleware.CtxUserID, userID)

	h.SetCurrencies(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Send Handler Tests ---

func TestLookup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSending := mocks.NewMockSendingVaspService(ctrl)
	h := NewSendHandler(mockSending)

	userID := uuid.New()
	callbackID := uuid.New()
	mockSending.EXPECT().Lookup(gomock.Any(), userID, "$bob@other.example").Return(&ports.LookupResult{
		CallbackUUID:     callbackID,
		MinSendableMsats: 1_000,
		MaxSendableMsats: 10_000_000_000,
	}, nil)

	w, c := testContext(t, http.MethodGet, "/api/umalookup/x", nil)
	c.Set(middleware.CtxUserID, userID)
	c.Params = gin.Params{{Key: "receiver", Value: "$bob@other.example"}}

	h.Lookup(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ports.LookupResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, callbackID, resp.CallbackUUID)
}

func TestPayRequest_InvalidCallbackID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewSendHandler(mocks.NewMockSendingVaspService(ctrl))

	w, c := testContext(t, http.MethodPost, "/api/umapayreq/not-a-uuid", []byte(`{"amount": 100}`))
	c.Set(middleware.CtxUserID, uuid.New())
	c.Params = gin.Params{{Key: "callbackUuid", Value: "not-a-uuid"}}

	h.PayRequest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendPayment_NotFoundPassthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSending := mocks.NewMockSendingVaspService(ctrl)
	h := NewSendHandler(mockSending)

	userID := uuid.New()
	callbackID := uuid.New()
	mockSending.EXPECT().SendPayment(gomock.Any(), userID, callbackID).Return(nil, apperror.ErrNotFound("Payment request"))

	w, c := testContext(t, http.MethodPost, "/api/sendpayment/x", nil)
	c.Set(middleware.CtxUserID, userID)
	c.Params = gin.Params{{Key: "callbackUuid", Value: callbackID.String()}}

	h.SendPayment(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Quote Handler Tests ---

func TestCreateQuote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuotes := mocks.NewMockQuoteService(ctrl)
	h := NewQuoteHandler(mockQuotes)

	userID := uuid.New()
	mockQuotes.EXPECT().CreateQuote(gomock.Any(), userID, ports.QuoteParams{
		SendingCurrencyCode:   "SAT",
		ReceivingCurrencyCode: "MXN",
		LockedCurrencySide:    "receiving",
		Amount:                5_000,
		ReceiverUma:           "$bob@other.example",
	}).Return(&domain.Quote{PaymentHash: "hash123", TotalSendingAmount: 30_000}, nil)

	body, _ := json.Marshal(dto.QuoteRequest{
		SendingCurrencyCode:   "SAT",
		ReceivingCurrencyCode: "MXN",
		LockedCurrencySide:    "receiving",
		Amount:                5_000,
		ReceiverUma:           "$bob@other.example",
	})
	w, c := testContext(t, http.MethodPost, "/api/quotes", body)
	c.Set(middleware.CtxUserID, userID)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var quote domain.Quote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.Equal(t, "hash123", quote.PaymentHash)
}

func TestCreateQuote_RejectsUnknownLockSide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewQuoteHandler(mocks.NewMockQuoteService(ctrl))

	body, _ := json.Marshal(dto.QuoteRequest{
		SendingCurrencyCode:   "SAT",
		ReceivingCurrencyCode: "MXN",
		LockedCurrencySide:    "both",
		Amount:                5_000,
		ReceiverUma:           "$bob@other.example",
	})
	w, c := testContext(t, http.MethodPost, "/api/quotes", body)
	c.Set(middleware.CtxUserID, uuid.New())

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteQuote_ReturnsPreimage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuotes := mocks.NewMockQuoteService(ctrl)
	h := NewQuoteHandler(mockQuotes)

	userID := uuid.New()
	mockQuotes.EXPECT().ExecuteQuote(gomock.Any(), userID, "hash123").Return("preimage123", nil)

	w, c := testContext(t, http.MethodPost, "/api/quotes/hash123/execute", nil)
	c.Set(middleware.CtxUserID, userID)
	c.Params = gin.Params{{Key: "paymentHash", Value: "hash123"}}

	h.Execute(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.ExecuteQuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "preimage123", resp.Preimage)
}

// --- UMA Handler Tests ---

func testUmaHandler(ctrl *gomock.Controller) (*UmaHandler, *mocks.MockReceivingVaspService) {
	receiving := mocks.NewMockReceivingVaspService(ctrl)
	cfg := config.UmaConfig{
		VaspDomain:          "vasp.example",
		VaspName:            "Test VASP",
		SigningPubKeyHex:    "02aa",
		EncryptionPubKeyHex: "02bb",
	}
	return NewUmaHandler(cfg, receiving, zerolog.Nop()), receiving
}

func TestLnurlPubKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := testUmaHandler(ctrl)

	w, c := testContext(t, http.MethodGet, "/.well-known/lnurlpubkey", nil)

	h.LnurlPubKey(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.PubKeyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "02aa", resp.SigningPubKeyHex)
	assert.Equal(t, "02bb", resp.EncryptionPubKeyHex)
}

func TestUmaConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := testUmaHandler(ctrl)

	w, c := testContext(t, http.MethodGet, "/.well-known/uma-configuration", nil)

	h.UmaConfiguration(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.UmaConfigurationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Test VASP", resp.Name)
	assert.Contains(t, resp.UmaMajorVersions, 1)
	assert.Equal(t, "https://vasp.example/.well-known/lnurlp", resp.LnurlpEndpoint)
}

func TestLnurlp_UnsupportedVersionBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, receiving := testUmaHandler(ctrl)
	receiving.EXPECT().HandleLnurlpRequest(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrUnsupportedVersion())

	w, c := testContext(t, http.MethodGet, "/.well-known/lnurlp/alice?umaVersion=99.0", nil)

	h.Lnurlp(c)

	assert.Equal(t, http.StatusPreconditionFailed, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["supportedMajorVersions"], "1")
	assert.Equal(t, "99.0", body["unsupportedVersion"])
}

func TestLnurlp_ForwardsRequestURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, receiving := testUmaHandler(ctrl)
	receiving.EXPECT().HandleLnurlpRequest(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrNotFound("User"))

	w, c := testContext(t, http.MethodGet, "/.well-known/lnurlp/ghost", nil)

	h.Lnurlp(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPayReq_InvalidReceiverID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := testUmaHandler(ctrl)

	w, c := testContext(t, http.MethodPost, "/api/uma/payreq/nope", []byte(`{}`))
	c.Params = gin.Params{{Key: "userID", Value: "nope"}}

	h.PayReq(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLnWebhook_SettlesPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, receiving := testUmaHandler(ctrl)
	receiving.EXPECT().SettleIncomingPayment(gomock.Any(), ports.LnWebhookEvent{
		EventType:   "PAYMENT_FINISHED",
		PaymentHash: "hash123",
		Status:      "SUCCESS",
		AmountMsats: 1_000_000,
	}).Return(nil)

	body, _ := json.Marshal(ports.LnWebhookEvent{
		EventType:   "PAYMENT_FINISHED",
		PaymentHash: "hash123",
		Status:      "SUCCESS",
		AmountMsats: 1_000_000,
	})
	w, c := testContext(t, http.MethodPost, "/api/webhooks/ln", body)

	h.LnWebhook(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
