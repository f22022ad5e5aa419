package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"uma-vasp-backend/config"
	httpHandler "uma-vasp-backend/internal/adapter/http/handler"
	redisStorage "uma-vasp-backend/internal/adapter/storage/redis"
	"uma-vasp-backend/internal/core/domain"
	"uma-vasp-backend/internal/core/ports"
	"uma-vasp-backend/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uma-universal-money-address/uma-go-sdk/uma"
)

const (
	testVaspDomain    = "vasp1.example"
	testWebhookSecret = "ln-webhook-secret"
	testSigningKey    = "1111111111111111111111111111111111111111111111111111111111111111"
	initialBalance    = int64(100_000)
)

// fakeLightning satisfies ports.LightningClient without a node.
type fakeLightning struct{}

func (f *fakeLightning) CreateInvoice(amountMsats int64, metadata string) (*string, error) {
	invoice := fmt.Sprintf("lnbc_fake_%d", amountMsats)
	return &invoice, nil
}

func (f *fakeLightning) DecodeInvoice(ctx context.Context, encodedInvoice string) (*ports.DecodedInvoice, error) {
	return &ports.DecodedInvoice{
		PaymentHash: "hash_" + encodedInvoice,
		ExpiresAt:   time.Now().Add(5 * time.Minute),
	}, nil
}

func (f *fakeLightning) PayInvoice(ctx context.Context, encodedInvoice string, maxFeesMsats int64) (*ports.OutgoingPayment, error) {
	return nil, fmt.Errorf("not supported")
}

func (f *fakeLightning) GetOutgoingPayment(ctx context.Context, paymentID string) (*ports.OutgoingPayment, error) {
	return nil, fmt.Errorf("not supported")
}

func (f *fakeLightning) GetNodePubKey(ctx context.Context) (string, error) {
	return "02abc", nil
}

func (f *fakeLightning) GetChannelUtxos(ctx context.Context) ([]string, error) {
	return []string{"txid:0"}, nil
}

// fixedRateProvider returns constant exchange rates.
type fixedRateProvider struct{}

func (p *fixedRateProvider) Rates(ctx context.Context) (map[string]float64, error) {
	return map[string]float64{"USD": 100_000, "MXN": 1_700_000, "PHP": 5_600_000, "CAD": 135_000}, nil
}

type testServer struct {
	router  http.Handler
	sigSvc  ports.SignatureService
	payReqs *inMemoryPayReqDataRepo
	umas    *inMemoryUmaRepo
}

func setupServer(t *testing.T) *testServer {
	t.Helper()
	log := zerolog.Nop()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	umaCfg := config.UmaConfig{
		VaspDomain:        testVaspDomain,
		VaspName:          "Test VASP",
		SigningPrivKeyHex: testSigningKey,
		Testing:           true,
		InitialBalance:    initialBalance,
	}

	userRepo := newInMemoryUserRepo()
	umaRepo := newInMemoryUmaRepo()
	walletRepo := newInMemoryWalletRepo(umaRepo)
	txRepo := newInMemoryTransactionRepo()
	quoteRepo := newInMemoryQuoteRepo()
	payReqRepo := newInMemoryPayReqDataRepo()
	currencyRepo := newInMemoryUserCurrencyRepo()
	pushRepo := newInMemoryPushSubscriptionRepo()
	credentialRepo := newInMemoryCredentialRepo()
	transactor := newInMemoryTransactor()

	requestCache := redisStorage.NewRequestCache(rdb)
	pubKeyCache := uma.NewInMemoryPublicKeyCache()
	nonceCache := uma.NewInMemoryNonceCache(time.Unix(0, 0))

	lnClient := &fakeLightning{}

	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("integration-test-secret", time.Hour, "uma-vasp")
	complianceSvc := service.NewDemoComplianceService(log)
	currencySvc := service.NewExchangeRateCurrencyService(&fixedRateProvider{}, currencyRepo, walletRepo, log)
	ledgerSvc := service.NewWalletLedgerService(transactor, walletRepo, umaRepo, txRepo, log)
	notifierSvc := service.NewWebPushNotificationService(pushRepo, config.PushConfig{}, log)

	userSvc := service.NewAccountService(
		userRepo, walletRepo, umaRepo, currencyRepo, txRepo, pushRepo,
		hashSvc, tokenSvc, umaCfg, log,
	)
	webauthnSvc, err := service.NewPasskeyService(umaCfg, userRepo, credentialRepo, requestCache, tokenSvc, log)
	require.NoError(t, err)
	sendingSvc := service.NewSendingVasp(
		umaCfg, userRepo, umaRepo, walletRepo, ledgerSvc, currencySvc,
		complianceSvc, lnClient, requestCache, pubKeyCache, nonceCache,
		&http.Client{Timeout: time.Second}, log,
	)
	receivingSvc := service.NewReceivingVasp(
		umaCfg, userRepo, umaRepo, payReqRepo, txRepo, ledgerSvc,
		currencySvc, complianceSvc, lnClient, notifierSvc,
		pubKeyCache, nonceCache, log,
	)
	quoteSvc := service.NewPaymentQuoteService(quoteRepo, sendingSvc, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Cfg:           umaCfg,
		UserSvc:       userSvc,
		WebAuthnSvc:   webauthnSvc,
		SendingSvc:    sendingSvc,
		ReceivingSvc:  receivingSvc,
		QuoteSvc:      quoteSvc,
		TokenSvc:      tokenSvc,
		SigSvc:        sigSvc,
		WebhookSecret: testWebhookSecret,
		Logger:        log,
	})

	return &testServer{
		router:  router,
		sigSvc:  sigSvc,
		payReqs: payReqRepo,
		umas:    umaRepo,
	}
}

func (s *testServer) do(method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) register(t *testing.T, username, password string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	w := s.do(http.MethodPost, "/api/auth/register", body, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		UserID string `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.UserID
}

func (s *testServer) login(t *testing.T, username, password string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	w := s.do(http.MethodPost, "/api/auth/login", body, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func authHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestRegisterLoginAndProfile(t *testing.T) {
	srv := setupServer(t)

	srv.register(t, "alice", "password123")
	token := srv.login(t, "alice", "password123")

	w := srv.do(http.MethodGet, "/api/user", nil, authHeader(token))
	require.Equal(t, http.StatusOK, w.Code)

	var profile struct {
		Uma     string `json:"uma"`
		Balance int64  `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "$alice@"+testVaspDomain, profile.Uma)
	assert.Equal(t, initialBalance, profile.Balance)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	srv := setupServer(t)

	srv.register(t, "alice", "password123")

	body, _ := json.Marshal(map[string]string{"username": "alice", "password": "password456"})
	w := srv.do(http.MethodPost, "/api/auth/register", body, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := setupServer(t)

	srv.register(t, "alice", "password123")

	body, _ := json.Marshal(map[string]string{"username": "alice", "password": "wrong-password"})
	w := srv.do(http.MethodPost, "/api/auth/login", body, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := setupServer(t)

	for _, path := range []string{"/api/user", "/api/user/balance", "/api/user/transactions"} {
		w := srv.do(http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestWellKnownEndpoints(t *testing.T) {
	srv := setupServer(t)

	srv.register(t, "alice", "password123")

	w := srv.do(http.MethodGet, "/.well-known/uma-configuration", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cfg struct {
		Name             string `json:"name"`
		UmaMajorVersions []int  `json:"uma_major_versions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.Equal(t, "Test VASP", cfg.Name)
	assert.Contains(t, cfg.UmaMajorVersions, 1)

	w = srv.do(http.MethodGet, "/.well-known/lnurlpubkey", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = srv.do(http.MethodGet, "/.well-known/lnurlp/alice", nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var lnurlp struct {
		Tag      string `json:"tag"`
		Callback string `json:"callback"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lnurlp))
	assert.Equal(t, "payRequest", lnurlp.Tag)
	assert.Contains(t, lnurlp.Callback, testVaspDomain)

	w = srv.do(http.MethodGet, "/.well-known/lnurlp/nobody", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthz(t *testing.T) {
	srv := setupServer(t)

	w := srv.do(http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func seedIncomingPayment(t *testing.T, srv *testServer, userID string, amount int64) string {
	t.Helper()
	id, err := uuid.Parse(userID)
	require.NoError(t, err)
	umaRecord, err := srv.umas.GetDefaultByUserID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, umaRecord)

	paymentHash := "hash_" + uuid.NewString()
	require.NoError(t, srv.payReqs.Create(context.Background(), &domain.PayReqData{
		ID:                  uuid.New(),
		UserID:              id,
		UmaID:               umaRecord.ID,
		PaymentHash:         paymentHash,
		AmountInLowestDenom: amount,
		CurrencyCode:        "SAT",
		Multiplier:          1000,
		ExpiresAt:           time.Now().Add(5 * time.Minute),
		SenderUma:           "$bob@other.example",
		CreatedAt:           time.Now(),
	}))
	return paymentHash
}

func (s *testServer) postWebhook(t *testing.T, event ports.LnWebhookEvent) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(event)
	require.NoError(t, err)
	signature := s.sigSvc.Sign(testWebhookSecret, string(body))
	return s.do(http.MethodPost, "/api/webhooks/ln", body, map[string]string{
		"X-Webhook-Signature": signature,
	})
}

func TestIncomingPaymentSettlesViaWebhook(t *testing.T) {
	srv := setupServer(t)

	userID := srv.register(t, "alice", "password123")
	token := srv.login(t, "alice", "password123")
	paymentHash := seedIncomingPayment(t, srv, userID, 25_000)

	w := srv.postWebhook(t, ports.LnWebhookEvent{
		EventType:   "PAYMENT_FINISHED",
		PaymentHash: paymentHash,
		Status:      "SUCCESS",
		AmountMsats: 25_000_000,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = srv.do(http.MethodGet, "/api/user/balance", nil, authHeader(token))
	require.Equal(t, http.StatusOK, w.Code)
	var balance struct {
		Balance int64 `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &balance))
	assert.Equal(t, initialBalance+25_000, balance.Balance)

	w = srv.do(http.MethodGet, "/api/user/transactions", nil, authHeader(token))
	require.Equal(t, http.StatusOK, w.Code)
	var txs []struct {
		Amount    int64  `json:"amount"`
		SenderUma string `json:"senderUma"`
		IsCredit  bool   `json:"isCredit"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &txs))
	require.Len(t, txs, 1)
	assert.Equal(t, int64(25_000), txs[0].Amount)
	assert.Equal(t, "$bob@other.example", txs[0].SenderUma)
	assert.True(t, txs[0].IsCredit)
}

func TestWebhook_DuplicateDeliveryIsIdempotent(t *testing.T) {
	srv := setupServer(t)

	userID := srv.register(t, "alice", "password123")
	token := srv.login(t, "alice", "password123")
	paymentHash := seedIncomingPayment(t, srv, userID, 10_000)

	event := ports.LnWebhookEvent{
		EventType:   "PAYMENT_FINISHED",
		PaymentHash: paymentHash,
		Status:      "SUCCESS",
		AmountMsats: 10_000_000,
	}
	require.Equal(t, http.StatusOK, srv.postWebhook(t, event).Code)
	require.Equal(t, http.StatusOK, srv.postWebhook(t, event).Code)

	w := srv.do(http.MethodGet, "/api/user/balance", nil, authHeader(token))
	require.Equal(t, http.StatusOK, w.Code)
	var balance struct {
		Balance int64 `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &balance))
	assert.Equal(t, initialBalance+10_000, balance.Balance)
}

func TestWebhook_RejectsBadSignature(t *testing.T) {
	srv := setupServer(t)

	body, _ := json.Marshal(ports.LnWebhookEvent{
		EventType:   "PAYMENT_FINISHED",
		PaymentHash: "hash_x",
		Status:      "SUCCESS",
	})
	w := srv.do(http.MethodPost, "/api/webhooks/ln", body, map[string]string{
		"X-Webhook-Signature": "deadbeef",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCurrencyPreferences(t *testing.T) {
	srv := setupServer(t)

	srv.register(t, "alice", "password123")
	token := srv.login(t, "alice", "password123")

	body, _ := json.Marshal(map[string][]string{"currencies": {"SAT", "USD"}})
	w := srv.do(http.MethodPut, "/api/user/currencies", body, authHeader(token))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = srv.do(http.MethodGet, "/api/user/currencies", nil, authHeader(token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "USD")
}
