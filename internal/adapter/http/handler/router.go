package handler

import (
	"uma-vasp-backend/config"
	"uma-vasp-backend/internal/adapter/http/middleware"
	redisStore "uma-vasp-backend/internal/adapter/storage/redis"
	"uma-vasp-backend/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Cfg            config.UmaConfig
	UserSvc        ports.UserService
	WebAuthnSvc    ports.WebAuthnService
	SendingSvc     ports.SendingVaspService
	ReceivingSvc   ports.ReceivingVaspService
	QuoteSvc       ports.QuoteService
	TokenSvc       ports.TokenService
	SigSvc         ports.SignatureService
	WebhookSecret  string
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/healthz", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	// --- UMA protocol surface (public, hit by counterparty VASPs) ---
	umaHandler := NewUmaHandler(deps.Cfg, deps.ReceivingSvc, deps.Logger)
	wellKnown := r.Group("/.well-known", rl("uma_public"))
	{
		wellKnown.GET("/lnurlp/:username", umaHandler.Lnurlp)
		wellKnown.GET("/lnurlpubkey", umaHandler.LnurlPubKey)
		wellKnown.GET("/uma-configuration", umaHandler.UmaConfiguration)
	}
	umaAPI := r.Group("/api/uma", rl("uma_public"))
	{
		umaAPI.POST("/payreq/:userID", umaHandler.PayReq)
		umaAPI.GET("/payreq/:userID", umaHandler.PayReq)
		umaAPI.POST("/utxocallback", umaHandler.UtxoCallback)
	}

	// --- Lightning node webhook (HMAC-authenticated) ---
	webhookAuth := middleware.WebhookAuth(deps.SigSvc, deps.WebhookSecret, deps.Logger)
	r.POST("/api/webhooks/ln", webhookAuth, umaHandler.LnWebhook)

	// --- Auth (public) ---
	authHandler := NewAuthHandler(deps.UserSvc, deps.WebAuthnSvc, deps.Cfg.VaspDomain)
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
		auth.POST("/webauthn/login/begin", rl("auth_login"), authHandler.WebAuthnLoginBegin)
		auth.POST("/webauthn/login/finish", rl("auth_login"), authHandler.WebAuthnLoginFinish)
		auth.POST("/webauthn/register/begin", jwtAuth, authHandler.WebAuthnRegisterBegin)
		auth.POST("/webauthn/register/finish", jwtAuth, authHandler.WebAuthnRegisterFinish)
	}

	// --- Outgoing payment flow (JWT-authenticated) ---
	sendHandler := NewSendHandler(deps.SendingSvc)
	send := r.Group("/api", jwtAuth)
	{
		send.GET("/umalookup/:receiver", rl("send"), sendHandler.Lookup)
		send.POST("/umapayreq/:callbackUuid", rl("send"), sendHandler.PayRequest)
		send.POST("/sendpayment/:callbackUuid", rl("send"), sendHandler.SendPayment)
	}

	// --- Quotes (JWT-authenticated) ---
	quoteHandler := NewQuoteHandler(deps.QuoteSvc)
	quotes := r.Group("/api/quotes", jwtAuth)
	{
		quotes.POST("", rl("send"), quoteHandler.Create)
		quotes.POST("/:paymentHash/execute", rl("send"), quoteHandler.Execute)
	}

	// --- User account (JWT-authenticated) ---
	userHandler := NewUserHandler(deps.UserSvc)
	user := r.Group("/api/user", jwtAuth)
	{
		user.GET("", rl("user"), userHandler.Profile)
		user.GET("/balance", rl("user"), userHandler.Balance)
		user.GET("/transactions", rl("user"), userHandler.Transactions)
		user.GET("/currencies", rl("user"), userHandler.Currencies)
		user.PUT("/currencies", rl("user"), userHandler.SetCurrencies)
		user.POST("/push-subscriptions", rl("user"), userHandler.RegisterPushSubscription)
	}

	return r
}
