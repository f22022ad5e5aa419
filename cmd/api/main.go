package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"uma-vasp-backend/config"
	httpHandler "uma-vasp-backend/internal/adapter/http/handler"
	"uma-vasp-backend/internal/adapter/lightning"
	"uma-vasp-backend/internal/adapter/rates"
	pgStorage "uma-vasp-backend/internal/adapter/storage/postgres"
	redisStorage "uma-vasp-backend/internal/adapter/storage/redis"
	"uma-vasp-backend/internal/core/ports"
	"uma-vasp-backend/internal/service"
	"uma-vasp-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("vasp_domain", cfg.Uma.VaspDomain).
		Int("port", cfg.Server.Port).
		Msg("Starting UMA VASP backend")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Repositories
	userRepo := pgStorage.NewUserRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	umaRepo := pgStorage.NewUmaRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	quoteRepo := pgStorage.NewQuoteRepo(pool)
	payReqRepo := pgStorage.NewPayReqDataRepo(pool)
	currencyRepo := pgStorage.NewUserCurrencyRepo(pool)
	pushRepo := pgStorage.NewPushSubscriptionRepo(pool)
	credentialRepo := pgStorage.NewWebAuthnCredentialRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Redis-backed caches
	requestCache := redisStorage.NewRequestCache(rdb)
	pubKeyCache := redisStorage.NewPubKeyCache(rdb)
	nonceCache := redisStorage.NewNonceCache(rdb, time.Hour)

	// Outbound clients
	lnClient := lightning.NewClient(cfg.Lightning, log)
	rateProvider := rates.NewCoinbaseClient(log)
	umaHTTPClient := &http.Client{Timeout: 10 * time.Second}

	// Core services
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	complianceSvc := service.NewDemoComplianceService(log)
	currencySvc := service.NewExchangeRateCurrencyService(rateProvider, currencyRepo, walletRepo, log)
	ledgerSvc := service.NewWalletLedgerService(transactor, walletRepo, umaRepo, txRepo, log)
	notifierSvc := service.NewWebPushNotificationService(pushRepo, cfg.Push, log)

	// Business services
	userSvc := service.NewAccountService(
		userRepo, walletRepo, umaRepo, currencyRepo, txRepo, pushRepo,
		hashSvc, tokenSvc, cfg.Uma, log,
	)
	webauthnSvc, err := service.NewPasskeyService(cfg.Uma, userRepo, credentialRepo, requestCache, tokenSvc, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize webauthn service")
	}
	sendingSvc := service.NewSendingVasp(
		cfg.Uma, userRepo, umaRepo, walletRepo, ledgerSvc, currencySvc,
		complianceSvc, lnClient, requestCache, pubKeyCache, nonceCache,
		umaHTTPClient, log,
	)
	receivingSvc := service.NewReceivingVasp(
		cfg.Uma, userRepo, umaRepo, payReqRepo, txRepo, ledgerSvc,
		currencySvc, complianceSvc, lnClient, notifierSvc,
		pubKeyCache, nonceCache, log,
	)
	quoteSvc := service.NewPaymentQuoteService(quoteRepo, sendingSvc, log)

	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Cfg:            cfg.Uma,
		UserSvc:        userSvc,
		WebAuthnSvc:    webauthnSvc,
		SendingSvc:     sendingSvc,
		ReceivingSvc:   receivingSvc,
		QuoteSvc:       quoteSvc,
		TokenSvc:       tokenSvc,
		SigSvc:         sigSvc,
		WebhookSecret:  cfg.Lightning.WebhookSecret,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
