package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stp-signer/config"
	httpHandler "stp-signer/internal/adapter/http/handler"
	"stp-signer/internal/adapter/http/middleware"
	pgStorage "stp-signer/internal/adapter/storage/postgres"
	redisStorage "stp-signer/internal/adapter/storage/redis"
	"stp-signer/internal/adapter/stp"
	"stp-signer/internal/core/domain"
	"stp-signer/internal/core/ports"
	"stp-signer/internal/service"
	"stp-signer/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("STP_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "invalid config: jwt.secret is required")
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("api", cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("empresa", cfg.STP.Empresa).
		Msg("Starting STP signer")

	ctx := context.Background()

	// Load the signing key once; it is read-only afterwards.
	pemBytes, err := os.ReadFile(cfg.STP.PrivateKeyPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.STP.PrivateKeyPath).Msg("Failed to read private key")
	}
	signer, err := service.LoadSigner(pemBytes, cfg.STP.PrivateKeyPassphrase)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load private key")
	}
	log.Info().Int("bits", signer.PublicKey().N.BitLen()).Msg("Private key loaded")

	company := domain.NewCompany(cfg.STP.Empresa, cfg.STP.BankCode, cfg.STP.CuentaOrdenante)

	var (
		keys     ports.TrackingKeyStore
		auditSvc ports.AuditService
		checkers []ports.HealthChecker
		deps     = httpHandler.RouterDeps{Empresa: cfg.STP.Empresa, Logger: log}
	)

	// Initialize PostgreSQL pool (audit trail)
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to prepare audit schema")
		}
		log.Info().Msg("PostgreSQL connected")

		auditRepo := pgStorage.NewAuditRepo(pool)
		auditSvc = service.NewAuditService(auditRepo, log)
		checkers = append(checkers, auditRepo)
	} else {
		log.Warn().Msg("PostgreSQL disabled, signatures will not be audited")
	}

	// Initialize Redis client (tracking keys + rate limiting)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		trackingKeys := redisStorage.NewTrackingKeyStore(rdb)
		keys = trackingKeys
		deps.RateLimitStore = redisStorage.NewRateLimitStore(rdb)
		deps.RateLimits = middleware.RateLimitRules(cfg.RateLimit.Window, cfg.RateLimit.Limits())
		checkers = append(checkers, trackingKeys)
	} else {
		log.Warn().Msg("Redis disabled, claveRastreo reuse and rate limits are not enforced")
	}

	gateway := stp.NewClient(cfg.STP.BaseURL, cfg.STP.Timeout, log)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	instructionSvc := service.NewInstructionService(company, signer, keys, gateway, auditSvc, cfg.Redis.TrackingKeyTTL, log)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		deps.OpenAPISpec = specBytes
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	deps.InstructionSvc = instructionSvc
	deps.TokenSvc = tokenSvc
	deps.HealthCheckers = checkers
	router := httpHandler.SetupRouter(deps)

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Str("stp", cfg.STP.BaseURL).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
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
