package handler

import (
	"stp-signer/internal/adapter/http/middleware"
	redisStore "stp-signer/internal/adapter/storage/redis"
	"stp-signer/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	InstructionSvc ports.InstructionService
	TokenSvc       ports.TokenService
	Empresa        string                              // tokens issued for another empresa are rejected
	RateLimitStore *redisStore.RateLimitStore          // nil = rate limiting disabled
	RateLimits     map[string]middleware.RateLimitRule // nil = DefaultRateLimitRules
	HealthCheckers []ports.HealthChecker
	OpenAPISpec    []byte // served at /swagger/spec when set
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	docs := NewDocsHandler(deps.OpenAPISpec)
	swagger := r.Group("/swagger")
	{
		swagger.GET("", docs.UI)
		swagger.GET("/spec", docs.Spec)
	}

	rules := deps.RateLimits
	if rules == nil {
		rules = middleware.DefaultRateLimitRules()
	}

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

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Empresa, deps.Logger)
	v1 := r.Group("/api/v1", jwtAuth)

	instructions := NewInstructionHandler(deps.InstructionSvc)
	ordenes := v1.Group("/ordenes")
	{
		ordenes.POST("/firma", rl("firma"), instructions.FirmaOrden)
		ordenes.POST("", rl("submit"), instructions.RegistraOrden)
	}

	cuentas := v1.Group("/cuentas")
	{
		cuentas.POST("/firma", rl("firma"), instructions.FirmaCuenta)
		cuentas.POST("", rl("submit"), instructions.AltaCuenta)
		cuentas.DELETE("", rl("submit"), instructions.BajaCuenta)
	}

	v1.POST("/errores/clasificar", rl("clasificar"), instructions.Clasificar)

	lookups := NewLookupHandler()
	v1.GET("/clabes/:clabe", rl("lookup"), lookups.Clabe)
	v1.GET("/bancos/:code", rl("lookup"), lookups.Banco)

	return r
}
