package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/resumatch/candidate-search/docs"
	"github.com/resumatch/candidate-search/internal/api/handler"
	"github.com/resumatch/candidate-search/internal/api/middleware"
	"github.com/resumatch/candidate-search/internal/core/access"
	"github.com/resumatch/candidate-search/internal/core/ports"
)

// Dependencies are the collaborators the router wires into handlers. Mongo
// and Redis are optional and only feed the readiness probe.
type Dependencies struct {
	Sessions   ports.SessionService
	Candidates ports.CandidateService
	Gate       *access.Gate
	JWTSecret  string
	BodyLimit  string
	Mongo      *mongo.Database
	Redis      *redis.Client
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	httpMetrics := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "resumatch",
		Registerer: httpMetrics,
	}))
	if deps.BodyLimit != "" {
		e.Use(echomiddleware.BodyLimit(deps.BodyLimit))
	}

	gate := deps.Gate
	if gate == nil {
		gate = access.NewGate(access.DefaultRoutes())
	}
	session := middleware.Session(deps.JWTSecret, deps.Sessions)
	guard := func(route string) echo.MiddlewareFunc {
		return middleware.Guard(gate, route)
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Sessions)
	accessHandler := handler.NewAccessHandler(gate)
	candidateHandler := handler.NewCandidateHandler(deps.Candidates)
	searchHandler := handler.NewSearchHandler(deps.Candidates)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, session)
	e.GET("/auth/session", authHandler.Session, session)

	// --- Route guard for the web client ---
	e.GET("/v1/access", accessHandler.Check, session)

	// --- Candidate contract, guarded by the page that uses each call ---
	e.POST("/upload", candidateHandler.Upload, session, guard(access.PathUpload))
	e.GET("/upload/all", candidateHandler.List, session, guard(access.PathSearch))
	e.DELETE("/upload/:id", candidateHandler.Delete, session, guard(access.PathAdmin))
	e.POST("/search", searchHandler.Search, session, guard(access.PathSearch))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, httpMetrics},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger routes echo's request log through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil || v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
