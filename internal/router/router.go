package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	docs "github.com/ledgerbook/backend/api"
	"github.com/ledgerbook/backend/internal/config"
	"github.com/ledgerbook/backend/internal/controllers/healthz"
	"github.com/ledgerbook/backend/internal/controllers/root"
	v1 "github.com/ledgerbook/backend/internal/controllers/v1"
	"github.com/ledgerbook/backend/internal/controllers/version"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Version is set at build time with -ldflags.
var Version = "0.0.0"

type errorResponse struct {
	Error string `json:"error"`
}

// Config sets up the router and its middlewares.
//
// The returned teardown function must be called when the router is not
// used anymore.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	teardown := func() {
		if !unregisterPrometheusMetrics() {
			log.Error().Msg("Could not unregister prometheus metrics")
		}
	}

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	err := registerPrometheusMetrics()
	if err != nil {
		return nil, teardown, err
	}

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(cfg.URL))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, errorResponse{
			Error: "this HTTP method is not allowed for the endpoint you called",
		})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", cfg.CORSAllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			ExposeHeaders:    []string{"Content-Disposition"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(_, _, _ string, _ int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	err = r.SetTrustedProxies([]string{})
	if err != nil {
		return nil, teardown, fmt.Errorf("could not set trusted proxies: %w", err)
	}

	log.Debug().Str("API Base URL", cfg.URL.String()).Str("Host", cfg.URL.Host).Str("Path", cfg.URL.Path).Msg("Router")
	log.Info().Str("version", Version).Msg("Router")

	docs.SwaggerInfo.Host = cfg.URL.Host
	docs.SwaggerInfo.BasePath = cfg.URL.Path
	docs.SwaggerInfo.Title = "Ledger"
	docs.SwaggerInfo.Version = Version
	docs.SwaggerInfo.Description = "The backend for Ledger, a personal finance tracker for expenses, income and monthly budgets."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// All handlers use now as the current time.
func AttachRoutes(group *gin.RouterGroup, cfg config.Config, now func() time.Time) {
	root.RegisterRoutes(group.Group(""))
	version.RegisterRoutes(group.Group("/version"), Version)
	healthz.RegisterRoutes(group.Group("/healthz"))

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	co := v1.New(models.DB, cfg.Validation, cfg.Money, now)
	co.RegisterRoutes(group.Group("/v1"))
}
