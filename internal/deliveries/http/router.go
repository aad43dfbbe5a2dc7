package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/sellerdesk/go-fin-ledger/internal/common/ctxdata"
	"github.com/sellerdesk/go-fin-ledger/internal/common/graceful"
	commonhttp "github.com/sellerdesk/go-fin-ledger/internal/common/http"
	"github.com/sellerdesk/go-fin-ledger/internal/common/http/middleware"
	"github.com/sellerdesk/go-fin-ledger/internal/common/metrics"
	"github.com/sellerdesk/go-fin-ledger/internal/common/xlog"
	"github.com/sellerdesk/go-fin-ledger/internal/config"
	"github.com/sellerdesk/go-fin-ledger/internal/deliveries/http/health"
	"github.com/sellerdesk/go-fin-ledger/internal/repositories"
	"github.com/sellerdesk/go-fin-ledger/internal/services"

	v1ofx "github.com/sellerdesk/go-fin-ledger/internal/deliveries/http/v1/ofx"
	v1ofxImports "github.com/sellerdesk/go-fin-ledger/internal/deliveries/http/v1/ofx_imports"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			xlog.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			xlog.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

// Handler exposes the router, mostly for tests.
func (s *svc) Handler() nethttp.Handler {
	return s.e
}

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	NewRelic       *newrelic.Application
	CacheRepo      repositories.CacheRepository
	OfxService     services.OfxService
	HistoryService services.OfxImportHistoryService
	Metrics        metrics.Metrics
	// Readiness lists what /api/health/ready pings.
	Readiness map[string]health.Pinger
}

// @title GO FIN LEDGER API DOCUMENTATION
// @version 1.0
// @description Bank statement import and reconciliation for the seller ledger.

// @host localhost:9567
// @BasePath /api
// @schemes http
func NewHTTPServer(ctx context.Context, conf config.Config, deps Deps) *svc {
	app := echo.New()
	app.HideBanner = true

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf, deps.CacheRepo)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context(conf.GcloudProjectID))
	app.Use(m.Logger())

	if conf.OfxImport.MaxFileSize > 0 {
		// JSON escaping can grow the payload, leave room over the raw file limit
		app.Use(echomiddleware.BodyLimit(fmt.Sprintf("%dB", conf.OfxImport.MaxFileSize*2)))
	}

	if deps.NewRelic != nil {
		app.Use(nrecho.Middleware(deps.NewRelic))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute("x-correlation-id", ctxdata.GetCorrelationId(c.Request().Context()))
					txn.AddAttribute("x-tenant-id", ctxdata.GetTenantID(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// pprof
	// Endpoint debug/pprof/
	if !conf.Environment().IsProduction() {
		pprof.Register(app)
	}

	// prometheus metrics
	if deps.Metrics != nil {
		app.Use(deps.Metrics.EchoMiddleware(conf.App.Name))
		app.GET("/metrics", deps.Metrics.EchoHandler())
	}

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup, deps.Readiness)

	// v1Group
	v1Group := apiGroup.Group("/v1")
	// v1Group middleware
	v1Group.Use(m.InternalAuth(), m.RequireTenant())
	// v1Group register api
	v1ofx.New(v1Group, deps.OfxService, m)
	v1ofxImports.New(v1Group, deps.HistoryService)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	xlog.Info(ctx, "[HTTP] routes registered", xlog.Int("count", len(app.Routes())))

	return svc
}
