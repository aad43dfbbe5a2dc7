package health

import (
	"context"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	commonhttp "github.com/sellerdesk/go-fin-ledger/internal/common/http"
)

// Pinger is anything the service cannot serve traffic without.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type healthHandler struct {
	dependencies map[string]Pinger
}

// New health handler will initialize the health/ resources endpoint
func New(app *echo.Group, dependencies map[string]Pinger) {
	hh := healthHandler{dependencies: dependencies}
	health := app.Group("/health")
	health.GET("", hh.liveness)
	health.GET("/ready", hh.readiness)
}

type (
	DoHealthCheckLivenessResponse struct {
		Kind   string `json:"kind" example:"health"`
		Status string `json:"status" example:"server is up and running"`
	}

	DoHealthCheckReadinessResponse struct {
		Kind         string            `json:"kind" example:"readiness"`
		Status       string            `json:"status" example:"ready"`
		Dependencies map[string]string `json:"dependencies"`
	}
)

// liveness godoc
// @Summary 	Get the status of server
// @Description	Get the status of server
// @Accept		json
// @Produce		json
// @Success 200 {object} DoHealthCheckLivenessResponse "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Router /health [get]
func (hh healthHandler) liveness(c echo.Context) error {
	return commonhttp.RestSuccessResponse(c, http.StatusOK, DoHealthCheckLivenessResponse{
		Kind:   "health",
		Status: "server is up and running",
	})
}

// readiness godoc
// @Summary 	Check the dependencies of server
// @Description	Ping database and cache, 503 when one of them is down
// @Accept		json
// @Produce		json
// @Success 200 {object} DoHealthCheckReadinessResponse
// @Failure 503 {object} DoHealthCheckReadinessResponse
// @Router /health/ready [get]
func (hh healthHandler) readiness(c echo.Context) error {
	res := DoHealthCheckReadinessResponse{
		Kind:         "readiness",
		Status:       "ready",
		Dependencies: make(map[string]string, len(hh.dependencies)),
	}
	code := http.StatusOK

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	ctx := c.Request().Context()
	for name, dep := range hh.dependencies {
		g.Go(func() error {
			status := "ok"
			if err := dep.Ping(ctx); err != nil {
				status = err.Error()
			}

			mu.Lock()
			defer mu.Unlock()
			res.Dependencies[name] = status
			if status != "ok" {
				res.Status = "not ready"
				code = http.StatusServiceUnavailable
			}
			return nil
		})
	}
	_ = g.Wait()

	return commonhttp.RestSuccessResponse(c, code, res)
}
