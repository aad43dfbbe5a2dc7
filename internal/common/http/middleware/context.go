package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/sellerdesk/go-fin-ledger/internal/common/ctxdata"
)

// Context copies correlation id, tenant and cloud trace from the request
// headers into the request context.
func (m *AppMiddleware) Context(gcpProjectID string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := ctxdata.SetContextFromHTTP(req.Context(), req, gcpProjectID)
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}
