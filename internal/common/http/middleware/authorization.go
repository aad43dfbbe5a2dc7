package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sellerdesk/go-fin-ledger/internal/common"
	"github.com/sellerdesk/go-fin-ledger/internal/common/ctxdata"
	commonhttp "github.com/sellerdesk/go-fin-ledger/internal/common/http"
)

var (
	errRequiredSecretKey = errors.New("required secret key")
	errInvalidSecretKey  = errors.New("invalid secret key")
)

// InternalAuth checks X-Secret-Key. It is a no-op when no secret is configured.
func (m *AppMiddleware) InternalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m.conf.SecretKey == "" {
				return next(c)
			}

			secretKey := c.Request().Header.Get("X-Secret-Key")
			if secretKey == "" {
				return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, errRequiredSecretKey)
			}

			if secretKey != m.conf.SecretKey {
				return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, errInvalidSecretKey)
			}

			return next(c)
		}
	}
}

// RequireTenant rejects requests the gateway did not stamp with a tenant.
// Must run after Context.
func (m *AppMiddleware) RequireTenant() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if ctxdata.GetTenantID(c.Request().Context()) == "" {
				return commonhttp.RestErrorResponse(c, http.StatusBadRequest, common.ErrMissingTenant)
			}

			return next(c)
		}
	}
}
