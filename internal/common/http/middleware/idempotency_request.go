package middleware

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sellerdesk/go-fin-ledger/internal/common"
	"github.com/sellerdesk/go-fin-ledger/internal/common/ctxdata"
	commonhttp "github.com/sellerdesk/go-fin-ledger/internal/common/http"
	"github.com/sellerdesk/go-fin-ledger/internal/common/xlog"
	"github.com/sellerdesk/go-fin-ledger/internal/models"
)

const HeaderIdempotencyKey = "X-Idempotency-Key"

// CheckIdempotentRequest replays the stored response when a POST is retried
// with the same X-Idempotency-Key and body. Requests without the header, or
// without a cache configured, pass through untouched.
func (m *AppMiddleware) CheckIdempotentRequest() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method != http.MethodPost {
				return next(c)
			}

			idempotencyKey := req.Header.Get(HeaderIdempotencyKey)
			if idempotencyKey == "" || m.cacheRepo == nil {
				return next(c)
			}

			ctx := req.Context()
			body := m.parseRequestBody(c)

			record, err := m.acquireIdempotency(ctx, ctxdata.GetTenantID(ctx), idempotencyKey, body)
			if err != nil {
				switch {
				case errors.Is(err, common.ErrInvalidFingerprint):
					return commonhttp.RestErrorResponse(c, http.StatusUnprocessableEntity, err)
				case errors.Is(err, common.ErrRequestBeingProcessed):
					return commonhttp.RestErrorResponse(c, http.StatusConflict, err)
				default:
					return commonhttp.RestErrorResponse(c, http.StatusInternalServerError, err)
				}
			}

			if record.Finished() {
				return c.Blob(record.Response.Status, record.Response.ContentType, []byte(record.Response.Body))
			}

			resBody := captureResponseBody(c)

			// the lock outlives the request
			bgCtx := context.WithoutCancel(ctx)

			defer func() {
				if r := recover(); r != nil {
					m.releaseIdempotency(bgCtx, record.CacheKey)
					panic(r)
				}
			}()

			if err = next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			if status < http.StatusOK || status >= http.StatusMultipleChoices {
				// failed requests may be retried with the same key
				m.releaseIdempotency(bgCtx, record.CacheKey)
				return nil
			}

			record.Complete(status, c.Response().Header().Get(echo.HeaderContentType), resBody.String())
			if err := m.storeIdempotency(bgCtx, record); err != nil {
				xlog.Warn(bgCtx, "[IDEMPOTENCY.SAVE_RESPONSE]", xlog.Err(err))
			}

			return nil
		}
	}
}

func (m *AppMiddleware) idempotencyTTL() time.Duration {
	if m.conf.OfxImport.IdempotencyTTL > 0 {
		return m.conf.OfxImport.IdempotencyTTL
	}
	return models.DefaultIdempotencyTTL
}

// acquireIdempotency returns the finished record for a replay, or takes the
// lock with a fresh pending record.
func (m *AppMiddleware) acquireIdempotency(ctx context.Context, tenantID, key string, requestBody []byte) (*models.IdempotencyRecord, error) {
	record := models.NewIdempotencyRecord(tenantID, key, requestBody)

	raw, err := m.cacheRepo.Get(ctx, record.CacheKey)
	if errors.Is(err, common.ErrDataNotFound) {
		return record, m.lockIdempotency(ctx, record)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get idempotency data: %w", err)
	}

	cached, err := models.DecodeIdempotencyRecord(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode idempotency data: %w", err)
	}

	switch {
	case !cached.SameRequest(record):
		return nil, common.ErrInvalidFingerprint
	case !cached.Finished():
		return nil, common.ErrRequestBeingProcessed
	}

	return cached, nil
}

func (m *AppMiddleware) lockIdempotency(ctx context.Context, record *models.IdempotencyRecord) error {
	raw, err := record.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode idempotency data: %w", err)
	}

	locked, err := m.cacheRepo.SetIfNotExists(ctx, record.CacheKey, raw, m.idempotencyTTL())
	if err != nil {
		return fmt.Errorf("failed to save idempotency data: %w", err)
	}
	if !locked {
		return common.ErrRequestBeingProcessed
	}

	return nil
}

func (m *AppMiddleware) releaseIdempotency(ctx context.Context, cacheKey string) {
	if err := m.cacheRepo.Del(ctx, cacheKey); err != nil {
		xlog.Warn(ctx, "[IDEMPOTENCY.RELEASE_LOCK]", xlog.Err(err))
	}
}

func (m *AppMiddleware) storeIdempotency(ctx context.Context, record *models.IdempotencyRecord) error {
	raw, err := record.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode idempotency data: %w", err)
	}

	if err = m.cacheRepo.Set(ctx, record.CacheKey, raw, m.idempotencyTTL()); err != nil {
		return fmt.Errorf("failed to save idempotency data: %w", err)
	}

	return nil
}

// parseRequestBody reads the body and puts it back for the next handler.
func (m *AppMiddleware) parseRequestBody(c echo.Context) []byte {
	var body []byte
	if c.Request().Body != nil {
		body, _ = io.ReadAll(c.Request().Body)
	}
	c.Request().Body = io.NopCloser(bytes.NewBuffer(body))
	return body
}
