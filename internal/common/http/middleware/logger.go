package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/exp/slices"

	"github.com/sellerdesk/go-fin-ledger/internal/common/xlog"
)

// statement files can be large, only the head of a body is logged
const maxLoggedBodySize = 2048

type bodyDumpResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	err := http.NewResponseController(w.ResponseWriter).Flush()
	if err != nil && errors.Is(err, http.ErrNotSupported) {
		panic(errors.New("response writer flushing is not supported"))
	}
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return http.NewResponseController(w.ResponseWriter).Hijack()
}

func (w *bodyDumpResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// captureResponseBody tees everything written to the response into the returned buffer.
func captureResponseBody(c echo.Context) *bytes.Buffer {
	buf := new(bytes.Buffer)
	c.Response().Writer = &bodyDumpResponseWriter{
		Writer:         io.MultiWriter(c.Response().Writer, buf),
		ResponseWriter: c.Response().Writer,
	}
	return buf
}

var sensitiveHeaders = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
	"set-cookie":    {},
	"x-secret-key":  {},
}

func maskedHeaders(h http.Header) string {
	headers := make(map[string][]string, len(h))
	for k, vals := range h {
		if _, ok := sensitiveHeaders[strings.ToLower(k)]; ok {
			headers[k] = []string{"*****"}
			continue
		}
		headers[k] = vals
	}

	b, _ := json.Marshal(headers)
	return string(b)
}

func truncate(b []byte) string {
	if len(b) <= maxLoggedBodySize {
		return string(b)
	}
	return fmt.Sprintf("%s...(%d bytes)", b[:maxLoggedBodySize], len(b))
}

var excludedLogs = []string{
	"/api/health",
	"/metrics",
}

func (m *AppMiddleware) Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if slices.Contains(excludedLogs, c.Path()) {
				return next(c)
			}

			start := time.Now()
			req := c.Request()
			res := c.Response()
			reqBody := m.parseRequestBody(c)
			resBody := captureResponseBody(c)

			if err := next(c); err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			fields := []xlog.Field{
				xlog.String("method", req.Method),
				xlog.String("url_path", req.URL.String()),
				xlog.String("request_body", truncate(reqBody)),
				xlog.String("request_header", maskedHeaders(req.Header)),
				xlog.Int("status", res.Status),
				xlog.String("response", truncate(resBody.Bytes())),
				xlog.Duration("latency", latency),
				xlog.String("idempotency_key", req.Header.Get(HeaderIdempotencyKey)),
			}

			// the handler may have replaced the request, its context carries the tenant
			ctx := c.Request().Context()
			message := fmt.Sprintf("%v %v %v %v", res.Status, req.Method, req.URL.String(), latency)

			switch {
			case res.Status >= http.StatusInternalServerError:
				xlog.Error(ctx, message, fields...)
			case res.Status >= http.StatusBadRequest:
				xlog.Warn(ctx, message, fields...)
			default:
				xlog.Info(ctx, message, fields...)
			}

			return nil
		}
	}
}
