package http

import (
	"context"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sellerdesk/go-fin-ledger/internal/common/metrics"
	"github.com/sellerdesk/go-fin-ledger/internal/common/xlog"
	"github.com/sellerdesk/go-fin-ledger/internal/config"
	"github.com/sellerdesk/go-fin-ledger/internal/models"
	mockRepo "github.com/sellerdesk/go-fin-ledger/internal/repositories/mock"
	"github.com/sellerdesk/go-fin-ledger/internal/services/mock"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

type testRouterHelper struct {
	handler        nethttp.Handler
	mockOfx        *mock.MockOfxService
	mockHistory    *mock.MockOfxImportHistoryService
	mockCache      *mockRepo.MockCacheRepository
	metricRegistry *prometheus.Registry
}

func routerTestHelper(t *testing.T) testRouterHelper {
	t.Helper()

	ctrl := gomock.NewController(t)
	th := testRouterHelper{
		mockOfx:        mock.NewMockOfxService(ctrl),
		mockHistory:    mock.NewMockOfxImportHistoryService(ctrl),
		mockCache:      mockRepo.NewMockCacheRepository(ctrl),
		metricRegistry: prometheus.NewRegistry(),
	}

	conf := config.Config{
		App:       config.App{Name: "go-fin-ledger", Env: "prod"},
		SecretKey: "s3cr3t",
	}
	srv := NewHTTPServer(context.Background(), conf, Deps{
		CacheRepo:      th.mockCache,
		OfxService:     th.mockOfx,
		HistoryService: th.mockHistory,
		Metrics:        metrics.NewWithRegistry(th.metricRegistry),
	})
	th.handler = srv.Handler()

	return th
}

func TestRouter(t *testing.T) {
	type expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		method      string
		url         string
		body        string
		headers     map[string]string
		doMock      func(th testRouterHelper)
		expectation expectation
	}{
		{
			name:   "health is public",
			method: nethttp.MethodGet,
			url:    "/api/health",
			expectation: expectation{
				wantRes:  `{"kind":"health","status":"server is up and running"}`,
				wantCode: nethttp.StatusOK,
			},
		},
		{
			name:   "unknown route",
			method: nethttp.MethodGet,
			url:    "/api/v9/nothing",
			expectation: expectation{
				wantRes:  `{"status":"error","code":404,"message":"route '/api/v9/nothing' does not exist in this API"}`,
				wantCode: nethttp.StatusNotFound,
			},
		},
		{
			name:   "v1 requires the secret key",
			method: nethttp.MethodPost,
			url:    "/api/v1/ofx/preview",
			body:   `{"fileContent":"<OFX>"}`,
			headers: map[string]string{
				"X-Tenant-Id": "tenant-a",
			},
			expectation: expectation{
				wantRes:  `{"status":"error","code":401,"message":"required secret key"}`,
				wantCode: nethttp.StatusUnauthorized,
			},
		},
		{
			name:   "v1 requires a tenant",
			method: nethttp.MethodPost,
			url:    "/api/v1/ofx/preview",
			body:   `{"fileContent":"<OFX>"}`,
			headers: map[string]string{
				"X-Secret-Key": "s3cr3t",
			},
			expectation: expectation{
				wantRes:  `{"status":"error","code":400,"message":"missing tenant"}`,
				wantCode: nethttp.StatusBadRequest,
			},
		},
		{
			name:   "preview reaches the service with the tenant",
			method: nethttp.MethodPost,
			url:    "/api/v1/ofx/preview",
			body:   `{"fileContent":"<OFX>"}`,
			headers: map[string]string{
				"X-Secret-Key": "s3cr3t",
				"X-Tenant-Id":  "tenant-a",
			},
			doMock: func(th testRouterHelper) {
				th.mockOfx.EXPECT().
					Preview(gomock.Any(), models.OfxPreviewIn{TenantID: "tenant-a", FileContent: "<OFX>"}).
					Return(&models.OfxPreviewOut{Transactions: []models.OfxPreviewTransaction{}}, nil)
			},
			expectation: expectation{
				wantRes:  `{"success":true,"transactions":[],"accountInfo":{"bankId":"","accountId":"","currency":""}}`,
				wantCode: nethttp.StatusOK,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			th := routerTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(th)
			}

			req := httptest.NewRequest(tt.method, tt.url, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			th.handler.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tt.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func TestRouter_metricsEndpoint(t *testing.T) {
	th := routerTestHelper(t)

	req := httptest.NewRequest(nethttp.MethodGet, "/api/health", nil)
	th.handler.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(nethttp.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	th.handler.ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "go_fin_ledger_requests_total")
}
