package ofximports

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sellerdesk/go-fin-ledger/internal/common/ctxdata"
	"github.com/sellerdesk/go-fin-ledger/internal/common/xlog"
	"github.com/sellerdesk/go-fin-ledger/internal/models"
	"github.com/sellerdesk/go-fin-ledger/internal/services/mock"
)

const testTenantID = "tenant-a"

func batch(id string, createdAt time.Time) models.OfxImportBatch {
	bankAccountID := "6f1c7d1e-8f7b-4a36-9c59-2d7f5d8b1c11"
	return models.OfxImportBatch{
		ID:            id,
		TenantID:      testTenantID,
		BankAccountID: &bankAccountID,
		FileSHA256:    "9f86d081",
		BankID:        "0341",
		AccountID:     "12345-6",
		Currency:      "BRL",
		Total:         3,
		Imported:      2,
		Duplicates:    1,
		ArchivePath:   "ofx-imports/tenant-a/2024/03/9f86d081.ofx",
		CreatedAt:     &createdAt,
	}
}

func Test_Handler_list(t *testing.T) {
	createdAt := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	firstBatchJSON := `{"kind":"ofxImportBatch","id":"b-1","bankAccountId":"6f1c7d1e-8f7b-4a36-9c59-2d7f5d8b1c11","fileSha256":"9f86d081","bankId":"0341","accountId":"12345-6","currency":"BRL","total":3,"imported":2,"duplicates":1,"errors":0,"archivePath":"ofx-imports/tenant-a/2024/03/9f86d081.ofx","createdAt":"2024-03-15 09:00:00"}`

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		query       string
		expectation Expectation
		doMock      func(th testOfxImportsHelper)
	}{
		{
			name: "success",
			expectation: Expectation{
				wantRes:  `{"kind":"collection","contents":[` + firstBatchJSON + `],"pagination":{"prev":"","next":"","totalEntries":1}}`,
				wantCode: 200,
			},
			doMock: func(th testOfxImportsHelper) {
				th.mockService.EXPECT().
					GetList(gomock.Any(), models.OfxImportBatchFilterOptions{TenantID: testTenantID, Limit: models.DefaultPageLimit + 1}).
					Return([]models.OfxImportBatch{batch("b-1", createdAt)}, 1, nil)
			},
		},
		{
			name:  "success with next page",
			query: "?limit=1&bankAccountId=6f1c7d1e-8f7b-4a36-9c59-2d7f5d8b1c11",
			expectation: Expectation{
				wantRes:  `{"kind":"collection","contents":[` + firstBatchJSON + `],"pagination":{"prev":"","next":"MjAyNC0wMy0xNVQxMjowMDowMFo=","totalEntries":2}}`,
				wantCode: 200,
			},
			doMock: func(th testOfxImportsHelper) {
				th.mockService.EXPECT().
					GetList(gomock.Any(), models.OfxImportBatchFilterOptions{
						TenantID:      testTenantID,
						BankAccountID: "6f1c7d1e-8f7b-4a36-9c59-2d7f5d8b1c11",
						Limit:         2,
					}).
					Return([]models.OfxImportBatch{batch("b-1", createdAt), batch("b-0", createdAt.Add(-time.Hour))}, 2, nil)
			},
		},
		{
			name:  "success empty",
			query: "?startDate=2024-01-01&endDate=2024-01-31",
			expectation: Expectation{
				wantRes:  `{"kind":"collection","contents":[],"pagination":{"prev":"","next":"","totalEntries":0}}`,
				wantCode: 200,
			},
			doMock: func(th testOfxImportsHelper) {
				th.mockService.EXPECT().
					GetList(gomock.Any(), gomock.AssignableToTypeOf(models.OfxImportBatchFilterOptions{})).
					Return([]models.OfxImportBatch{}, 0, nil)
			},
		},
		{
			name:  "failed - start date after end date",
			query: "?startDate=2024-02-01&endDate=2024-01-31",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"START_DATE_IS_AFTER_END_DATE","message":"startDate must not be after endDate"}`,
				wantCode: 400,
			},
		},
		{
			name:  "failed - only one date",
			query: "?startDate=2024-02-01",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"START_DATE_AND_END_DATE_REQUIRED","message":"startDate and endDate are required if one of them is filled"}`,
				wantCode: 400,
			},
		},
		{
			name:  "failed - invalid limit",
			query: "?limit=abc",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":400,"message":"strconv.ParseInt: parsing \"abc\": invalid syntax"}`,
				wantCode: 400,
			},
		},
		{
			name: "failed - database error",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"DATABASE_ERROR","message":"database error"}`,
				wantCode: 500,
			},
			doMock: func(th testOfxImportsHelper) {
				th.mockService.EXPECT().
					GetList(gomock.Any(), gomock.Any()).
					Return(nil, 0, models.GetErrMap(models.ErrKeyDatabaseError))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			testHelper := ofxImportsTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(testHelper)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/ofx-imports"+tt.query, nil)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tt.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func Test_Handler_statement(t *testing.T) {
	const batchID = "0b6f2f3c-1d1e-4a63-9f1e-5d8e2c3b4a5f"

	tests := []struct {
		name            string
		id              string
		doMock          func(th testOfxImportsHelper)
		wantCode        int
		wantRes         string
		wantDisposition string
	}{
		{
			name: "success",
			id:   batchID,
			doMock: func(th testOfxImportsHelper) {
				th.mockService.EXPECT().GetStatement(gomock.Any(), testTenantID, batchID).
					Return(&models.OfxStatementFile{BatchID: batchID, FileName: "9f86d081.ofx", Content: []byte("OFXHEADER:100")}, nil)
			},
			wantCode:        200,
			wantRes:         "OFXHEADER:100",
			wantDisposition: `attachment; filename="9f86d081.ofx"`,
		},
		{
			name:     "failed - invalid id",
			id:       "not-a-uuid",
			wantCode: 422,
			wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"BATCH_ID_INVALID","field":"id","message":"id must be a valid uuid"}]}`,
		},
		{
			name: "failed - not archived",
			id:   batchID,
			doMock: func(th testOfxImportsHelper) {
				th.mockService.EXPECT().GetStatement(gomock.Any(), testTenantID, batchID).
					Return(nil, models.GetErrMap(models.ErrKeyStatementNotArchived))
			},
			wantCode: 404,
			wantRes:  `{"status":"error","code":"STATEMENT_NOT_ARCHIVED","message":"statement file was not archived for this import"}`,
		},
		{
			name: "failed - not found",
			id:   batchID,
			doMock: func(th testOfxImportsHelper) {
				th.mockService.EXPECT().GetStatement(gomock.Any(), testTenantID, batchID).
					Return(nil, models.GetErrMap(models.ErrKeyDataNotFound))
			},
			wantCode: 404,
			wantRes:  `{"status":"error","code":"DATA_NOT_FOUND","message":"data not found"}`,
		},
		{
			name: "failed - storage error",
			id:   batchID,
			doMock: func(th testOfxImportsHelper) {
				th.mockService.EXPECT().GetStatement(gomock.Any(), testTenantID, batchID).
					Return(nil, models.GetErrMap(models.ErrKeyStorageError))
			},
			wantCode: 500,
			wantRes:  `{"status":"error","code":"STORAGE_ERROR","message":"storage error"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testHelper := ofxImportsTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(testHelper)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/ofx-imports/"+tt.id+"/statement", nil)
			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			require.Equal(t, tt.wantRes, strings.TrimSuffix(rec.Body.String(), "\n"))
			require.Equal(t, tt.wantDisposition, rec.Header().Get(echo.HeaderContentDisposition))
		})
	}
}

type testOfxImportsHelper struct {
	router      *echo.Echo
	mockCtrl    *gomock.Controller
	mockService *mock.MockOfxImportHistoryService
}

func ofxImportsTestHelper(t *testing.T) testOfxImportsHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockSvc := mock.NewMockOfxImportHistoryService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := ctxdata.WithTenantID(c.Request().Context(), testTenantID)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSvc)

	return testOfxImportsHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}
