package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sellerdesk/go-fin-ledger/internal/common"
	"github.com/sellerdesk/go-fin-ledger/internal/models"
)

func TestOfxImportHistoryService_GetList(t *testing.T) {
	opts := models.OfxImportBatchFilterOptions{TenantID: testTenantID, Limit: 11}

	tests := []struct {
		name      string
		doMock    func(th testServiceHelper)
		wantTotal int
		wantLen   int
		wantCode  string
	}{
		{
			name: "success",
			doMock: func(th testServiceHelper) {
				th.mockOfxImportBatchRepo.EXPECT().GetList(gomock.Any(), opts).
					Return([]models.OfxImportBatch{{ID: "b-1"}, {ID: "b-2"}}, nil)
				th.mockOfxImportBatchRepo.EXPECT().CountAll(gomock.Any(), opts).Return(2, nil)
			},
			wantTotal: 2,
			wantLen:   2,
		},
		{
			name: "list error",
			doMock: func(th testServiceHelper) {
				th.mockOfxImportBatchRepo.EXPECT().GetList(gomock.Any(), opts).Return(nil, assert.AnError)
			},
			wantCode: "DATABASE_ERROR",
		},
		{
			name: "count error",
			doMock: func(th testServiceHelper) {
				th.mockOfxImportBatchRepo.EXPECT().GetList(gomock.Any(), opts).Return([]models.OfxImportBatch{}, nil)
				th.mockOfxImportBatchRepo.EXPECT().CountAll(gomock.Any(), opts).Return(0, common.ErrNoRows)
			},
			wantCode: "DATA_NOT_FOUND",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := serviceTestHelper(t)
			tt.doMock(th)

			result, total, err := th.historyService.GetList(context.Background(), opts)
			if tt.wantCode != "" {
				var detail models.ErrorDetail
				assert.ErrorAs(t, err, &detail)
				assert.Equal(t, tt.wantCode, detail.Code)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)
			assert.Len(t, result, tt.wantLen)
		})
	}
}

func TestOfxImportHistoryService_GetStatement(t *testing.T) {
	const archivePath = "ofx-imports/tenant-a/2024/03/abc.ofx"
	archived := &models.OfxImportBatch{ID: testBatchID, TenantID: testTenantID, ArchivePath: archivePath}

	tests := []struct {
		name        string
		doMock      func(th testServiceHelper)
		wantCode    string
		wantContent string
	}{
		{
			name: "success",
			doMock: func(th testServiceHelper) {
				th.mockOfxImportBatchRepo.EXPECT().GetByID(gomock.Any(), testTenantID, testBatchID).Return(archived, nil)
				th.mockArchive.EXPECT().IsObjectExist(gomock.Any(), archivePath).Return(true, nil)
				th.mockArchive.EXPECT().Download(gomock.Any(), archivePath).Return([]byte("<OFX>"), nil)
			},
			wantContent: "<OFX>",
		},
		{
			name: "batch of another tenant",
			doMock: func(th testServiceHelper) {
				th.mockOfxImportBatchRepo.EXPECT().GetByID(gomock.Any(), testTenantID, testBatchID).Return(nil, common.ErrNoRows)
			},
			wantCode: "DATA_NOT_FOUND",
		},
		{
			name: "never archived",
			doMock: func(th testServiceHelper) {
				th.mockOfxImportBatchRepo.EXPECT().GetByID(gomock.Any(), testTenantID, testBatchID).
					Return(&models.OfxImportBatch{ID: testBatchID}, nil)
			},
			wantCode: "STATEMENT_NOT_ARCHIVED",
		},
		{
			name: "object removed from bucket",
			doMock: func(th testServiceHelper) {
				th.mockOfxImportBatchRepo.EXPECT().GetByID(gomock.Any(), testTenantID, testBatchID).Return(archived, nil)
				th.mockArchive.EXPECT().IsObjectExist(gomock.Any(), archivePath).Return(false, nil)
			},
			wantCode: "STATEMENT_NOT_ARCHIVED",
		},
		{
			name: "download error",
			doMock: func(th testServiceHelper) {
				th.mockOfxImportBatchRepo.EXPECT().GetByID(gomock.Any(), testTenantID, testBatchID).Return(archived, nil)
				th.mockArchive.EXPECT().IsObjectExist(gomock.Any(), archivePath).Return(true, nil)
				th.mockArchive.EXPECT().Download(gomock.Any(), archivePath).Return(nil, assert.AnError)
			},
			wantCode: "STORAGE_ERROR",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := serviceTestHelper(t)
			tt.doMock(th)

			file, err := th.historyService.GetStatement(context.Background(), testTenantID, testBatchID)
			if tt.wantCode != "" {
				var detail models.ErrorDetail
				assert.ErrorAs(t, err, &detail)
				assert.Equal(t, tt.wantCode, detail.Code)
				assert.Nil(t, file)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "abc.ofx", file.FileName)
			assert.Equal(t, testBatchID, file.BatchID)
			assert.Equal(t, tt.wantContent, string(file.Content))
		})
	}
}
