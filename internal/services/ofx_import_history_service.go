package services

import (
	"context"
	"path"

	"github.com/sellerdesk/go-fin-ledger/internal/models"
	"github.com/sellerdesk/go-fin-ledger/internal/monitoring"
)

type OfxImportHistoryService interface {
	GetList(ctx context.Context, opts models.OfxImportBatchFilterOptions) (result []models.OfxImportBatch, total int, err error)
	GetStatement(ctx context.Context, tenantID, batchID string) (file *models.OfxStatementFile, err error)
}

type ofxImportHistory service

var _ OfxImportHistoryService = (*ofxImportHistory)(nil)

func (s *ofxImportHistory) GetList(ctx context.Context, opts models.OfxImportBatchFilterOptions) (result []models.OfxImportBatch, total int, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	result, err = s.srv.sqlRepo.GetOfxImportBatchRepository().GetList(ctx, opts)
	if err != nil {
		return nil, 0, checkDatabaseError(err)
	}

	total, err = s.srv.sqlRepo.GetOfxImportBatchRepository().CountAll(ctx, opts)
	if err != nil {
		return nil, 0, checkDatabaseError(err)
	}

	return result, total, nil
}

// GetStatement downloads the raw file archived for a batch of the tenant.
func (s *ofxImportHistory) GetStatement(ctx context.Context, tenantID, batchID string) (file *models.OfxStatementFile, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	batch, err := s.srv.sqlRepo.GetOfxImportBatchRepository().GetByID(ctx, tenantID, batchID)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	if batch.ArchivePath == "" || s.srv.archiveRepo == nil {
		return nil, models.GetErrMap(models.ErrKeyStatementNotArchived)
	}

	exists, err := s.srv.archiveRepo.IsObjectExist(ctx, batch.ArchivePath)
	if err != nil {
		return nil, models.GetErrMap(models.ErrKeyStorageError, err.Error())
	}
	if !exists {
		return nil, models.GetErrMap(models.ErrKeyStatementNotArchived)
	}

	content, err := s.srv.archiveRepo.Download(ctx, batch.ArchivePath)
	if err != nil {
		return nil, models.GetErrMap(models.ErrKeyStorageError, err.Error())
	}

	return &models.OfxStatementFile{
		BatchID:  batch.ID,
		FileName: path.Base(batch.ArchivePath),
		Content:  content,
	}, nil
}
