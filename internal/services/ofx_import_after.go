package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/sellerdesk/go-fin-ledger/internal/common"
	"github.com/sellerdesk/go-fin-ledger/internal/common/publisher"
	"github.com/sellerdesk/go-fin-ledger/internal/common/xlog"
	"github.com/sellerdesk/go-fin-ledger/internal/models"
	"github.com/sellerdesk/go-fin-ledger/internal/ofx"
)

const defaultArchivePrefix = "ofx-imports"

// afterImport does the bookkeeping of a finished import. None of it may change
// the import outcome, failures are only logged.
func (s *ofxService) afterImport(ctx context.Context, in models.OfxImportIn, doc *ofx.Document, out *models.OfxImportOut) {
	// the caller may hang up once the response is built
	ctx = context.WithoutCancel(ctx)

	fileSHA := statementSHA256(in.FileContent)

	batch, err := s.srv.sqlRepo.GetOfxImportBatchRepository().Create(ctx, &models.CreateOfxImportBatchIn{
		TenantID:      in.TenantID,
		BankAccountID: common.NullString(in.BankAccountID),
		FileSHA256:    fileSHA,
		BankID:        doc.BankID,
		AccountID:     doc.AccountID,
		Currency:      doc.Currency,
		Total:         out.Results.Total,
		Imported:      out.Results.Imported,
		Duplicates:    out.Results.Duplicates,
		Errors:        out.Results.Errors,
	})
	if err != nil {
		xlog.Warn(ctx, logOfxImport+" failed to record import batch", xlog.Err(err))
	} else {
		out.BatchID = batch.ID
	}

	if archivePath, ok := s.archiveStatement(ctx, in.TenantID, fileSHA, in.FileContent); ok && batch != nil {
		if err := s.srv.sqlRepo.GetOfxImportBatchRepository().UpdateArchivePath(ctx, in.TenantID, batch.ID, archivePath); err != nil {
			xlog.Warn(ctx, logOfxImport+" failed to save archive path",
				xlog.String("batch_id", batch.ID),
				xlog.Err(err))
		}
	}

	s.publishImportEvent(ctx, in, out)
}

func statementSHA256(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// archivePath is <prefix>/<tenant>/<yyyy>/<mm>/<sha256>.ofx, the same file
// uploaded twice lands on the same object.
func (s *ofxService) archivePath(tenantID, fileSHA string) string {
	prefix := strings.Trim(s.srv.conf.CloudStorageConfig.ArchivePrefix, "/")
	if prefix == "" {
		prefix = defaultArchivePrefix
	}

	now := s.srv.now().In(common.GetLocation())
	return fmt.Sprintf("%s/%s/%04d/%02d/%s.ofx", prefix, tenantID, now.Year(), now.Month(), fileSHA)
}

func (s *ofxService) archiveStatement(ctx context.Context, tenantID, fileSHA, content string) (string, bool) {
	if s.srv.archiveRepo == nil || !s.srv.flag.IsEnabled(ctx, s.srv.conf.FeatureFlagKeyLookup.OfxImportArchive) {
		return "", false
	}

	path := s.archivePath(tenantID, fileSHA)
	err := s.srv.retryer.Retry(ctx,
		func() error {
			_, err := s.srv.archiveRepo.Upload(ctx, path, []byte(content))
			return err
		},
		func(err error) error {
			xlog.Warn(ctx, logOfxImport+" failed to archive statement",
				xlog.String("path", path),
				xlog.Err(err))
			return err
		},
	)

	return path, err == nil
}

func (s *ofxService) publishImportEvent(ctx context.Context, in models.OfxImportIn, out *models.OfxImportOut) {
	if s.srv.importPub == nil || !s.srv.flag.IsEnabled(ctx, s.srv.conf.FeatureFlagKeyLookup.OfxImportPublishEvent) {
		return
	}

	event := models.NewOfxImportEvent(in.TenantID, in.BankAccountID, out, s.srv.now())
	if err := s.srv.importPub.Publish(ctx, event, publisher.WithKey(in.TenantID)); err != nil {
		xlog.Warn(ctx, logOfxImport+" failed to publish import event", xlog.Err(err))
	}
}
