package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/sellerdesk/go-fin-ledger/internal/common"
	"github.com/sellerdesk/go-fin-ledger/internal/common/metrics"
	"github.com/sellerdesk/go-fin-ledger/internal/common/xlog"
	"github.com/sellerdesk/go-fin-ledger/internal/models"
	"github.com/sellerdesk/go-fin-ledger/internal/monitoring"
	"github.com/sellerdesk/go-fin-ledger/internal/ofx"
)

const logOfxImport = "[OFX-IMPORT]"

type OfxService interface {
	Preview(ctx context.Context, in models.OfxPreviewIn) (out *models.OfxPreviewOut, err error)
	Import(ctx context.Context, in models.OfxImportIn) (out *models.OfxImportOut, err error)
	// MarkDuplicates flags the previewed transactions whose FITID is already in the ledger.
	MarkDuplicates(ctx context.Context, tenantID string, out *models.OfxPreviewOut) (err error)
}

type ofxService service

var _ OfxService = (*ofxService)(nil)

func (s *ofxService) Preview(ctx context.Context, in models.OfxPreviewIn) (out *models.OfxPreviewOut, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		s.srv.metrics.GetOfxImportPrometheus().IncRequest(metrics.OperationPreview, err)
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	doc, err := s.readStatement(ctx, in.FileContent)
	if err != nil {
		return nil, err
	}

	return models.NewOfxPreviewOut(doc), nil
}

// Import books every statement line that is not in the ledger yet. Lines are
// handled one by one and a failing line never aborts the others.
func (s *ofxService) Import(ctx context.Context, in models.OfxImportIn) (out *models.OfxImportOut, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		s.srv.metrics.GetOfxImportPrometheus().IncRequest(metrics.OperationImport, err)
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	doc, err := s.readStatement(ctx, in.FileContent)
	if err != nil {
		return nil, err
	}

	if len(doc.Transactions) == 0 {
		return nil, common.ErrNoTransactionsFound
	}

	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("import aborted before booking: %w", err)
	}

	if in.BankAccountID != "" && uuid.Validate(in.BankAccountID) != nil {
		xlog.Warn(ctx, logOfxImport+" bank account ignored, not a uuid",
			xlog.String("bank_account_id", in.BankAccountID))
		in.BankAccountID = ""
	}

	bankLabel := s.bankAccountLabel(ctx, in.TenantID, in.BankAccountID)
	out = models.NewOfxImportOut(len(doc.Transactions), models.NewOfxAccountInfo(doc))
	txMetrics := s.srv.metrics.GetOfxImportPrometheus()

	var txErrs *multierror.Error
	for i, tx := range doc.Transactions {
		imported, errTx := s.importTransaction(ctx, in.TenantID, tx, bankLabel)
		switch {
		case errors.Is(errTx, errDuplicateTransaction):
			out.Results.Duplicates++
			txMetrics.IncTransaction(metrics.ImportResultDuplicate, string(tx.Direction))
		case errTx != nil:
			out.Results.Errors++
			txMetrics.IncTransaction(metrics.ImportResultError, string(tx.Direction))
			txErrs = multierror.Append(txErrs, fmt.Errorf("transaction %d (fitid %q): %w", i, tx.FITID, errTx))
		default:
			out.Results.Imported++
			out.Results.Transactions = append(out.Results.Transactions, *imported)
			txMetrics.IncTransaction(metrics.ImportResultImported, string(tx.Direction))
		}
	}

	if txErrs != nil {
		xlog.Warn(ctx, logOfxImport+" some transactions were not imported",
			xlog.String("tenant_id", in.TenantID),
			xlog.Int("errors", txErrs.Len()),
			xlog.Err(txErrs))
	}

	s.afterImport(ctx, in, doc, out)

	xlog.Info(ctx, logOfxImport+" "+out.Results.Message(),
		xlog.String("tenant_id", in.TenantID),
		xlog.Int("total", out.Results.Total))

	return out, nil
}

func (s *ofxService) MarkDuplicates(ctx context.Context, tenantID string, out *models.OfxPreviewOut) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	fitids := make([]string, 0, len(out.Transactions))
	for _, tx := range out.Transactions {
		if tx.FITID != "" {
			fitids = append(fitids, tx.FITID)
		}
	}
	if len(fitids) == 0 {
		return nil
	}

	found, err := s.srv.sqlRepo.GetDuplicateChecker().Existing(ctx, tenantID, fitids)
	if err != nil {
		return err
	}

	for i := range out.Transactions {
		out.Transactions[i].Duplicate = found[out.Transactions[i].FITID]
	}

	return nil
}

// readStatement runs the checks shared by preview and import, then parses.
func (s *ofxService) readStatement(ctx context.Context, content string) (*ofx.Document, error) {
	if content == "" {
		return nil, common.ErrMissingFileContent
	}

	if limit := s.srv.conf.OfxImport.MaxFileSize; limit > 0 && len(content) > limit {
		return nil, common.ErrFileTooLarge
	}

	if err := ofx.Validate(content).Err(); err != nil {
		return nil, err
	}

	doc, err := ofx.Parse(content)
	if err != nil {
		xlog.Warn(ctx, logOfxImport+" failed to parse statement", xlog.Err(err))
		return nil, err
	}

	return doc, nil
}

// bankAccountLabel returns "" when no account was chosen or it cannot be used.
func (s *ofxService) bankAccountLabel(ctx context.Context, tenantID, bankAccountID string) string {
	if bankAccountID == "" {
		return ""
	}

	account, err := s.srv.sqlRepo.GetBankAccountRepository().GetActiveByID(ctx, tenantID, bankAccountID)
	if err != nil {
		xlog.Warn(ctx, logOfxImport+" bank account ignored",
			xlog.String("bank_account_id", bankAccountID),
			xlog.Err(err))
		return ""
	}

	return account.Label()
}
