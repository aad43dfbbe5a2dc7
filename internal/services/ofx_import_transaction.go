package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sellerdesk/go-fin-ledger/internal/common"
	"github.com/sellerdesk/go-fin-ledger/internal/models"
	"github.com/sellerdesk/go-fin-ledger/internal/ofx"
	"github.com/sellerdesk/go-fin-ledger/internal/repositories"
)

var errDuplicateTransaction = errors.New("transaction already imported")

// receivableDescription keeps the FITID inside the description, the duplicate
// lookup for receivables searches it there.
func receivableDescription(description, fitid string) string {
	if fitid == "" {
		return description
	}
	return fmt.Sprintf("%s [FITID:%s]", description, fitid)
}

type receivableAuditPayload struct {
	FITID       string          `json:"fitid,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	ReceiptDate string          `json:"receiptDate"`
}

func (s *ofxService) importTransaction(ctx context.Context, tenantID string, tx ofx.Transaction, bankLabel string) (*models.OfxImportedTransaction, error) {
	if tx.HasFITID() {
		exists, err := s.srv.sqlRepo.GetDuplicateChecker().Exists(ctx, tenantID, tx.FITID)
		if err != nil {
			return nil, fmt.Errorf("duplicate check: %w", err)
		}
		if exists {
			return nil, errDuplicateTransaction
		}
	}

	date, err := common.ParseCalendarDate(tx.PostedDate)
	if err != nil {
		return nil, err
	}

	description := tx.CompositeDescription()

	var id string
	if tx.Direction == ofx.DirectionCredit {
		id, err = s.createReceivable(ctx, tenantID, tx, description, bankLabel, date)
	} else {
		id, err = s.createPayable(ctx, tenantID, tx, description, bankLabel, date)
	}
	if err != nil {
		return nil, err
	}

	return &models.OfxImportedTransaction{
		ID:          id,
		Type:        string(tx.Direction),
		Description: description,
		Amount:      models.NewDecimalFromExternal(tx.Amount),
		Date:        tx.PostedDate,
	}, nil
}

// createReceivable stores the receivable and its audit entry together.
func (s *ofxService) createReceivable(ctx context.Context, tenantID string, tx ofx.Transaction, description, bankLabel string, date time.Time) (id string, err error) {
	payload, err := json.Marshal(receivableAuditPayload{
		FITID:       tx.FITID,
		Amount:      tx.Amount,
		Description: description,
		ReceiptDate: tx.PostedDate,
	})
	if err != nil {
		return "", err
	}

	err = s.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		created, err := r.GetReceivableRepository().Create(actx, &models.CreateReceivableIn{
			TenantID:    tenantID,
			ReceiptDate: date,
			Customer:    models.ImportedCustomerName,
			Description: receivableDescription(description, tx.FITID),
			Amount:      tx.Amount,
			BankAccount: common.NullString(bankLabel),
			IsPaid:      true,
			PaidDate:    &date,
		})
		if err != nil {
			return fmt.Errorf("create receivable: %w", err)
		}

		err = r.GetAuditHistoryRepository().Create(actx, &models.CreateAuditHistoryIn{
			TenantID:   tenantID,
			EntityType: models.AuditEntityReceivable,
			EntityID:   created.ID,
			Action:     models.AuditActionCreate,
			Origin:     models.AuditOriginImport,
			Payload:    payload,
		})
		if err != nil {
			return fmt.Errorf("create audit history: %w", err)
		}

		id = created.ID
		return nil
	})

	return id, err
}

func (s *ofxService) createPayable(ctx context.Context, tenantID string, tx ofx.Transaction, description, bankLabel string, date time.Time) (string, error) {
	supplierID, err := s.srv.sqlRepo.GetSupplierRepository().GetOrCreate(ctx, tenantID, models.ImportedSupplierName)
	if err != nil {
		return "", fmt.Errorf("resolve supplier: %w", err)
	}

	created, err := s.srv.sqlRepo.GetPayableRepository().Create(ctx, &models.CreatePayableIn{
		TenantID:       tenantID,
		DueDate:        date,
		CompetenceDate: date,
		Description:    description,
		Reference:      common.NullString(tx.FITID),
		Amount:         tx.Amount,
		SupplierID:     supplierID,
		BankAccount:    common.NullString(bankLabel),
		IsPaid:         true,
		PaidDate:       &date,
	})
	if err != nil {
		return "", fmt.Errorf("create payable: %w", err)
	}

	return created.ID, nil
}
