package models

import (
	"fmt"

	"github.com/sellerdesk/go-fin-ledger/internal/ofx"
)

const (
	kindOfxPreview = "ofxPreview"
	kindOfxImport  = "ofxImport"
)

type OfxPreviewRequest struct {
	FileContent string `json:"fileContent" validate:"required" example:"OFXHEADER:100..."`
}

type OfxImportRequest struct {
	FileContent   string `json:"fileContent" validate:"required" example:"OFXHEADER:100..."`
	BankAccountID string `json:"bankAccountId" example:"6f1c7d1e-8f7b-4a36-9c59-2d7f5d8b1c11"`
}

type OfxPreviewIn struct {
	TenantID    string
	FileContent string
}

type OfxImportIn struct {
	TenantID      string
	FileContent   string
	BankAccountID string
}

type OfxAccountInfo struct {
	BankID    string `json:"bankId"`
	AccountID string `json:"accountId"`
	Currency  string `json:"currency"`
}

func NewOfxAccountInfo(doc *ofx.Document) OfxAccountInfo {
	return OfxAccountInfo{
		BankID:    doc.BankID,
		AccountID: doc.AccountID,
		Currency:  doc.Currency,
	}
}

type OfxPreviewTransaction struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Amount      Decimal `json:"amount"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Memo        string  `json:"memo,omitempty"`
	FITID       string  `json:"fitid,omitempty"`

	// Duplicate is only filled when the caller asked for a ledger lookup.
	Duplicate bool `json:"duplicate,omitempty"`
}

// NewOfxPreviewTransaction uses the FITID as id, or tx-<index> when the bank sent none.
func NewOfxPreviewTransaction(index int, tx ofx.Transaction) OfxPreviewTransaction {
	id := tx.FITID
	if id == "" {
		id = fmt.Sprintf("tx-%d", index)
	}

	return OfxPreviewTransaction{
		ID:          id,
		Date:        tx.PostedDate,
		Amount:      NewDecimalFromExternal(tx.Amount),
		Description: tx.Description,
		Type:        string(tx.Direction),
		Memo:        tx.Memo,
		FITID:       tx.FITID,
	}
}

type OfxPreviewOut struct {
	Kind         string                  `json:"kind"`
	Transactions []OfxPreviewTransaction `json:"transactions"`
	AccountInfo  OfxAccountInfo          `json:"accountInfo"`
}

func NewOfxPreviewOut(doc *ofx.Document) *OfxPreviewOut {
	out := &OfxPreviewOut{
		Kind:         kindOfxPreview,
		Transactions: make([]OfxPreviewTransaction, 0, len(doc.Transactions)),
		AccountInfo:  NewOfxAccountInfo(doc),
	}
	for i, tx := range doc.Transactions {
		out.Transactions = append(out.Transactions, NewOfxPreviewTransaction(i, tx))
	}
	return out
}

type OfxImportedTransaction struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Amount      Decimal `json:"amount"`
	Date        string  `json:"date"`
}

type OfxImportResult struct {
	Total        int                      `json:"total"`
	Imported     int                      `json:"imported"`
	Duplicates   int                      `json:"duplicates"`
	Errors       int                      `json:"errors"`
	Transactions []OfxImportedTransaction `json:"transactions"`
}

// Message is the summary shown to the operator after an import.
func (r OfxImportResult) Message() string {
	return fmt.Sprintf("Importação concluída: %d importadas, %d duplicadas, %d com erro",
		r.Imported, r.Duplicates, r.Errors)
}

type OfxImportOut struct {
	Kind        string          `json:"kind"`
	BatchID     string          `json:"batchId,omitempty"`
	Results     OfxImportResult `json:"results"`
	AccountInfo OfxAccountInfo  `json:"accountInfo"`
}

func NewOfxImportOut(total int, info OfxAccountInfo) *OfxImportOut {
	return &OfxImportOut{
		Kind: kindOfxImport,
		Results: OfxImportResult{
			Total:        total,
			Transactions: make([]OfxImportedTransaction, 0, total),
		},
		AccountInfo: info,
	}
}

type DoOfxPreviewResponse struct {
	Success      bool                    `json:"success"`
	Transactions []OfxPreviewTransaction `json:"transactions"`
	AccountInfo  OfxAccountInfo          `json:"accountInfo"`
}

func NewDoOfxPreviewResponse(out *OfxPreviewOut) DoOfxPreviewResponse {
	return DoOfxPreviewResponse{
		Success:      true,
		Transactions: out.Transactions,
		AccountInfo:  out.AccountInfo,
	}
}

type DoOfxImportResponse struct {
	Success     bool            `json:"success"`
	Message     string          `json:"message"`
	Results     OfxImportResult `json:"results"`
	AccountInfo OfxAccountInfo  `json:"accountInfo"`
}

func NewDoOfxImportResponse(out *OfxImportOut) DoOfxImportResponse {
	return DoOfxImportResponse{
		Success:     true,
		Message:     out.Results.Message(),
		Results:     out.Results,
		AccountInfo: out.AccountInfo,
	}
}

// OfxErrorResponse is the error body of the statement endpoints.
type OfxErrorResponse struct {
	Error string `json:"error" example:"arquivo não está no formato OFX"`
}
