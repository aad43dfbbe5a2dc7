package models

import "time"

const EventTypeOfxImportCompleted = "ofx.import.completed"

// OfxImportEvent is published after every import that passed parsing.
type OfxImportEvent struct {
	EventType     string    `json:"eventType"`
	BatchID       string    `json:"batchId,omitempty"`
	TenantID      string    `json:"tenantId"`
	BankAccountID string    `json:"bankAccountId,omitempty"`
	BankID        string    `json:"bankId"`
	AccountID     string    `json:"accountId"`
	Currency      string    `json:"currency"`
	Total         int       `json:"total"`
	Imported      int       `json:"imported"`
	Duplicates    int       `json:"duplicates"`
	Errors        int       `json:"errors"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func NewOfxImportEvent(tenantID, bankAccountID string, out *OfxImportOut, now time.Time) OfxImportEvent {
	return OfxImportEvent{
		EventType:     EventTypeOfxImportCompleted,
		BatchID:       out.BatchID,
		TenantID:      tenantID,
		BankAccountID: bankAccountID,
		BankID:        out.AccountInfo.BankID,
		AccountID:     out.AccountInfo.AccountID,
		Currency:      out.AccountInfo.Currency,
		Total:         out.Results.Total,
		Imported:      out.Results.Imported,
		Duplicates:    out.Results.Duplicates,
		Errors:        out.Results.Errors,
		OccurredAt:    now,
	}
}
