package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ImportedCustomerName = "Cliente (importado)"
	ImportedSupplierName = "Fornecedor (importado)"

	AuditEntityReceivable = "receivable"
	AuditActionCreate     = "create"
	AuditOriginImport     = "import"
)

type Payable struct {
	ID             string
	TenantID       string
	DueDate        time.Time
	CompetenceDate time.Time
	Description    string
	Reference      *string
	Amount         decimal.Decimal
	SupplierID     string
	BankAccount    *string
	IsPaid         bool
	PaidDate       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CreatePayableIn field order is the insert argument order.
type CreatePayableIn struct {
	TenantID       string
	DueDate        time.Time
	CompetenceDate time.Time
	Description    string
	Reference      *string
	Amount         decimal.Decimal
	SupplierID     string
	BankAccount    *string
	IsPaid         bool
	PaidDate       *time.Time
}

type Receivable struct {
	ID          string
	TenantID    string
	ReceiptDate time.Time
	Customer    string
	Description string
	Amount      decimal.Decimal
	BankAccount *string
	IsPaid      bool
	PaidDate    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateReceivableIn field order is the insert argument order.
type CreateReceivableIn struct {
	TenantID    string
	ReceiptDate time.Time
	Customer    string
	Description string
	Amount      decimal.Decimal
	BankAccount *string
	IsPaid      bool
	PaidDate    *time.Time
}

type Supplier struct {
	ID        string
	TenantID  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BankAccount struct {
	ID       string
	TenantID string
	Name     string
	BankName string
	IsActive bool
}

// Label is how the account is written on ledger rows.
func (b BankAccount) Label() string {
	return b.Name + " - " + b.BankName
}

// CreateAuditHistoryIn field order is the insert argument order.
type CreateAuditHistoryIn struct {
	TenantID   string
	EntityType string
	EntityID   string
	Action     string
	Origin     string
	Payload    json.RawMessage
}
