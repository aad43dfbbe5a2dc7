package models

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/sellerdesk/go-fin-ledger/internal/common"
)

const kindOfxImportBatch = "ofxImportBatch"

type OfxImportBatch struct {
	ID            string
	TenantID      string
	BankAccountID *string
	FileSHA256    string
	BankID        string
	AccountID     string
	Currency      string
	Total         int
	Imported      int
	Duplicates    int
	Errors        int
	ArchivePath   string
	CreatedAt     *time.Time
}

// CreateOfxImportBatchIn field order is the insert argument order.
type CreateOfxImportBatchIn struct {
	TenantID      string
	BankAccountID *string
	FileSHA256    string
	BankID        string
	AccountID     string
	Currency      string
	Total         int
	Imported      int
	Duplicates    int
	Errors        int
	ArchivePath   string
}

func (b OfxImportBatch) GetCursor() string {
	offsetBytes := []byte(b.CreatedAt.Format(time.RFC3339Nano))
	return base64.StdEncoding.EncodeToString(offsetBytes)
}

func (b OfxImportBatch) ToModelResponse() DoGetOfxImportBatchResponse {
	var bankAccountID string
	if b.BankAccountID != nil {
		bankAccountID = *b.BankAccountID
	}

	return DoGetOfxImportBatchResponse{
		Kind:          kindOfxImportBatch,
		ID:            b.ID,
		BankAccountID: bankAccountID,
		FileSHA256:    b.FileSHA256,
		BankID:        b.BankID,
		AccountID:     b.AccountID,
		Currency:      b.Currency,
		Total:         b.Total,
		Imported:      b.Imported,
		Duplicates:    b.Duplicates,
		Errors:        b.Errors,
		ArchivePath:   b.ArchivePath,
		CreatedAt:     b.CreatedAt.In(common.GetLocation()).Format(common.DateFormatYYYYMMDDWithTime),
	}
}

type OfxImportBatchFilterOptions struct {
	TenantID      string
	BankAccountID string
	StartDate     *time.Time
	EndDate       *time.Time

	// Pagination filter
	Limit           int
	AscendingOrder  bool
	AfterCreatedAt  *time.Time
	BeforeCreatedAt *time.Time
}

type DoGetOfxImportStatementRequest struct {
	ID string `param:"id" json:"id" validate:"required,uuid" example:"0b6f2f3c-1d1e-4a63-9f1e-5d8e2c3b4a5f"`
}

type DoGetListOfxImportBatchRequest struct {
	BankAccountID string `query:"bankAccountId" example:"6f1c7d1e-8f7b-4a36-9c59-2d7f5d8b1c11"`
	StartDate     string `query:"startDate" example:"2024-01-01"`
	EndDate       string `query:"endDate" example:"2024-01-31"`
	Limit         int    `query:"limit" example:"10"`
	NextCursor    string `query:"nextCursor" example:"abc"`
	PrevCursor    string `query:"prevCursor" example:"cba"`
}

type DoGetOfxImportBatchResponse struct {
	Kind          string `json:"kind" example:"ofxImportBatch"`
	ID            string `json:"id" example:"0b6f2f3c-1d1e-4a63-9f1e-5d8e2c3b4a5f"`
	BankAccountID string `json:"bankAccountId" example:"6f1c7d1e-8f7b-4a36-9c59-2d7f5d8b1c11"`
	FileSHA256    string `json:"fileSha256" example:"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
	BankID        string `json:"bankId" example:"0341"`
	AccountID     string `json:"accountId" example:"123456"`
	Currency      string `json:"currency" example:"BRL"`
	Total         int    `json:"total" example:"10"`
	Imported      int    `json:"imported" example:"8"`
	Duplicates    int    `json:"duplicates" example:"2"`
	Errors        int    `json:"errors" example:"0"`
	ArchivePath   string `json:"archivePath" example:"ofx-imports/tenant/2024/01/9f86d0.ofx"`
	CreatedAt     string `json:"createdAt" example:"2006-01-02 15:04:05"`
}

func (req DoGetListOfxImportBatchRequest) ToFilterOpts(tenantID string) (*OfxImportBatchFilterOptions, error) {
	opts := &OfxImportBatchFilterOptions{
		TenantID:      tenantID,
		BankAccountID: req.BankAccountID,
		Limit:         req.Limit,
	}

	if req.Limit < 0 {
		return nil, GetErrMap(ErrKeyLimitMustBeGreaterThanZero)
	}

	if req.StartDate == "" || req.EndDate == "" {
		if req.StartDate != "" || req.EndDate != "" {
			return nil, GetErrMap(ErrKeyStartDateAndEndDateRequiredIfOneIsFilled)
		}
	} else {
		startDate, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.StartDate)
		if err != nil {
			return nil, GetErrMap(ErrKeyInvalidFormatDate, fmt.Sprintf("date %s format must be YYYY-MM-DD", req.StartDate))
		}
		opts.StartDate = startDate

		endDate, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.EndDate)
		if err != nil {
			return nil, GetErrMap(ErrKeyInvalidFormatDate, fmt.Sprintf("date %s format must be YYYY-MM-DD", req.EndDate))
		}
		opts.EndDate = endDate

		if startDate.After(*endDate) {
			return nil, GetErrMap(ErrKeyStartDateIsAfterEndDate)
		}
	}

	if req.Limit == 0 {
		opts.Limit = DefaultPageLimit
	}

	// over-fetch one row to know whether a next page exists
	opts.Limit += 1

	if req.NextCursor != "" {
		afterTime, err := decodeCreatedAtCursor(req.NextCursor)
		if err != nil {
			return nil, err
		}
		opts.AfterCreatedAt = &afterTime
	}

	if req.NextCursor == "" && req.PrevCursor != "" {
		prevTime, err := decodeCreatedAtCursor(req.PrevCursor)
		if err != nil {
			return nil, err
		}
		opts.BeforeCreatedAt = &prevTime
		opts.AscendingOrder = true
	}

	return opts, nil
}

const DefaultPageLimit = 10

func decodeCreatedAtCursor(cursor string) (decodedTime time.Time, err error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return decodedTime, GetErrMap(ErrKeyInvalidCursor, err.Error())
	}

	decodedTime, err = time.Parse(time.RFC3339Nano, string(decodedBytes))
	if err != nil {
		return decodedTime, GetErrMap(ErrKeyInvalidCursor, err.Error())
	}

	return decodedTime, nil
}

// OfxStatementFile is an archived raw statement.
type OfxStatementFile struct {
	BatchID  string
	FileName string
	Content  []byte
}
