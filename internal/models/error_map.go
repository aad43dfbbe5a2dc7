package models

import (
	"errors"

	"github.com/sellerdesk/go-fin-ledger/internal/common"
)

const (
	ErrKeyLimitMustBeGreaterThanZero               = "ErrKeyLimitMustBeGreaterThanZero"
	ErrKeyStartDateAndEndDateRequiredIfOneIsFilled = "ErrKeyStartDateAndEndDateRequiredIfOneIsFilled"
	ErrKeyInvalidFormatDate                        = "ErrKeyInvalidFormatDate"
	ErrKeyStartDateIsAfterEndDate                  = "ErrKeyStartDateIsAfterEndDate"
	ErrKeyInvalidCursor                            = "ErrKeyInvalidCursor"
	ErrKeyFileContentRequired                      = "fileContent_required"
	ErrKeyDataNotFound                             = "ErrKeyDataNotFound"
	ErrKeyDatabaseError                            = "ErrKeyDatabaseError"
	ErrKeyStatementNotArchived                     = "ErrKeyStatementNotArchived"
	ErrKeyBatchIDUUID                              = "id_uuid"
	ErrKeyStorageError                             = "ErrKeyStorageError"
)

var MapErrors = map[string]ErrorDetail{
	ErrKeyLimitMustBeGreaterThanZero: {
		Code:         "LIMIT_MUST_BE_GREATER_THAN_ZERO",
		ErrorMessage: errors.New("limit must be greater than zero"),
	},
	ErrKeyStartDateAndEndDateRequiredIfOneIsFilled: {
		Code:         "START_DATE_AND_END_DATE_REQUIRED",
		ErrorMessage: errors.New("startDate and endDate are required if one of them is filled"),
	},
	ErrKeyInvalidFormatDate: {
		Code:         "INVALID_FORMAT_DATE",
		ErrorMessage: errors.New("invalid format date"),
	},
	ErrKeyStartDateIsAfterEndDate: {
		Code:         "START_DATE_IS_AFTER_END_DATE",
		ErrorMessage: errors.New("startDate must not be after endDate"),
	},
	ErrKeyInvalidCursor: {
		Code:         "INVALID_CURSOR",
		ErrorMessage: errors.New("invalid cursor"),
	},
	ErrKeyFileContentRequired: {
		Code:         "FILE_CONTENT_REQUIRED",
		ErrorMessage: common.ErrMissingFileContent,
	},
	ErrKeyDataNotFound: {
		Code:         "DATA_NOT_FOUND",
		ErrorMessage: errors.New("data not found"),
	},
	ErrKeyDatabaseError: {
		Code:         "DATABASE_ERROR",
		ErrorMessage: errors.New("database error"),
	},
	ErrKeyBatchIDUUID: {
		Code:         "BATCH_ID_INVALID",
		ErrorMessage: errors.New("id must be a valid uuid"),
	},
	ErrKeyStatementNotArchived: {
		Code:         "STATEMENT_NOT_ARCHIVED",
		ErrorMessage: errors.New("statement file was not archived for this import"),
	},
	ErrKeyStorageError: {
		Code:         "STORAGE_ERROR",
		ErrorMessage: errors.New("storage error"),
	},
}
