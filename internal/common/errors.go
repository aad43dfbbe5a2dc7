package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRowsAffected        = errors.New("no rows affected")
	ErrValidation            = errors.New("validation failed")
	ErrDataNotFound          = errors.New("data not found")
	ErrInternalServerError   = errors.New("internal server error")
	ErrInvalidFormatDate     = errors.New("invalid format date")
	ErrIDEmpty               = errors.New("ID is empty")
	ErrUnableToCreate        = errors.New("unable to create data")
	ErrFilePathEmpty         = errors.New("file path is empty")
	ErrInvalidAmount         = errors.New("amount must not be negative")
	ErrInvalidFingerprint    = errors.New("idempotency key cannot be reused for different requests payload")
	ErrRequestBeingProcessed = errors.New("request with same idempotency key is being processed")
	ErrNoRows                = sql.ErrNoRows

	ErrMissingTenant         = errors.New("missing tenant")
	ErrMissingFileContent    = errors.New("conteúdo do arquivo é obrigatório")
	ErrFileTooLarge          = errors.New("arquivo excede o tamanho máximo permitido")
	ErrNoTransactionsFound   = errors.New("nenhuma transação válida encontrada no arquivo")
	ErrUnexpectedImport      = errors.New("erro inesperado ao importar arquivo OFX")
	ErrUnexpectedPreview     = errors.New("erro inesperado ao processar arquivo OFX")
	ErrMalformedStatement    = errors.New("erro ao processar arquivo OFX: estrutura inválida")
	ErrInvalidRequestBody    = errors.New("corpo da requisição inválido")
	ErrBankAccountNotFound   = errors.New("bank account not found or inactive")
	ErrStorageNotConfigured  = errors.New("cloud storage is not configured")
	ErrPublisherNotAvailable = errors.New("publisher is not available")
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}

func (e WrapError) Unwrap() error {
	return e.Err
}
