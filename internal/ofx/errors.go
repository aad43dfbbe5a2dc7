package ofx

import (
	"errors"
	"fmt"
)

var (
	ErrNotOfxFormat   = errors.New("arquivo não está no formato OFX")
	ErrNoTransactions = errors.New("nenhuma transação encontrada no arquivo")

	errNestedBlock = errors.New("nested <STMTTRN> block")
)

// ParseError is returned when the statement structure cannot be scanned.
type ParseError struct {
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse OFX at offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
