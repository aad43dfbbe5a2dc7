package ofx

import "strings"

const (
	tagOfx         = "<OFX>"
	headerMarker   = "OFXHEADER"
	tagStmtTrn     = "<STMTTRN>"
	closeStmtTrnTg = "</STMTTRN>"
)

type ValidationResult struct {
	Valid  bool
	Reason error
}

// Err returns nil for a valid result, otherwise the rejection reason.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return r.Reason
}

// Validate is a cheap structural check run before Parse. The format check runs first.
func Validate(raw string) ValidationResult {
	if !strings.Contains(raw, tagOfx) && !strings.Contains(raw, headerMarker) {
		return ValidationResult{Reason: ErrNotOfxFormat}
	}

	if !strings.Contains(raw, tagStmtTrn) {
		return ValidationResult{Reason: ErrNoTransactions}
	}

	return ValidationResult{Valid: true}
}
