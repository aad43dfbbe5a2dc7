package models

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Decimal renders amounts as bare JSON numbers (150.5, not "150.5"), the
// shape the OFX endpoints promise. Input accepts both forms.
type Decimal struct {
	decimal.Decimal
}

func NewDecimalFromExternal(d decimal.Decimal) Decimal {
	return Decimal{Decimal: d}
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.Decimal.String()), nil
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(bytes.TrimSpace(b), `"`)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		d.Decimal = decimal.Zero
		return nil
	}

	v, err := decimal.NewFromString(string(b))
	if err != nil {
		return fmt.Errorf("invalid decimal %q: %w", b, err)
	}
	d.Decimal = v

	return nil
}
