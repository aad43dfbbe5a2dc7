package ofx

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Direction string

const (
	DirectionCredit Direction = "CREDIT"
	DirectionDebit  Direction = "DEBIT"
)

const DefaultDescription = "Transação importada"

// Transaction is one normalized <STMTTRN> block. Amount is always non-negative,
// the sign lives in Direction.
type Transaction struct {
	Direction   Direction
	PostedDate  string // YYYY-MM-DD
	Amount      decimal.Decimal
	Description string
	FITID       string
	CheckNumber string
	Memo        string
}

func (t Transaction) HasFITID() bool {
	return t.FITID != ""
}

// CompositeDescription is the ledger description, "<description> - <memo>"
// when the memo adds something.
func (t Transaction) CompositeDescription() string {
	if t.Memo != "" && t.Memo != t.Description {
		return t.Description + " - " + t.Memo
	}
	return t.Description
}

// NormalizeBlock converts the body of one <STMTTRN> region. ok is false when
// the block has no usable DTPOSTED or TRNAMT, such blocks are dropped.
func NormalizeBlock(block string) (tx Transaction, ok bool) {
	posted := tagValue(block, "DTPOSTED")
	rawAmount := tagValue(block, "TRNAMT")
	if posted == "" || rawAmount == "" {
		return tx, false
	}

	postedDate, ok := formatPostedDate(posted)
	if !ok {
		return tx, false
	}

	amount, err := parseAmount(rawAmount)
	if err != nil {
		return tx, false
	}

	// TRNTYPE wins for CREDIT, otherwise the sign decides. A positive DEBIT
	// line is booked as CREDIT, some banks only get the sign right.
	direction := DirectionDebit
	if tagValue(block, "TRNTYPE") == string(DirectionCredit) || amount.IsPositive() {
		direction = DirectionCredit
	}

	memo := tagValue(block, "MEMO")
	description := memo
	if description == "" {
		description = tagValue(block, "NAME")
	}
	if description == "" {
		description = DefaultDescription
	}

	return Transaction{
		Direction:   direction,
		PostedDate:  postedDate,
		Amount:      amount.Abs(),
		Description: description,
		FITID:       tagValue(block, "FITID"),
		CheckNumber: tagValue(block, "CHECKNUM"),
		Memo:        memo,
	}, true
}

// formatPostedDate keeps YYYYMMDD of an OFX datetime (20240315120000[-3:BRT]).
func formatPostedDate(v string) (string, bool) {
	if len(v) < 8 {
		return "", false
	}
	return v[0:4] + "-" + v[4:6] + "-" + v[6:8], true
}

// parseAmount accepts "-12.50" as well as the "-12,50" and "-1.234,56" some
// brazilian banks emit. The right-most separator is the decimal one.
func parseAmount(v string) (decimal.Decimal, error) {
	if comma := strings.LastIndex(v, ","); comma >= 0 {
		if strings.LastIndex(v, ".") < comma {
			v = strings.ReplaceAll(v[:comma], ".", "") + "." + v[comma+1:]
		} else {
			v = strings.ReplaceAll(v, ",", "")
		}
	}
	return decimal.NewFromString(v)
}
