package ofx

import (
	"fmt"
	"io"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"
)

// StrictReport is what a standards compliant OFX decoder sees in a statement. It is an
// operator diagnostic, the import path never depends on it.
type StrictReport struct {
	Version      string              `json:"version" yaml:"version"`
	Statements   []StrictStatement   `json:"statements" yaml:"statements"`
	Transactions []StrictTransaction `json:"transactions" yaml:"transactions"`
}

type StrictStatement struct {
	Kind      string `json:"kind" yaml:"kind"`
	BankID    string `json:"bankId,omitempty" yaml:"bankId,omitempty"`
	AccountID string `json:"accountId" yaml:"accountId"`
	Currency  string `json:"currency" yaml:"currency"`
	Count     int    `json:"count" yaml:"count"`
}

type StrictTransaction struct {
	FITID  string          `json:"fitid" yaml:"fitid"`
	Type   string          `json:"type" yaml:"type"`
	Date   string          `json:"date" yaml:"date"`
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
	Name   string          `json:"name,omitempty" yaml:"name,omitempty"`
	Memo   string          `json:"memo,omitempty" yaml:"memo,omitempty"`
}

// InspectStrict decodes r with ofxgo.
func InspectStrict(r io.Reader) (*StrictReport, error) {
	resp, err := ofxgo.ParseResponse(r)
	if err != nil {
		return nil, fmt.Errorf("strict decode failed: %w", err)
	}

	report := &StrictReport{Version: resp.Version.String()}

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok {
			continue
		}
		s := StrictStatement{
			Kind:      "bank",
			BankID:    string(stmt.BankAcctFrom.BankID),
			AccountID: string(stmt.BankAcctFrom.AcctID),
			Currency:  stmt.CurDef.String(),
		}
		if stmt.BankTranList != nil {
			s.Count = len(stmt.BankTranList.Transactions)
			report.Transactions = append(report.Transactions, strictTransactions(stmt.BankTranList.Transactions)...)
		}
		report.Statements = append(report.Statements, s)
	}

	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok {
			continue
		}
		s := StrictStatement{
			Kind:      "creditcard",
			AccountID: string(stmt.CCAcctFrom.AcctID),
			Currency:  stmt.CurDef.String(),
		}
		if stmt.BankTranList != nil {
			s.Count = len(stmt.BankTranList.Transactions)
			report.Transactions = append(report.Transactions, strictTransactions(stmt.BankTranList.Transactions)...)
		}
		report.Statements = append(report.Statements, s)
	}

	return report, nil
}

func strictTransactions(in []ofxgo.Transaction) []StrictTransaction {
	out := make([]StrictTransaction, 0, len(in))
	for _, tx := range in {
		amount, err := decimal.NewFromString(tx.TrnAmt.String())
		if err != nil {
			amount = decimal.Zero
		}
		out = append(out, StrictTransaction{
			FITID:  string(tx.FiTID),
			Type:   tx.TrnType.String(),
			Date:   tx.DtPosted.Format("2006-01-02"),
			Amount: amount,
			Name:   string(tx.Name),
			Memo:   string(tx.Memo),
		})
	}
	return out
}

// Mismatch describes a FITID the two decoders disagree on.
type Mismatch struct {
	FITID  string `json:"fitid" yaml:"fitid"`
	Reason string `json:"reason" yaml:"reason"`
}

// CrossCheck compares the tolerant parse against the strict one by FITID.
// Transactions without FITID are not compared.
func CrossCheck(doc *Document, report *StrictReport) []Mismatch {
	tolerant := make(map[string]Transaction, len(doc.Transactions))
	for _, tx := range doc.Transactions {
		if tx.HasFITID() {
			tolerant[tx.FITID] = tx
		}
	}

	var mismatches []Mismatch
	seen := make(map[string]struct{}, len(report.Transactions))
	for _, st := range report.Transactions {
		if st.FITID == "" {
			continue
		}
		seen[st.FITID] = struct{}{}

		tx, ok := tolerant[st.FITID]
		switch {
		case !ok:
			mismatches = append(mismatches, Mismatch{FITID: st.FITID, Reason: "missing from tolerant parse"})
		case !tx.Amount.Equal(st.Amount.Abs()):
			mismatches = append(mismatches, Mismatch{
				FITID:  st.FITID,
				Reason: fmt.Sprintf("amount %s != %s", tx.Amount, st.Amount.Abs()),
			})
		case tx.PostedDate != st.Date:
			mismatches = append(mismatches, Mismatch{
				FITID:  st.FITID,
				Reason: fmt.Sprintf("date %s != %s", tx.PostedDate, st.Date),
			})
		}
	}

	for _, tx := range doc.Transactions {
		if !tx.HasFITID() {
			continue
		}
		if _, ok := seen[tx.FITID]; !ok {
			mismatches = append(mismatches, Mismatch{FITID: tx.FITID, Reason: "missing from strict parse"})
		}
	}

	return mismatches
}
