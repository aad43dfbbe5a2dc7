// Package ofx reads bank statements in OFX format (SGML 1.x and XML 2.x).
//
// Parsing is tolerant: values are scanned tag by tag instead of decoding the
// full aggregate tree, so statements that strict decoders reject still import.
package ofx

import (
	"strings"
)

const DefaultCurrency = "BRL"

type Document struct {
	BankID         string
	AccountID      string
	AccountType    string
	Currency       string
	StatementStart string
	StatementEnd   string
	Transactions   []Transaction
}

// Parse reads the header fields and every <STMTTRN> block of raw, in file
// order. Anything before <OFX> (SGML or XML headers) is ignored.
func Parse(raw string) (*Document, error) {
	content := raw
	if idx := strings.Index(raw, tagOfx); idx >= 0 {
		content = raw[idx:]
	}

	doc := &Document{
		BankID:         tagValue(content, "BANKID"),
		AccountID:      tagValue(content, "ACCTID"),
		AccountType:    tagValue(content, "ACCTTYPE"),
		Currency:       tagValue(content, "CURDEF"),
		StatementStart: tagValue(content, "DTSTART"),
		StatementEnd:   tagValue(content, "DTEND"),
	}
	if doc.Currency == "" {
		doc.Currency = DefaultCurrency
	}

	blocks, err := transactionBlocks(content)
	if err != nil {
		return nil, err
	}

	doc.Transactions = make([]Transaction, 0, len(blocks))
	for _, block := range blocks {
		if tx, ok := NormalizeBlock(block); ok {
			doc.Transactions = append(doc.Transactions, tx)
		}
	}

	return doc, nil
}

// transactionBlocks returns the bodies of the non overlapping
// <STMTTRN>...</STMTTRN> regions. An unterminated region ends the scan.
func transactionBlocks(content string) ([]string, error) {
	var (
		blocks []string
		offset int
	)

	for {
		start := strings.Index(content[offset:], tagStmtTrn)
		if start < 0 {
			break
		}
		bodyStart := offset + start + len(tagStmtTrn)

		end := strings.Index(content[bodyStart:], closeStmtTrnTg)
		if end < 0 {
			break
		}

		body := content[bodyStart : bodyStart+end]
		if nested := strings.Index(body, tagStmtTrn); nested >= 0 {
			return nil, &ParseError{Offset: bodyStart + nested, Err: errNestedBlock}
		}

		blocks = append(blocks, body)
		offset = bodyStart + end + len(closeStmtTrnTg)
	}

	return blocks, nil
}
