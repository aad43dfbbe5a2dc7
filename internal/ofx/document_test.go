package ofx

import (
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return string(b)
}

func TestParse_SGMLStatement(t *testing.T) {
	doc, err := Parse(readFixture(t, "sgml_statement.ofx"))
	require.NoError(t, err)

	assert.Equal(t, "0341", doc.BankID)
	assert.Equal(t, "123456", doc.AccountID)
	assert.Equal(t, "CHECKING", doc.AccountType)
	assert.Equal(t, "BRL", doc.Currency)
	assert.Equal(t, "20240101000000[-3:BRT]", doc.StatementStart)
	assert.Equal(t, "20240131000000[-3:BRT]", doc.StatementEnd)

	require.Len(t, doc.Transactions, 3)

	first := doc.Transactions[0]
	assert.Equal(t, DirectionCredit, first.Direction)
	assert.Equal(t, "2024-01-10", first.PostedDate)
	assert.True(t, decimal.NewFromInt(150).Equal(first.Amount))
	assert.Equal(t, "AB123", first.FITID)
	assert.Equal(t, "Pagamento cliente", first.Description)

	second := doc.Transactions[1]
	assert.Equal(t, DirectionDebit, second.Direction)
	assert.Equal(t, "2024-01-15", second.PostedDate)
	assert.True(t, decimal.RequireFromString("89.90").Equal(second.Amount))
	assert.Equal(t, "000123", second.CheckNumber)
	assert.Equal(t, "Energia Eletrica", second.Description)
	assert.Empty(t, second.Memo)

	third := doc.Transactions[2]
	assert.Equal(t, "AB125", third.FITID)
	assert.Equal(t, "Tarifa pacote servicos", third.Description)
}

func TestParse_XMLStatement(t *testing.T) {
	doc, err := Parse(readFixture(t, "xml_statement.ofx"))
	require.NoError(t, err)

	assert.Equal(t, "001", doc.BankID)
	assert.Equal(t, "998877", doc.AccountID)
	assert.Equal(t, "SAVINGS", doc.AccountType)
	assert.Equal(t, "USD", doc.Currency)

	require.Len(t, doc.Transactions, 2)
	assert.Equal(t, "2024-03-15", doc.Transactions[0].PostedDate)
	assert.Equal(t, "Mercado", doc.Transactions[0].Description)
	assert.Equal(t, DirectionCredit, doc.Transactions[1].Direction)
	assert.False(t, doc.Transactions[1].HasFITID())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantCount int
		wantCurr  string
		wantErr   bool
	}{
		{
			name:      "currency defaults to BRL",
			raw:       "<OFX><STMTTRN><DTPOSTED>20240101<TRNAMT>1</STMTTRN></OFX>",
			wantCount: 1,
			wantCurr:  "BRL",
		},
		{
			name:      "blocks missing required fields are skipped",
			raw:       "<OFX><STMTTRN><DTPOSTED>20240101</STMTTRN><STMTTRN><TRNAMT>1</STMTTRN><STMTTRN><DTPOSTED>20240102<TRNAMT>-3</STMTTRN></OFX>",
			wantCount: 1,
			wantCurr:  "BRL",
		},
		{
			name:      "header before ofx tag is ignored",
			raw:       "OFXHEADER:100\n<CURDEF>XXX\n<OFX><CURDEF>EUR<STMTTRN><DTPOSTED>20240101<TRNAMT>1</STMTTRN></OFX>",
			wantCount: 1,
			wantCurr:  "EUR",
		},
		{
			name:      "unterminated block ends the scan",
			raw:       "<OFX><STMTTRN><DTPOSTED>20240101<TRNAMT>1</STMTTRN><STMTTRN><DTPOSTED>20240102<TRNAMT>2</OFX>",
			wantCount: 1,
			wantCurr:  "BRL",
		},
		{
			name:    "nested block is a parse error",
			raw:     "<OFX><STMTTRN><DTPOSTED>20240101<STMTTRN><TRNAMT>1</STMTTRN></OFX>",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.raw)
			if tt.wantErr {
				var parseErr *ParseError
				assert.True(t, errors.As(err, &parseErr))
				assert.ErrorIs(t, err, errNestedBlock)
				assert.Nil(t, doc)
				return
			}

			require.NoError(t, err)
			assert.Len(t, doc.Transactions, tt.wantCount)
			assert.Equal(t, tt.wantCurr, doc.Currency)
		})
	}
}

func TestParse_FieldsDoNotLeakAcrossBlocks(t *testing.T) {
	raw := "<OFX>" +
		"<STMTTRN><DTPOSTED>20240101<TRNAMT>-1<FITID>F1<MEMO>Primeira</STMTTRN>" +
		"<STMTTRN><DTPOSTED>20240102<TRNAMT>-2</STMTTRN>" +
		"</OFX>"

	doc, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, doc.Transactions, 2)

	assert.Equal(t, "F1", doc.Transactions[0].FITID)
	assert.Empty(t, doc.Transactions[1].FITID)
	assert.Empty(t, doc.Transactions[1].Memo)
	assert.Equal(t, DefaultDescription, doc.Transactions[1].Description)
}

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestParse_SGMLStatementTransactions(t *testing.T) {
	doc, err := Parse(readFixture(t, "sgml_statement.ofx"))
	require.NoError(t, err)

	want := []Transaction{
		{
			Direction:   DirectionCredit,
			PostedDate:  "2024-01-10",
			Amount:      decimal.RequireFromString("150.00"),
			Description: "Pagamento cliente",
			FITID:       "AB123",
			Memo:        "Pagamento cliente",
		},
		{
			Direction:   DirectionDebit,
			PostedDate:  "2024-01-15",
			Amount:      decimal.RequireFromString("89.90"),
			Description: "Energia Eletrica",
			FITID:       "AB124",
			CheckNumber: "000123",
		},
		{
			Direction:   DirectionDebit,
			PostedDate:  "2024-01-20",
			Amount:      decimal.RequireFromString("25.50"),
			Description: "Tarifa pacote servicos",
			FITID:       "AB125",
			Memo:        "Tarifa pacote servicos",
		},
	}

	if diff := cmp.Diff(want, doc.Transactions, decimalComparer); diff != "" {
		t.Errorf("Parse() transactions mismatch (-want +got):\n%s", diff)
	}
}
