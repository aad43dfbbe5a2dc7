package ofx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTag(t *testing.T) {
	tests := []struct {
		name    string
		content string
		tag     string
		want    string
		wantOk  bool
	}{
		{
			name:    "sgml unclosed tag",
			content: "<STMTTRN>\n<DTPOSTED>20240115\n<TRNAMT>-10.00\n</STMTTRN>",
			tag:     "DTPOSTED",
			want:    "20240115",
			wantOk:  true,
		},
		{
			name:    "xml closed tag",
			content: "<MEMO>  Pagamento boleto </MEMO>",
			tag:     "MEMO",
			want:    "Pagamento boleto",
			wantOk:  true,
		},
		{
			name:    "first occurrence wins",
			content: "<NAME>first<NAME>second",
			tag:     "NAME",
			want:    "first",
			wantOk:  true,
		},
		{
			name:    "value runs to end of input",
			content: "<FITID>ABC\n",
			tag:     "FITID",
			want:    "ABC",
			wantOk:  true,
		},
		{
			name:    "present but empty",
			content: "<MEMO></MEMO>",
			tag:     "MEMO",
			want:    "",
			wantOk:  true,
		},
		{
			name:    "absent",
			content: "<NAME>Loja",
			tag:     "MEMO",
			want:    "",
			wantOk:  false,
		},
		{
			name:    "does not match a longer tag name",
			content: "<TRNAMTX>1<TRNAMT>2",
			tag:     "TRNAMT",
			want:    "2",
			wantOk:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractTag(tt.content, tt.tag)

			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
