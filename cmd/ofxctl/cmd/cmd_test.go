package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sgmlStatement = filepath.Join("..", "..", "..", "internal", "ofx", "testdata", "sgml_statement.ofx")

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestInspect(t *testing.T) {
	out, err := execute(t, "", "inspect", sgmlStatement)
	require.NoError(t, err)

	var res inspectResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))

	assert.True(t, res.Valid)
	assert.Equal(t, 3, res.Transactions)
	require.NotNil(t, res.AccountInfo)
	assert.Equal(t, "0341", res.AccountInfo.BankID)
	assert.Equal(t, "123456", res.AccountInfo.AccountID)
	require.NotNil(t, res.Strict)
	assert.Len(t, res.Strict.Transactions, 3)
	assert.Empty(t, res.Mismatches)
	assert.Empty(t, res.StrictError)
}

func TestInspect_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		stdin      string
		wantReason string
	}{
		{
			name:       "not ofx",
			stdin:      "date,amount\n2024-01-01,10",
			wantReason: "arquivo não está no formato OFX",
		},
		{
			name:       "no transactions",
			stdin:      "<OFX><BANKID>0341</OFX>",
			wantReason: "nenhuma transação encontrada no arquivo",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.stdin, "inspect", "-")
			require.NoError(t, err)

			var res inspectResult
			require.NoError(t, json.Unmarshal([]byte(out), &res))
			assert.False(t, res.Valid)
			assert.Equal(t, tt.wantReason, res.Reason)
		})
	}
}

func TestPreview_Offline(t *testing.T) {
	out, err := execute(t, "", "preview", sgmlStatement, "-o", "yaml")
	require.NoError(t, err)

	var res struct {
		Success      bool `yaml:"success"`
		Transactions []struct {
			ID   string `yaml:"id"`
			Type string `yaml:"type"`
			Date string `yaml:"date"`
		} `yaml:"transactions"`
		AccountInfo struct {
			Currency string `yaml:"currency"`
		} `yaml:"accountInfo"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))

	assert.True(t, res.Success)
	assert.Equal(t, "BRL", res.AccountInfo.Currency)
	require.Len(t, res.Transactions, 3)
	assert.Equal(t, "AB123", res.Transactions[0].ID)
	assert.Equal(t, "CREDIT", res.Transactions[0].Type)
	assert.Equal(t, "2024-01-10", res.Transactions[0].Date)
	assert.Equal(t, "DEBIT", res.Transactions[1].Type)
}

func TestPreview_CheckDuplicatesNeedsTenant(t *testing.T) {
	// fails before any store is touched
	_, err := execute(t, "<OFX><STMTTRN></STMTTRN></OFX>", "preview", "-", "--check-duplicates")
	require.Error(t, err)
}

func TestImport_RequiresTenant(t *testing.T) {
	_, err := execute(t, "", "import", sgmlStatement)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tenant")
}

func TestStatement_RequiresFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no tenant", args: []string{"statement", "--batch=b-1"}, want: "tenant"},
		{name: "no batch", args: []string{"statement", "--tenant=acme"}, want: "batch"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRender(t *testing.T) {
	v := map[string]any{"kind": "ofxPreview", "total": 2}

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr bool
	}{
		{name: "json", format: "json", want: "{\n  \"kind\": \"ofxPreview\",\n  \"total\": 2\n}\n"},
		{name: "yaml", format: "yaml", want: "kind: ofxPreview\ntotal: 2\n"},
		{name: "unknown", format: "xml", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			err := render(buf, tt.format, v)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
