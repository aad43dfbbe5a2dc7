package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sellerdesk/go-fin-ledger/internal/models"
	"github.com/sellerdesk/go-fin-ledger/internal/ofx"
)

type inspectResult struct {
	Valid        bool                   `json:"valid"`
	Reason       string                 `json:"reason,omitempty"`
	AccountInfo  *models.OfxAccountInfo `json:"accountInfo,omitempty"`
	Transactions int                    `json:"transactions"`
	Strict       *ofx.StrictReport      `json:"strict,omitempty"`
	StrictError  string                 `json:"strictError,omitempty"`
	Mismatches   []ofx.Mismatch         `json:"mismatches,omitempty"`
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "inspect FILE",
		Short:   "Validate a statement and compare the tolerant parse with a strict OFX decoder",
		Example: "ofxctl inspect extrato.ofx -o yaml",
		Args:    cobra.ExactArgs(1),
		RunE:    runInspect,
	}
}

func runInspect(ccmd *cobra.Command, args []string) error {
	format, _ := ccmd.Flags().GetString(flagFormat)

	raw, err := readStatementFile(ccmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	return render(ccmd.OutOrStdout(), format, inspect(raw))
}

func inspect(raw string) inspectResult {
	if err := ofx.Validate(raw).Err(); err != nil {
		return inspectResult{Reason: err.Error()}
	}

	doc, err := ofx.Parse(raw)
	if err != nil {
		return inspectResult{Reason: err.Error()}
	}

	info := models.NewOfxAccountInfo(doc)
	res := inspectResult{
		Valid:        true,
		AccountInfo:  &info,
		Transactions: len(doc.Transactions),
	}

	report, err := ofx.InspectStrict(strings.NewReader(raw))
	if err != nil {
		// plenty of banks ship files only the tolerant parser accepts
		res.StrictError = err.Error()
		return res
	}
	res.Strict = report
	res.Mismatches = ofx.CrossCheck(doc, report)

	return res
}
