package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sellerdesk/go-fin-ledger/internal/models"
	"github.com/sellerdesk/go-fin-ledger/internal/services"
)

const flagBankAccount = "bank-account"

func newImportCmd() *cobra.Command {
	importCmd := &cobra.Command{
		Use:     "import FILE",
		Short:   "Book the transactions of a statement into the ledger",
		Example: "ofxctl import extrato.ofx --tenant=acme --bank-account=6f1c7d1e-8f7b-4a36-9c59-2d7f5d8b1c11",
		Args:    cobra.ExactArgs(1),
		RunE:    runImport,
	}
	importCmd.Flags().String(flagTenant, "", "tenant id")
	importCmd.Flags().String(flagBankAccount, "", "bank account id the lines are booked against")
	_ = importCmd.MarkFlagRequired(flagTenant)

	return importCmd
}

func runImport(ccmd *cobra.Command, args []string) error {
	format, _ := ccmd.Flags().GetString(flagFormat)
	bankAccountID, _ := ccmd.Flags().GetString(flagBankAccount)

	ctx, tenantID, err := tenantContext(ccmd)
	if err != nil {
		return err
	}

	raw, err := readStatementFile(ccmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	return withServices("ofxctl", func(srv *services.Services) error {
		out, err := srv.Ofx.Import(ctx, models.OfxImportIn{
			TenantID:      tenantID,
			FileContent:   raw,
			BankAccountID: bankAccountID,
		})
		if err != nil {
			return err
		}

		return render(ccmd.OutOrStdout(), format, models.NewDoOfxImportResponse(out))
	})
}
