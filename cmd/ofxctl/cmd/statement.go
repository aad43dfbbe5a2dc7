package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sellerdesk/go-fin-ledger/internal/services"
)

const (
	flagBatch  = "batch"
	flagOutput = "out"
)

func newStatementCmd() *cobra.Command {
	statementCmd := &cobra.Command{
		Use:     "statement",
		Short:   "Download the archived OFX file of an import",
		Example: "ofxctl statement --tenant=acme --batch=0b6f2f3c-1d1e-4a63-9f1e-5d8e2c3b4a5f --out=statement.ofx",
		Args:    cobra.NoArgs,
		RunE:    runStatement,
	}
	statementCmd.Flags().String(flagTenant, "", "tenant id")
	statementCmd.Flags().String(flagBatch, "", "import batch id")
	statementCmd.Flags().String(flagOutput, "-", `destination file, "-" for stdout`)
	_ = statementCmd.MarkFlagRequired(flagTenant)
	_ = statementCmd.MarkFlagRequired(flagBatch)

	return statementCmd
}

func runStatement(ccmd *cobra.Command, args []string) error {
	ctx, tenantID, err := tenantContext(ccmd)
	if err != nil {
		return err
	}

	batchID, _ := ccmd.Flags().GetString(flagBatch)
	if batchID == "" {
		return fmt.Errorf("--%s is required", flagBatch)
	}
	out, _ := ccmd.Flags().GetString(flagOutput)

	return withServices("ofxctl", func(srv *services.Services) error {
		file, err := srv.OfxImportHistory.GetStatement(ctx, tenantID, batchID)
		if err != nil {
			return err
		}

		if out == "" || out == "-" {
			_, err = ccmd.OutOrStdout().Write(file.Content)
			return err
		}

		return os.WriteFile(out, file.Content, 0o600)
	})
}
