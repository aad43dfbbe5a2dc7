package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sellerdesk/go-fin-ledger/internal/models"
	"github.com/sellerdesk/go-fin-ledger/internal/services"
)

const flagCheckDuplicates = "check-duplicates"

func newPreviewCmd() *cobra.Command {
	previewCmd := &cobra.Command{
		Use:     "preview FILE",
		Short:   "List the transactions of a statement without booking them",
		Example: "ofxctl preview extrato.ofx --tenant=acme --check-duplicates",
		Args:    cobra.ExactArgs(1),
		RunE:    runPreview,
	}
	previewCmd.Flags().String(flagTenant, "", "tenant id, required with --check-duplicates")
	previewCmd.Flags().Bool(flagCheckDuplicates, false, "flag transactions already in the ledger (needs the database)")

	return previewCmd
}

func runPreview(ccmd *cobra.Command, args []string) error {
	format, _ := ccmd.Flags().GetString(flagFormat)
	checkDuplicates, _ := ccmd.Flags().GetBool(flagCheckDuplicates)

	raw, err := readStatementFile(ccmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	if !checkDuplicates {
		res, err := preview(ccmd.Context(), offlineServices(), raw, "")
		if err != nil {
			return err
		}
		return render(ccmd.OutOrStdout(), format, res)
	}

	ctx, tenantID, err := tenantContext(ccmd)
	if err != nil {
		return err
	}

	return withServices("ofxctl", func(srv *services.Services) error {
		res, err := preview(ctx, srv, raw, tenantID)
		if err != nil {
			return err
		}
		return render(ccmd.OutOrStdout(), format, res)
	})
}

// preview flags ledger duplicates when tenantID is set.
func preview(ctx context.Context, srv *services.Services, raw, tenantID string) (models.DoOfxPreviewResponse, error) {
	out, err := srv.Ofx.Preview(ctx, models.OfxPreviewIn{TenantID: tenantID, FileContent: raw})
	if err != nil {
		return models.DoOfxPreviewResponse{}, err
	}

	if tenantID != "" {
		if err = srv.Ofx.MarkDuplicates(ctx, tenantID, out); err != nil {
			return models.DoOfxPreviewResponse{}, err
		}
	}

	return models.NewDoOfxPreviewResponse(out), nil
}
