package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sellerdesk/go-fin-ledger/internal/models"
	"github.com/sellerdesk/go-fin-ledger/internal/services"
)

const (
	flagStartDate = "start-date"
	flagEndDate   = "end-date"
	flagLimit     = "limit"
)

func newHistoryCmd() *cobra.Command {
	historyCmd := &cobra.Command{
		Use:     "history",
		Short:   "List the statement imports of a tenant, newest first",
		Example: "ofxctl history --tenant=acme --start-date=2024-01-01 --end-date=2024-01-31",
		Args:    cobra.NoArgs,
		RunE:    runHistory,
	}
	historyCmd.Flags().String(flagTenant, "", "tenant id")
	historyCmd.Flags().String(flagBankAccount, "", "only imports booked against this bank account")
	historyCmd.Flags().String(flagStartDate, "", "YYYY-MM-DD")
	historyCmd.Flags().String(flagEndDate, "", "YYYY-MM-DD")
	historyCmd.Flags().Int(flagLimit, models.DefaultPageLimit, "maximum number of imports")
	_ = historyCmd.MarkFlagRequired(flagTenant)

	return historyCmd
}

func runHistory(ccmd *cobra.Command, args []string) error {
	format, _ := ccmd.Flags().GetString(flagFormat)

	ctx, tenantID, err := tenantContext(ccmd)
	if err != nil {
		return err
	}

	req := models.DoGetListOfxImportBatchRequest{}
	req.BankAccountID, _ = ccmd.Flags().GetString(flagBankAccount)
	req.StartDate, _ = ccmd.Flags().GetString(flagStartDate)
	req.EndDate, _ = ccmd.Flags().GetString(flagEndDate)
	req.Limit, _ = ccmd.Flags().GetInt(flagLimit)

	opts, err := req.ToFilterOpts(tenantID)
	if err != nil {
		return err
	}

	return withServices("ofxctl", func(srv *services.Services) error {
		batches, _, err := srv.OfxImportHistory.GetList(ctx, *opts)
		if err != nil {
			return err
		}

		// the extra row only tells whether more pages exist
		if len(batches) > opts.Limit-1 {
			batches = batches[:opts.Limit-1]
		}

		contents := make([]models.DoGetOfxImportBatchResponse, 0, len(batches))
		for _, b := range batches {
			contents = append(contents, b.ToModelResponse())
		}

		return render(ccmd.OutOrStdout(), format, contents)
	})
}
