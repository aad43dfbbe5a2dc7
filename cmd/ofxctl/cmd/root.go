package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/sellerdesk/go-fin-ledger/cmd/setup"
	"github.com/sellerdesk/go-fin-ledger/internal/common/ctxdata"
	"github.com/sellerdesk/go-fin-ledger/internal/common/flag"
	"github.com/sellerdesk/go-fin-ledger/internal/common/graceful"
	"github.com/sellerdesk/go-fin-ledger/internal/common/metrics"
	"github.com/sellerdesk/go-fin-ledger/internal/common/xlog"
	"github.com/sellerdesk/go-fin-ledger/internal/config"
	"github.com/sellerdesk/go-fin-ledger/internal/services"
)

const (
	flagFormat = "format"
	flagTenant = "tenant"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ofxctl",
		Short:         "Inspect, preview and import OFX bank statements",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP(flagFormat, "o", formatJSON, "output format, json or yaml")

	root.AddCommand(newInspectCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newStatementCmd())

	return root
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// tenantContext carries the tenant the same way the HTTP gateway does.
func tenantContext(ccmd *cobra.Command) (context.Context, string, error) {
	tenantID, _ := ccmd.Flags().GetString(flagTenant)
	if tenantID == "" {
		return nil, "", fmt.Errorf("--%s is required", flagTenant)
	}
	return ctxdata.WithTenantID(ccmd.Context(), tenantID), tenantID, nil
}

// withServices connects to the configured stores, runs fn and releases
// everything afterwards.
func withServices(command string, fn func(srv *services.Services) error) error {
	s, stoppers, err := setup.Init(command)

	timeout := 5 * time.Second
	if s != nil && s.Config.App.GracefulTimeout > 0 {
		timeout = s.Config.App.GracefulTimeout
	}
	defer func() {
		if stopErr := graceful.StopProcess(timeout, stoppers...); stopErr != nil {
			xlog.Warn(context.Background(), "failed to release resources", xlog.Err(stopErr))
		}
	}()

	if err != nil {
		return fmt.Errorf("failed to setup app: %w", err)
	}

	return fn(s.Service)
}

// offlineServices parses statements without touching any store.
func offlineServices() *services.Services {
	xlog.Init("ofxctl", xlog.WithLogToOption("console"), xlog.InfoLogLevel())
	return services.New(config.Config{}, nil, flag.NewStatic(nil, false), metrics.NewWithRegistry(prometheus.NewRegistry()))
}
