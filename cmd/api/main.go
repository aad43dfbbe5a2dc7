package main

import (
	"context"
	"time"

	"github.com/sellerdesk/go-fin-ledger/cmd/setup"
	"github.com/sellerdesk/go-fin-ledger/internal/common/graceful"
	"github.com/sellerdesk/go-fin-ledger/internal/common/xlog"
	"github.com/sellerdesk/go-fin-ledger/internal/deliveries/http"
)

func main() {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	s, stopperContract, err := setup.Init("api")
	if err != nil {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}

		_ = graceful.StopProcess(timeout, stopperContract...)

		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}

	httpServer := http.NewHTTPServer(ctx, s.Config, http.Deps{
		NewRelic:       s.NewRelic,
		CacheRepo:      s.RepoCache,
		OfxService:     s.Service.Ofx,
		HistoryService: s.Service.OfxImportHistory,
		Metrics:        s.Metrics,
		Readiness:      s.Readiness(),
	})

	starters = append(starters, httpServer.Start())
	stoppers = append(stoppers, httpServer.Stop())
	stoppers = append(stoppers, stopperContract...)

	graceful.StartProcessAtBackground(ctx, starters...)
	if err := graceful.WaitAndStop(ctx, s.Config.App.GracefulTimeout, stoppers...); err != nil {
		xlog.Warn(ctx, "shutdown finished with errors", xlog.Err(err))
	}
	xlog.Info(ctx, "http server stopped!")
}
