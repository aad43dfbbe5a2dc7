package graceful

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/slices"

	"github.com/sellerdesk/go-fin-ledger/internal/common/xlog"
)

type ProcessStarter func() error

type ProcessStopper func(ctx context.Context) error

type ProcessStartStopper interface {
	Start() ProcessStarter
	Stop() ProcessStopper
}

// StartProcessAtBackground runs every starter in its own goroutine. A starter
// returning http.ErrServerClosed is a normal shutdown and is not logged.
func StartProcessAtBackground(ctx context.Context, ps ...ProcessStarter) {
	for _, p := range ps {
		if p == nil {
			continue
		}
		go func(start ProcessStarter) {
			if err := start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				xlog.Error(ctx, "[STARTUP] process stopped unexpectedly", xlog.Err(err))
			}
		}(p)
	}
}

// WaitAndStop blocks until SIGINT, SIGTERM, SIGUSR1 or ctx is done, then runs
// the stoppers.
func WaitAndStop(ctx context.Context, duration time.Duration, ps ...ProcessStopper) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1)
	defer signal.Stop(sig)

	select {
	case s := <-sig:
		xlog.Info(ctx, "[SHUTDOWN] signal received", xlog.String("signal", s.String()))
	case <-ctx.Done():
		xlog.Info(ctx, "[SHUTDOWN] context done")
	}

	return StopProcess(duration, ps...)
}

// StopProcess runs the stoppers in reverse registration order, each one with
// its own timeout, and returns every failure.
func StopProcess(duration time.Duration, ps ...ProcessStopper) error {
	stoppers := slices.Clone(ps)
	slices.Reverse(stoppers)

	var errs *multierror.Error
	for _, p := range stoppers {
		if p == nil {
			continue
		}
		if err := stopOne(duration, p); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	return errs.ErrorOrNil()
}

func stopOne(duration time.Duration, p ProcessStopper) error {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	return p(ctx)
}
