package services

import (
	"time"

	"github.com/sellerdesk/go-fin-ledger/internal/common/flag"
	"github.com/sellerdesk/go-fin-ledger/internal/common/metrics"
	"github.com/sellerdesk/go-fin-ledger/internal/common/publisher"
	"github.com/sellerdesk/go-fin-ledger/internal/common/retry"
	"github.com/sellerdesk/go-fin-ledger/internal/config"
	"github.com/sellerdesk/go-fin-ledger/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo     repositories.SQLRepository
	archiveRepo repositories.StatementArchiveRepository
	importPub   publisher.Publisher
	retryer     retry.Retryer
	flag        flag.Client
	metrics     metrics.Metrics
	now         func() time.Time

	common service

	Ofx              *ofxService
	OfxImportHistory *ofxImportHistory
}

type Option func(*Services)

// WithStatementArchive enables the raw statement copy on cloud storage.
func WithStatementArchive(repo repositories.StatementArchiveRepository) Option {
	return func(s *Services) {
		s.archiveRepo = repo
	}
}

// WithImportPublisher enables the import completed event.
func WithImportPublisher(p publisher.Publisher) Option {
	return func(s *Services) {
		s.importPub = p
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Services) {
		s.now = now
	}
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	flag flag.Client,
	metrics metrics.Metrics,
	opts ...Option,
) *Services {
	srv := &Services{
		conf:    conf,
		sqlRepo: sqlRepo,
		retryer: retry.NewExponentialBackOff(conf.ExponentialBackoff),
		flag:    flag,
		metrics: metrics,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(srv)
	}

	srv.common.srv = srv
	srv.Ofx = (*ofxService)(&srv.common)
	srv.OfxImportHistory = (*ofxImportHistory)(&srv.common)

	return srv
}
