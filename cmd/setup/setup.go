package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/compute/metadata"
	"github.com/newrelic/go-agent/v3/integrations/nrzap"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sellerdesk/go-fin-ledger/internal/common/flag"
	"github.com/sellerdesk/go-fin-ledger/internal/common/graceful"
	cMetrics "github.com/sellerdesk/go-fin-ledger/internal/common/metrics"
	"github.com/sellerdesk/go-fin-ledger/internal/common/publisher"
	"github.com/sellerdesk/go-fin-ledger/internal/common/xlog"
	"github.com/sellerdesk/go-fin-ledger/internal/config"
	"github.com/sellerdesk/go-fin-ledger/internal/deliveries/http/health"
	"github.com/sellerdesk/go-fin-ledger/internal/repositories"
	"github.com/sellerdesk/go-fin-ledger/internal/services"

	_ "github.com/newrelic/go-agent/v3/integrations/nrpgx"
)

type Setup struct {
	Config    config.Config
	NewRelic  *newrelic.Application
	WriteDB   *sql.DB
	ReadDB    *sql.DB
	Cache     *redis.Client
	RepoCache repositories.CacheRepository
	Service   *services.Services
	Metrics   cMetrics.Metrics
}

// Readiness is what the readiness probe pings.
func (s *Setup) Readiness() map[string]health.Pinger {
	checks := map[string]health.Pinger{
		"postgres": health.PingFunc(s.WriteDB.PingContext),
	}
	if s.RepoCache != nil {
		checks["redis"] = health.PingFunc(s.RepoCache.Ping)
	}
	return checks
}

// Init wires every dependency. Redis, the statement archive and the event
// producer are only connected when configured. stopper is returned even on
// error so the caller can release what was opened.
func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	logLevel := xlog.InfoLogLevel()
	if cfg.Environment().DebugLogging() {
		logLevel = xlog.DebugLogLevel()
	}

	xlog.Init(cfg.App.Name,
		xlog.WithLogToOption(cfg.App.LogOption),
		xlog.WithLogEnvOption(cfg.App.Env),
		xlog.WithCaller(true),
		xlog.AddCallerSkip(2),
		logLevel)

	stopper = append(stopper, func(ctx context.Context) error {
		xlog.Sync()
		return nil
	})

	if cfg.GcloudProjectID == "" && metadata.OnGCE() {
		cfg.GcloudProjectID, _ = metadata.ProjectID()
	}
	if cfg.GcloudProjectID == "" {
		xlog.Info(ctx, "can not determine google cloud project, for local use set the gcloud_project_id in config yaml")
	}

	newRelic := setupNR(ctx, cfg)

	// metrics
	mtc := cMetrics.New()

	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if err := writeDB.Close(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
		}
		if err := readDB.Close(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
		}

		return errs
	})

	if err = mtc.RegisterDB(writeDB, cfg.App.Name+"-"+command+"-write", cfg.Postgres.Write.DbName); err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}
	if err = mtc.RegisterDB(readDB, cfg.App.Name+"-"+command+"-read", cfg.Postgres.Read.DbName); err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}

	var (
		cache     *redis.Client
		cacheRepo repositories.CacheRepository
	)
	if cfg.Redis.Host != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Db,
		})
		if _, err = cache.Ping(ctx).Result(); err != nil {
			err = fmt.Errorf("failed connect to redis: %w", err)
			return
		}
		stopper = append(stopper, func(ctx context.Context) error { return cache.Close() })

		if err = mtc.RegisterRedis(cache, cfg.App.Name, command); err != nil {
			err = fmt.Errorf("failed register redis prometheus: %w", err)
			return
		}
		cacheRepo = repositories.NewCacheRepository(cache)
	}

	flagClient, err := flag.New(&cfg)
	if err != nil {
		err = fmt.Errorf("failed to create flag client: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return flagClient.Close() })

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)
	stopper = append(stopper, func(ctx context.Context) error {
		sqlRepo.Close()
		return nil
	})

	var opts []services.Option

	if cfg.CloudStorageConfig.BucketName != "" {
		archiveRepo, errArchive := repositories.NewStatementArchiveRepository(&cfg)
		if errArchive != nil {
			err = fmt.Errorf("failed connect to cloud storage: %w", errArchive)
			return
		}
		stopper = append(stopper, func(ctx context.Context) error { return archiveRepo.Close() })
		opts = append(opts, services.WithStatementArchive(archiveRepo))
	} else {
		xlog.Info(ctx, "cloud storage bucket not set, imported statements are not archived")
	}

	if len(cfg.MessageBroker.Brokers) > 0 && cfg.MessageBroker.TopicOfxImport != "" {
		producer, errProducer := publisher.NewKafkaSyncProducer(cfg.MessageBroker.Brokers,
			publisher.WithClientID(cfg.App.Name+"-"+command),
			publisher.WithMetricRegistry(mtc.SaramaRegistry(cfg.App.Name+"-"+command+"-kafka", 15*time.Second)))
		if errProducer != nil {
			err = fmt.Errorf("unable to create client kafka sync producer: %w", errProducer)
			return
		}
		stopper = append(stopper, func(ctx context.Context) error { return producer.Close() })

		importPub := publisher.NewPublisher(producer, cfg.MessageBroker.TopicOfxImport, mtc.GetPublisherPrometheus())
		opts = append(opts, services.WithImportPublisher(importPub))
	} else {
		xlog.Info(ctx, "kafka brokers not set, import events are not published")
	}

	// register service
	srv := services.New(cfg, sqlRepo, flagClient, mtc, opts...)

	return &Setup{
		Config:    cfg,
		NewRelic:  newRelic,
		WriteDB:   writeDB,
		ReadDB:    readDB,
		Cache:     cache,
		RepoCache: cacheRepo,
		Service:   srv,
		Metrics:   mtc,
	}, stopper, nil
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		_ = writeDB.Close()
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("nrpgx", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if !cfg.Environment().IsProduction() || cfg.NewRelicLicenseKey == "" {
		return nil
	}

	loaded, ok := xlog.Loggers.Load(xlog.DefaultLogger)
	if !ok {
		return nil
	}
	logger, ok := loaded.(*zap.Logger)
	if !ok {
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.App.Name),
		newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
		func(config *newrelic.Config) {
			config.Logger = nrzap.Transform(logger)
		},
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		xlog.Errorf(ctx, "setupNR.NewApplication - %v", err)
		return nil
	}
	if err = app.WaitForConnection(15 * time.Second); err != nil {
		xlog.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
	}
	return app
}
