// Package xlog is a context aware structured logger backed by zap.
//
// Every log call takes the request context so the correlation id, tenant and
// cloud trace stored by ctxdata end up on the log line.
package xlog

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sellerdesk/go-fin-ledger/internal/common/ctxdata"
)

const DefaultLogger = "default"

// Loggers holds the named zap loggers created by Init.
var Loggers sync.Map

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

type options struct {
	level      zapcore.Level
	logTo      string
	env        string
	caller     bool
	callerSkip int
}

type Option func(*options)

func WithLogToOption(logTo string) Option {
	return func(o *options) {
		o.logTo = logTo
	}
}

func WithLogEnvOption(env string) Option {
	return func(o *options) {
		o.env = env
	}
}

func WithCaller(caller bool) Option {
	return func(o *options) {
		o.caller = caller
	}
}

func AddCallerSkip(skip int) Option {
	return func(o *options) {
		o.callerSkip = skip
	}
}

func DebugLogLevel() Option {
	return func(o *options) {
		o.level = zapcore.DebugLevel
	}
}

func InfoLogLevel() Option {
	return func(o *options) {
		o.level = zapcore.InfoLevel
	}
}

// Init builds the default logger. logTo "stdout" (default) writes JSON to
// stdout, "console" writes human readable lines to stderr.
func Init(name string, opts ...Option) {
	o := &options{level: zapcore.InfoLevel, logTo: "stdout"}
	for _, opt := range opts {
		opt(o)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.MessageKey = "message"
	encCfg.LevelKey = "severity"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var (
		encoder zapcore.Encoder
		sink    zapcore.WriteSyncer
	)
	switch o.logTo {
	case "console":
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
		sink = zapcore.Lock(os.Stderr)
	default:
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
		sink = zapcore.Lock(os.Stdout)
	}

	zapOpts := []zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}
	if o.caller {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(o.callerSkip))
	}

	l := zap.New(zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(o.level)), zapOpts...).
		With(zap.String("app", name))
	if o.env != "" {
		l = l.With(zap.String("env", o.env))
	}

	setLogger(l)
}

// InitForTest installs a development logger, used from TestMain.
func InitForTest() {
	l, err := zap.NewDevelopment(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}
	setLogger(l)
}

// SetLogger replaces the default logger, tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	setLogger(l)
}

func setLogger(l *zap.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
	Loggers.Store(DefaultLogger, l)
}

func get() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Sync() {
	_ = get().Sync()
}

func withContext(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	if id := ctxdata.GetCorrelationId(ctx); id != "" {
		fields = append(fields, String("correlation_id", id))
	}
	if tenant := ctxdata.GetTenantID(ctx); tenant != "" {
		fields = append(fields, String("tenant_id", tenant))
	}
	if trace := ctxdata.GetTrace(ctx); trace != "" {
		fields = append(fields, String("logging.googleapis.com/trace", trace))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	get().Debug(msg, withContext(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	get().Info(msg, withContext(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	get().Warn(msg, withContext(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	get().Error(msg, withContext(ctx, fields)...)
}

func Fatal(ctx context.Context, msg string, fields ...Field) {
	get().Fatal(msg, withContext(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	Debug(ctx, fmt.Sprintf(format, args...))
}

func Infof(ctx context.Context, format string, args ...any) {
	Info(ctx, fmt.Sprintf(format, args...))
}

func Warnf(ctx context.Context, format string, args ...any) {
	Warn(ctx, fmt.Sprintf(format, args...))
}

func Errorf(ctx context.Context, format string, args ...any) {
	Error(ctx, fmt.Sprintf(format, args...))
}

func Fatalf(ctx context.Context, format string, args ...any) {
	Fatal(ctx, fmt.Sprintf(format, args...))
}
