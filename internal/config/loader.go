package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "GO_FIN_LEDGER"
	configFileName = "config"
)

var defaultSearchPaths = []string{"/config", ".", "./config"}

// Load reads config.{yaml,json} from the first search path that has one and
// overlays GO_FIN_LEDGER_* environment variables (APP_HTTP_PORT -> app.http_port).
func Load(searchPaths ...string) (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetConfigName(configFileName)
	if len(searchPaths) == 0 {
		searchPaths = defaultSearchPaths
	}
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvs(v, reflect.TypeOf(cfg), "")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
	}

	err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
	})
	if err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

// bindEnvs registers every leaf key of the config struct, AutomaticEnv alone
// only overlays keys that already come from the file or a default.
func bindEnvs(v *viper.Viper, t reflect.Type, prefix string) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}

		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		if field.Type.Kind() == reflect.Struct {
			bindEnvs(v, field.Type, key)
			continue
		}
		_ = v.BindEnv(key)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "go-fin-ledger")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http_port", 9567)
	v.SetDefault("app.http_timeout", "30s")
	v.SetDefault("app.graceful_timeout", "10s")
	v.SetDefault("app.log_option", "stdout")
	v.SetDefault("ofx_import.max_file_size", 5<<20)
	v.SetDefault("ofx_import.supplier_cache_ttl", "10m")
	v.SetDefault("ofx_import.idempotency_ttl", "24h")
	v.SetDefault("cloud_storage.archive_prefix", "ofx-imports")
	v.SetDefault("exponential_backoff.max_retries", 3)
	v.SetDefault("exponential_backoff.initial_interval", "200ms")
	v.SetDefault("exponential_backoff.max_backoff_time", "5s")
	v.SetDefault("exponential_backoff.backoff_multiplier", 1.5)
	v.SetDefault("feature_flag_key_lookup.ofx_import_archive", "ofx_import_archive")
	v.SetDefault("feature_flag_key_lookup.ofx_import_publish_event", "ofx_import_publish_event")
}
