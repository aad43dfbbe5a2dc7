package config

import (
	"time"
)

type (
	Config struct {
		App                App      `json:"app"`
		Postgres           Postgres `json:"postgres"`
		Redis              Redis    `json:"redis"`
		SecretKey          string   `json:"secret_key"`
		GcloudProjectID    string   `json:"gcloud_project_id"`
		NewRelicLicenseKey string   `json:"new_relic_license_key"`

		OfxImport            OfxImportConfig          `json:"ofx_import"`
		MessageBroker        MessageBroker            `json:"message_broker"`
		CloudStorageConfig   CloudStorageConfig       `json:"cloud_storage"`
		ExponentialBackoff   ExponentialBackOffConfig `json:"exponential_backoff"`
		FeatureFlagSDKConfig FeatureFlagSDKConfig     `json:"feature_flag_sdk"`
		FeatureFlagKeyLookup FeatureFlagKeyLookup     `json:"feature_flag_key_lookup"`
	}

	App struct {
		Env             string        `json:"env"`
		HTTPPort        int           `json:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name"`
		LogOption       string        `json:"log_option"`
		LogLevel        string        `json:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write"`
		Read  Database `json:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host"`
		DbPort            string `json:"db_port"`
		DbUser            string `json:"db_user"`
		DbPass            string `json:"db_pass"`
		DbName            string `json:"db_name"`
		DbSchema          string `json:"db_schema"`
		MaxOpenConnection int    `json:"maxOpenConnections"`
		MaxIdleConnection int    `json:"maxIdleConnections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime"`
	}

	Redis struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		Password string `json:"password"`
		Db       int    `json:"db"`
	}

	// OfxImportConfig tunes the statement import endpoints.
	OfxImportConfig struct {
		// MaxFileSize is the maximum accepted fileContent length in bytes, 0 means unlimited
		MaxFileSize int `json:"max_file_size"`

		// SupplierCacheTTL is how long the generic supplier id is kept per tenant
		SupplierCacheTTL time.Duration `json:"supplier_cache_ttl"`

		// IdempotencyTTL is how long an import response is replayed for the same X-Idempotency-Key
		IdempotencyTTL time.Duration `json:"idempotency_ttl"`
	}

	MessageBroker struct {
		Brokers        []string `json:"brokers"`
		TopicOfxImport string   `json:"topic_ofx_import"`
	}

	CloudStorageConfig struct {
		BaseURL       string `json:"base_url"`
		BucketName    string `json:"bucket_name"`
		ArchivePrefix string `json:"archive_prefix"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries"`
		InitialInterval   time.Duration `json:"initial_interval"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier"`
	}

	FeatureFlagSDKConfig struct {
		URL             string        `json:"url"`
		Token           string        `json:"token"`
		Env             string        `json:"env"`
		RefreshInterval time.Duration `json:"refresh_interval"`
	}

	FeatureFlagKeyLookup struct {
		OfxImportArchive      string `json:"ofx_import_archive"`
		OfxImportPublishEvent string `json:"ofx_import_publish_event"`
	}
)
