package middleware

import (
	"github.com/sellerdesk/go-fin-ledger/internal/config"
	"github.com/sellerdesk/go-fin-ledger/internal/repositories"
)

type AppMiddleware struct {
	conf      config.Config
	cacheRepo repositories.CacheRepository
}

func NewMiddleware(conf config.Config, cacheRepo repositories.CacheRepository) AppMiddleware {
	return AppMiddleware{
		conf:      conf,
		cacheRepo: cacheRepo,
	}
}
