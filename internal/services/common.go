package services

import (
	"errors"

	"github.com/sellerdesk/go-fin-ledger/internal/common"
	"github.com/sellerdesk/go-fin-ledger/internal/models"
)

func checkDatabaseError(err error, code ...string) error {
	if errors.Is(err, common.ErrNoRows) || errors.Is(err, common.ErrDataNotFound) {
		if len(code) > 0 {
			return models.GetErrMap(code[0])
		}
		return models.GetErrMap(models.ErrKeyDataNotFound)
	}

	return models.GetErrMap(models.ErrKeyDatabaseError, err.Error())
}
