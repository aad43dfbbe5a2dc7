package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrMap(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		args     []string
		wantCode string
		wantMsg  string
	}{
		{
			name:     "mapped",
			key:      ErrKeyInvalidCursor,
			wantCode: "INVALID_CURSOR",
			wantMsg:  "invalid cursor",
		},
		{
			name:     "mapped with cause",
			key:      ErrKeyDatabaseError,
			args:     []string{"connection refused"},
			wantCode: "DATABASE_ERROR",
			wantMsg:  "database error: connection refused",
		},
		{
			name:     "unknown key",
			key:      "nope",
			wantCode: "nope",
			wantMsg:  "unknown error mapping",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetErrMap(tt.key, tt.args...)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantMsg, got.ErrorMessage.Error())
		})
	}
}

func TestHasErrKey(t *testing.T) {
	wrapped := fmt.Errorf("list batches: %w", GetErrMap(ErrKeyDataNotFound))

	assert.True(t, HasErrKey(wrapped, ErrKeyDataNotFound))
	assert.False(t, HasErrKey(wrapped, ErrKeyDatabaseError))
	assert.False(t, HasErrKey(wrapped, "nope"))
	assert.False(t, HasErrKey(assert.AnError, ErrKeyDataNotFound))
}
