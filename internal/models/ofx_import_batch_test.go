package models

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoGetListOfxImportBatchRequest_ToFilterOpts(t *testing.T) {
	cursorTime := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	cursor := base64.StdEncoding.EncodeToString([]byte(cursorTime.Format(time.RFC3339Nano)))

	tests := []struct {
		name       string
		req        DoGetListOfxImportBatchRequest
		wantErrKey string
		check      func(t *testing.T, opts *OfxImportBatchFilterOptions)
	}{
		{
			name: "default limit with over fetch",
			req:  DoGetListOfxImportBatchRequest{},
			check: func(t *testing.T, opts *OfxImportBatchFilterOptions) {
				assert.Equal(t, DefaultPageLimit+1, opts.Limit)
				assert.Equal(t, "tenant-a", opts.TenantID)
				assert.False(t, opts.AscendingOrder)
			},
		},
		{
			name:       "negative limit",
			req:        DoGetListOfxImportBatchRequest{Limit: -1},
			wantErrKey: ErrKeyLimitMustBeGreaterThanZero,
		},
		{
			name:       "only start date",
			req:        DoGetListOfxImportBatchRequest{StartDate: "2024-01-01"},
			wantErrKey: ErrKeyStartDateAndEndDateRequiredIfOneIsFilled,
		},
		{
			name:       "invalid date",
			req:        DoGetListOfxImportBatchRequest{StartDate: "01-01-2024", EndDate: "2024-01-31"},
			wantErrKey: ErrKeyInvalidFormatDate,
		},
		{
			name:       "start after end",
			req:        DoGetListOfxImportBatchRequest{StartDate: "2024-02-01", EndDate: "2024-01-31"},
			wantErrKey: ErrKeyStartDateIsAfterEndDate,
		},
		{
			name:       "invalid cursor",
			req:        DoGetListOfxImportBatchRequest{NextCursor: "%%%"},
			wantErrKey: ErrKeyInvalidCursor,
		},
		{
			name: "forward cursor",
			req:  DoGetListOfxImportBatchRequest{Limit: 5, NextCursor: cursor, StartDate: "2024-01-01", EndDate: "2024-01-31"},
			check: func(t *testing.T, opts *OfxImportBatchFilterOptions) {
				assert.Equal(t, 6, opts.Limit)
				require.NotNil(t, opts.AfterCreatedAt)
				assert.True(t, cursorTime.Equal(*opts.AfterCreatedAt))
				assert.Nil(t, opts.BeforeCreatedAt)
				require.NotNil(t, opts.StartDate)
				require.NotNil(t, opts.EndDate)
			},
		},
		{
			name: "backward cursor",
			req:  DoGetListOfxImportBatchRequest{PrevCursor: cursor, BankAccountID: "acc-1"},
			check: func(t *testing.T, opts *OfxImportBatchFilterOptions) {
				require.NotNil(t, opts.BeforeCreatedAt)
				assert.True(t, opts.AscendingOrder)
				assert.Equal(t, "acc-1", opts.BankAccountID)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.req.ToFilterOpts("tenant-a")
			if tt.wantErrKey != "" {
				var detail ErrorDetail
				require.True(t, errors.As(err, &detail))
				assert.Equal(t, MapErrors[tt.wantErrKey].Code, detail.Code)
				return
			}
			require.NoError(t, err)
			tt.check(t, opts)
		})
	}
}

func TestOfxImportBatch_ToModelResponse(t *testing.T) {
	createdAt := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)
	bankAccountID := "acc-1"
	batch := OfxImportBatch{
		ID:            "batch-1",
		BankAccountID: &bankAccountID,
		FileSHA256:    "abc",
		Total:         3,
		Imported:      2,
		Duplicates:    1,
		CreatedAt:     &createdAt,
	}

	res := batch.ToModelResponse()
	assert.Equal(t, "ofxImportBatch", res.Kind)
	assert.Equal(t, "acc-1", res.BankAccountID)
	assert.Equal(t, "2024-01-10 12:00:00", res.CreatedAt)

	decoded, err := decodeCreatedAtCursor(batch.GetCursor())
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(decoded))
}
