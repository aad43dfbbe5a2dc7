package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdempotencyRecord(t *testing.T) {
	a := NewIdempotencyRecord("tenant-a", "key-1", []byte(`{"fileContent":"x"}`))
	b := NewIdempotencyRecord("tenant-b", "key-1", []byte(`{"fileContent":"x"}`))
	c := NewIdempotencyRecord("tenant-a", "key-1", []byte(`{"fileContent":"y"}`))

	assert.Equal(t, "ofx-import:idempotency:tenant-a:key-1", a.CacheKey)
	assert.NotEqual(t, a.CacheKey, b.CacheKey)
	assert.True(t, a.SameRequest(b))
	assert.False(t, a.SameRequest(c))
	assert.False(t, a.SameRequest(nil))
	assert.Equal(t, IdempotencyPending, a.State)
	assert.False(t, a.Finished())
}

func TestIdempotencyRecord_CompleteAndDecode(t *testing.T) {
	r := NewIdempotencyRecord("tenant-a", "key-1", []byte(`{}`))
	r.Complete(200, "application/json", `{"success":true}`)
	require.True(t, r.Finished())

	raw, err := r.Encode()
	require.NoError(t, err)

	got, err := DecodeIdempotencyRecord(raw)
	require.NoError(t, err)
	assert.Equal(t, r, got)

	_, err = DecodeIdempotencyRecord("{")
	assert.Error(t, err)
}
