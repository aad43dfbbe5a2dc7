package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

type IdempotencyState string

const (
	IdempotencyPending  IdempotencyState = "pending"
	IdempotencyFinished IdempotencyState = "finished"

	DefaultIdempotencyTTL = 24 * time.Hour
)

// StoredResponse is what gets replayed to a retried request.
type StoredResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        string `json:"body"`
}

// IdempotencyRecord is the redis value behind an X-Idempotency-Key. A pending
// record doubles as the lock.
type IdempotencyRecord struct {
	CacheKey    string           `json:"cacheKey"`
	State       IdempotencyState `json:"state"`
	Fingerprint string           `json:"fingerprint"`
	Response    *StoredResponse  `json:"response,omitempty"`
}

// IdempotencyCacheKey is scoped by tenant, two sellers never share a key.
func IdempotencyCacheKey(tenantID, key string) string {
	return "ofx-import:idempotency:" + tenantID + ":" + key
}

func NewIdempotencyRecord(tenantID, key string, requestBody []byte) *IdempotencyRecord {
	sum := sha256.Sum256(requestBody)

	return &IdempotencyRecord{
		CacheKey:    IdempotencyCacheKey(tenantID, key),
		State:       IdempotencyPending,
		Fingerprint: hex.EncodeToString(sum[:]),
	}
}

func (r *IdempotencyRecord) Finished() bool {
	return r.State == IdempotencyFinished && r.Response != nil
}

// SameRequest compares payload fingerprints.
func (r *IdempotencyRecord) SameRequest(other *IdempotencyRecord) bool {
	return other != nil && r.Fingerprint == other.Fingerprint
}

func (r *IdempotencyRecord) Complete(status int, contentType, body string) {
	r.State = IdempotencyFinished
	r.Response = &StoredResponse{
		Status:      status,
		ContentType: contentType,
		Body:        body,
	}
}

func (r *IdempotencyRecord) Encode() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func DecodeIdempotencyRecord(raw string) (*IdempotencyRecord, error) {
	var r IdempotencyRecord
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return nil, err
	}
	return &r, nil
}
