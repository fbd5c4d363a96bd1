package model

import (
	"encoding/json"
	"time"
)

// IdempotencyKey identifies one client request to an idempotent endpoint.
type IdempotencyKey struct {
	Resource string
	Key      string
}

type IdempotencyStatus string

const (
	IdempotencyStatusProcessing IdempotencyStatus = "processing"
	IdempotencyStatusCompleted  IdempotencyStatus = "completed"
)

// IdempotencyCacheEntry is what the idempotency middleware remembers about a
// request. Response holds the JSON payload replayed to retries.
type IdempotencyCacheEntry struct {
	Status          IdempotencyStatus `json:"status"`
	RequestBodyHash string            `json:"request_body_hash"`
	Response        json.RawMessage   `json:"response,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
