package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/billing/model"
)

const (
	HeaderName   = "X-Idempotency-Key"
	MaxKeyLength = 128
)

// IdempotencyMiddleware lets clients retry endpoints tagged idempotency with
// the same X-Idempotency-Key. The first request runs, concurrent duplicates
// are rejected, and later duplicates get the cached response.
//
//encore:middleware target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, keyErr := extractKey(req)
	if keyErr != nil {
		return middleware.Response{Err: keyErr}
	}

	ctx := req.Context()
	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      key,
	}
	bodyHash := requestHash(req)

	now := time.Now()
	err := Entries.SetIfNotExists(ctx, cacheKey, model.IdempotencyCacheEntry{
		Status:          model.IdempotencyStatusProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	switch {
	case err == nil:
		return complete(ctx, cacheKey, next(req))
	case errors.Is(err, cache.KeyExists):
		entry, getErr := Entries.Get(ctx, cacheKey)
		if errors.Is(getErr, cache.Miss) {
			// expired between the two calls
			return complete(ctx, cacheKey, next(req))
		}
		if getErr != nil {
			rlog.Error("failed to read idempotency entry", "error", getErr, "key", key)
			return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}}
		}
		return replay(req, next, entry, bodyHash, key)
	default:
		rlog.Error("failed to store idempotency entry", "error", err, "key", key)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}}
	}
}

func extractKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = strings.TrimSpace(headers.Get(HeaderName))
	}

	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: HeaderName + " header is required"}
	}
	if len(key) > MaxKeyLength {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: HeaderName + " header is too long"}
	}
	return key, nil
}

// requestHash fingerprints the request payload so a reused key with a
// different body is detected.
func requestHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request payload", "error", err)
		return ""
	}
	return hashBytes(body)
}

func hashBytes(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

func replay(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, bodyHash, key string) middleware.Response {
	if err := checkBodyHash(entry, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	switch entry.Status {
	case model.IdempotencyStatusProcessing:
		rlog.Info("concurrent request detected", "key", key)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
		}
	case model.IdempotencyStatusCompleted:
		if payload, ok := decodeResponse(req, entry.Response); ok {
			rlog.Info("returning cached response", "key", key)
			return middleware.Response{Payload: payload}
		}
		rlog.Warn("cached response unusable, processing request again", "key", key)
		return next(req)
	default:
		rlog.Warn("unknown idempotency entry status, processing request again", "key", key, "status", entry.Status)
		return next(req)
	}
}

func checkBodyHash(entry model.IdempotencyCacheEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

// decodeResponse rebuilds the endpoint's response type from the cached JSON.
func decodeResponse(req middleware.Request, raw json.RawMessage) (any, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	api := req.Data().API
	if api == nil || api.ResponseType == nil || api.ResponseType.Kind() != reflect.Pointer {
		return nil, false
	}
	value := reflect.New(api.ResponseType.Elem()).Interface()
	if err := json.Unmarshal(raw, value); err != nil {
		rlog.Error("failed to decode cached response", "error", err)
		return nil, false
	}
	return value, true
}

// complete caches a successful response, or forgets the key when the request
// failed so the client can retry it.
func complete(ctx context.Context, cacheKey model.IdempotencyKey, resp middleware.Response) middleware.Response {
	if resp.Err != nil {
		if _, err := Entries.Delete(ctx, cacheKey); err != nil {
			rlog.Error("failed to clear idempotency entry", "error", err, "key", cacheKey.Key)
		}
		return resp
	}

	entry, err := Entries.Get(ctx, cacheKey)
	if err != nil {
		entry = model.IdempotencyCacheEntry{CreatedAt: time.Now()}
	}
	entry.Status = model.IdempotencyStatusCompleted
	entry.UpdatedAt = time.Now()
	if resp.Payload != nil {
		body, err := json.Marshal(resp.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			return resp
		}
		entry.Response = body
	}

	if err := Entries.Set(ctx, cacheKey, entry); err != nil {
		rlog.Error("failed to cache response", "error", err, "key", cacheKey.Key)
	}
	return resp
}
