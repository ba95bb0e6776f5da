package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/localcore/pkg/idx"
	"github.com/aussiebroadwan/localcore/pkg/slogx"
)

// ReadList returns the JSON array stored under key. A missing key, a backend
// failure or malformed JSON all read as an empty list: callers never see a
// parse failure, only a warning in the log.
func ReadList[T any](ctx context.Context, kv KV, key string) []T {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slogx.FromContext(ctx).Warn("kv read failed, treating as empty",
				"key", key,
				"err", err,
			)
		}
		return []T{}
	}

	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		slogx.FromContext(ctx).Warn("kv value is not a valid list, treating as empty",
			"key", key,
			"err", err,
		)
		return []T{}
	}
	if out == nil { // stored "null"
		return []T{}
	}
	return out
}

// WriteList replaces the list stored under key.
func WriteList[T any](ctx context.Context, kv KV, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	return writeJSON(ctx, kv, key, items)
}

// ReadValue decodes the document under key. ok is false when the key is
// missing or holds something unreadable.
func ReadValue[T any](ctx context.Context, kv KV, key string) (T, bool) {
	var out T

	raw, err := kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slogx.FromContext(ctx).Warn("kv read failed", "key", key, "err", err)
		}
		return out, false
	}

	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		slogx.FromContext(ctx).Warn("kv value is not valid json", "key", key, "err", err)
		var zero T
		return zero, false
	}
	return out, true
}

// WriteValue stores v as JSON under key.
func WriteValue[T any](ctx context.Context, kv KV, key string, v T) error {
	return writeJSON(ctx, kv, key, v)
}

func writeJSON(ctx context.Context, kv KV, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// MakeID returns a new record id: millisecond time plus randomness.
func MakeID() string {
	return idx.New().String()
}
