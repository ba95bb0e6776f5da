package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/localcore/internal/core/domain"
	"github.com/aussiebroadwan/localcore/internal/core/store"
	"github.com/aussiebroadwan/localcore/pkg/slogx"
)

var ErrInvalidKey = errors.New("object key is required")

const defaultContentType = "application/octet-stream"

// ObjectStorage keeps uploaded files in the KV store, one key per object.
type ObjectStorage struct {
	Store   store.KV
	Latency time.Duration
	Now     func() time.Time
}

// Put stores data under key, replacing any previous object.
func (s *ObjectStorage) Put(ctx context.Context, key, contentType string, data []byte) (domain.Object, error) {
	if err := simulateLatency(ctx, s.Latency); err != nil {
		return domain.Object{}, err
	}

	key = normalizeKey(key)
	if key == "" {
		return domain.Object{}, ErrInvalidKey
	}
	if contentType == "" {
		contentType = defaultContentType
	}

	obj := domain.Object{
		Key:         key,
		ContentType: contentType,
		Size:        len(data),
		Data:        data,
		UploadedAt:  nowUTC(s.Now),
	}
	if err := store.WriteValue(ctx, s.Store, store.ObjectKey(key), obj); err != nil {
		return domain.Object{}, err
	}

	slogx.FromContext(ctx).Debug("object stored",
		slog.String("key", key),
		slog.Int("size", obj.Size),
	)
	return obj, nil
}

// Get returns the object under key or store.ErrNotFound.
func (s *ObjectStorage) Get(ctx context.Context, key string) (domain.Object, error) {
	if err := simulateLatency(ctx, s.Latency); err != nil {
		return domain.Object{}, err
	}
	return s.get(ctx, key)
}

// URL returns a data: URL for the object, the way the browser mock served
// files back.
func (s *ObjectStorage) URL(ctx context.Context, key string) (string, error) {
	if err := simulateLatency(ctx, s.Latency); err != nil {
		return "", err
	}

	obj, err := s.get(ctx, key)
	if err != nil {
		return "", err
	}
	return obj.DataURL(), nil
}

// Remove deletes the object. Removing a missing object is not an error.
func (s *ObjectStorage) Remove(ctx context.Context, key string) error {
	if err := simulateLatency(ctx, s.Latency); err != nil {
		return err
	}

	key = normalizeKey(key)
	if key == "" {
		return ErrInvalidKey
	}
	return s.Store.Delete(ctx, store.ObjectKey(key))
}

// List returns the keys of stored objects that start with prefix.
func (s *ObjectStorage) List(ctx context.Context, prefix string) ([]string, error) {
	if err := simulateLatency(ctx, s.Latency); err != nil {
		return nil, err
	}

	keys, err := s.Store.Keys(ctx, store.ObjectKey(normalizeKey(prefix)))
	if err != nil {
		return nil, err
	}
	for i, k := range keys {
		keys[i] = strings.TrimPrefix(k, store.KeyStoragePrefix)
	}
	return keys, nil
}

func (s *ObjectStorage) get(ctx context.Context, key string) (domain.Object, error) {
	key = normalizeKey(key)
	if key == "" {
		return domain.Object{}, ErrInvalidKey
	}

	obj, ok := store.ReadValue[domain.Object](ctx, s.Store, store.ObjectKey(key))
	if !ok {
		return domain.Object{}, store.ErrNotFound
	}
	return obj, nil
}

// Keys are path-like; a leading slash is not significant.
func normalizeKey(key string) string {
	return strings.TrimLeft(strings.TrimSpace(key), "/")
}
