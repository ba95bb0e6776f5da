package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/aussiebroadwan/localcore/internal/core/domain"
	"github.com/aussiebroadwan/localcore/internal/core/store"
	"github.com/aussiebroadwan/localcore/pkg/slogx"
)

// DefaultRetention is how long conversations and messages are kept.
const DefaultRetention = 365 * 24 * time.Hour

// Collection is CRUD over one JSON array in the KV store.
type Collection struct {
	Kind      domain.Kind
	Store     store.KV
	Retention time.Duration // only for kinds that expire
	Now       func() time.Time

	mu sync.Mutex
}

func NewCollection(kind domain.Kind, kv store.KV, retention time.Duration) *Collection {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Collection{Kind: kind, Store: kv, Retention: retention}
}

func (c *Collection) key() string { return store.CollectionKey(c.Kind) }

// List returns every record. Expiring kinds drop records past retention
// and write the survivors back.
func (c *Collection) List(ctx context.Context) ([]domain.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, _, err := c.load(ctx)
	return records, err
}

// Filter returns the records whose fields equal every given field, in
// storage order.
func (c *Collection) Filter(ctx context.Context, p domain.Patch) ([]domain.Record, error) {
	records, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	want := p.Fields()
	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if matchesAll(r, want) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Get returns the record with id or store.ErrNotFound.
func (c *Collection) Get(ctx context.Context, id string) (domain.Record, error) {
	records, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, r := range records {
		if r.ID() == id {
			return r, nil
		}
	}
	return nil, store.ErrNotFound
}

// Create stores a new record. A non-empty string id in the patch is kept,
// otherwise one is generated.
func (c *Collection) Create(ctx context.Context, p domain.Patch) (domain.Record, error) {
	rec := domain.Record(maps.Clone(p.Fields()))
	if rec == nil {
		rec = domain.Record{}
	}
	if rec.ID() == "" {
		rec[domain.FieldID] = store.MakeID()
	}

	ts := nowUTC(c.Now).Format(time.RFC3339Nano)
	rec[domain.FieldCreatedAt] = ts
	rec[domain.FieldUpdatedAt] = ts

	c.mu.Lock()
	defer c.mu.Unlock()

	records, _, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	records = append(records, rec)
	if err := store.WriteList(ctx, c.Store, c.key(), records); err != nil {
		return nil, err
	}

	slogx.FromContext(ctx).Debug("record created",
		slog.String("kind", string(c.Kind)),
		slog.String("id", rec.ID()),
	)
	return rec.Clone(), nil
}

// Update shallow-merges p into the record with id. When there is no such
// record the merge result is returned as is and nothing is stored.
func (c *Collection) Update(ctx context.Context, id string, p domain.Patch) (domain.Record, error) {
	fields := p.Fields()

	c.mu.Lock()
	defer c.mu.Unlock()

	records, _, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	for i, r := range records {
		if r.ID() != id {
			continue
		}

		merged := r.Clone()
		maps.Copy(merged, fields)
		merged[domain.FieldUpdatedAt] = nowUTC(c.Now).Format(time.RFC3339Nano)
		records[i] = merged

		if err := store.WriteList(ctx, c.Store, c.key(), records); err != nil {
			return nil, err
		}
		return merged.Clone(), nil
	}

	out := domain.Record{domain.FieldID: id}
	maps.Copy(out, fields)
	return out, nil
}

// Delete removes the record with id. A missing id is not an error.
func (c *Collection) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, _, err := c.load(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, r := range records {
		if r.ID() != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return nil
	}
	return store.WriteList(ctx, c.Store, c.key(), kept)
}

// Prune runs the retention sweep and reports how many records went.
func (c *Collection) Prune(ctx context.Context) (int, error) {
	if !c.Kind.Expires() {
		return 0, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, pruned, err := c.load(ctx)
	return pruned, err
}

// load reads the collection and applies retention. Must hold mu.
func (c *Collection) load(ctx context.Context) ([]domain.Record, int, error) {
	records := store.ReadList[domain.Record](ctx, c.Store, c.key())
	if !c.Kind.Expires() {
		return records, 0, nil
	}

	cutoff := nowUTC(c.Now).Add(-c.Retention)
	kept := make([]domain.Record, 0, len(records))
	for _, r := range records {
		// Records without a readable createdAt cannot age out.
		if created, ok := r.CreatedAt(); ok && created.Before(cutoff) {
			continue
		}
		kept = append(kept, r)
	}

	pruned := len(records) - len(kept)
	if pruned == 0 {
		return records, 0, nil
	}

	if err := store.WriteList(ctx, c.Store, c.key(), kept); err != nil {
		return nil, 0, err
	}

	slogx.FromContext(ctx).Debug("expired records pruned",
		slog.String("kind", string(c.Kind)),
		slog.Int("count", pruned),
	)
	return kept, pruned, nil
}

func matchesAll(r domain.Record, want domain.Fields) bool {
	for k, v := range want {
		got, ok := r[k]
		if !ok || !jsonEqual(got, v) {
			return false
		}
	}
	return true
}

// jsonEqual compares values after JSON encoding so an int from Go code and
// a float64 decoded from storage compare equal.
func jsonEqual(a, b any) bool {
	ja, err := json.Marshal(a)
	if err != nil {
		return false
	}
	jb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ja, jb)
}
