package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/localcore/internal/core/domain"
	"github.com/aussiebroadwan/localcore/internal/core/store"
	"github.com/aussiebroadwan/localcore/internal/core/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCreateThenList(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewCollection(domain.KindUsers, memory.NewStore(), 0)
	c.Now = fixedClock(now)

	in := domain.Fields{"name": "Dana", "role": "photographer", "tags": []any{"a", "b"}}
	created, err := c.Create(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID())

	list, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	want := domain.Record{
		"id":        created.ID(),
		"name":      "Dana",
		"role":      "photographer",
		"tags":      []any{"a", "b"},
		"createdAt": now.Format(time.RFC3339Nano),
		"updatedAt": now.Format(time.RFC3339Nano),
	}
	require.Equal(t, want, list[0])
	require.Equal(t, want, created)
}

func TestCreateKeepsCallerID(t *testing.T) {
	ctx := context.Background()
	c := NewCollection(domain.KindPortfolio, memory.NewStore(), 0)

	rec, err := c.Create(ctx, domain.Fields{"id": "p-1", "photographer_id": "u-1"})
	require.NoError(t, err)
	require.Equal(t, "p-1", rec.ID())

	rec, err = c.Create(ctx, domain.Fields{"id": "", "photographer_id": "u-1"})
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID())
	require.NotEqual(t, "p-1", rec.ID())
}

func TestUpdateShallowMerge(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewCollection(domain.KindUsers, memory.NewStore(), 0)
	c.Now = fixedClock(created)

	rec, err := c.Create(ctx, domain.Fields{
		"name":    "Dana",
		"profile": map[string]any{"bio": "old", "city": "Perth"},
	})
	require.NoError(t, err)

	later := created.Add(time.Hour)
	c.Now = fixedClock(later)

	patch := domain.Fields{"profile": map[string]any{"bio": "new"}}
	got, err := c.Update(ctx, rec.ID(), patch)
	require.NoError(t, err)

	want := rec.Clone()
	want["profile"] = map[string]any{"bio": "new"}
	want["updatedAt"] = later.Format(time.RFC3339Nano)
	require.Equal(t, want, got)

	stored, err := c.Get(ctx, rec.ID())
	require.NoError(t, err)
	require.Equal(t, want, stored)
}

func TestUpdateTypedPatch(t *testing.T) {
	ctx := context.Background()
	c := NewCollection(domain.KindUsers, memory.NewStore(), 0)

	rec, err := c.Create(ctx, domain.Fields{"name": "Dana", "bio": "hi"})
	require.NoError(t, err)

	loc := "Fremantle"
	got, err := c.Update(ctx, rec.ID(), domain.UserPatch{Location: &loc})
	require.NoError(t, err)
	require.Equal(t, "Dana", got["name"])
	require.Equal(t, "hi", got["bio"])
	require.Equal(t, "Fremantle", got["location"])
}

func TestUpdateMissingIDDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()
	c := NewCollection(domain.KindUsers, kv, 0)

	got, err := c.Update(ctx, "missing-id", domain.Fields{"name": "x"})
	require.NoError(t, err)
	require.Equal(t, domain.Record{"id": "missing-id", "name": "x"}, got)

	list, err := c.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	_, err = kv.Get(ctx, store.CollectionKey(domain.KindUsers))
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestFilterExactMatch(t *testing.T) {
	ctx := context.Background()
	c := NewCollection(domain.KindUsers, memory.NewStore(), 0)

	_, err := c.Create(ctx, domain.Fields{"id": "1", "status": "inactive"})
	require.NoError(t, err)
	_, err = c.Create(ctx, domain.Fields{"id": "2", "status": "active"})
	require.NoError(t, err)
	_, err = c.Create(ctx, domain.Fields{"id": "3", "status": "active", "rating": 4})
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter domain.Fields
		want   []string
	}{
		{"single field", domain.Fields{"status": "active"}, []string{"2", "3"}},
		{"conjunction", domain.Fields{"status": "active", "rating": 4}, []string{"3"}},
		{"number normalised", domain.Fields{"rating": 4.0}, []string{"3"}},
		{"no match", domain.Fields{"status": "banned"}, nil},
		{"empty filter", domain.Fields{}, []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Filter(ctx, tt.filter)
			require.NoError(t, err)

			var ids []string
			for _, r := range got {
				ids = append(ids, r.ID())
			}
			require.Equal(t, tt.want, ids)
		})
	}
}

func TestFilterOneOfTwo(t *testing.T) {
	ctx := context.Background()
	c := NewCollection(domain.KindUsers, memory.NewStore(), 0)

	match, err := c.Create(ctx, domain.Fields{"status": "active"})
	require.NoError(t, err)
	_, err = c.Create(ctx, domain.Fields{"status": "inactive"})
	require.NoError(t, err)

	got, err := c.Filter(ctx, domain.Fields{"status": "active"})
	require.NoError(t, err)
	require.Equal(t, []domain.Record{match}, got)
}

func TestGetAndDelete(t *testing.T) {
	ctx := context.Background()
	c := NewCollection(domain.KindPortfolio, memory.NewStore(), 0)

	rec, err := c.Create(ctx, domain.PortfolioItemInput{PhotographerID: "u-1", ImageURL: "a.jpg"})
	require.NoError(t, err)

	got, err := c.Get(ctx, rec.ID())
	require.NoError(t, err)
	require.Equal(t, "u-1", got["photographer_id"])

	require.NoError(t, c.Delete(ctx, rec.ID()))
	_, err = c.Get(ctx, rec.ID())
	require.ErrorIs(t, err, store.ErrNotFound)

	// Deleting again, or something never stored, is fine
	require.NoError(t, c.Delete(ctx, rec.ID()))
	require.NoError(t, c.Delete(ctx, "never-existed"))
}

func TestListPrunesExpiredRecords(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	kv := memory.NewStore()

	old := now.Add(-DefaultRetention - time.Hour).Format(time.RFC3339Nano)
	fresh := now.Add(-time.Hour).Format(time.RFC3339Nano)
	seed := []domain.Record{
		{"id": "old", "createdAt": old},
		{"id": "fresh", "createdAt": fresh},
		{"id": "undated"},
	}

	for _, kind := range []domain.Kind{domain.KindMessages, domain.KindConversations} {
		t.Run(string(kind), func(t *testing.T) {
			require.NoError(t, store.WriteList(ctx, kv, store.CollectionKey(kind), seed))

			c := NewCollection(kind, kv, 0)
			c.Now = fixedClock(now)

			list, err := c.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, 2)
			require.Equal(t, "fresh", list[0].ID())
			require.Equal(t, "undated", list[1].ID())

			// Pruned from storage too
			stored := store.ReadList[domain.Record](ctx, kv, store.CollectionKey(kind))
			require.Len(t, stored, 2)
		})
	}

	t.Run("users never expire", func(t *testing.T) {
		require.NoError(t, store.WriteList(ctx, kv, store.CollectionKey(domain.KindUsers), seed))

		c := NewCollection(domain.KindUsers, kv, 0)
		c.Now = fixedClock(now)

		list, err := c.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)

		n, err := c.Prune(ctx)
		require.NoError(t, err)
		require.Zero(t, n)
	})
}

func TestPrune(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	kv := memory.NewStore()

	c := NewCollection(domain.KindMessages, kv, 24*time.Hour)
	c.Now = fixedClock(now.Add(-48 * time.Hour))
	_, err := c.Create(ctx, domain.MessageInput{ConversationID: "c1", SenderID: "u1", Text: "hi"})
	require.NoError(t, err)

	c.Now = fixedClock(now)
	_, err = c.Create(ctx, domain.MessageInput{ConversationID: "c1", SenderID: "u2", Text: "yo"})
	require.NoError(t, err)

	n, err := c.Prune(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	n, err = c.Prune(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestCorruptCollectionReadsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()
	require.NoError(t, kv.Set(ctx, store.CollectionKey(domain.KindUsers), "{broken"))

	c := NewCollection(domain.KindUsers, kv, 0)
	list, err := c.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	// The next write replaces the garbage
	_, err = c.Create(ctx, domain.Fields{"name": "Dana"})
	require.NoError(t, err)
	list, err = c.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
