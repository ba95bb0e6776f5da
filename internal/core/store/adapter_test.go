package store_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/localcore/internal/core/domain"
	"github.com/aussiebroadwan/localcore/internal/core/store"
	"github.com/aussiebroadwan/localcore/internal/core/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

func TestReadListDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()

	tests := []struct {
		name  string
		value *string
	}{
		{name: "missing key"},
		{name: "malformed json", value: ptr("{not json")},
		{name: "object instead of array", value: ptr(`{"id":"x"}`)},
		{name: "null", value: ptr("null")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "k_" + tt.name
			if tt.value != nil {
				require.NoError(t, kv.Set(ctx, key, *tt.value))
			}

			got := store.ReadList[domain.Record](ctx, kv, key)
			require.NotNil(t, got)
			require.Empty(t, got)
		})
	}
}

func TestWriteThenReadList(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()

	in := []domain.Member{{ID: "1", Name: "Ann"}, {ID: "2", Name: "Bob"}}
	require.NoError(t, store.WriteList(ctx, kv, "members", in))
	require.Equal(t, in, store.ReadList[domain.Member](ctx, kv, "members"))

	require.NoError(t, store.WriteList[domain.Member](ctx, kv, "members", nil))
	raw, err := kv.Get(ctx, "members")
	require.NoError(t, err)
	require.Equal(t, "[]", raw)
}

func TestReadValue(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()

	_, ok := store.ReadValue[domain.SessionState](ctx, kv, store.KeySessionState)
	require.False(t, ok)

	state := domain.SessionState{
		Identity:        &domain.Identity{ID: "abc", EmailOrUsername: "a@x.com"},
		IsAuthenticated: true,
	}
	require.NoError(t, store.WriteValue(ctx, kv, store.KeySessionState, state))

	got, ok := store.ReadValue[domain.SessionState](ctx, kv, store.KeySessionState)
	require.True(t, ok)
	require.Equal(t, state, got)

	require.NoError(t, kv.Set(ctx, store.KeySessionState, "garbage"))
	_, ok = store.ReadValue[domain.SessionState](ctx, kv, store.KeySessionState)
	require.False(t, ok)
}

func TestMakeIDIsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 1000 {
		id := store.MakeID()
		require.NotContains(t, seen, id)
		seen[id] = struct{}{}
	}
}

func TestMemoryKeys(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()

	require.NoError(t, kv.Set(ctx, store.ObjectKey("b.png"), "{}"))
	require.NoError(t, kv.Set(ctx, store.ObjectKey("a.png"), "{}"))
	require.NoError(t, kv.Set(ctx, store.CollectionKey(domain.KindUsers), "[]"))

	keys, err := kv.Keys(ctx, store.KeyStoragePrefix)
	require.NoError(t, err)
	require.Equal(t, []string{"mock_storage:a.png", "mock_storage:b.png"}, keys)
}

func ptr(s string) *string { return &s }
