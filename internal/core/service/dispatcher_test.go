package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/localcore/internal/core/domain"
	"github.com/aussiebroadwan/localcore/internal/core/store/drivers/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	kv := memory.NewStore()
	return &Dispatcher{
		Users:     NewCollection(domain.KindUsers, kv, 0),
		Portfolio: NewCollection(domain.KindPortfolio, kv, 0),
	}
}

func TestParseOperation(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    Operation
		wantErr bool
	}{
		{"mutation", "mutation CreateUser($input: CreateUserInput!) { createUser(input: $input) { id } }", OpCreateUser, false},
		{"query", "query GetUser($id: ID!) { getUser(id: $id) { id name } }", OpGetUser, false},
		{"lower case", "query listportfolios { listPortfolios { items { id } } }", OpListPortfolios, false},
		{"subscription keyword", "subscription ListUsers { x }", OpListUsers, false},
		{"unknown", "mutation DeleteUser { deleteUser { id } }", "", true},
		{"anonymous query", "{ listUsers { items { id } } }", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOperation(tt.doc)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedOperation)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDispatchUserLifecycle(t *testing.T) {
	ctx := context.Background()
	d := newTestDispatcher(t)

	resp, err := d.DispatchDocument(ctx,
		"mutation CreateUser($input: CreateUserInput!) { createUser(input: $input) { id } }",
		map[string]any{"input": map[string]any{"name": "Dana", "role": "photographer"}},
	)
	require.NoError(t, err)
	created, ok := resp.Data["createUser"].(domain.Record)
	require.True(t, ok)
	id := created.ID()
	require.NotEmpty(t, id)

	resp, err = d.Dispatch(ctx, OpUpdateUser, map[string]any{
		"input": map[string]any{"id": id, "bio": "Weddings"},
	})
	require.NoError(t, err)
	updated := resp.Data["updateUser"].(domain.Record)
	require.Equal(t, "Dana", updated["name"])
	require.Equal(t, "Weddings", updated["bio"])

	resp, err = d.Dispatch(ctx, OpGetUser, map[string]any{"id": id})
	require.NoError(t, err)
	require.Equal(t, updated, resp.Data["getUser"])

	resp, err = d.Dispatch(ctx, OpGetUser, map[string]any{"id": "nope"})
	require.NoError(t, err)
	require.Contains(t, resp.Data, "getUser")
	require.Nil(t, resp.Data["getUser"])
}

func TestDispatchListFilters(t *testing.T) {
	ctx := context.Background()
	d := newTestDispatcher(t)

	for _, in := range []map[string]any{
		{"id": "u1", "name": "Dana Reyes", "role": "photographer", "specialties": []any{"weddings"}},
		{"id": "u2", "name": "Sam", "role": "client"},
		{"id": "u3", "name": "Dana Lee", "role": "client"},
	} {
		_, err := d.Dispatch(ctx, OpCreateUser, map[string]any{"input": in})
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		filter map[string]any
		want   []string
	}{
		{"no filter", nil, []string{"u1", "u2", "u3"}},
		{"eq", map[string]any{"role": map[string]any{"eq": "client"}}, []string{"u2", "u3"}},
		{"contains substring", map[string]any{"name": map[string]any{"contains": "Dana"}}, []string{"u1", "u3"}},
		{"contains element", map[string]any{"specialties": map[string]any{"contains": "weddings"}}, []string{"u1"}},
		{"bare value", map[string]any{"role": "photographer"}, []string{"u1"}},
		{"combined", map[string]any{
			"role": map[string]any{"eq": "client"},
			"name": map[string]any{"contains": "Dana"},
		}, []string{"u3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := map[string]any{}
			if tt.filter != nil {
				vars["filter"] = tt.filter
			}

			resp, err := d.Dispatch(ctx, OpListUsers, vars)
			require.NoError(t, err)

			items := resp.Data["listUsers"].(map[string]any)["items"].([]domain.Record)
			ids := make([]string, 0, len(items))
			for _, r := range items {
				ids = append(ids, r.ID())
			}
			require.Equal(t, tt.want, ids)
		})
	}

	_, err := d.Dispatch(ctx, OpListUsers, map[string]any{
		"filter": map[string]any{"name": map[string]any{"beginsWith": "D"}},
	})
	require.ErrorIs(t, err, ErrInvalidVariables)
}

func TestDispatchPortfolio(t *testing.T) {
	ctx := context.Background()
	d := newTestDispatcher(t)

	resp, err := d.Dispatch(ctx, OpCreatePortfolio, map[string]any{
		"input": domain.PortfolioItemInput{PhotographerID: "u1", ImageURL: "a.jpg"},
	})
	require.NoError(t, err)
	item := resp.Data["createPortfolio"].(domain.Record)

	_, err = d.Dispatch(ctx, OpCreatePortfolio, map[string]any{
		"input": domain.PortfolioItemInput{PhotographerID: "u2", ImageURL: "b.jpg"},
	})
	require.NoError(t, err)

	resp, err = d.Dispatch(ctx, OpListPortfolios, map[string]any{
		"filter": map[string]any{"photographer_id": map[string]any{"eq": "u1"}},
	})
	require.NoError(t, err)
	items := resp.Data["listPortfolios"].(map[string]any)["items"].([]domain.Record)
	require.Len(t, items, 1)

	resp, err = d.Dispatch(ctx, OpDeletePortfolio, map[string]any{
		"input": map[string]any{"id": item.ID()},
	})
	require.NoError(t, err)
	require.Equal(t, item.ID(), resp.Data["deletePortfolio"].(domain.Record).ID())

	// Deleting again still answers with the id
	resp, err = d.Dispatch(ctx, OpDeletePortfolio, map[string]any{"id": item.ID()})
	require.NoError(t, err)
	require.Equal(t, domain.Record{"id": item.ID()}, resp.Data["deletePortfolio"])
}

func TestDispatchRejectsBadVariables(t *testing.T) {
	ctx := context.Background()
	d := newTestDispatcher(t)

	_, err := d.Dispatch(ctx, OpCreateUser, map[string]any{"input": "Dana"})
	require.ErrorIs(t, err, ErrInvalidVariables)

	_, err = d.Dispatch(ctx, OpUpdateUser, map[string]any{"input": map[string]any{"bio": "x"}})
	require.ErrorIs(t, err, ErrInvalidVariables)

	_, err = d.Dispatch(ctx, OpGetUser, nil)
	require.ErrorIs(t, err, ErrInvalidVariables)

	_, err = d.Dispatch(ctx, Operation("deleteUser"), nil)
	require.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestDispatchMetrics(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	d := newTestDispatcher(t)
	d.Metrics = m

	_, err := d.Dispatch(ctx, OpListUsers, nil)
	require.NoError(t, err)
	_, err = d.Dispatch(ctx, OpGetUser, nil)
	require.Error(t, err)
	_, err = d.DispatchDocument(ctx, "query Nope { nope }", nil)
	require.Error(t, err)

	require.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("listUsers", OutcomeOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("getUser", OutcomeError)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("unsupported", OutcomeError)))
}
