//go:build e2e

package localcore_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/localcore/pkg/coresdk"
	"github.com/stretchr/testify/require"
)

func TestCollectionsRoundTrip(t *testing.T) {
	baseURL := setupContainer(t, nil)
	session := registerAndConfirm(t, coresdk.NewSDKClient(baseURL))
	ctx := context.Background()

	conv, err := session.CreateRecord(ctx, "conversations", map[string]any{"title": "Lunch"})
	require.NoError(t, err)

	for _, text := range []string{"hi", "hello"} {
		_, err := session.CreateRecord(ctx, "messages", map[string]any{
			"conversationId": conv.ID(),
			"text":           text,
		})
		require.NoError(t, err)
	}

	msgs, err := session.ListRecords(ctx, "messages", map[string]string{"conversationId": conv.ID()})
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	require.NoError(t, session.DeleteRecord(ctx, "conversations", conv.ID()))
	_, err = session.GetRecord(ctx, "conversations", conv.ID())
	assertCode(t, err, coresdk.ErrorCodeNotFound)
}

func TestGraphQLPortfolio(t *testing.T) {
	baseURL := setupContainer(t, nil)
	session := registerAndConfirm(t, coresdk.NewSDKClient(baseURL))
	ctx := context.Background()

	resp, err := session.GraphQL(ctx, coresdk.GraphQLRequest{
		Query:     "mutation CreatePortfolio($input: CreatePortfolioInput!) { createPortfolio(input: $input) { id } }",
		Variables: map[string]any{"input": map[string]any{"title": "Sketches"}},
	})
	require.NoError(t, err)
	created, ok := resp.Data["createPortfolio"].(map[string]any)
	require.True(t, ok)

	resp, err = session.GraphQL(ctx, coresdk.GraphQLRequest{
		Query:     "mutation DeletePortfolio($input: DeletePortfolioInput!) { deletePortfolio(input: $input) { id } }",
		Variables: map[string]any{"input": map[string]any{"id": created["id"]}},
	})
	require.NoError(t, err)
	deleted, ok := resp.Data["deletePortfolio"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, created["id"], deleted["id"])

	_, err = session.GraphQL(ctx, coresdk.GraphQLRequest{Query: "subscription OnMessage { onMessage { id } }"})
	assertCode(t, err, coresdk.ErrorCodeUnsupportedOperation)
}

func TestObjectStorage(t *testing.T) {
	baseURL := setupContainer(t, nil)
	session := registerAndConfirm(t, coresdk.NewSDKClient(baseURL))
	ctx := context.Background()

	_, err := session.PutObject(ctx, "portfolio/cover.png", "image/png", []byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)

	data, ct, err := session.GetObject(ctx, "portfolio/cover.png")
	require.NoError(t, err)
	require.Equal(t, "image/png", ct)
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)

	keys, err := session.ListObjects(ctx, "portfolio/")
	require.NoError(t, err)
	require.Contains(t, keys, "portfolio/cover.png")
}
