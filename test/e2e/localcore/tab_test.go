//go:build e2e

package localcore_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/localcore/pkg/coresdk"
	"github.com/stretchr/testify/require"
)

func TestTabSettlement(t *testing.T) {
	baseURL := setupContainer(t, nil)
	client := coresdk.NewSDKClient(baseURL)
	ctx := context.Background()

	for _, name := range []string{"Alice", "Bob", "Carol"} {
		_, err := client.AddMember(ctx, name)
		require.NoError(t, err)
	}

	_, err := client.AddExpense(ctx, coresdk.ExpenseRequest{PayerName: "Alice", Amount: 60, Memo: "pizza"})
	require.NoError(t, err)
	_, err = client.AddExpense(ctx, coresdk.ExpenseRequest{PayerName: "Bob", Amount: 30, Memo: "drinks"})
	require.NoError(t, err)

	transfers, err := client.Settlements(ctx)
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	require.Equal(t, coresdk.Transfer{From: "Carol", To: "Alice", Amount: 30}, transfers[0])
}

func TestTabSharedSession(t *testing.T) {
	baseURL := setupContainer(t, map[string]string{"TAB_SHARED_SESSION": "true"})
	ctx := context.Background()

	first := coresdk.NewSDKClient(baseURL)
	_, err := first.AddMember(ctx, "Alice")
	require.NoError(t, err)

	// A second browser without a cookie joins the same tab.
	second := coresdk.NewSDKClient(baseURL)
	members, err := second.Members(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.Equal(t, "Alice", members[0].Name)
}
