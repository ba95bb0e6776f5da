//go:build e2e

package localcore_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/localcore/pkg/coresdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL := setupContainer(t, nil)
	client := coresdk.NewSDKClient(baseURL)
	ctx := context.Background()

	live, err := client.GetLiveness(ctx)
	assertHealthy(t, live, err)
	require.NotEmpty(t, live.Version)

	ready, err := client.GetReadiness(ctx)
	assertHealthy(t, ready, err)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Storage)
}
