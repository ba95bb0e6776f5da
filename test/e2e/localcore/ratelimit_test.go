//go:build e2e

package localcore_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/localcore/pkg/coresdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitSignIn verifies the credential endpoints are rate limited per
// address. Limits are lowered so the test stays quick.
func TestRateLimitSignIn(t *testing.T) {
	baseURL := setupContainer(t, map[string]string{
		"RATELIMIT_STRICT_REQUESTS":   "3",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "3",
	})
	client := coresdk.NewSDKClient(baseURL)
	ctx := context.Background()

	for i := range 3 {
		_, err := client.SignIn(ctx, testEmail, testSecret)
		require.NoError(t, err, "request %d should not be limited", i+1)
	}

	_, err := client.SignIn(ctx, testEmail, testSecret)
	assertCode(t, err, coresdk.ErrorCodeRateLimitExceeded)

	// Other route groups keep their own budget.
	_, err = client.GetLiveness(ctx)
	require.NoError(t, err)
}
