//go:build e2e

package localcore_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/localcore/pkg/coresdk"
	"github.com/stretchr/testify/require"
)

func TestRegisterConfirmAndMe(t *testing.T) {
	baseURL := setupContainer(t, nil)
	client := coresdk.NewSDKClient(baseURL)
	ctx := context.Background()

	session := registerAndConfirm(t, client)
	require.Equal(t, "Ada Lovelace", session.Identity().DisplayName)

	me, err := client.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, session.Identity().ID, me.ID)
	require.Equal(t, testEmail, me.Attributes["email"])
}

func TestWrongCodeIsRejected(t *testing.T) {
	baseURL := setupContainer(t, nil)
	client := coresdk.NewSDKClient(baseURL)
	ctx := context.Background()

	_, err := client.Register(ctx, coresdk.RegisterRequest{EmailOrUsername: testEmail, Secret: testSecret})
	require.NoError(t, err)

	_, err = client.Confirm(ctx, testEmail, "654321")
	assertCode(t, err, coresdk.ErrorCodeInvalidCode)

	_, err = client.Me(ctx)
	assertCode(t, err, coresdk.ErrorCodeNotAuthenticated)
}

func TestSignOutThenSignIn(t *testing.T) {
	baseURL := setupContainer(t, nil)
	client := coresdk.NewSDKClient(baseURL)
	ctx := context.Background()

	first := registerAndConfirm(t, client)
	require.NoError(t, client.SignOut(ctx))

	_, err := client.Me(ctx)
	assertCode(t, err, coresdk.ErrorCodeNotAuthenticated)

	second, err := client.SignIn(ctx, testEmail, testSecret)
	require.NoError(t, err)
	require.Equal(t, testEmail, second.Identity().EmailOrUsername)
	// Signing in mints a fresh identity every time.
	require.NotEqual(t, first.Identity().ID, second.Identity().ID)
}
