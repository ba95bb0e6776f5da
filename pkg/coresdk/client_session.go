package coresdk

import (
	"context"
	"net/http"
)

// Register stages a registration.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*DeliveryResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/session/register", req)
	if err != nil {
		return nil, err
	}

	var out DeliveryResponse
	if err := decodeJSON(resp, &out, http.StatusAccepted); err != nil {
		return nil, err
	}
	return &out, nil
}

// Confirm completes a registration and returns an authenticated Session.
func (c *SDKClient) Confirm(ctx context.Context, emailOrUsername, code string) (*Session, error) {
	return c.authenticate(ctx, "/v1/session/confirm", ConfirmRequest{
		EmailOrUsername: emailOrUsername,
		Code:            code,
	})
}

// SignIn returns an authenticated Session.
func (c *SDKClient) SignIn(ctx context.Context, emailOrUsername, secret string) (*Session, error) {
	return c.authenticate(ctx, "/v1/session/signin", SignInRequest{
		EmailOrUsername: emailOrUsername,
		Secret:          secret,
	})
}

// SignOut clears the service's current identity.
func (c *SDKClient) SignOut(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/session/signout", nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Me returns the current identity with its attributes.
func (c *SDKClient) Me(ctx context.Context) (*Identity, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/session/me", nil, nil)
	if err != nil {
		return nil, err
	}

	var out Identity
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) authenticate(ctx context.Context, path string, body any) (*Session, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}

	var out SessionResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, &out), nil
}
