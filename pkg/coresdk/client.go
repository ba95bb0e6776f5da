package coresdk

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// SDKClient is a client for the localcore service.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client with a cookie jar, so the bill tab sticks to
// this client the way it sticks to a browser.
func NewSDKClient(baseURL string) *SDKClient {
	jar, _ := cookiejar.New(nil) // only errors on a bad PublicSuffixList

	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}
}

// NewSessionFromToken wraps an ID token obtained elsewhere.
func (c *SDKClient) NewSessionFromToken(identity Identity, idToken string) *Session {
	return &Session{client: c, identity: identity, idToken: idToken}
}
