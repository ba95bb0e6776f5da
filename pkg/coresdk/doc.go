/*
Package coresdk is a Go client for the localcore HTTP API.

# SDKClient vs Session

  - SDKClient: public endpoints (registration, sign-in, health) and the bill
    tab, which is keyed by a browser-style cookie the client keeps in its jar.
  - Session: bearer-authenticated endpoints (collections, mock GraphQL,
    object storage). Created from a successful sign-in or confirmation.

	client := coresdk.NewSDKClient("http://localhost:8080")

	// Register and confirm with the fixed mock code
	_, err := client.Register(ctx, coresdk.RegisterRequest{
		EmailOrUsername: "dana@example.com",
		Secret:          "hunter22",
		DisplayName:     "Dana",
	})
	session, err := client.Confirm(ctx, "dana@example.com", "123456")

	// Collections
	rec, err := session.CreateRecord(ctx, "users", map[string]any{"name": "Dana"})

	// GraphQL-shaped calls
	resp, err := session.GraphQL(ctx, coresdk.GraphQLRequest{
		Query:     "query ListUsers { listUsers { items { id } } }",
		Variables: map[string]any{"filter": map[string]any{"role": map[string]any{"eq": "client"}}},
	})

	// Bill tab
	_, err = client.AddMember(ctx, "Ann")
	transfers, err := client.Settlements(ctx)

# Errors

Non-2xx responses come back as *APIError carrying the HTTP status and the
error code from the body. Use IsCode to branch on a code:

	if coresdk.IsCode(err, coresdk.ErrorCodeOrphanExpenses) {
		// ask the user to reassign expenses first
	}

# Thread Safety

SDKClient and Session are safe for concurrent use.
*/
package coresdk
