/*
Package banksdk provides a client SDK for the Okobo Bank API.

# Overview

The package is organized around two main types:

  - SDKClient: raw HTTP calls to the auth and dashboard endpoints
  - SessionContext: authentication state machine with page routing guards

Create an SDKClient to talk to the service directly:

	client := banksdk.NewSDKClient("https://bank.example.com")

	resp, err := client.SignIn(ctx, banksdk.SignInRequest{
		Email:    "alice@example.com",
		Password: "secret1",
	})

Most consumers should wrap the client in a SessionContext, which persists the
bearer token through a TokenStore and exposes the current auth state:

	tokens := &banksdk.FileTokenStore{Path: "~/.okobo/token"}
	session := banksdk.NewSessionContext(client, tokens)

	// Resolve the initial state from the stored token.
	session.Restore(ctx)

	// Deterministic page routing from the current state.
	if target := session.RouteFor(banksdk.PageDashboard); target != banksdk.PageDashboard {
		// redirect to target
	}

# Error Handling

Failed API calls return *APIError carrying the HTTP status and the service's
error envelope:

	_, err := client.SignIn(ctx, req)
	var apiErr *banksdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		// bad credentials
	}
*/
package banksdk
