package bank_test

import (
	"testing"

	"github.com/okobobank/okobo/pkg/banksdk"
	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check endpoint.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupBankContainer(t)
	defer cleanup()

	client := banksdk.NewSDKClient(baseURL)

	health, err := client.Livez(t.Context())
	assertHealthy(t, health, err)
}

// TestReadyzEndpoint verifies the readiness check endpoint reports its
// dependency checks.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupBankContainer(t)
	defer cleanup()

	client := banksdk.NewSDKClient(baseURL)

	health, err := client.Readyz(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Signer)
}
