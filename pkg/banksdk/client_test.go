package banksdk

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientErrorParsing(t *testing.T) {
	t.Run("standard envelope becomes APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(ErrorResponse{
				Success: false,
				Error:   "User already exists",
				Message: "An account with this email already exists",
			})
		}))
		t.Cleanup(srv.Close)

		client := NewSDKClient(srv.URL)
		_, err := client.SignUp(t.Context(), SignUpRequest{Name: "A", Email: "a@b.co", Password: "secret1"})

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusConflict, apiErr.StatusCode)
		require.Equal(t, "User already exists", apiErr.Code)
		require.Equal(t, "An account with this email already exists", apiErr.Message)
		require.Contains(t, apiErr.Error(), "already exists")
	})

	t.Run("non-envelope body still yields an APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		}))
		t.Cleanup(srv.Close)

		client := NewSDKClient(srv.URL)
		_, err := client.Dashboard(t.Context(), "token")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	})
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(DashboardResponse{Success: true})
	}))
	t.Cleanup(srv.Close)

	client := NewSDKClient(srv.URL)
	_, err := client.Dashboard(t.Context(), "my-token")
	require.NoError(t, err)
	require.Equal(t, "Bearer my-token", gotAuth)
}

func TestFileTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := &FileTokenStore{Path: path}

	_, err := store.Load()
	require.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, store.Save("my-token"))

	token, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "my-token", token)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	require.ErrorIs(t, err, ErrNoToken)

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}
