package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/okobobank/okobo/internal/bank/service"
	"github.com/okobobank/okobo/internal/bank/store/drivers/sqlite"
	"github.com/okobobank/okobo/pkg/banksdk"
	"github.com/okobobank/okobo/pkg/cryptox"
	"github.com/okobobank/okobo/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "http-pepper")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(dir + "/pepper.key")

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:  "test-issuer",
		NumKeys: 1,
	})
	require.NoError(t, err)

	tokens := &jwtx.AccessIssuer{
		Manager: km,
		Issuer:  "test-issuer",
		TTL:     time.Minute,
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	r := NewRouter(km.KeySet, km.Verifier, "test", st, logger)
	r.AuthService = &service.AuthService{
		Store:  st,
		Hasher: cryptox.Argon2{},
		Tokens: tokens,
	}
	r.AccountService = &service.AccountService{Store: st}
	r.ApplyRoutes()
	return r
}

func doJSON(t *testing.T, router *Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeAuth(t *testing.T, rec *httptest.ResponseRecorder) banksdk.AuthResponse {
	t.Helper()
	var resp banksdk.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) banksdk.ErrorResponse {
	t.Helper()
	var resp banksdk.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSignUpEndpoint(t *testing.T) {
	t.Run("creates account and returns token", func(t *testing.T) {
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", banksdk.SignUpRequest{
			Name:     "Ann",
			Email:    "a@b.com",
			Password: "secret1",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		resp := decodeAuth(t, rec)
		require.True(t, resp.Success)
		require.Equal(t, "Account created successfully! Welcome to Okobo Bank.", resp.Message)
		require.Equal(t, "a@b.com", resp.User.Email)
		require.Equal(t, "Ann", resp.User.Name)
		require.NotEmpty(t, resp.User.ID)
		require.NotEmpty(t, resp.Token)
	})

	t.Run("duplicate email with different case conflicts", func(t *testing.T) {
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", banksdk.SignUpRequest{
			Name: "Ann", Email: "a@b.com", Password: "secret1",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, router, http.MethodPost, "/api/auth/signup", "", banksdk.SignUpRequest{
			Name: "Ann Again", Email: "A@b.com", Password: "secret2",
		})
		require.Equal(t, http.StatusConflict, rec.Code)

		resp := decodeError(t, rec)
		require.False(t, resp.Success)
		require.Equal(t, "User already exists", resp.Error)
		require.Equal(t, "An account with this email already exists", resp.Message)
	})

	t.Run("malformed email rejected before any write", func(t *testing.T) {
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", banksdk.SignUpRequest{
			Name: "Ann", Email: "bad-email", Password: "secret1",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Invalid email format", decodeError(t, rec).Error)

		// Nothing stored under that email.
		_, err := router.store.Users().GetUserByEmail(context.Background(), "bad-email")
		require.Error(t, err)
	})

	t.Run("missing fields", func(t *testing.T) {
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", banksdk.SignUpRequest{
			Email: "a@b.com", Password: "secret1",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "All fields are required", decodeError(t, rec).Error)
	})

	t.Run("short password", func(t *testing.T) {
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", banksdk.SignUpRequest{
			Name: "Ann", Email: "a@b.com", Password: "short",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeError(t, rec)
		require.Equal(t, "Password too short", resp.Error)
		require.Equal(t, "Password must be at least 6 characters long", resp.Message)
	})

	t.Run("invalid json body", func(t *testing.T) {
		router := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSignInEndpoint(t *testing.T) {
	signUp := func(t *testing.T, router *Router) banksdk.AuthResponse {
		rec := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", banksdk.SignUpRequest{
			Name: "Ann", Email: "a@b.com", Password: "secret1",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		return decodeAuth(t, rec)
	}

	t.Run("signs in with correct credentials", func(t *testing.T) {
		router := newTestRouter(t)
		created := signUp(t, router)

		rec := doJSON(t, router, http.MethodPost, "/api/auth/signin", "", banksdk.SignInRequest{
			Email: "a@b.com", Password: "secret1",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeAuth(t, rec)
		require.True(t, resp.Success)
		require.Equal(t, "Welcome back, Ann! You have successfully signed in.", resp.Message)
		require.Equal(t, created.User.ID, resp.User.ID)
		require.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password message is distinct", func(t *testing.T) {
		router := newTestRouter(t)
		signUp(t, router)

		rec := doJSON(t, router, http.MethodPost, "/api/auth/signin", "", banksdk.SignInRequest{
			Email: "a@b.com", Password: "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Incorrect password. Please try again.", decodeError(t, rec).Message)
	})

	t.Run("unknown email message mentions no account", func(t *testing.T) {
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/api/auth/signin", "", banksdk.SignInRequest{
			Email: "unknown@x.com", Password: "anything",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "No account found with this email address", decodeError(t, rec).Message)
	})

	t.Run("missing credentials", func(t *testing.T) {
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/api/auth/signin", "", banksdk.SignInRequest{
			Email: "a@b.com",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Missing credentials", decodeError(t, rec).Error)
	})
}

func TestDashboardEndpoint(t *testing.T) {
	t.Run("returns balances with a valid token", func(t *testing.T) {
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", banksdk.SignUpRequest{
			Name: "Ann", Email: "a@b.com", Password: "secret1",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		created := decodeAuth(t, rec)

		rec = doJSON(t, router, http.MethodGet, "/api/dashboard", created.Token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp banksdk.DashboardResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.True(t, resp.Success)
		require.Equal(t, created.User.ID, resp.User.ID)
		require.Equal(t, "$10,000.00", resp.Account.Balance)
		require.Equal(t, "$5,000.00", resp.Account.AvailableCredit)
		require.Equal(t, "$2,500.00", resp.Account.Savings)
		require.Empty(t, resp.Account.RecentTransactions)
	})

	t.Run("missing token", func(t *testing.T) {
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodGet, "/api/dashboard", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodGet, "/api/dashboard", "not.a.token", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token from a foreign signer", func(t *testing.T) {
		router := newTestRouter(t)

		other, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
			Issuer:  "test-issuer",
			NumKeys: 1,
		})
		require.NoError(t, err)

		issuer := &jwtx.AccessIssuer{Manager: other, Issuer: "test-issuer", TTL: time.Minute}
		token, err := issuer.Mint("01HZXCVBNMQWERTYUIOPASDFGH", "Eve", "eve@x.com")
		require.NoError(t, err)

		rec := doJSON(t, router, http.MethodGet, "/api/dashboard", token, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestSystemEndpoints(t *testing.T) {
	t.Run("livez", func(t *testing.T) {
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodGet, "/livez", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp banksdk.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "ok", resp.Status)
		require.Equal(t, "test", resp.Version)
	})

	t.Run("readyz reports healthy dependencies", func(t *testing.T) {
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodGet, "/readyz", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp banksdk.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "ok", resp.Status)
		require.NotNil(t, resp.Checks)
		require.Equal(t, "ok", resp.Checks.Database)
		require.Equal(t, "ok", resp.Checks.Signer)
	})

	t.Run("jwks exposes at least one key", func(t *testing.T) {
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodGet, "/.well-known/jwks.json", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp banksdk.JWKSResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Keys)
	})
}
