package banksdk

import (
	"context"
	"errors"
	"net/http"
	"sync"
)

// AuthState is the authentication state of a SessionContext. The state
// machine is deliberately explicit: a context starts in StateLoading and
// moves to exactly one of the terminal states, so page guards can read the
// current state synchronously instead of reacting to async flag changes.
type AuthState int

const (
	// StateLoading means Restore has not completed yet. Guards hold the
	// viewer on the current page until the state resolves.
	StateLoading AuthState = iota

	// StateAuthenticated means a stored or freshly minted token exists.
	StateAuthenticated

	// StateUnauthenticated means no usable token exists.
	StateUnauthenticated
)

func (s AuthState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Page identifies a client view for routing decisions.
type Page string

const (
	PageLanding   Page = "/"
	PageSignIn    Page = "/signin"
	PageSignUp    Page = "/signup"
	PageDashboard Page = "/home"
)

// SessionContext tracks the viewer's authentication state and the current
// user. It is safe for concurrent use.
type SessionContext struct {
	client *SDKClient
	tokens TokenStore

	mu    sync.RWMutex
	state AuthState
	token string
	user  *UserPayload
}

// NewSessionContext creates a session context in StateLoading. Call Restore
// to resolve the initial state from the token store.
func NewSessionContext(client *SDKClient, tokens TokenStore) *SessionContext {
	return &SessionContext{
		client: client,
		tokens: tokens,
		state:  StateLoading,
	}
}

// State returns the current authentication state.
func (s *SessionContext) State() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Token returns the current bearer token, or "" when unauthenticated.
func (s *SessionContext) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the signed-in user, or nil before the first authenticated
// call resolves one.
func (s *SessionContext) User() *UserPayload {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Restore resolves the initial state from the token store. A stored token is
// validated against the dashboard endpoint; a rejected token is discarded so
// the next Restore starts clean. Always transitions out of StateLoading.
func (s *SessionContext) Restore(ctx context.Context) AuthState {
	token, err := s.tokens.Load()
	if err != nil {
		s.setUnauthenticated()
		return StateUnauthenticated
	}

	dash, err := s.client.Dashboard(ctx, token)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			_ = s.tokens.Clear()
		}
		s.setUnauthenticated()
		return StateUnauthenticated
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.token = token
	s.user = &dash.User
	s.mu.Unlock()
	return StateAuthenticated
}

// SignUp creates an account and transitions to StateAuthenticated on
// success. The minted token is persisted to the token store.
func (s *SessionContext) SignUp(ctx context.Context, req SignUpRequest) (*AuthResponse, error) {
	resp, err := s.client.SignUp(ctx, req)
	if err != nil {
		return nil, err
	}
	s.setAuthenticated(resp)
	return resp, nil
}

// SignIn authenticates and transitions to StateAuthenticated on success.
// A failed signin leaves the current state untouched.
func (s *SessionContext) SignIn(ctx context.Context, req SignInRequest) (*AuthResponse, error) {
	resp, err := s.client.SignIn(ctx, req)
	if err != nil {
		return nil, err
	}
	s.setAuthenticated(resp)
	return resp, nil
}

// Dashboard fetches the dashboard with the session's token. A 401 response
// drops the session to StateUnauthenticated and clears the stored token.
func (s *SessionContext) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return nil, ErrInvalidToken
	}

	dash, err := s.client.Dashboard(ctx, token)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			_ = s.tokens.Clear()
			s.setUnauthenticated()
		}
		return nil, err
	}

	s.mu.Lock()
	s.user = &dash.User
	s.mu.Unlock()
	return dash, nil
}

// Logout discards the token and transitions to StateUnauthenticated.
func (s *SessionContext) Logout() error {
	err := s.tokens.Clear()
	s.setUnauthenticated()
	return err
}

// RouteFor returns where the viewer should land when opening the given page
// in the current state. The page itself means "stay".
//
// Authenticated viewers of the landing/signin/signup pages are sent to the
// dashboard; unauthenticated viewers of the dashboard are sent to signin.
// While loading, every page answers "stay" so no redirect fires before the
// state is known.
func (s *SessionContext) RouteFor(page Page) Page {
	switch s.State() {
	case StateAuthenticated:
		switch page {
		case PageLanding, PageSignIn, PageSignUp:
			return PageDashboard
		}
	case StateUnauthenticated:
		if page == PageDashboard {
			return PageSignIn
		}
		if page == PageLanding {
			return PageSignIn
		}
	}
	return page
}

func (s *SessionContext) setAuthenticated(resp *AuthResponse) {
	_ = s.tokens.Save(resp.Token)

	s.mu.Lock()
	s.state = StateAuthenticated
	s.token = resp.Token
	user := resp.User
	s.user = &user
	s.mu.Unlock()
}

func (s *SessionContext) setUnauthenticated() {
	s.mu.Lock()
	s.state = StateUnauthenticated
	s.token = ""
	s.user = nil
	s.mu.Unlock()
}
