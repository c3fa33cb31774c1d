package banksdk

import (
	"time"

	"github.com/okobobank/okobo/pkg/jwtx"
)

// JWKSResponse is the JSON Web Key Set returned from /.well-known/jwks.json.
type JWKSResponse = jwtx.JWKS

// ============================================================================
// Request Types
// ============================================================================

// SignUpRequest is the JSON body for POST /api/auth/signup.
type SignUpRequest struct {
	// Name is the account holder's display name (trimmed server-side)
	Name string `json:"name"`

	// Email identifies the account; normalized to lowercase server-side
	Email string `json:"email"`

	// Password must be at least 6 characters
	Password string `json:"password"`
}

// SignInRequest is the JSON body for POST /api/auth/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ============================================================================
// Response Types
// ============================================================================

// UserPayload is the public view of a user. The password hash is never part
// of any payload.
type UserPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is the success envelope returned from signup (201) and
// signin (200).
type AuthResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    UserPayload `json:"user"`

	// Token is a signed bearer token; send it as "Authorization: Bearer {token}"
	Token string `json:"token"`
}

// ErrorResponse is the failure envelope shared by every endpoint.
type ErrorResponse struct {
	Success bool `json:"success"`

	// Error is a short machine-oriented label (e.g. "Invalid credentials")
	Error string `json:"error"`

	// Message is the human-readable explanation shown to the user
	Message string `json:"message"`
}

// AccountPayload carries the dashboard figures.
type AccountPayload struct {
	Balance            string               `json:"balance"`
	AvailableCredit    string               `json:"availableCredit"`
	Savings            string               `json:"savings"`
	RecentTransactions []TransactionPayload `json:"recentTransactions"`
}

// TransactionPayload is a ledger entry on the dashboard.
type TransactionPayload struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// DashboardResponse is returned from GET /api/dashboard.
type DashboardResponse struct {
	Success bool           `json:"success"`
	User    UserPayload    `json:"user"`
	Account AccountPayload `json:"account"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthChecks reports per-dependency health on the readiness endpoint.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// HealthResponse is returned from /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
