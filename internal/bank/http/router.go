package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/okobobank/okobo/internal/bank/service"
	"github.com/okobobank/okobo/internal/bank/store"
	"github.com/okobobank/okobo/pkg/httpx"
	"github.com/okobobank/okobo/pkg/jwtx"
	"github.com/okobobank/okobo/pkg/slogx"

	_ "github.com/okobobank/okobo/api/bank" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AuthService    *service.AuthService
	AccountService *service.AccountService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerDashboard()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Okobo Bank API
//	@version		0.1.0
//	@description	Minimal banking demo API: account signup/signin with bearer tokens and an authenticated dashboard.
//	@description
//	@description				Tokens are EdDSA-signed JWTs and can be verified using the JWKS endpoint.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	r.Mux.Handle("POST /api/auth/signup", &SignUpHandler{
		AuthService: r.AuthService,
	})

	r.Mux.Handle("POST /api/auth/signin", &SignInHandler{
		AuthService: r.AuthService,
	})
}

func (r *Router) registerDashboard() {
	dashboard := &DashboardHandler{
		AccountService: r.AccountService,
	}

	r.Mux.Handle("GET /api/dashboard",
		httpx.Chain(dashboard,
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys))
	r.Mux.Handle("GET /.well-known/jwks.json", JWKSHandler(r.keys))
}
