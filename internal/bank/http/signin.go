package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/okobobank/okobo/internal/bank/service"
	"github.com/okobobank/okobo/internal/bank/store"
	"github.com/okobobank/okobo/pkg/banksdk"
	"github.com/okobobank/okobo/pkg/httpx"
	"github.com/okobobank/okobo/pkg/slogx"
)

type SignInHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Sign In Endpoint
//	@Description	Authenticate with email and password. Returns a bearer token for the dashboard.
//	@Description	The unknown-email and wrong-password cases both return 401 but carry distinct messages.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		banksdk.SignInRequest	true	"email, password"
//	@Success		200		{object}	banksdk.AuthResponse	"success, message, user, token"
//	@Failure		400		{object}	banksdk.ErrorResponse	"missing credentials or malformed email"
//	@Failure		401		{object}	banksdk.ErrorResponse	"no account or incorrect password"
//	@Failure		500		{object}	banksdk.ErrorResponse	"error, message"
//	@Router			/api/auth/signin [post].
func (h *SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req banksdk.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		banksdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, token, err := h.AuthService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			banksdk.ErrMissingCredentials.WriteError(w)
		case errors.Is(err, service.ErrInvalidEmail):
			banksdk.ErrInvalidEmailFormat.WriteError(w)
		case errors.Is(err, service.ErrNoAccount):
			banksdk.ErrNoAccountFound.WriteError(w)
		case errors.Is(err, service.ErrWrongPassword):
			banksdk.ErrIncorrectPassword.WriteError(w)
		case errors.Is(err, store.ErrInvalidArgument):
			banksdk.ErrInvalidRequest.WriteError(w)
		default:
			log.Error("signin failed", "err", err)
			banksdk.ErrSigninServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, banksdk.AuthResponse{
		Success: true,
		Message: fmt.Sprintf("Welcome back, %s! You have successfully signed in.", user.Name),
		User:    toUserPayload(user),
		Token:   token,
	})
}
