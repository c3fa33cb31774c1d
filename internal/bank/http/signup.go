package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okobobank/okobo/internal/bank/domain"
	"github.com/okobobank/okobo/internal/bank/service"
	"github.com/okobobank/okobo/internal/bank/store"
	"github.com/okobobank/okobo/pkg/banksdk"
	"github.com/okobobank/okobo/pkg/httpx"
	"github.com/okobobank/okobo/pkg/slogx"
)

type SignUpHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Create Account Endpoint
//	@Description	Create a new bank account with name, email and password.
//	@Description	The new account is signed in immediately; the response carries a bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		banksdk.SignUpRequest	true	"name, email, password"
//	@Success		201		{object}	banksdk.AuthResponse	"success, message, user, token"
//	@Failure		400		{object}	banksdk.ErrorResponse	"missing fields, short password or malformed email"
//	@Failure		409		{object}	banksdk.ErrorResponse	"email already registered"
//	@Failure		500		{object}	banksdk.ErrorResponse	"error, message"
//	@Router			/api/auth/signup [post].
func (h *SignUpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req banksdk.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		banksdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, token, err := h.AuthService.SignUp(ctx, service.SignUpRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			banksdk.ErrAllFieldsRequired.WriteError(w)
		case errors.Is(err, service.ErrPasswordTooShort):
			banksdk.ErrPasswordTooShort.WriteError(w)
		case errors.Is(err, service.ErrInvalidEmail):
			banksdk.ErrInvalidEmailFormat.WriteError(w)
		case errors.Is(err, service.ErrEmailTaken):
			banksdk.ErrUserAlreadyExists.WriteError(w)
		case errors.Is(err, store.ErrInvalidArgument):
			banksdk.ErrValidationFailed.WriteError(w)
		default:
			log.Error("signup failed", "err", err)
			banksdk.ErrSignupServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, banksdk.AuthResponse{
		Success: true,
		Message: "Account created successfully! Welcome to Okobo Bank.",
		User:    toUserPayload(user),
		Token:   token,
	})
}

func toUserPayload(u domain.User) banksdk.UserPayload {
	return banksdk.UserPayload{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
