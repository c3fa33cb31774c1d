package http

import (
	"errors"
	"net/http"

	"github.com/okobobank/okobo/internal/bank/domain"
	"github.com/okobobank/okobo/internal/bank/service"
	"github.com/okobobank/okobo/pkg/banksdk"
	"github.com/okobobank/okobo/pkg/httpx"
	"github.com/okobobank/okobo/pkg/idx"
	"github.com/okobobank/okobo/pkg/slogx"
)

type DashboardHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Dashboard Endpoint
//	@Description	Returns the signed-in user's profile and account summary.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	banksdk.DashboardResponse	"success, user, account"
//	@Failure		400	{object}	banksdk.ErrorResponse		"malformed user id in token"
//	@Failure		401	{object}	banksdk.ErrorResponse		"invalid or missing token, or user no longer exists"
//	@Failure		500	{object}	banksdk.ErrorResponse		"error, message"
//	@Router			/api/dashboard [get].
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		banksdk.ErrInvalidToken.WriteError(w)
		return
	}

	// A verified token can still carry a subject that is not an id, e.g.
	// one minted by an older build. Treat it as a bad request, not a 500.
	if _, err := idx.Parse(userID); err != nil {
		banksdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, summary, err := h.AccountService.Dashboard(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			banksdk.ErrInvalidToken.WriteError(w)
		default:
			log.Error("dashboard failed", "user_id", userID, "err", err)
			banksdk.ErrSigninServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, banksdk.DashboardResponse{
		Success: true,
		User:    toUserPayload(user),
		Account: toAccountPayload(summary),
	})
}

func toAccountPayload(s domain.AccountSummary) banksdk.AccountPayload {
	transactions := make([]banksdk.TransactionPayload, 0, len(s.RecentTransactions))
	for _, t := range s.RecentTransactions {
		transactions = append(transactions, banksdk.TransactionPayload{
			ID:          t.ID,
			Description: t.Description,
			Amount:      t.Amount,
		})
	}

	return banksdk.AccountPayload{
		Balance:            s.Balance,
		AvailableCredit:    s.AvailableCredit,
		Savings:            s.Savings,
		RecentTransactions: transactions,
	}
}
