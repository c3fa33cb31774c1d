package service

import (
	"context"
	"errors"

	"github.com/okobobank/okobo/internal/bank/domain"
	"github.com/okobobank/okobo/internal/bank/store"
)

var ErrUserNotFound = errors.New("user_not_found")

// AccountService serves the dashboard view for an authenticated user.
type AccountService struct {
	Store store.Store
}

// Dashboard returns the user's profile together with their account summary.
//
// The summary figures are fixed demo values until a ledger exists; the
// interesting part is that they are only reachable with a valid token.
func (s *AccountService) Dashboard(ctx context.Context, userID string) (domain.User, domain.AccountSummary, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.AccountSummary{}, ErrUserNotFound
		}
		return domain.User{}, domain.AccountSummary{}, err
	}

	return user, domain.DemoAccountSummary(), nil
}
