package mock

import (
	"context"

	"github.com/dcsstech/kbportal"
)

var _ kbportal.AccountService = (*AccountService)(nil)

// AccountService is a mock implementation of kbportal.AccountService.
type AccountService struct {
	AuthenticateFn  func(ctx context.Context, email, password string) (*kbportal.Account, error)
	CreateAccountFn func(ctx context.Context, draft kbportal.AccountDraft) (*kbportal.Account, error)
	ListAccountsFn  func(ctx context.Context) ([]*kbportal.Account, error)
}

func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*kbportal.Account, error) {
	return s.AuthenticateFn(ctx, email, password)
}

func (s *AccountService) CreateAccount(ctx context.Context, draft kbportal.AccountDraft) (*kbportal.Account, error) {
	return s.CreateAccountFn(ctx, draft)
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]*kbportal.Account, error) {
	return s.ListAccountsFn(ctx)
}
