package memory

import (
	"context"
	"sync"

	"github.com/dcsstech/kbportal"
	"github.com/google/uuid"
)

// Ensure AccountService implements kbportal.AccountService at compile time.
var _ kbportal.AccountService = (*AccountService)(nil)

// AccountService is an in-memory account store. It is safe for
// concurrent use by multiple goroutines.
type AccountService struct {
	mu       sync.Mutex
	accounts []*kbportal.Account
}

// NewAccountService creates an account store seeded with the given
// accounts. The seed slice is copied.
func NewAccountService(seed []*kbportal.Account) *AccountService {
	accounts := make([]*kbportal.Account, 0, len(seed))
	for _, a := range seed {
		clone := *a
		accounts = append(accounts, &clone)
	}
	return &AccountService{accounts: accounts}
}

// Authenticate returns the account matching both email and password
// exactly. There is no lockout or retry-limit logic.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*kbportal.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.Email == email && a.Password == password {
			clone := *a
			return &clone, nil
		}
	}
	return nil, kbportal.Errorf(kbportal.EUNAUTHORIZED, "%s", kbportal.AuthFailedMessage)
}

// CreateAccount assigns a fresh unique ID and appends the account.
// Email uniqueness is expected but not actively enforced.
func (s *AccountService) CreateAccount(ctx context.Context, draft kbportal.AccountDraft) (*kbportal.Account, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account := &kbportal.Account{
		ID:       uuid.New().String(),
		Name:     draft.Name,
		Email:    draft.Email,
		Password: draft.Password,
		Role:     draft.Role,
	}
	s.accounts = append(s.accounts, account)
	clone := *account
	return &clone, nil
}

// ListAccounts returns all accounts in insertion order.
func (s *AccountService) ListAccounts(ctx context.Context) ([]*kbportal.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*kbportal.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}
