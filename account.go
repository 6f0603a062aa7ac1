package kbportal

import "context"

// Role determines which operations an account may perform.
// There are exactly two roles with no hierarchy beyond the binary.
type Role string

// Role constants.
const (
	RoleAdmin   Role = "ADMIN"
	RoleGeneral Role = "GENERAL"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleGeneral
}

// Account represents a portal user. The role is fixed at creation.
// Passwords are stored in the clear; credential hardening is explicitly
// out of scope for this deployment model.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
}

// AccountDraft is an account payload missing the store-assigned ID,
// supplied to CreateAccount.
type AccountDraft struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Validate returns an error if the draft contains invalid fields.
func (d *AccountDraft) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "account name required")
	}
	if d.Email == "" {
		return Errorf(EINVALID, "account email required")
	}
	if d.Password == "" {
		return Errorf(EINVALID, "account password required")
	}
	if !d.Role.Valid() {
		return Errorf(EINVALID, "unknown role %q", d.Role)
	}
	return nil
}

// AuthFailedMessage is shown to the user when login credentials do not
// match any account.
const AuthFailedMessage = "メールアドレスまたはパスワードが正しくありません。"

// AccountService manages portal user accounts.
type AccountService interface {
	// Authenticate returns the account matching both email and password
	// exactly. Returns EUNAUTHORIZED with AuthFailedMessage on mismatch.
	Authenticate(ctx context.Context, email, password string) (*Account, error)

	// CreateAccount assigns a fresh ID and appends the account.
	// Only reachable through the ADMIN-gated account-creation operation.
	CreateAccount(ctx context.Context, draft AccountDraft) (*Account, error)

	// ListAccounts returns all accounts in insertion order.
	ListAccounts(ctx context.Context) ([]*Account, error)
}
