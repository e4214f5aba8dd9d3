package auth

import "context"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

type Checker interface {
	// LoggedUser resolves a session token to the owning user ID,
	// or returns ErrNotLoggedIn when the session is absent or expired.
	LoggedUser(ctx context.Context, token string) (int, error)
}
