package auth

import "context"

// LoginTestChecker is used in unit tests in place of the redis backed checker.
type LoginTestChecker struct {
	// LoggedSessions maps token -> user id
	LoggedSessions map[string]string
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]string{},
	}
}

func (lc *LoginTestChecker) IsLogged(_ context.Context, token string) (bool, error) {
	_, logged := lc.LoggedSessions[token]
	return logged, nil
}

func (lc *LoginTestChecker) UserID(_ context.Context, token string) (string, error) {
	return lc.LoggedSessions[token], nil
}
