// Package auth holds the login input shared by the login and register commands.
package auth

import (
	"log/slog"

	"staybook/internal/domain/user"
	"staybook/internal/pkg/errs"
)

// ErrInvalidCredentials carries no outcome kind; transport answers it with 401.
var ErrInvalidCredentials = errs.New("invalid email or password")

// Credentials is a validated email/password pair. Email is checked first so a
// malformed address is reported even when the password is also bad.
type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(email, password string) (Credentials, error) {
	var (
		c   Credentials
		err error
	)
	if c.email, err = user.NewEmail(email); err != nil {
		return Credentials{}, err
	}
	if c.password, err = user.NewPassword(password); err != nil {
		return Credentials{}, err
	}
	return c, nil
}

func (c Credentials) Email() user.Email       { return c.email }
func (c Credentials) Password() user.Password { return c.password }

// LogValue keeps the password out of request logs.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(slog.String("email", c.email.Value()))
}
