package user

import (
	"log/slog"
	"regexp"
	"strings"

	"staybook/internal/pkg/errs"
)

const (
	MinPasswordLength = 8
	// bcrypt only reads the first 72 bytes.
	MaxPasswordBytes = 72
	maxEmailLength   = 254
)

var (
	ErrInvalidEmail    = errs.NewKind("invalid email format", errs.ErrInvalidInput)
	ErrInvalidRole     = errs.NewKind("invalid role", errs.ErrInvalidInput)
	ErrPasswordTooWeak = errs.NewKind("password must be at least 8 characters long", errs.ErrInvalidInput)
	ErrPasswordTooLong = errs.NewKind("password must be at most 72 bytes long", errs.ErrInvalidInput)
	ErrRoleNotAllowed  = errs.NewKind("role cannot be chosen at registration", errs.ErrForbidden)
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email is stored lowercased, which makes the unique index case-insensitive.
type Email struct{ addr string }

func NewEmail(raw string) (Email, error) {
	addr := strings.ToLower(strings.TrimSpace(raw))
	if len(addr) > maxEmailLength || !emailPattern.MatchString(addr) {
		return Email{}, ErrInvalidEmail
	}
	return Email{addr: addr}, nil
}

func (e Email) Value() string { return e.addr }

// Password holds plaintext only between the request and the hasher.
type Password struct{ plain string }

func NewPassword(raw string) (Password, error) {
	switch {
	case len(raw) < MinPasswordLength:
		return Password{}, ErrPasswordTooWeak
	case len(raw) > MaxPasswordBytes:
		return Password{}, ErrPasswordTooLong
	}
	return Password{plain: raw}, nil
}

func (p Password) Value() string { return p.plain }

func (p Password) String() string { return "[REDACTED]" }

func (p Password) LogValue() slog.Value { return slog.StringValue("[REDACTED]") }
