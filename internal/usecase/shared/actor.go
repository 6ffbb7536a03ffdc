package shared

import (
	"slices"

	"staybook/internal/domain/user"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoleNotPermitted = errs.NewKind("role is not permitted for this operation", errs.ErrForbidden)

// Actor is the authenticated caller. It is passed explicitly to every command and
// authorization check.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) Require(roles ...user.Role) error {
	if a.UserID == uuid.Nil || !slices.Contains(roles, a.Role) {
		return ErrRoleNotPermitted
	}
	return nil
}
