// Package actor describes who is calling an operation: the role grants or
// denies order lifecycle actions.
package actor

import (
	"fmt"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"
)

// Role is the caller's role in the system.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleWarehouse Role = "warehouse"
	RoleDriver    Role = "driver"
	RoleCustomer  Role = "customer"
)

func RoleFromString(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleWarehouse, RoleDriver, RoleCustomer:
		return Role(s), nil
	case "":
		return "", errs.NewValueIsRequiredError("role")
	default:
		return "", errs.NewValueIsInvalidError("role")
	}
}

// ForbiddenError is returned when an actor's role does not permit an action.
type ForbiddenError struct {
	Role   Role
	Action string
}

func NewForbiddenError(role Role, action string) *ForbiddenError {
	return &ForbiddenError{Role: role, Action: action}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("role %s is not allowed to %s", e.Role, e.Action)
}

// Actor identifies the authenticated caller of an operation.
type Actor struct {
	ID   kernel.UUID
	Role Role
}

func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, errs.NewValueIsRequiredErrorWithCause("actorID", err)
	}
	if _, err := RoleFromString(string(role)); err != nil {
		return Actor{}, err
	}

	return Actor{ID: id, Role: role}, nil
}

// Is reports whether the actor holds one of the given roles.
func (a Actor) Is(roles ...Role) bool {
	for _, role := range roles {
		if a.Role == role {
			return true
		}
	}
	return false
}
