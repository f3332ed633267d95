package kernel

import (
	"fmt"

	"bookmarket/internal/pkg/errs"
	"bookmarket/internal/pkg/guard"
)

// ErrActorIsNotConstructed indicates that an Actor was not created via NewActor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("Actor must be created via NewActor")

// Role classifies the authenticated identity attempting an operation.
// Regular users act as buyer or seller depending on which side of an order
// they are on; administrators moderate listings.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleUser is a regular marketplace participant (buyer and/or seller).
	RoleUser

	// RoleAdmin is a moderator allowed to approve or reject listings.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "Unknown",
		RoleUser:    "User",
		RoleAdmin:   "Admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleUser:  "User",
		RoleAdmin: "Admin",
	}
}

// RoleFromString parses a role claim as carried in an access token.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// Actor is the authenticated identity attempting an operation. The identity
// provider supplies the id and role; the core trusts both without re-validating
// credentials. Whether an actor is the buyer or the seller of a given order is
// decided by comparing its id against the order's party ids, not by the role.
type Actor struct {
	id    int64
	role  Role
	guard guard.ConstructorGuard
}

// NewActor creates a validated Actor from an authenticated user id and role.
func NewActor(id int64, role Role) (Actor, error) {
	if id <= 0 {
		return Actor{}, errs.NewValueIsInvalidErrorWithCause("actor id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{id: id, role: role, guard: guard.NewConstructorGuard()}, nil
}

// ID returns the authenticated user id.
func (a Actor) ID() int64 {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor holds the Admin role.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// Validate ensures the Actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}
