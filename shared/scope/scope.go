// Package scope resolves a caller's role into the row visibility it is
// granted. Repositories receive the result as a filter fragment so every
// list and lookup applies the same restriction.
package scope

import (
	"context"

	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
)

// Scope describes which rows of an owned resource a caller may see.
type Scope struct {
	unrestricted bool
	ownerID      string
}

// Unrestricted returns a scope that matches every row.
func Unrestricted() Scope {
	return Scope{unrestricted: true}
}

// OwnedBy returns a scope restricted to rows created by the given user.
func OwnedBy(userID string) Scope {
	return Scope{ownerID: userID}
}

// Resolve maps a role to its visibility. Admins see everything, any other
// role is restricted to its own records.
func Resolve(role, userID string) Scope {
	if role == constant.RoleAdmin {
		return Unrestricted()
	}

	return OwnedBy(userID)
}

// FromContext resolves the scope of the authenticated caller whose identity
// the auth middleware stored in ctx.
func FromContext(ctx context.Context) Scope {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return Resolve(role, userID)
}

// IsUnrestricted reports whether the scope matches all rows.
func (s Scope) IsUnrestricted() bool {
	return s.unrestricted
}

// OwnerID returns the owning user id for a restricted scope.
func (s Scope) OwnerID() string {
	return s.ownerID
}

// Allows reports whether a record owned by ownerID is visible.
func (s Scope) Allows(ownerID string) bool {
	if s.unrestricted {
		return true
	}

	return s.ownerID != "" && s.ownerID == ownerID
}

// Filter returns the filter group enforcing the scope against the given
// owner column. An unrestricted scope yields an empty group.
func (s Scope) Filter(table string) dto.FilterGroup {
	if s.unrestricted {
		return dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}
	}

	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    constant.FieldCreatedBy,
				ArgName:  "scope_owner",
				Value:    s.ownerID,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
