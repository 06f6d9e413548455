package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared/constant"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name             string
		role             string
		userID           string
		wantUnrestricted bool
	}{
		{
			name:             "admin sees everything",
			role:             constant.RoleAdmin,
			userID:           "admin-1",
			wantUnrestricted: true,
		},
		{
			name:             "staff restricted to own rows",
			role:             constant.RoleStaff,
			userID:           "staff-1",
			wantUnrestricted: false,
		},
		{
			name:             "unknown role restricted",
			role:             "AUDITOR",
			userID:           "user-1",
			wantUnrestricted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Resolve(tt.role, tt.userID)

			assert.Equal(t, tt.wantUnrestricted, s.IsUnrestricted())

			if !tt.wantUnrestricted {
				assert.Equal(t, tt.userID, s.OwnerID())
			}
		})
	}
}

func TestScopeAllows(t *testing.T) {
	assert.True(t, Unrestricted().Allows("anyone"))
	assert.True(t, OwnedBy("u1").Allows("u1"))
	assert.False(t, OwnedBy("u1").Allows("u2"))
	assert.False(t, OwnedBy("").Allows(""))
}

func TestScopeFilter(t *testing.T) {
	t.Run("unrestricted yields empty clause", func(t *testing.T) {
		filter := Unrestricted().Filter("room")
		where, args := filter.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("owned yields created_by clause", func(t *testing.T) {
		filter := OwnedBy("u1").Filter("room")
		where, args := filter.GetWhereClause()

		assert.Equal(t, "(room.created_by = :scope_owner)", where)
		assert.Equal(t, map[string]any{"scope_owner": "u1"}, args)
	})
}
