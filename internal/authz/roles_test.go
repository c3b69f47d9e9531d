package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoles(t *testing.T) {
	assert.True(t, IsReadOnly(RoleAudit))
	assert.False(t, IsReadOnly(RoleAccounting))

	assert.Contains(t, Planners, RoleTreasury)
	assert.NotContains(t, Planners, RoleAccounting)
	assert.Contains(t, Settlers, RoleAccounting)

	for _, r := range Planners {
		assert.Contains(t, Settlers, r)
		assert.False(t, IsReadOnly(r))
	}
	for _, r := range Settlers {
		assert.NotEqual(t, RoleAudit, r)
	}
}
