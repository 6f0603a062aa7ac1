package kbportal_test

import (
	"testing"

	"github.com/dcsstech/kbportal"
	"github.com/stretchr/testify/assert"
)

func TestRoleCan_AdminOnlyOperations(t *testing.T) {
	t.Parallel()

	adminOnly := []kbportal.Operation{
		kbportal.OpCreateDocument,
		kbportal.OpUpdateDocument,
		kbportal.OpCreateAccount,
		kbportal.OpManageAccounts,
	}

	for _, op := range adminOnly {
		assert.True(t, kbportal.RoleAdmin.Can(op), "admin should be allowed %s", op)
		assert.False(t, kbportal.RoleGeneral.Can(op), "general should be denied %s", op)
	}
}

func TestRoleCan_GeneralPermittedOperations(t *testing.T) {
	t.Parallel()

	open := []kbportal.Operation{
		kbportal.OpListDocuments,
		kbportal.OpToggleFavorite,
		kbportal.OpOpenAssistant,
		kbportal.OpExplainTerm,
		kbportal.OpLogout,
	}

	for _, op := range open {
		assert.True(t, kbportal.RoleGeneral.Can(op), "general should be allowed %s", op)
		assert.True(t, kbportal.RoleAdmin.Can(op), "admin should be allowed %s", op)
	}
}

func TestRoleCan_UnknownRoleOrOperationDenied(t *testing.T) {
	t.Parallel()

	assert.False(t, kbportal.Role("ROOT").Can(kbportal.OpListDocuments))
	assert.False(t, kbportal.RoleAdmin.Can(kbportal.Operation("drop_tables")))
}
