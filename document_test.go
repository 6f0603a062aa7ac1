package kbportal_test

import (
	"testing"

	"github.com/dcsstech/kbportal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentDraft_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		draft := kbportal.DocumentDraft{Title: "t", Type: kbportal.EquipmentServer}
		assert.NoError(t, draft.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()

		draft := kbportal.DocumentDraft{Type: kbportal.EquipmentServer}
		err := draft.Validate()
		require.Error(t, err)
		assert.Equal(t, kbportal.EINVALID, kbportal.ErrorCode(err))
	})

	t.Run("unknown equipment type", func(t *testing.T) {
		t.Parallel()

		draft := kbportal.DocumentDraft{Title: "t", Type: "TOASTER"}
		err := draft.Validate()
		require.Error(t, err)
		assert.Equal(t, kbportal.EINVALID, kbportal.ErrorCode(err))
	})
}

func TestDocument_Clone_IsolatesTags(t *testing.T) {
	t.Parallel()

	doc := &kbportal.Document{ID: "a", Tags: []string{"HDD"}}
	clone := doc.Clone()
	clone.Tags[0] = "SSD"

	assert.Equal(t, "HDD", doc.Tags[0])
}

func TestManufacturers_DistinctFirstSeenOrder(t *testing.T) {
	t.Parallel()

	docs := []*kbportal.Document{
		{Manufacturer: "HPE"},
		{Manufacturer: "Dell"},
		{Manufacturer: "HPE"},
	}

	assert.Equal(t, []string{"HPE", "Dell"}, kbportal.Manufacturers(docs))
}

func TestTags_DistinctFirstSeenOrder(t *testing.T) {
	t.Parallel()

	docs := []*kbportal.Document{
		{Tags: []string{"HDD", "Maintenance"}},
		{Tags: []string{"Maintenance", "Fan"}},
	}

	assert.Equal(t, []string{"HDD", "Maintenance", "Fan"}, kbportal.Tags(docs))
}

func TestAccountDraft_Validate(t *testing.T) {
	t.Parallel()

	draft := kbportal.AccountDraft{
		Name:     "Taro Tanaka",
		Email:    "taro@example.com",
		Password: "secret",
		Role:     kbportal.RoleGeneral,
	}
	assert.NoError(t, draft.Validate())

	bad := draft
	bad.Role = "SUPERUSER"
	err := bad.Validate()
	require.Error(t, err)
	assert.Equal(t, kbportal.EINVALID, kbportal.ErrorCode(err))
}
