package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/dcsstech/kbportal"
	"github.com/dcsstech/kbportal/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(date string) func() time.Time {
	t, _ := time.Parse(kbportal.DateFormat, date)
	return func() time.Time { return t }
}

func TestCatalogService_CreateDocument(t *testing.T) {
	t.Parallel()

	svc := memory.NewCatalogService(memory.SeedDocuments())
	svc.Now = fixedClock("2024-06-01")

	doc, err := svc.CreateDocument(context.Background(), kbportal.DocumentDraft{
		Title:        "Dell PowerEdge R650 - PSU交換手順",
		Type:         kbportal.EquipmentServer,
		Manufacturer: "Dell",
		ModelSeries:  "PowerEdge 15G",
		BoxLink:      "#box-r650-psu",
		Tags:         []string{"PSU", "Replacement"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.False(t, doc.IsFavorite)
	assert.Equal(t, "2024-06-01", doc.LastUpdated)

	docs, err := svc.ListDocuments(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, docs)
	assert.Equal(t, doc.ID, docs[0].ID, "new document should be prepended")

	ids := make(map[string]int)
	for _, d := range docs {
		ids[d.ID]++
	}
	assert.Equal(t, 1, ids[doc.ID], "assigned ID should be unique")
}

func TestCatalogService_CreateDocument_RejectsInvalidDraft(t *testing.T) {
	t.Parallel()

	svc := memory.NewCatalogService(nil)

	_, err := svc.CreateDocument(context.Background(), kbportal.DocumentDraft{Type: kbportal.EquipmentServer})

	require.Error(t, err)
	assert.Equal(t, kbportal.EINVALID, kbportal.ErrorCode(err))
}

func TestCatalogService_UpdateDocument(t *testing.T) {
	t.Parallel()

	t.Run("bumps date and preserves id and favorite", func(t *testing.T) {
		t.Parallel()

		svc := memory.NewCatalogService(memory.SeedDocuments())
		svc.Now = fixedClock("2024-07-15")

		doc, err := svc.UpdateDocument(context.Background(), "hpe-dl380-g10-hdd", kbportal.DocumentUpdate{
			Title:        "HPE ProLiant DL380 Gen10 - HDD交換手順書 (改訂版)",
			Type:         kbportal.EquipmentServer,
			Manufacturer: "HPE",
			ModelSeries:  "ProLiant DL Gen10",
			BoxLink:      "#box-dl380-hdd-v2",
			Tags:         []string{"HDD", "Maintenance"},
		})
		require.NoError(t, err)

		assert.Equal(t, "hpe-dl380-g10-hdd", doc.ID)
		assert.Equal(t, "2024-07-15", doc.LastUpdated)
		assert.Equal(t, "HPE ProLiant DL380 Gen10 - HDD交換手順書 (改訂版)", doc.Title)
		assert.True(t, doc.IsFavorite, "favorite flag is not a mutable content field")
	})

	t.Run("missing id returns ENOTFOUND and changes no state", func(t *testing.T) {
		t.Parallel()

		svc := memory.NewCatalogService(memory.SeedDocuments())
		before, err := svc.ListDocuments(context.Background())
		require.NoError(t, err)

		_, err = svc.UpdateDocument(context.Background(), "no-such-id", kbportal.DocumentUpdate{
			Title: "x",
			Type:  kbportal.EquipmentServer,
		})
		require.Error(t, err)
		assert.Equal(t, kbportal.ENOTFOUND, kbportal.ErrorCode(err))

		after, err := svc.ListDocuments(context.Background())
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestCatalogService_ToggleFavorite(t *testing.T) {
	t.Parallel()

	svc := memory.NewCatalogService(memory.SeedDocuments())
	svc.Now = fixedClock("2024-06-01")

	orig, err := svc.FindDocumentByID(context.Background(), "netapp-disk-assign")
	require.NoError(t, err)
	require.False(t, orig.IsFavorite)

	toggled, err := svc.ToggleFavorite(context.Background(), "netapp-disk-assign")
	require.NoError(t, err)
	assert.True(t, toggled.IsFavorite)
	assert.Equal(t, orig.LastUpdated, toggled.LastUpdated, "favoriting must not bump LastUpdated")

	restored, err := svc.ToggleFavorite(context.Background(), "netapp-disk-assign")
	require.NoError(t, err)
	assert.Equal(t, orig, restored, "toggling twice should restore the document exactly")
}

func TestCatalogService_ToggleFavorite_NotFound(t *testing.T) {
	t.Parallel()

	svc := memory.NewCatalogService(nil)

	_, err := svc.ToggleFavorite(context.Background(), "no-such-id")

	require.Error(t, err)
	assert.Equal(t, kbportal.ENOTFOUND, kbportal.ErrorCode(err))
}

func TestCatalogService_ListDocuments_ReturnsCopies(t *testing.T) {
	t.Parallel()

	svc := memory.NewCatalogService(memory.SeedDocuments())

	docs, err := svc.ListDocuments(context.Background())
	require.NoError(t, err)
	docs[0].Title = "mutated"

	again, err := svc.FindDocumentByID(context.Background(), docs[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.Title)
}
