//go:build integration

package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_InsertsListsAndSkipsTakenSlugs(t *testing.T) {
	db := setupTestDatabase(t)
	lists := NewListRepository(db)
	urls := NewURLRepository(db)
	ctx := context.Background()

	_, err := lists.Create(ctx, "Existing", "existing", nil)
	require.NoError(t, err)

	seed := []SeedList{
		{
			Title:     "Go Reading",
			Slug:      "go-reading",
			Published: true,
			URLs: []SeedURL{
				{URL: "https://go.dev/doc/effective_go", Title: "Effective Go"},
				{URL: "https://go.dev/blog"},
			},
		},
		{
			Title: "Existing",
			Slug:  "existing",
			URLs:  []SeedURL{{URL: "https://example.com"}},
		},
	}

	inserted, err := Seed(ctx, db, seed)

	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	goList, err := lists.GetBySlug(ctx, "go-reading")
	require.NoError(t, err)
	assert.True(t, goList.IsPublished)
	assert.Nil(t, goList.Description)

	goURLs, err := urls.GetByListID(ctx, goList.ID)
	require.NoError(t, err)
	require.Len(t, goURLs, 2)
	assert.Equal(t, 0, goURLs[0].Position)
	assert.Equal(t, "Effective Go", *goURLs[0].Title)
	assert.Nil(t, goURLs[1].Title)

	existing, err := lists.GetBySlug(ctx, "existing")
	require.NoError(t, err)
	existingURLs, err := urls.GetByListID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Empty(t, existingURLs)
}
