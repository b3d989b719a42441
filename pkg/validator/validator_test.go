package validator

import (
	"strings"
	"testing"

	"github.com/gamassss/urlist/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidate_CreateList_Valid(t *testing.T) {
	errs := Validate(&domain.CreateListRequest{
		Title:       "Weekend Reads",
		Slug:        "weekend-reads",
		Description: strPtr("things to read"),
	})

	assert.Empty(t, errs)
}

func TestValidate_CreateList_SlugOptional(t *testing.T) {
	errs := Validate(&domain.CreateListRequest{Title: "Weekend Reads"})

	assert.Empty(t, errs)
}

func TestValidate_CreateList_MissingTitle(t *testing.T) {
	errs := Validate(&domain.CreateListRequest{Slug: "abc"})

	require.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Field)
	assert.Equal(t, "title is required", errs[0].Message)
}

func TestValidate_CreateList_BadSlug(t *testing.T) {
	errs := Validate(&domain.CreateListRequest{Title: "x", Slug: "Not A Slug"})

	require.Len(t, errs, 1)
	assert.Equal(t, "slug", errs[0].Field)
	assert.Contains(t, errs[0].Message, "lowercase letters")
}

func TestValidate_CreateList_TooLong(t *testing.T) {
	errs := Validate(&domain.CreateListRequest{
		Title:       strings.Repeat("t", 256),
		Slug:        strings.Repeat("s", 101),
		Description: strPtr(strings.Repeat("d", 1001)),
	})

	require.Len(t, errs, 3)
	fields := []string{errs[0].Field, errs[1].Field, errs[2].Field}
	assert.ElementsMatch(t, []string{"title", "slug", "description"}, fields)
}

func TestValidate_ListPatch(t *testing.T) {
	assert.Empty(t, Validate(&domain.ListPatch{}))
	assert.Empty(t, Validate(&domain.ListPatch{Title: strPtr("New title")}))

	errs := Validate(&domain.ListPatch{Title: strPtr("")})
	require.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Field)

	errs = Validate(&domain.ListPatch{Slug: strPtr("UPPER")})
	require.Len(t, errs, 1)
	assert.Equal(t, "slug", errs[0].Field)
}

func TestValidate_CreateURL(t *testing.T) {
	assert.Empty(t, Validate(&domain.CreateURLRequest{URL: "https://example.com"}))
	assert.Empty(t, Validate(&domain.CreateURLRequest{URL: "https://example.com", Position: intPtr(0)}))

	errs := Validate(&domain.CreateURLRequest{URL: "not-a-valid-url"})
	require.Len(t, errs, 1)
	assert.Equal(t, "url must be a valid URL", errs[0].Message)

	errs = Validate(&domain.CreateURLRequest{URL: "https://example.com", Position: intPtr(-1)})
	require.Len(t, errs, 1)
	assert.Equal(t, "position", errs[0].Field)
}

func TestValidate_PositionFitsInt4(t *testing.T) {
	assert.Empty(t, Validate(&domain.CreateURLRequest{URL: "https://example.com", Position: intPtr(2147483647)}))

	errs := Validate(&domain.CreateURLRequest{URL: "https://example.com", Position: intPtr(3000000000)})
	require.Len(t, errs, 1)
	assert.Equal(t, "position", errs[0].Field)
	assert.Equal(t, "position must be less than or equal to 2147483647", errs[0].Message)

	errs = Validate(&domain.URLPatch{Position: intPtr(2147483648)})
	require.Len(t, errs, 1)
	assert.Equal(t, "position", errs[0].Field)

	errs = Validate(&domain.ReorderURLsRequest{Positions: []domain.PositionUpdate{
		{ID: "2b1b8f9e-5d8a-4c6e-9d55-0a3f6f3c1e11", Position: 3000000000},
	}})
	require.Len(t, errs, 1)
	assert.Equal(t, "positions[0].position", errs[0].Field)
}

func TestValidate_Reorder(t *testing.T) {
	errs := Validate(&domain.ReorderURLsRequest{})
	require.Len(t, errs, 1)
	assert.Equal(t, "positions", errs[0].Field)

	errs = Validate(&domain.ReorderURLsRequest{Positions: []domain.PositionUpdate{
		{ID: "2b1b8f9e-5d8a-4c6e-9d55-0a3f6f3c1e11", Position: 0},
		{ID: "nope", Position: 1},
	}})
	require.Len(t, errs, 1)
	assert.Equal(t, "positions[1].id", errs[0].Field)
	assert.Equal(t, "id must be a valid UUID", errs[0].Message)
}

func TestValidate_Publish(t *testing.T) {
	published := false
	assert.Empty(t, Validate(&domain.PublishRequest{Published: &published}))

	errs := Validate(&domain.PublishRequest{})
	require.Len(t, errs, 1)
	assert.Equal(t, "published", errs[0].Field)
}

func TestIsSlug(t *testing.T) {
	assert.True(t, IsSlug("my-cool-list-1"))
	assert.False(t, IsSlug(""))
	assert.False(t, IsSlug("has space"))
	assert.False(t, IsSlug("Caps"))
}
