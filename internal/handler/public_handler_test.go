package handler

import (
	"net/http"
	"testing"

	"github.com/gamassss/urlist/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetSharedList_Published(t *testing.T) {
	env := setupTestEnv()

	env.lists.On("GetListBySlug", mock.Anything, "weekend-reads").Return(testList(true), nil).Once()
	env.urls.On("ListURLs", mock.Anything, testListID).Return([]domain.URL{*testURL(0)}, nil).Once()

	w := env.do("GET", "/api/s/weekend-reads", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp domain.PublicList
	decode(t, w, &resp)
	assert.Equal(t, "weekend-reads", resp.List.Slug)
	require.Len(t, resp.URLs, 1)
	assert.Equal(t, "https://example.com", resp.URLs[0].URL)
}

func TestGetSharedList_UnpublishedIsHidden(t *testing.T) {
	env := setupTestEnv()

	env.lists.On("GetListBySlug", mock.Anything, "weekend-reads").Return(testList(false), nil).Once()

	w := env.do("GET", "/api/s/weekend-reads", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "List not found", errorMessage(t, w))
	env.urls.AssertNotCalled(t, "ListURLs", mock.Anything, mock.Anything)
}

func TestGetSharedList_Unknown(t *testing.T) {
	env := setupTestEnv()

	env.lists.On("GetListBySlug", mock.Anything, "ghost").Return(nil, domain.ErrListNotFound).Once()

	w := env.do("GET", "/api/s/ghost", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
