package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gamassss/urlist/internal/domain"
	"github.com/gamassss/urlist/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testList(published bool) *domain.List {
	return &domain.List{
		ID:          testListID,
		Title:       "Weekend Reads",
		Slug:        "weekend-reads",
		IsPublished: published,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestCreateList_Success(t *testing.T) {
	env := setupTestEnv()

	env.lists.On("CreateList", mock.Anything, mock.MatchedBy(func(req *domain.CreateListRequest) bool {
		return req.Title == "Weekend Reads" && req.Slug == "" && req.Description == nil
	})).Return(testList(false), nil).Once()

	w := env.do("POST", "/api/lists", `{"title": "Weekend Reads"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var list domain.List
	decode(t, w, &list)
	assert.Equal(t, "weekend-reads", list.Slug)
	assert.False(t, list.IsPublished)
	env.lists.AssertExpectations(t)
}

func TestCreateList_ValidationFailed(t *testing.T) {
	env := setupTestEnv()

	w := env.do("POST", "/api/lists", `{"slug": "Bad Slug!"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp response.ValidationErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "Validation failed", resp.Error)

	fields := make([]string, 0, len(resp.Details))
	for _, d := range resp.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"title", "slug"}, fields)
	env.lists.AssertNotCalled(t, "CreateList", mock.Anything, mock.Anything)
}

func TestCreateList_InvalidJSON(t *testing.T) {
	env := setupTestEnv()

	w := env.do("POST", "/api/lists", `{invalid json}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", errorMessage(t, w))
	env.lists.AssertNotCalled(t, "CreateList", mock.Anything, mock.Anything)
}

func TestCreateList_WrongFieldType(t *testing.T) {
	env := setupTestEnv()

	w := env.do("POST", "/api/lists", `{"title": 123}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp response.ValidationErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "Validation failed", resp.Error)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "title", resp.Details[0].Field)
	assert.Equal(t, "title must be a string", resp.Details[0].Message)
	env.lists.AssertNotCalled(t, "CreateList", mock.Anything, mock.Anything)
}

func TestCreateList_SlugConflict(t *testing.T) {
	env := setupTestEnv()

	env.lists.On("CreateList", mock.Anything, mock.Anything).Return(nil, domain.ErrSlugConflict).Once()

	w := env.do("POST", "/api/lists", `{"title": "Tools", "slug": "taken"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Slug already exists", errorMessage(t, w))
}

func TestCreateList_InternalErrorIsNotLeaked(t *testing.T) {
	env := setupTestEnv()

	env.lists.On("CreateList", mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: password authentication failed")).Once()

	w := env.do("POST", "/api/lists", `{"title": "Tools"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", errorMessage(t, w))
	assert.NotContains(t, w.Body.String(), "password")
}

func TestListLists(t *testing.T) {
	env := setupTestEnv()

	published := true
	env.lists.On("ListLists", mock.Anything, domain.ListFilter{}).
		Return([]domain.List{*testList(true), *testList(false)}, nil).Once()
	env.lists.On("ListLists", mock.Anything, domain.ListFilter{Published: &published}).
		Return([]domain.List{*testList(true)}, nil).Once()

	w := env.do("GET", "/api/lists", "")
	require.Equal(t, http.StatusOK, w.Code)
	var all []domain.List
	decode(t, w, &all)
	assert.Len(t, all, 2)

	w = env.do("GET", "/api/lists?published=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	var onlyPublished []domain.List
	decode(t, w, &onlyPublished)
	assert.Len(t, onlyPublished, 1)

	env.lists.AssertExpectations(t)
}

func TestListLists_BadFilter(t *testing.T) {
	env := setupTestEnv()

	w := env.do("GET", "/api/lists?published=maybe", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.lists.AssertNotCalled(t, "ListLists", mock.Anything, mock.Anything)
}

func TestGetList(t *testing.T) {
	env := setupTestEnv()

	env.lists.On("GetList", mock.Anything, testListID).Return(testList(false), nil).Once()

	w := env.do("GET", "/api/lists/"+testListID, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var list domain.List
	decode(t, w, &list)
	assert.Equal(t, testListID, list.ID)
}

func TestGetList_InvalidID(t *testing.T) {
	env := setupTestEnv()

	w := env.do("GET", "/api/lists/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "List ID is invalid", errorMessage(t, w))
	env.lists.AssertNotCalled(t, "GetList", mock.Anything, mock.Anything)
}

func TestGetList_NotFound(t *testing.T) {
	env := setupTestEnv()

	env.lists.On("GetList", mock.Anything, testListID).Return(nil, domain.ErrListNotFound).Once()

	w := env.do("GET", "/api/lists/"+testListID, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "List not found", errorMessage(t, w))
}

func TestUpdateList(t *testing.T) {
	env := setupTestEnv()

	updated := testList(false)
	updated.Title = "Renamed"
	env.lists.On("UpdateList", mock.Anything, testListID, mock.MatchedBy(func(p domain.ListPatch) bool {
		return p.Title != nil && *p.Title == "Renamed" && p.Slug == nil && p.Description == nil
	})).Return(updated, nil).Once()

	w := env.do("PUT", "/api/lists/"+testListID, `{"title": "Renamed"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var list domain.List
	decode(t, w, &list)
	assert.Equal(t, "Renamed", list.Title)
	assert.Equal(t, "weekend-reads", list.Slug)
}

func TestUpdateList_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{"invalid slug", `{"slug": "UPPER"}`, nil, http.StatusBadRequest},
		{"empty title", `{"title": ""}`, nil, http.StatusBadRequest},
		{"slug taken", `{"slug": "taken"}`, domain.ErrSlugConflict, http.StatusConflict},
		{"missing", `{"title": "x"}`, domain.ErrListNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv()
			if tt.serviceErr != nil {
				env.lists.On("UpdateList", mock.Anything, testListID, mock.Anything).Return(nil, tt.serviceErr).Once()
			}

			w := env.do("PUT", "/api/lists/"+testListID, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.serviceErr == nil {
				env.lists.AssertNotCalled(t, "UpdateList", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestDeleteList(t *testing.T) {
	env := setupTestEnv()

	env.lists.On("DeleteList", mock.Anything, testListID).Return(nil).Once()

	w := env.do("DELETE", "/api/lists/"+testListID, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "List deleted successfully"}`, w.Body.String())
}

func TestDeleteList_NotFound(t *testing.T) {
	env := setupTestEnv()

	env.lists.On("DeleteList", mock.Anything, testListID).Return(domain.ErrListNotFound).Once()

	w := env.do("DELETE", "/api/lists/"+testListID, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublishList(t *testing.T) {
	env := setupTestEnv()

	env.lists.On("SetPublished", mock.Anything, testListID, true).Return(testList(true), nil).Once()

	w := env.do("PATCH", "/api/lists/"+testListID+"/publish", `{"published": true}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var list domain.List
	decode(t, w, &list)
	assert.True(t, list.IsPublished)
}

func TestPublishList_Unpublish(t *testing.T) {
	env := setupTestEnv()

	env.lists.On("SetPublished", mock.Anything, testListID, false).Return(testList(false), nil).Once()

	w := env.do("PATCH", "/api/lists/"+testListID+"/publish", `{"published": false}`)

	assert.Equal(t, http.StatusOK, w.Code)
	env.lists.AssertExpectations(t)
}

func TestPublishList_MissingFlag(t *testing.T) {
	env := setupTestEnv()

	w := env.do("PATCH", "/api/lists/"+testListID+"/publish", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "published is required")
}

func TestPublishList_NonBooleanFlag(t *testing.T) {
	env := setupTestEnv()

	w := env.do("PATCH", "/api/lists/"+testListID+"/publish", `{"published": "yes"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp response.ValidationErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "Validation failed", resp.Error)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "published", resp.Details[0].Field)
	assert.Equal(t, "published must be a boolean", resp.Details[0].Message)
	env.lists.AssertNotCalled(t, "SetPublished", mock.Anything, mock.Anything, mock.Anything)
}
