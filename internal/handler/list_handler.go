package handler

import (
	"context"
	"strconv"

	"github.com/gamassss/urlist/internal/domain"
	"github.com/gamassss/urlist/pkg/response"
	"github.com/gin-gonic/gin"
)

type ListService interface {
	ListLists(ctx context.Context, filter domain.ListFilter) ([]domain.List, error)
	GetList(ctx context.Context, id string) (*domain.List, error)
	GetListBySlug(ctx context.Context, slug string) (*domain.List, error)
	CreateList(ctx context.Context, req *domain.CreateListRequest) (*domain.List, error)
	UpdateList(ctx context.Context, id string, patch domain.ListPatch) (*domain.List, error)
	DeleteList(ctx context.Context, id string) error
	SetPublished(ctx context.Context, id string, published bool) (*domain.List, error)
}

type ListHandler struct {
	service ListService
}

func NewListHandler(service ListService) *ListHandler {
	return &ListHandler{service: service}
}

// ListLists handles GET /api/lists. ?published=true|false narrows the result.
func (h *ListHandler) ListLists(c *gin.Context) {
	var filter domain.ListFilter
	if raw, ok := c.GetQuery("published"); ok {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(c, "published must be true or false")
			return
		}
		filter.Published = &published
	}

	lists, err := h.service.ListLists(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, lists)
}

func (h *ListHandler) CreateList(c *gin.Context) {
	var req domain.CreateListRequest
	if !bindJSON(c, &req) {
		return
	}

	list, err := h.service.CreateList(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, list)
}

func (h *ListHandler) GetList(c *gin.Context) {
	id, ok := pathID(c, "id", "List")
	if !ok {
		return
	}

	list, err := h.service.GetList(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, list)
}

func (h *ListHandler) UpdateList(c *gin.Context) {
	id, ok := pathID(c, "id", "List")
	if !ok {
		return
	}

	var patch domain.ListPatch
	if !bindJSON(c, &patch) {
		return
	}

	list, err := h.service.UpdateList(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, list)
}

func (h *ListHandler) DeleteList(c *gin.Context) {
	id, ok := pathID(c, "id", "List")
	if !ok {
		return
	}

	if err := h.service.DeleteList(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.Message(c, "List deleted successfully")
}

func (h *ListHandler) PublishList(c *gin.Context) {
	id, ok := pathID(c, "id", "List")
	if !ok {
		return
	}

	var req domain.PublishRequest
	if !bindJSON(c, &req) {
		return
	}

	list, err := h.service.SetPublished(c.Request.Context(), id, *req.Published)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, list)
}
