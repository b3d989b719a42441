package handler

import (
	"context"

	"github.com/gamassss/urlist/internal/domain"
	"github.com/gamassss/urlist/internal/metadata"
	"github.com/gamassss/urlist/pkg/response"
	"github.com/gamassss/urlist/pkg/validator"
	"github.com/gin-gonic/gin"
)

type URLService interface {
	ListURLs(ctx context.Context, listID string) ([]domain.URL, error)
	GetURL(ctx context.Context, id string) (*domain.URL, error)
	CreateURL(ctx context.Context, listID string, req *domain.CreateURLRequest) (*domain.URL, error)
	UpdateURL(ctx context.Context, id string, patch domain.URLPatch) (*domain.URL, error)
	DeleteURL(ctx context.Context, id string) error
	ReorderURLs(ctx context.Context, listID string, updates []domain.PositionUpdate) ([]domain.URL, error)
	FetchMetadata(ctx context.Context, rawURL string) metadata.Metadata
}

type URLHandler struct {
	service URLService
}

func NewURLHandler(service URLService) *URLHandler {
	return &URLHandler{service: service}
}

func (h *URLHandler) ListURLs(c *gin.Context) {
	listID, ok := pathID(c, "id", "List")
	if !ok {
		return
	}

	urls, err := h.service.ListURLs(c.Request.Context(), listID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, urls)
}

func (h *URLHandler) CreateURL(c *gin.Context) {
	listID, ok := pathID(c, "id", "List")
	if !ok {
		return
	}

	var req domain.CreateURLRequest
	if !bindJSON(c, &req) {
		return
	}

	url, err := h.service.CreateURL(c.Request.Context(), listID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, url)
}

// ReorderURLs handles PUT /api/lists/:id/urls/positions. Either every
// position is applied or none is.
func (h *URLHandler) ReorderURLs(c *gin.Context) {
	listID, ok := pathID(c, "id", "List")
	if !ok {
		return
	}

	var req domain.ReorderURLsRequest
	if !bindJSON(c, &req) {
		return
	}

	urls, err := h.service.ReorderURLs(c.Request.Context(), listID, req.Positions)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, urls)
}

func (h *URLHandler) GetURL(c *gin.Context) {
	id, ok := pathID(c, "urlId", "URL")
	if !ok {
		return
	}

	url, err := h.service.GetURL(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, url)
}

func (h *URLHandler) UpdateURL(c *gin.Context) {
	id, ok := pathID(c, "urlId", "URL")
	if !ok {
		return
	}

	var patch domain.URLPatch
	if !bindJSON(c, &patch) {
		return
	}

	url, err := h.service.UpdateURL(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, url)
}

func (h *URLHandler) DeleteURL(c *gin.Context) {
	id, ok := pathID(c, "urlId", "URL")
	if !ok {
		return
	}

	if err := h.service.DeleteURL(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}

type metadataQuery struct {
	URL string `json:"url" form:"url" validate:"required,url"`
}

// GetMetadata handles GET /api/metadata?url=. An unreachable page answers
// 200 with empty metadata.
func (h *URLHandler) GetMetadata(c *gin.Context) {
	q := metadataQuery{URL: c.Query("url")}
	if errs := validator.Validate(&q); len(errs) > 0 {
		response.ValidationErrors(c, errs)
		return
	}

	response.OK(c, h.service.FetchMetadata(c.Request.Context(), q.URL))
}
