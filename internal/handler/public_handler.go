package handler

import (
	"github.com/gamassss/urlist/internal/domain"
	"github.com/gamassss/urlist/pkg/response"
	"github.com/gin-gonic/gin"
)

// PublicHandler serves share links. Unpublished lists are reported as not
// found so their existence is not revealed.
type PublicHandler struct {
	lists ListService
	urls  URLService
}

func NewPublicHandler(lists ListService, urls URLService) *PublicHandler {
	return &PublicHandler{lists: lists, urls: urls}
}

func (h *PublicHandler) GetSharedList(c *gin.Context) {
	ctx := c.Request.Context()

	list, err := h.lists.GetListBySlug(ctx, c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !list.IsPublished {
		respondError(c, domain.ErrListNotFound)
		return
	}

	urls, err := h.urls.ListURLs(ctx, list.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, domain.PublicList{List: list, URLs: urls})
}
