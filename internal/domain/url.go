package domain

import "time"

type URL struct {
	ID          string    `json:"id"`
	ListID      string    `json:"list_id"`
	URL         string    `json:"url"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	FaviconURL  *string   `json:"favicon_url"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateURLRequest is the body of POST /api/lists/:id/urls. Missing title or
// description is filled from the page unless FetchMetadata is false.
type CreateURLRequest struct {
	URL           string  `json:"url" validate:"required,url"`
	Title         *string `json:"title,omitempty" validate:"omitnil,max=500"`
	Description   *string `json:"description,omitempty" validate:"omitnil,max=1000"`
	Position      *int    `json:"position,omitempty" validate:"omitnil,gte=0,lte=2147483647"`
	FetchMetadata *bool   `json:"fetch_metadata,omitempty"`
}

func (r *CreateURLRequest) WantsMetadata() bool {
	if r.FetchMetadata != nil && !*r.FetchMetadata {
		return false
	}
	return r.Title == nil || r.Description == nil
}

// NewURL is the repository input for inserting a URL. A nil Position means
// "append after the current last entry".
type NewURL struct {
	ListID      string
	URL         string
	Title       *string
	Description *string
	FaviconURL  *string
	Position    *int
}

// URLPatch carries a partial URL update. A nil field is left untouched.
type URLPatch struct {
	URL         *string `json:"url,omitempty" validate:"omitnil,url"`
	Title       *string `json:"title,omitempty" validate:"omitnil,max=500"`
	Description *string `json:"description,omitempty" validate:"omitnil,max=1000"`
	FaviconURL  *string `json:"favicon_url,omitempty" validate:"omitnil,url"`
	Position    *int    `json:"position,omitempty" validate:"omitnil,gte=0,lte=2147483647"`
}

func (p URLPatch) IsEmpty() bool {
	return p.URL == nil && p.Title == nil && p.Description == nil && p.FaviconURL == nil && p.Position == nil
}

type PositionUpdate struct {
	ID       string `json:"id" validate:"required,uuid"`
	Position int    `json:"position" validate:"gte=0,lte=2147483647"`
}

type ReorderURLsRequest struct {
	Positions []PositionUpdate `json:"positions" validate:"required,min=1,dive"`
}
