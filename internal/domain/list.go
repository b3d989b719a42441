package domain

import "time"

type List struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateListRequest is the body of POST /api/lists. Slug is generated from
// the title when omitted.
type CreateListRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Slug        string  `json:"slug,omitempty" validate:"omitempty,max=100,slug"`
	Description *string `json:"description,omitempty" validate:"omitnil,max=1000"`
}

// ListPatch carries a partial list update. A nil field is left untouched.
type ListPatch struct {
	Title       *string `json:"title,omitempty" validate:"omitnil,min=1,max=255"`
	Slug        *string `json:"slug,omitempty" validate:"omitnil,min=1,max=100,slug"`
	Description *string `json:"description,omitempty" validate:"omitnil,max=1000"`
	IsPublished *bool   `json:"is_published,omitempty"`
}

func (p ListPatch) IsEmpty() bool {
	return p.Title == nil && p.Slug == nil && p.Description == nil && p.IsPublished == nil
}

// ListFilter narrows a list index. A nil Published matches every list.
type ListFilter struct {
	Published *bool
}

type PublishRequest struct {
	Published *bool `json:"published" validate:"required"`
}

// PublicList is what a share link resolves to.
type PublicList struct {
	List *List `json:"list"`
	URLs []URL `json:"urls"`
}
