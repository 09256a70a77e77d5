package http

import (
	"time"

	"business-admin/internal/category"
	"business-admin/pkg/ordering"
)

// --- Request DTOs ---

type createReq struct {
	Name        string `json:"name"        binding:"required,max=255"`
	Description string `json:"description" binding:"max=2000"`
	ImageURL    string `json:"image_url"   binding:"max=1024"`
	IsActive    *bool  `json:"is_active"`
}

func (r createReq) toInput() category.CreateInput {
	return category.CreateInput{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		IsActive:    r.IsActive,
	}
}

type listReq struct {
	ID     string `form:"id"`
	Active *bool  `form:"active"`
}

func (r listReq) toInput() category.ListInput {
	return category.ListInput{ID: r.ID, Active: r.Active}
}

type updateReq struct {
	ID          string  `json:"-"`
	Name        *string `json:"name"        binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	ImageURL    *string `json:"image_url"   binding:"omitempty,max=1024"`
	SortOrder   *int    `json:"sort_order"  binding:"omitempty,gte=0"`
	IsActive    *bool   `json:"is_active"`
}

func (r updateReq) toInput() category.UpdateInput {
	return category.UpdateInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		SortOrder:   r.SortOrder,
		IsActive:    r.IsActive,
	}
}

// reorderScope is read from the query string. It narrows the set the items must cover.
type reorderScope struct {
	Active *bool `form:"active"`
}

type reorderReq struct {
	Active *bool               `json:"-"`
	Items  []ordering.Position `json:"items" binding:"required,min=1"`
}

func (r reorderReq) toInput() category.ReorderInput {
	return category.ReorderInput{Active: r.Active, Positions: r.Items}
}

// --- Response DTOs ---

type categoryResp struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newCategoryResp(c category.Category) categoryResp {
	return categoryResp{
		ID:          c.ID,
		BusinessID:  c.BusinessID,
		Name:        c.Name,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (h *handler) newListResp(out category.ListOutput) []categoryResp {
	items := make([]categoryResp, len(out.Categories))
	for i, c := range out.Categories {
		items[i] = newCategoryResp(c)
	}
	return items
}
