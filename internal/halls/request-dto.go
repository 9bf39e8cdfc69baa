package halls

import "eventease/internal/layout"

type CreateHallRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	Description string `json:"description" binding:"max=2000"`

	// Optional starting layout: a template id, or a plain rows x cols grid.
	// Both empty creates a hall with an empty canvas.
	Template layout.TemplateID `json:"template"`
	Rows     int               `json:"rows" binding:"omitempty,min=1,max=26"`
	Cols     int               `json:"cols" binding:"omitempty,min=1,max=45"`
}

type UpdateHallRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

type ApplyTemplateRequest struct {
	Template layout.TemplateID `json:"template" binding:"required"`
}

type HallListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search string `form:"search"`
}
