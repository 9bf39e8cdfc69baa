package halls

import (
	"errors"
	"net/http"

	"eventease/internal/shared/apperrors"
	"eventease/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) CreateHall(ctx *gin.Context) {
	var req CreateHallRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	createdBy, err := currentUserID(ctx)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Invalid user identity", nil, err.Error())
		return
	}

	hall, err := c.service.CreateHall(ctx.Request.Context(), req, createdBy)
	if err != nil {
		respondServiceError(ctx, err, "Failed to create hall")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Hall created successfully", hall, nil)
}

func (c *Controller) GetHall(ctx *gin.Context) {
	hall, err := c.service.GetHall(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Failed to get hall")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Hall retrieved successfully", hall, nil)
}

func (c *Controller) GetHalls(ctx *gin.Context) {
	var query HallListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.GetHalls(ctx.Request.Context(), query)
	if err != nil {
		respondServiceError(ctx, err, "Failed to list halls")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Halls retrieved successfully", result, nil)
}

func (c *Controller) UpdateHall(ctx *gin.Context) {
	var req UpdateHallRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	hall, err := c.service.UpdateHall(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to update hall")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Hall updated successfully", hall, nil)
}

func (c *Controller) DeleteHall(ctx *gin.Context) {
	if err := c.service.DeleteHall(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "Failed to delete hall")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Hall deleted successfully", nil, nil)
}

func (c *Controller) GetTemplates(ctx *gin.Context) {
	response.RespondJSON(ctx, "success", http.StatusOK, "Templates retrieved successfully", c.service.GetTemplates(), nil)
}

func (c *Controller) ApplyTemplate(ctx *gin.Context) {
	var req ApplyTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	hall, err := c.service.ApplyTemplate(ctx.Request.Context(), ctx.Param("id"), req.Template)
	if err != nil {
		respondServiceError(ctx, err, "Failed to apply template")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Template applied successfully", hall, nil)
}

func (c *Controller) GetLayout(ctx *gin.Context) {
	l, err := c.service.GetLayout(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Failed to get layout")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Layout retrieved successfully", l, nil)
}

func currentUserID(ctx *gin.Context) (uuid.UUID, error) {
	raw, exists := ctx.Get("user_id")
	if !exists {
		return uuid.Nil, errors.New("user id not found in context")
	}
	idStr, ok := raw.(string)
	if !ok {
		return uuid.Nil, errors.New("user id has unexpected type")
	}
	return uuid.Parse(idStr)
}

func respondServiceError(ctx *gin.Context, err error, message string) {
	statusCode := http.StatusInternalServerError
	switch {
	case apperrors.IsValidation(err):
		statusCode = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
	}
	response.RespondJSON(ctx, "error", statusCode, message, nil, err.Error())
}
