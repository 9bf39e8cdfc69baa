package events

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

func (c *Controller) CreateEvent(ctx *gin.Context) {
	var req CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	createdBy, err := currentUserID(ctx)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Invalid user identity", nil, err.Error())
		return
	}

	event, err := c.service.CreateEvent(ctx.Request.Context(), req, createdBy)
	if err != nil {
		respondServiceError(ctx, err, "Failed to create event")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Event created successfully", event, nil)
}

func (c *Controller) GetEvent(ctx *gin.Context) {
	event, err := c.service.GetEvent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Failed to get event")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Event retrieved successfully", event, nil)
}

func (c *Controller) GetEvents(ctx *gin.Context) {
	var query EventListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.GetEvents(ctx.Request.Context(), query)
	if err != nil {
		respondServiceError(ctx, err, "Failed to list events")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Events retrieved successfully", result, nil)
}

func (c *Controller) UpdateEvent(ctx *gin.Context) {
	var req UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	event, err := c.service.UpdateEvent(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to update event")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Event updated successfully", event, nil)
}

func (c *Controller) DeleteEvent(ctx *gin.Context) {
	if err := c.service.DeleteEvent(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "Failed to delete event")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Event deleted successfully", nil, nil)
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
