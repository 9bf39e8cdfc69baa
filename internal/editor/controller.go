package editor

import (
	"errors"
	"net/http"

	"eventease/internal/shared/apperrors"
	"eventease/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) OpenSession(ctx *gin.Context) {
	var req OpenSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	sess, err := c.service.Open(ctx.Request.Context(), req.HallID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to open editor session")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Editor session opened", toSessionResponse(sess), nil)
}

func (c *Controller) GetSession(ctx *gin.Context) {
	sess, err := c.service.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Failed to get editor session")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Editor session retrieved", toSessionResponse(sess), nil)
}

func (c *Controller) CloseSession(ctx *gin.Context) {
	if err := c.service.Close(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "Failed to close editor session")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Editor session closed", nil, nil)
}

func (c *Controller) SaveSession(ctx *gin.Context) {
	sess, err := c.service.Save(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Failed to save layout")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Layout saved", toSessionResponse(sess), nil)
}

func (c *Controller) SetTool(ctx *gin.Context) {
	var req SetToolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	sess, err := c.service.SetTool(ctx.Request.Context(), ctx.Param("id"), req.Tool, req.toConfig())
	if err != nil {
		respondServiceError(ctx, err, "Failed to set tool")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tool changed", toSessionResponse(sess), nil)
}

func (c *Controller) Rotate(ctx *gin.Context) {
	rotation, err := c.service.Rotate(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Failed to rotate")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Rotation advanced", RotationResponse{Rotation: rotation}, nil)
}

func (c *Controller) Ghost(ctx *gin.Context) {
	var req PointRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	items, err := c.service.Ghost(ctx.Request.Context(), ctx.Param("id"), req.X, req.Y)
	if err != nil {
		respondServiceError(ctx, err, "Failed to build preview")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Preview built", GhostResponse{Items: items}, nil)
}

func (c *Controller) Click(ctx *gin.Context) {
	var req PointRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	result, sess, err := c.service.Click(ctx.Request.Context(), ctx.Param("id"), req.X, req.Y)
	if err != nil {
		respondServiceError(ctx, err, "Failed to apply click")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Click applied", ClickResponse{
		Result:  result,
		Session: toSessionResponse(sess),
	}, nil)
}

func (c *Controller) SetSelection(ctx *gin.Context) {
	var req SelectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	selected, err := c.service.SetSelection(ctx.Request.Context(), ctx.Param("id"), req.SeatIDs)
	if err != nil {
		respondServiceError(ctx, err, "Failed to set selection")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Selection updated", SelectionResponse{Selected: selected}, nil)
}

func (c *Controller) ApplyZone(ctx *gin.Context) {
	var req ApplyZoneRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	sess, err := c.service.ApplyZone(ctx.Request.Context(), ctx.Param("id"), req.ZoneID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to apply zone")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Zone applied to selection", toSessionResponse(sess), nil)
}

func (c *Controller) AddZone(ctx *gin.Context) {
	var req AddZoneRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	zone, err := c.service.AddZone(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to add zone")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Zone created", zone, nil)
}

func (c *Controller) UpdateZone(ctx *gin.Context) {
	var req UpdateZoneRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	zone, err := c.service.UpdateZone(ctx.Request.Context(), ctx.Param("id"), ctx.Param("zoneId"), req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to update zone")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Zone updated", zone, nil)
}

func (c *Controller) DeleteZone(ctx *gin.Context) {
	reassigned, err := c.service.DeleteZone(ctx.Request.Context(), ctx.Param("id"), ctx.Param("zoneId"))
	if err != nil {
		respondServiceError(ctx, err, "Failed to delete zone")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Zone deleted", DeleteZoneResponse{ReassignedSeats: reassigned}, nil)
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
