package bookings

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

func (c *Controller) GetSeatmap(ctx *gin.Context) {
	seatmap, err := c.service.Seatmap(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Failed to get seatmap")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seatmap retrieved successfully", seatmap, nil)
}

func (c *Controller) Preview(ctx *gin.Context) {
	var req PreviewBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	preview, err := c.service.Preview(ctx.Request.Context(), ctx.Param("id"), req.Seats)
	if err != nil {
		respondServiceError(ctx, err, "Failed to preview booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking preview calculated", preview, nil)
}

func (c *Controller) Create(ctx *gin.Context) {
	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	booking, err := c.service.Create(ctx.Request.Context(), ctx.Param("id"), req, optionalUserID(ctx))
	if err != nil {
		respondServiceError(ctx, err, "Failed to create booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking confirmed", booking, nil)
}

func (c *Controller) GetEventBookings(ctx *gin.Context) {
	bookings, err := c.service.GetEventBookings(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Failed to list bookings")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", bookings, nil)
}

func (c *Controller) GetMyBookings(ctx *gin.Context) {
	userID, err := requiredUserID(ctx)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Invalid user identity", nil, err.Error())
		return
	}

	var query BookingListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.GetUserBookings(ctx.Request.Context(), userID, query)
	if err != nil {
		respondServiceError(ctx, err, "Failed to list bookings")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", result, nil)
}

func (c *Controller) Cancel(ctx *gin.Context) {
	userID, err := requiredUserID(ctx)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Invalid user identity", nil, err.Error())
		return
	}

	role, _ := ctx.Get("user_role")
	isAdmin := role == "ADMIN"

	booking, err := c.service.Cancel(ctx.Request.Context(), ctx.Param("id"), userID, isAdmin)
	if err != nil {
		respondServiceError(ctx, err, "Failed to cancel booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking cancelled", booking, nil)
}

func optionalUserID(ctx *gin.Context) *uuid.UUID {
	raw, exists := ctx.Get("user_id")
	if !exists {
		return nil
	}
	idStr, ok := raw.(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil
	}
	return &id
}

func requiredUserID(ctx *gin.Context) (uuid.UUID, error) {
	if id := optionalUserID(ctx); id != nil {
		return *id, nil
	}
	return uuid.Nil, errors.New("user id not found in context")
}

func respondServiceError(ctx *gin.Context, err error, message string) {
	statusCode := http.StatusInternalServerError
	var errorsPayload interface{} = err.Error()

	switch {
	case apperrors.IsValidation(err):
		statusCode = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
	case errors.Is(err, apperrors.ErrForbidden):
		statusCode = http.StatusForbidden
	default:
		if seats, ok := apperrors.IsConflict(err); ok {
			statusCode = http.StatusConflict
			errorsPayload = gin.H{"conflicting_seats": seats, "message": err.Error()}
		}
	}

	response.RespondJSON(ctx, "error", statusCode, message, nil, errorsPayload)
}
