package controllers

import (
	"errors"
	"net/http"

	"dorm-backend/services"
	"dorm-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondServiceError maps service sentinels onto HTTP statuses. Anything
// unrecognized is logged and surfaced as a generic 500 without detail.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "room not found")
	case errors.Is(err, services.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found")
	case errors.Is(err, services.ErrPaymentNotFound):
		utils.JSONError(c, http.StatusNotFound, "payment not found")
	case errors.Is(err, services.ErrBillNotFound):
		utils.JSONError(c, http.StatusNotFound, "utility bill not found")
	case errors.Is(err, services.ErrAnnouncementNotFound):
		utils.JSONError(c, http.StatusNotFound, "announcement not found")
	case errors.Is(err, services.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, "user not found")

	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "you do not have access to this resource")

	case errors.Is(err, services.ErrInvalidTransition):
		utils.JSONError(c, http.StatusBadRequest, "status change not allowed from the current state")
	case errors.Is(err, services.ErrInvalidTarget):
		utils.JSONError(c, http.StatusBadRequest, "exactly one of bookingId or utilityBillId must be provided")

	case errors.Is(err, services.ErrRoomUnavailable):
		utils.JSONError(c, http.StatusConflict, "room is not available")
	case errors.Is(err, services.ErrDuplicateActiveBooking):
		utils.JSONError(c, http.StatusConflict, "you already have an active booking")
	case errors.Is(err, services.ErrDuplicateRoomNumber):
		utils.JSONError(c, http.StatusConflict, "room number already exists")
	case errors.Is(err, services.ErrRoomHasActiveBooking):
		utils.JSONError(c, http.StatusConflict, "room still has an active booking")
	case errors.Is(err, services.ErrDuplicateMonth):
		utils.JSONError(c, http.StatusConflict, "a bill for this booking and month already exists")
	case errors.Is(err, services.ErrPaymentResolved):
		utils.JSONError(c, http.StatusConflict, "payment has already been resolved")
	case errors.Is(err, services.ErrBillAlreadyPaid):
		utils.JSONError(c, http.StatusConflict, "paid bills cannot be deleted")

	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unexpected service error")
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
