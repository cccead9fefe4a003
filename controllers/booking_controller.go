package controllers

import (
	"net/http"
	"time"

	"dorm-backend/middleware"
	"dorm-backend/services"
	"dorm-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

type createBookingPayload struct {
	RoomID      uint   `json:"roomId" binding:"required"`
	CheckInDate string `json:"checkInDate" binding:"required"`
}

type changeBookingStatusPayload struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

func parseDate(raw string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// POST /api/bookings
func (bc *BookingController) CreateBooking(c *gin.Context) {
	actor, _ := middleware.CurrentIdentity(c)

	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "roomId and checkInDate are required")
		return
	}

	checkIn, ok := parseDate(payload.CheckInDate)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkInDate format")
		return
	}

	booking, err := bc.Bookings.CreateBooking(actor.UserID, payload.RoomID, checkIn)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusCreated, booking, "booking created, please submit payment")
}

// GET /api/bookings
func (bc *BookingController) ListBookings(c *gin.Context) {
	actor, _ := middleware.CurrentIdentity(c)

	bookings, err := bc.Bookings.ListBookings(actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GET /api/bookings/:id
func (bc *BookingController) GetBooking(c *gin.Context) {
	actor, _ := middleware.CurrentIdentity(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	booking, err := bc.Bookings.GetBooking(actor, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// PATCH /api/bookings/:id
func (bc *BookingController) ChangeStatus(c *gin.Context) {
	actor, _ := middleware.CurrentIdentity(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var payload changeBookingStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "a valid status is required")
		return
	}

	booking, err := bc.Bookings.ChangeStatus(actor, id, payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, booking, "booking status updated")
}
