package controllers

import (
	"net/http"
	"strconv"

	"dorm-backend/middleware"
	"dorm-backend/services"
	"dorm-backend/utils"

	"github.com/gin-gonic/gin"
)

type UtilityController struct {
	Utilities *services.UtilityService
}

func NewUtilityController(utilities *services.UtilityService) *UtilityController {
	return &UtilityController{Utilities: utilities}
}

type createBillPayload struct {
	BookingID        uint     `json:"bookingId" binding:"required"`
	RoomID           uint     `json:"roomId" binding:"required"`
	UserID           uint     `json:"userId" binding:"required"`
	Month            string   `json:"month" binding:"required,month"`
	WaterUsage       *float64 `json:"waterUsage" binding:"required,gte=0"`
	ElectricityUsage *float64 `json:"electricityUsage" binding:"required,gte=0"`
}

type editBillPayload struct {
	Month            *string  `json:"month" binding:"omitempty,month"`
	WaterUsage       *float64 `json:"waterUsage" binding:"omitempty,gte=0"`
	ElectricityUsage *float64 `json:"electricityUsage" binding:"omitempty,gte=0"`
}

// POST /api/utilities (admin)
func (uc *UtilityController) CreateBill(c *gin.Context) {
	var payload createBillPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	bill, err := uc.Utilities.CreateBill(services.CreateBillInput{
		RoomID:           payload.RoomID,
		BookingID:        payload.BookingID,
		UserID:           payload.UserID,
		Month:            payload.Month,
		WaterUsage:       *payload.WaterUsage,
		ElectricityUsage: *payload.ElectricityUsage,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusCreated, bill, "utility bill created")
}

// PUT/PATCH /api/utilities/:id (admin)
func (uc *UtilityController) EditBill(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var payload editBillPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	bill, err := uc.Utilities.EditBill(id, services.EditBillInput{
		Month:            payload.Month,
		WaterUsage:       payload.WaterUsage,
		ElectricityUsage: payload.ElectricityUsage,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, bill, "utility bill updated")
}

// DELETE /api/utilities/:id (admin)
func (uc *UtilityController) DeleteBill(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := uc.Utilities.DeleteBill(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, nil, "utility bill deleted")
}

// GET /api/utilities
func (uc *UtilityController) ListBills(c *gin.Context) {
	actor, _ := middleware.CurrentIdentity(c)

	var userID uint
	if raw := c.Query("userId"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 32); err == nil {
			userID = uint(v)
		}
	}

	bills, err := uc.Utilities.ListBills(actor, userID, c.Query("month"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bills)
}
