package controllers

import (
	"encoding/json"
	"net/http"

	"dorm-backend/middleware"
	"dorm-backend/services"
	"dorm-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type PaymentController struct {
	Payments *services.PaymentService
	Notifier *services.Notifier
}

func NewPaymentController(payments *services.PaymentService, notifier *services.Notifier) *PaymentController {
	return &PaymentController{Payments: payments, Notifier: notifier}
}

type submitPaymentPayload struct {
	BookingID     *uint           `json:"bookingId"`
	UtilityBillID *uint           `json:"utilityBillId"`
	SlipImage     string          `json:"slipImage" binding:"required"`
	ClaimData     json.RawMessage `json:"claimData"`
}

type verifyPaymentPayload struct {
	Status string `json:"status" binding:"required,oneof=verified rejected"`
	Notes  string `json:"notes"`
}

type readSlipPayload struct {
	Image string `json:"image" binding:"required"`
}

// POST /api/payments
func (pc *PaymentController) SubmitPayment(c *gin.Context) {
	actor, _ := middleware.CurrentIdentity(c)

	var payload submitPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "slipImage and a payment target are required")
		return
	}

	payment, err := pc.Payments.SubmitPayment(actor, services.SubmitPaymentInput{
		BookingID:     payload.BookingID,
		UtilityBillID: payload.UtilityBillID,
		SlipImage:     payload.SlipImage,
		ClaimData:     datatypes.JSON(payload.ClaimData),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	pc.Notifier.PaymentSubmitted(payment)
	utils.JSONMessage(c, http.StatusCreated, payment, "payment slip submitted, awaiting verification")
}

// POST /api/payments/:id/verify (admin)
func (pc *PaymentController) VerifyPayment(c *gin.Context) {
	actor, _ := middleware.CurrentIdentity(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var payload verifyPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status must be verified or rejected")
		return
	}

	payment, err := pc.Payments.VerifyPayment(actor.UserID, id, payload.Status, payload.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	message := "payment verified"
	if payload.Status == "rejected" {
		message = "payment rejected"
	}
	utils.JSONMessage(c, http.StatusOK, payment, message)
}

// GET /api/payments
func (pc *PaymentController) ListPayments(c *gin.Context) {
	actor, _ := middleware.CurrentIdentity(c)

	payments, err := pc.Payments.ListPayments(actor, c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payments)
}

// GET /api/payments/:id
func (pc *PaymentController) GetPayment(c *gin.Context) {
	actor, _ := middleware.CurrentIdentity(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	payment, err := pc.Payments.GetPayment(actor, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payment)
}

// POST /api/payments/slip/read — best-effort OCR; never authoritative.
func (pc *PaymentController) ReadSlip(c *gin.Context) {
	var payload readSlipPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "image is required")
		return
	}

	claim, err := services.ReadSlip(payload.Image)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "slip could not be read")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, claim)
}
