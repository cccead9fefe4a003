package controllers

import (
	"net/http"

	"dorm-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type uploadSlipPayload struct {
	Image string `json:"image" binding:"required"`
}

// UploadSlip stores a base64 slip image and returns its relative path,
// which the client then passes to POST /api/payments as slipImage.
func UploadSlip(c *gin.Context) {
	var payload uploadSlipPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "image is required")
		return
	}

	path, err := utils.SaveBase64Image(payload.Image, "slips")
	if err != nil {
		log.Error().Err(err).Msg("slip upload failed")
		utils.JSONError(c, http.StatusBadRequest, "could not store slip image")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"path": path})
}
