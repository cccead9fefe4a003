package controllers

import (
	"net/http"
	"time"

	"dorm-backend/services"
	"dorm-backend/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Stats *services.StatsService
}

func NewAdminController(stats *services.StatsService) *AdminController {
	return &AdminController{Stats: stats}
}

// GET /api/admin/stats (admin)
func (ac *AdminController) DashboardStats(c *gin.Context) {
	stats, err := ac.Stats.Dashboard(time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}
