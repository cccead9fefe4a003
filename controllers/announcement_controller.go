package controllers

import (
	"net/http"

	"dorm-backend/middleware"
	"dorm-backend/models"
	"dorm-backend/services"
	"dorm-backend/utils"

	"github.com/gin-gonic/gin"
)

type AnnouncementController struct {
	Announcements *services.AnnouncementService
	Notifier      *services.Notifier
}

func NewAnnouncementController(announcements *services.AnnouncementService, notifier *services.Notifier) *AnnouncementController {
	return &AnnouncementController{Announcements: announcements, Notifier: notifier}
}

type announcementPayload struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Priority string `json:"priority" binding:"omitempty,oneof=low medium high"`
	IsActive *bool  `json:"isActive"`
}

// GET /api/announcements (public; ?active=true filters)
func (ac *AnnouncementController) List(c *gin.Context) {
	list, err := ac.Announcements.List(c.Query("active") == "true")
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// POST /api/announcements (admin)
func (ac *AnnouncementController) Create(c *gin.Context) {
	actor, _ := middleware.CurrentIdentity(c)

	var payload announcementPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "title and content are required")
		return
	}

	a := models.Announcement{
		Title:       payload.Title,
		Content:     payload.Content,
		Priority:    payload.Priority,
		PublishedBy: actor.UserID,
		IsActive:    true,
	}
	if payload.IsActive != nil {
		a.IsActive = *payload.IsActive
	}

	if err := ac.Announcements.Create(&a); err != nil {
		respondServiceError(c, err)
		return
	}

	ac.Notifier.AnnouncementPublished(&a)
	utils.JSONMessage(c, http.StatusCreated, a, "announcement published")
}

// PUT /api/announcements/:id (admin)
func (ac *AnnouncementController) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	a, err := ac.Announcements.Update(id, updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, a, "announcement updated")
}

// DELETE /api/announcements/:id (admin)
func (ac *AnnouncementController) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := ac.Announcements.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, nil, "announcement deleted")
}
