package controllers

import (
	"errors"
	"net/http"
	"strings"

	"dorm-backend/config"
	"dorm-backend/middleware"
	"dorm-backend/models"
	"dorm-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type registerPayload struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	StudentID   string `json:"studentId"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func issueSession(c *gin.Context, user *models.User, code int, message string) {
	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("token generation failed")
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	// Cookie mirrors the bearer token for browser clients.
	c.SetCookie("token", token, 7*24*3600, "/", "", false, true)
	utils.JSONMessage(c, code, gin.H{"user": user, "token": token}, message)
}

func Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.JSONError(c, http.StatusConflict, "email already in use")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Msg("register lookup failed")
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("password hash failed")
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	user := models.User{
		Email:       email,
		Password:    string(hash),
		FirstName:   strings.TrimSpace(payload.FirstName),
		LastName:    strings.TrimSpace(payload.LastName),
		PhoneNumber: strings.TrimSpace(payload.PhoneNumber),
		StudentID:   strings.TrimSpace(payload.StudentID),
		Role:        models.RoleUser,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		log.Error().Err(err).Msg("register create failed")
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	issueSession(c, &user, http.StatusCreated, "registration successful")
}

func Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	issueSession(c, &user, http.StatusOK, "login successful")
}

// Me returns the profile behind the presented token.
func Me(c *gin.Context) {
	id, _ := middleware.CurrentIdentity(c)

	var user models.User
	if err := config.DB.First(&user, id.UserID).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "user not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
