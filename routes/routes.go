package routes

import (
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"dorm-backend/controllers"
	"dorm-backend/middleware"
)

var monthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// registerValidations adds the custom binding rules used by the DTOs.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
			return monthRe.MatchString(fl.Field().String())
		})
	}
}

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	pc *controllers.PaymentController,
	uc *controllers.UtilityController,
	anc *controllers.AnnouncementController,
	adc *controllers.AdminController,
) *gin.Engine {
	registerValidations()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
			auth.GET("/me", middleware.RequireAuth(), controllers.Me)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.ListRooms)
			rooms.GET("/:id", rc.GetRoom)

			adminRooms := rooms.Group("", middleware.RequireAuth(), middleware.RequireAdmin())
			{
				adminRooms.POST("", rc.CreateRoom)
				adminRooms.PATCH("/:id", rc.UpdateRoom)
				adminRooms.PUT("/:id", rc.UpdateRoom)
				adminRooms.DELETE("/:id", rc.DeleteRoom)
			}
		}

		bookings := api.Group("/bookings", middleware.RequireAuth())
		{
			bookings.GET("", bc.ListBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBooking)
			bookings.PATCH("/:id", bc.ChangeStatus)
		}

		payments := api.Group("/payments", middleware.RequireAuth())
		{
			payments.GET("", pc.ListPayments)
			payments.POST("", pc.SubmitPayment)
			payments.POST("/slip/read", pc.ReadSlip)
			payments.GET("/:id", pc.GetPayment)
			payments.POST("/:id/verify", middleware.RequireAdmin(), pc.VerifyPayment)
		}

		utilities := api.Group("/utilities", middleware.RequireAuth())
		{
			utilities.GET("", uc.ListBills)

			adminUtilities := utilities.Group("", middleware.RequireAdmin())
			{
				adminUtilities.POST("", uc.CreateBill)
				adminUtilities.PUT("/:id", uc.EditBill)
				adminUtilities.PATCH("/:id", uc.EditBill)
				adminUtilities.DELETE("/:id", uc.DeleteBill)
			}
		}

		announcements := api.Group("/announcements")
		{
			announcements.GET("", anc.List)

			adminAnnouncements := announcements.Group("", middleware.RequireAuth(), middleware.RequireAdmin())
			{
				adminAnnouncements.POST("", anc.Create)
				adminAnnouncements.PUT("/:id", anc.Update)
				adminAnnouncements.DELETE("/:id", anc.Delete)
			}
		}

		admin := api.Group("/admin", middleware.RequireAuth(), middleware.RequireAdmin())
		{
			admin.GET("/stats", adc.DashboardStats)
		}

		api.POST("/uploads/slip", middleware.RequireAuth(), controllers.UploadSlip)
	}

	return r
}
