package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"dorm-backend/config"
	"dorm-backend/controllers"
	"dorm-backend/routes"
	"dorm-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env not found or couldn't load it; continuing with environment variables")
	}

	config.InitLogger("dorm-backend", os.Getenv("APP_ENV"))

	if strings.TrimSpace(os.Getenv("JWT_SECRET")) == "" {
		log.Fatal().Msg("JWT_SECRET environment variable is not set")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	db := config.DB
	log.Info().Msg("database connection established, migrations applied")

	notifier := services.NewNotifierFromEnv()
	if notifier != nil {
		log.Info().Msg("telegram notifications enabled")
	}

	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db)
	paymentService := services.NewPaymentService(db)
	utilityService := services.NewUtilityService(db)
	announcementService := services.NewAnnouncementService(db)
	statsService := services.NewStatsService(db)

	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(bookingService)
	paymentController := controllers.NewPaymentController(paymentService, notifier)
	utilityController := controllers.NewUtilityController(utilityService)
	announcementController := controllers.NewAnnouncementController(announcementService, notifier)
	adminController := controllers.NewAdminController(statsService)

	router := routes.SetupRouter(
		roomController,
		bookingController,
		paymentController,
		utilityController,
		announcementController,
		adminController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen and serve failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Warn().Msg("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped gracefully")
}
