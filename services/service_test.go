package services

import (
	"testing"
	"time"

	"dorm-backend/middleware"
	"dorm-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Booking{},
		&models.UtilityBill{},
		&models.Payment{},
		&models.Announcement{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	user := &models.User{
		Email:     email,
		Password:  "x",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestRoom(t *testing.T, db *gorm.DB, number string, price, deposit float64) *models.Room {
	t.Helper()
	room := &models.Room{
		RoomNumber:      number,
		Status:          models.RoomStatusAvailable,
		Price:           price,
		Deposit:         deposit,
		WaterRate:       18,
		ElectricityRate: 8,
		Floor:           1,
		Size:            24,
		MaxOccupants:    1,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func userIdentity(u *models.User) middleware.Identity {
	return middleware.Identity{UserID: u.ID, Email: u.Email, Role: u.Role}
}

func requireRoomStatus(t *testing.T, db *gorm.DB, roomID uint, want string) {
	t.Helper()
	var room models.Room
	require.NoError(t, db.First(&room, roomID).Error)
	require.Equal(t, want, room.Status)
}

func requireBookingStatus(t *testing.T, db *gorm.DB, bookingID uint, want string) {
	t.Helper()
	var booking models.Booking
	require.NoError(t, db.First(&booking, bookingID).Error)
	require.Equal(t, want, booking.Status)
}

var testCheckIn = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
