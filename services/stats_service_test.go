package services

import (
	"testing"
	"time"

	"dorm-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(db)

	got, err := stats.Dashboard(time.Now())
	require.NoError(t, err)

	assert.Empty(t, got.RoomsByStatus)
	assert.Zero(t, got.ActiveBookings)
	assert.Zero(t, got.PendingPayments)
	assert.Zero(t, got.UnpaidBills)
	assert.Zero(t, got.MonthlyRevenue)
}

func TestDashboardCounters(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	payments := NewPaymentService(db)
	utilities := NewUtilityService(db)
	stats := NewStatsService(db)

	tenant := createTestUser(t, db, "tenant@dorm.local", models.RoleUser)
	admin := createTestUser(t, db, "admin@dorm.local", models.RoleAdmin)
	roomA := createTestRoom(t, db, "R101", 3000, 1000)
	createTestRoom(t, db, "R102", 3500, 1000)
	createTestRoom(t, db, "R103", 4000, 1000)

	booking, err := bookings.CreateBooking(tenant.ID, roomA.ID, testCheckIn)
	require.NoError(t, err)

	deposit, err := payments.SubmitPayment(userIdentity(tenant), SubmitPaymentInput{
		BookingID: &booking.ID,
		SlipImage: "slips/a.jpg",
	})
	require.NoError(t, err)
	_, err = payments.VerifyPayment(admin.ID, deposit.ID, models.PaymentStatusVerified, "")
	require.NoError(t, err)

	bill, err := utilities.CreateBill(CreateBillInput{
		RoomID: roomA.ID, BookingID: booking.ID, UserID: tenant.ID,
		Month: "2025-02", WaterUsage: 10, ElectricityUsage: 100,
	})
	require.NoError(t, err)
	_, err = payments.SubmitPayment(userIdentity(tenant), SubmitPaymentInput{
		UtilityBillID: &bill.ID,
		SlipImage:     "slips/b.jpg",
	})
	require.NoError(t, err)

	got, err := stats.Dashboard(time.Now())
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.RoomsByStatus[models.RoomStatusOccupied])
	assert.Equal(t, int64(2), got.RoomsByStatus[models.RoomStatusAvailable])
	assert.Equal(t, int64(1), got.ActiveBookings)
	assert.Equal(t, int64(1), got.PendingPayments)
	assert.Equal(t, int64(1), got.UnpaidBills)
	assert.Equal(t, 4000.0, got.MonthlyRevenue)
}

func TestDashboardRevenueWindow(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	payments := NewPaymentService(db)
	stats := NewStatsService(db)

	tenant := createTestUser(t, db, "tenant@dorm.local", models.RoleUser)
	admin := createTestUser(t, db, "admin@dorm.local", models.RoleAdmin)
	room := createTestRoom(t, db, "R101", 3000, 1000)

	booking, err := bookings.CreateBooking(tenant.ID, room.ID, testCheckIn)
	require.NoError(t, err)
	deposit, err := payments.SubmitPayment(userIdentity(tenant), SubmitPaymentInput{
		BookingID: &booking.ID,
		SlipImage: "slips/a.jpg",
	})
	require.NoError(t, err)
	_, err = payments.VerifyPayment(admin.ID, deposit.ID, models.PaymentStatusVerified, "")
	require.NoError(t, err)

	// A dashboard for next month should not count this month's payment.
	nextMonth := time.Now().UTC().AddDate(0, 1, 0)
	got, err := stats.Dashboard(nextMonth)
	require.NoError(t, err)
	assert.Zero(t, got.MonthlyRevenue)
}
