package services

import (
	"testing"

	"dorm-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBillComputesCostsFromRoomRates(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	utilities := NewUtilityService(db)

	tenant := createTestUser(t, db, "tenant@dorm.local", models.RoleUser)
	room := createTestRoom(t, db, "R101", 3000, 1000)
	booking, err := bookings.CreateBooking(tenant.ID, room.ID, testCheckIn)
	require.NoError(t, err)

	bill, err := utilities.CreateBill(CreateBillInput{
		RoomID:           room.ID,
		BookingID:        booking.ID,
		UserID:           tenant.ID,
		Month:            "2025-02",
		WaterUsage:       10,
		ElectricityUsage: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, 180.0, bill.WaterCost)
	assert.Equal(t, 800.0, bill.ElectricityCost)
	assert.Equal(t, 980.0, bill.TotalCost)
	assert.False(t, bill.Paid)
	assert.Nil(t, bill.PaidAt)
}

func TestCreateBillRejectsDuplicateMonth(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	utilities := NewUtilityService(db)

	tenant := createTestUser(t, db, "tenant@dorm.local", models.RoleUser)
	room := createTestRoom(t, db, "R101", 3000, 1000)
	booking, err := bookings.CreateBooking(tenant.ID, room.ID, testCheckIn)
	require.NoError(t, err)

	in := CreateBillInput{
		RoomID: room.ID, BookingID: booking.ID, UserID: tenant.ID,
		Month: "2025-02", WaterUsage: 10, ElectricityUsage: 100,
	}
	_, err = utilities.CreateBill(in)
	require.NoError(t, err)

	_, err = utilities.CreateBill(in)
	require.ErrorIs(t, err, ErrDuplicateMonth)

	// A different month on the same booking is fine.
	in.Month = "2025-03"
	_, err = utilities.CreateBill(in)
	require.NoError(t, err)
}

func TestCreateBillUnknownRoom(t *testing.T) {
	db := newTestDB(t)
	utilities := NewUtilityService(db)

	_, err := utilities.CreateBill(CreateBillInput{RoomID: 999, BookingID: 1, UserID: 1, Month: "2025-02"})
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestEditBillUsesCurrentRoomRates(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	utilities := NewUtilityService(db)

	tenant := createTestUser(t, db, "tenant@dorm.local", models.RoleUser)
	room := createTestRoom(t, db, "R101", 3000, 1000)
	booking, err := bookings.CreateBooking(tenant.ID, room.ID, testCheckIn)
	require.NoError(t, err)

	bill, err := utilities.CreateBill(CreateBillInput{
		RoomID: room.ID, BookingID: booking.ID, UserID: tenant.ID,
		Month: "2025-02", WaterUsage: 10, ElectricityUsage: 100,
	})
	require.NoError(t, err)
	require.Equal(t, 980.0, bill.TotalCost)

	// Bump the water rate, then correct the usage: the edit reprices with
	// today's rate, not the rate the bill was created under.
	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", room.ID).Update("water_rate", 20).Error)

	usage := 12.0
	edited, err := utilities.EditBill(bill.ID, EditBillInput{WaterUsage: &usage})
	require.NoError(t, err)

	assert.Equal(t, 240.0, edited.WaterCost)
	assert.Equal(t, 800.0, edited.ElectricityCost)
	assert.Equal(t, 1040.0, edited.TotalCost)
}

func TestEditBillRejectsDuplicateMonth(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	utilities := NewUtilityService(db)

	tenant := createTestUser(t, db, "tenant@dorm.local", models.RoleUser)
	room := createTestRoom(t, db, "R101", 3000, 1000)
	booking, err := bookings.CreateBooking(tenant.ID, room.ID, testCheckIn)
	require.NoError(t, err)

	in := CreateBillInput{
		RoomID: room.ID, BookingID: booking.ID, UserID: tenant.ID,
		Month: "2025-02", WaterUsage: 10, ElectricityUsage: 100,
	}
	_, err = utilities.CreateBill(in)
	require.NoError(t, err)

	in.Month = "2025-03"
	march, err := utilities.CreateBill(in)
	require.NoError(t, err)

	// Moving March onto February would collide with the existing bill.
	taken := "2025-02"
	_, err = utilities.EditBill(march.ID, EditBillInput{Month: &taken})
	require.ErrorIs(t, err, ErrDuplicateMonth)

	// Re-saving the bill's own month is not a collision.
	same := "2025-03"
	edited, err := utilities.EditBill(march.ID, EditBillInput{Month: &same})
	require.NoError(t, err)
	assert.Equal(t, "2025-03", edited.Month)

	free := "2025-04"
	edited, err = utilities.EditBill(march.ID, EditBillInput{Month: &free})
	require.NoError(t, err)
	assert.Equal(t, "2025-04", edited.Month)
}

func TestEditBillNotFound(t *testing.T) {
	db := newTestDB(t)
	utilities := NewUtilityService(db)

	usage := 5.0
	_, err := utilities.EditBill(999, EditBillInput{WaterUsage: &usage})
	require.ErrorIs(t, err, ErrBillNotFound)
}

func TestDeleteBillRefusesPaidBills(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	payments := NewPaymentService(db)
	utilities := NewUtilityService(db)

	tenant := createTestUser(t, db, "tenant@dorm.local", models.RoleUser)
	admin := createTestUser(t, db, "admin@dorm.local", models.RoleAdmin)
	room := createTestRoom(t, db, "R101", 3000, 1000)
	booking, err := bookings.CreateBooking(tenant.ID, room.ID, testCheckIn)
	require.NoError(t, err)

	bill, err := utilities.CreateBill(CreateBillInput{
		RoomID: room.ID, BookingID: booking.ID, UserID: tenant.ID,
		Month: "2025-02", WaterUsage: 10, ElectricityUsage: 100,
	})
	require.NoError(t, err)

	payment, err := payments.SubmitPayment(userIdentity(tenant), SubmitPaymentInput{
		UtilityBillID: &bill.ID,
		SlipImage:     "slips/b.jpg",
	})
	require.NoError(t, err)
	_, err = payments.VerifyPayment(admin.ID, payment.ID, models.PaymentStatusVerified, "")
	require.NoError(t, err)

	err = utilities.DeleteBill(bill.ID)
	require.ErrorIs(t, err, ErrBillAlreadyPaid)
}

func TestDeleteUnpaidBill(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	utilities := NewUtilityService(db)

	tenant := createTestUser(t, db, "tenant@dorm.local", models.RoleUser)
	room := createTestRoom(t, db, "R101", 3000, 1000)
	booking, err := bookings.CreateBooking(tenant.ID, room.ID, testCheckIn)
	require.NoError(t, err)

	bill, err := utilities.CreateBill(CreateBillInput{
		RoomID: room.ID, BookingID: booking.ID, UserID: tenant.ID,
		Month: "2025-02", WaterUsage: 10, ElectricityUsage: 100,
	})
	require.NoError(t, err)

	require.NoError(t, utilities.DeleteBill(bill.ID))
	require.ErrorIs(t, utilities.DeleteBill(bill.ID), ErrBillNotFound)
}

func TestListBillsScoped(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	utilities := NewUtilityService(db)

	u := createTestUser(t, db, "u@dorm.local", models.RoleUser)
	v := createTestUser(t, db, "v@dorm.local", models.RoleUser)
	admin := createTestUser(t, db, "admin@dorm.local", models.RoleAdmin)
	roomA := createTestRoom(t, db, "R101", 3000, 1000)
	roomB := createTestRoom(t, db, "R102", 3000, 1000)

	bu, err := bookings.CreateBooking(u.ID, roomA.ID, testCheckIn)
	require.NoError(t, err)
	bv, err := bookings.CreateBooking(v.ID, roomB.ID, testCheckIn)
	require.NoError(t, err)

	for _, month := range []string{"2025-02", "2025-03"} {
		_, err = utilities.CreateBill(CreateBillInput{
			RoomID: roomA.ID, BookingID: bu.ID, UserID: u.ID,
			Month: month, WaterUsage: 10, ElectricityUsage: 100,
		})
		require.NoError(t, err)
	}
	_, err = utilities.CreateBill(CreateBillInput{
		RoomID: roomB.ID, BookingID: bv.ID, UserID: v.ID,
		Month: "2025-02", WaterUsage: 5, ElectricityUsage: 50,
	})
	require.NoError(t, err)

	own, err := utilities.ListBills(userIdentity(u), 0, "")
	require.NoError(t, err)
	assert.Len(t, own, 2)

	all, err := utilities.ListBills(userIdentity(admin), 0, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := utilities.ListBills(userIdentity(admin), v.ID, "2025-02")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, v.ID, filtered[0].UserID)
}
