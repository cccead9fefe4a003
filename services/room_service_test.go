package services

import (
	"testing"

	"dorm-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoomAppliesDefaults(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomService(db)

	room := &models.Room{RoomNumber: " R201 ", Price: 3500, Deposit: 1000}
	require.NoError(t, rooms.CreateRoom(room))

	assert.Equal(t, "R201", room.RoomNumber)
	assert.Equal(t, models.RoomStatusAvailable, room.Status)
	assert.Equal(t, 18.0, room.WaterRate)
	assert.Equal(t, 8.0, room.ElectricityRate)
	assert.Equal(t, 1, room.MaxOccupants)
}

func TestCreateRoomRejectsDuplicateNumber(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomService(db)

	require.NoError(t, rooms.CreateRoom(&models.Room{RoomNumber: "R201", Price: 3500}))
	err := rooms.CreateRoom(&models.Room{RoomNumber: "R201", Price: 4000})
	require.ErrorIs(t, err, ErrDuplicateRoomNumber)
}

func TestListRoomsFilters(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomService(db)

	require.NoError(t, rooms.CreateRoom(&models.Room{RoomNumber: "R101", Price: 3000, Floor: 1}))
	require.NoError(t, rooms.CreateRoom(&models.Room{RoomNumber: "R201", Price: 4500, Floor: 2}))
	require.NoError(t, rooms.CreateRoom(&models.Room{RoomNumber: "R202", Price: 5000, Floor: 2, Status: models.RoomStatusMaintenance}))

	all, err := rooms.ListRooms(RoomFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	available, err := rooms.ListRooms(RoomFilter{Status: models.RoomStatusAvailable})
	require.NoError(t, err)
	assert.Len(t, available, 2)

	min, max := 4000.0, 4800.0
	priced, err := rooms.ListRooms(RoomFilter{MinPrice: &min, MaxPrice: &max})
	require.NoError(t, err)
	require.Len(t, priced, 1)
	assert.Equal(t, "R201", priced[0].RoomNumber)

	floor := 2
	upstairs, err := rooms.ListRooms(RoomFilter{Floor: &floor})
	require.NoError(t, err)
	assert.Len(t, upstairs, 2)
}

func TestUpdateRoomStripsProtectedColumns(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomService(db)

	room := &models.Room{RoomNumber: "R101", Price: 3000}
	require.NoError(t, rooms.CreateRoom(room))

	updated, err := rooms.UpdateRoom(room.ID, map[string]interface{}{
		"id":    999,
		"price": 3200.0,
	})
	require.NoError(t, err)

	assert.Equal(t, room.ID, updated.ID)
	assert.Equal(t, 3200.0, updated.Price)
}

func TestUpdateRoomNotFound(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomService(db)

	_, err := rooms.UpdateRoom(999, map[string]interface{}{"price": 100.0})
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestDeleteRoomBlockedByActiveBooking(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomService(db)
	bookings := NewBookingService(db)

	tenant := createTestUser(t, db, "tenant@dorm.local", models.RoleUser)
	admin := createTestUser(t, db, "admin@dorm.local", models.RoleAdmin)
	room := createTestRoom(t, db, "R101", 3000, 1000)

	booking, err := bookings.CreateBooking(tenant.ID, room.ID, testCheckIn)
	require.NoError(t, err)

	require.ErrorIs(t, rooms.DeleteRoom(room.ID), ErrRoomHasActiveBooking)

	// Once the booking is out of the way the room can go.
	_, err = bookings.ChangeStatus(userIdentity(admin), booking.ID, models.BookingStatusCancelled)
	require.NoError(t, err)
	require.NoError(t, rooms.DeleteRoom(room.ID))

	_, err = rooms.GetRoom(room.ID)
	require.ErrorIs(t, err, ErrRoomNotFound)
}
