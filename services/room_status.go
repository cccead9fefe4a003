package services

import (
	"dorm-backend/models"

	"gorm.io/gorm"
)

// transitionRoomStatus is the single place the workflow flips Room.Status.
// It is a conditional update: the row only changes when its current status is
// one of the expected values, so two racing requests cannot both win. Returns
// the number of rows changed.
//
// "maintenance" is an admin-only override and is never listed in `from` by
// callers, so workflow transitions leave it alone.
func transitionRoomStatus(tx *gorm.DB, roomID uint, from []string, to string) (int64, error) {
	res := tx.Model(&models.Room{}).
		Where("id = ? AND status IN ?", roomID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// reserveRoom claims an available room. Zero rows means it was taken.
func reserveRoom(tx *gorm.DB, roomID uint) (bool, error) {
	n, err := transitionRoomStatus(tx, roomID, []string{models.RoomStatusAvailable}, models.RoomStatusReserved)
	return n > 0, err
}

// occupyRoom marks a reserved room occupied after deposit verification. Only
// a reservation can turn into occupancy; the room is reserved for as long as
// the booking being verified is pending.
func occupyRoom(tx *gorm.DB, roomID uint) error {
	_, err := transitionRoomStatus(tx, roomID,
		[]string{models.RoomStatusReserved}, models.RoomStatusOccupied)
	return err
}

// releaseRoom frees a room when the booking holding it ends.
func releaseRoom(tx *gorm.DB, roomID uint) error {
	_, err := transitionRoomStatus(tx, roomID,
		[]string{models.RoomStatusReserved, models.RoomStatusOccupied}, models.RoomStatusAvailable)
	return err
}
