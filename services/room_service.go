package services

import (
	"errors"
	"fmt"
	"strings"

	"dorm-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

type RoomFilter struct {
	Status   string
	MinPrice *float64
	MaxPrice *float64
	Floor    *int
}

func (s *RoomService) ListRooms(f RoomFilter) ([]models.Room, error) {
	q := s.DB.Order("room_number ASC")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.Floor != nil {
		q = q.Where("floor = ?", *f.Floor)
	}

	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetRoom(roomID uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("load room %d: %w", roomID, err)
	}
	return &room, nil
}

func (s *RoomService) CreateRoom(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)

	var dup int64
	if err := s.DB.Model(&models.Room{}).
		Where("room_number = ?", room.RoomNumber).
		Count(&dup).Error; err != nil {
		return fmt.Errorf("check room number: %w", err)
	}
	if dup > 0 {
		return ErrDuplicateRoomNumber
	}

	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	if room.WaterRate == 0 {
		room.WaterRate = 18
	}
	if room.ElectricityRate == 0 {
		room.ElectricityRate = 8
	}
	if room.MaxOccupants == 0 {
		room.MaxOccupants = 1
	}

	if err := s.DB.Create(room).Error; err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

// UpdateRoom applies a partial update. Identity and timestamp columns are
// stripped; existing bookings keep their frozen totalAmount regardless of
// price edits.
func (s *RoomService) UpdateRoom(roomID uint, updates map[string]interface{}) (*models.Room, error) {
	delete(updates, "id")
	delete(updates, "ID")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")

	res := s.DB.Model(&models.Room{}).Where("id = ?", roomID).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("update room %d: %w", roomID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrRoomNotFound
	}
	return s.GetRoom(roomID)
}

// DeleteRoom removes a room unless an active booking still references it.
func (s *RoomService) DeleteRoom(roomID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("load room %d: %w", roomID, err)
		}

		var active int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND status IN ?", roomID, models.ActiveBookingStatuses).
			Count(&active).Error; err != nil {
			return fmt.Errorf("count active bookings: %w", err)
		}
		if active > 0 {
			return ErrRoomHasActiveBooking
		}

		if err := tx.Delete(&room).Error; err != nil {
			return fmt.Errorf("delete room: %w", err)
		}
		return nil
	})
}
