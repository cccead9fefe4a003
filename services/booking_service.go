package services

import (
	"errors"
	"fmt"
	"time"

	"dorm-backend/middleware"
	"dorm-backend/models"

	"gorm.io/gorm"
)

// BookingService owns the booking lifecycle and every room-status side
// effect that comes with it.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// allowedTransitions maps a booking status to the statuses it may move to.
// Terminal statuses (cancelled, completed) have no entries.
var allowedTransitions = map[string][]string{
	models.BookingStatusPending:   {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed: {models.BookingStatusCancelled, models.BookingStatusCompleted},
}

func transitionAllowed(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CreateBooking books an available room for the user. The booking row and the
// room-status flip happen in one transaction; the flip itself is a
// conditional update so two concurrent requests for the same room cannot
// both succeed.
func (s *BookingService) CreateBooking(userID uint, roomID uint, checkInDate time.Time) (*models.Booking, error) {
	var booking models.Booking

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("load room %d: %w", roomID, err)
		}
		if room.Status != models.RoomStatusAvailable {
			return ErrRoomUnavailable
		}

		var activeCount int64
		if err := tx.Model(&models.Booking{}).
			Where("user_id = ? AND status IN ?", userID, models.ActiveBookingStatuses).
			Count(&activeCount).Error; err != nil {
			return fmt.Errorf("count active bookings: %w", err)
		}
		if activeCount > 0 {
			return ErrDuplicateActiveBooking
		}

		booking = models.Booking{
			UserID:      userID,
			RoomID:      roomID,
			CheckInDate: checkInDate,
			TotalAmount: room.Price + room.Deposit,
			DepositPaid: false,
			Status:      models.BookingStatusPending,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		ok, err := reserveRoom(tx, roomID)
		if err != nil {
			return fmt.Errorf("reserve room %d: %w", roomID, err)
		}
		if !ok {
			// Lost the race since the availability check above.
			return ErrRoomUnavailable
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.Preload("Room").First(&booking, booking.ID).Error; err != nil {
		return nil, fmt.Errorf("reload booking: %w", err)
	}
	return &booking, nil
}

// ChangeStatus applies a status change on behalf of an actor. Regular users
// may only cancel their own pending booking; admins may apply any legal
// transition. Releasing the room rides in the same transaction.
func (s *BookingService) ChangeStatus(actor middleware.Identity, bookingID uint, newStatus string) (*models.Booking, error) {
	var booking models.Booking

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("load booking %d: %w", bookingID, err)
		}

		if !actor.IsAdmin() {
			if booking.UserID != actor.UserID {
				return ErrForbidden
			}
			if newStatus != models.BookingStatusCancelled || booking.Status != models.BookingStatusPending {
				return ErrInvalidTransition
			}
		}

		if !transitionAllowed(booking.Status, newStatus) {
			return ErrInvalidTransition
		}

		if err := tx.Model(&booking).Update("status", newStatus).Error; err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}
		booking.Status = newStatus

		switch newStatus {
		case models.BookingStatusCancelled, models.BookingStatusCompleted:
			if err := releaseRoom(tx, booking.RoomID); err != nil {
				return fmt.Errorf("release room %d: %w", booking.RoomID, err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.Preload("Room").Preload("User").First(&booking, booking.ID).Error; err != nil {
		return nil, fmt.Errorf("reload booking: %w", err)
	}
	return &booking, nil
}

// GetBooking returns one booking; regular users only see their own.
func (s *BookingService) GetBooking(actor middleware.Identity, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Room").Preload("User").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("load booking %d: %w", bookingID, err)
	}
	if !actor.IsAdmin() && booking.UserID != actor.UserID {
		return nil, ErrForbidden
	}
	return &booking, nil
}

// ListBookings returns the actor's bookings, or all of them for admins.
func (s *BookingService) ListBookings(actor middleware.Identity) ([]models.Booking, error) {
	q := s.DB.Preload("Room").Preload("User").Order("created_at DESC")
	if !actor.IsAdmin() {
		q = q.Where("user_id = ?", actor.UserID)
	}

	var list []models.Booking
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return list, nil
}
