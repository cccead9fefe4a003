package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// ActiveBookingStatuses are the statuses that hold a room.
var ActiveBookingStatuses = []string{BookingStatusPending, BookingStatusConfirmed}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"index;column:user_id" json:"userId"`
	RoomID uint `gorm:"index;column:room_id" json:"roomId"`

	CheckInDate  time.Time  `gorm:"column:check_in_date" json:"checkInDate"`
	CheckOutDate *time.Time `gorm:"column:check_out_date" json:"checkOutDate,omitempty"`

	// Frozen at creation time: room price + deposit. Later room price edits
	// must not change it.
	TotalAmount float64 `gorm:"column:total_amount" json:"totalAmount"`
	DepositPaid bool    `gorm:"column:deposit_paid;default:false" json:"depositPaid"`
	Status      string  `gorm:"size:20;default:pending;index" json:"status"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

// IsActive reports whether the booking still holds its room.
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}
