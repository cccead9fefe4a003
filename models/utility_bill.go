package models

import (
	"time"

	"gorm.io/gorm"
)

// UtilityBill is one month of water/electric charges for a booking.
// At most one bill exists per (booking, month).
type UtilityBill struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BookingID uint `gorm:"column:booking_id;index:idx_bill_booking_month,unique" json:"bookingId"`
	RoomID    uint `gorm:"index;column:room_id" json:"roomId"`
	UserID    uint `gorm:"index;column:user_id" json:"userId"`

	// YYYY-MM
	Month string `gorm:"size:7;index:idx_bill_booking_month,unique" json:"month"`

	WaterUsage       float64 `gorm:"column:water_usage" json:"waterUsage"`
	WaterCost        float64 `gorm:"column:water_cost" json:"waterCost"`
	ElectricityUsage float64 `gorm:"column:electricity_usage" json:"electricityUsage"`
	ElectricityCost  float64 `gorm:"column:electricity_cost" json:"electricityCost"`
	TotalCost        float64 `gorm:"column:total_cost" json:"totalCost"`

	Paid   bool       `gorm:"default:false" json:"paid"`
	PaidAt *time.Time `gorm:"column:paid_at" json:"paidAt,omitempty"`

	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"booking,omitempty"`
	Room    Room    `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	User    User    `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
}
