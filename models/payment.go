package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusVerified = "verified"
	PaymentStatusRejected = "rejected"
)

// Payment records one slip submission. Exactly one of BookingID or
// UtilityBillID is set. Amount is always copied from the referenced record,
// never trusted from the submitter.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;uniqueIndex;size:64" json:"referenceCode"`

	UserID        uint  `gorm:"index;column:user_id" json:"userId"`
	BookingID     *uint `gorm:"index;column:booking_id" json:"bookingId,omitempty"`
	UtilityBillID *uint `gorm:"index;column:utility_bill_id" json:"utilityBillId,omitempty"`

	Amount    float64 `json:"amount"`
	SlipImage string  `gorm:"column:slip_image;size:255" json:"slipImage"`

	// Best-effort OCR/QR extraction from the slip. Hints only.
	ClaimData datatypes.JSON `gorm:"column:claim_data" json:"claimData,omitempty"`

	Status     string     `gorm:"size:20;default:pending;index" json:"status"`
	VerifiedBy *uint      `gorm:"column:verified_by" json:"verifiedBy,omitempty"`
	VerifiedAt *time.Time `gorm:"column:verified_at" json:"verifiedAt,omitempty"`
	Notes      string     `gorm:"type:text" json:"notes,omitempty"`

	User        User         `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Booking     *Booking     `gorm:"foreignKey:BookingID;references:ID" json:"booking,omitempty"`
	UtilityBill *UtilityBill `gorm:"foreignKey:UtilityBillID;references:ID" json:"utilityBill,omitempty"`
}

// Resolved reports whether the payment reached a terminal status.
func (p *Payment) Resolved() bool {
	return p.Status != PaymentStatusPending
}
