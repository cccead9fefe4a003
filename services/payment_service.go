package services

import (
	"errors"
	"fmt"
	"time"

	"dorm-backend/middleware"
	"dorm-backend/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentService handles slip submission and admin verification. Verification
// is the one place cross-entity consistency (payment + booking/bill + room)
// is enforced, and it runs as a single transaction.
type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

// SubmitPaymentInput carries one slip submission. Exactly one of BookingID /
// UtilityBillID must be set. ClaimData is whatever the slip reader extracted;
// it is stored as-is and never used for the amount.
type SubmitPaymentInput struct {
	BookingID     *uint
	UtilityBillID *uint
	SlipImage     string
	ClaimData     datatypes.JSON
}

// SubmitPayment records a pending payment against a booking or a utility
// bill. The amount is copied from the target record. Multiple submissions
// against one target are allowed; verification resolves them first come
// first served.
func (s *PaymentService) SubmitPayment(actor middleware.Identity, in SubmitPaymentInput) (*models.Payment, error) {
	if (in.BookingID == nil) == (in.UtilityBillID == nil) {
		return nil, ErrInvalidTarget
	}

	payment := models.Payment{
		ReferenceCode: uuid.NewString(),
		UserID:        actor.UserID,
		BookingID:     in.BookingID,
		UtilityBillID: in.UtilityBillID,
		SlipImage:     in.SlipImage,
		ClaimData:     in.ClaimData,
		Status:        models.PaymentStatusPending,
	}

	if in.BookingID != nil {
		var booking models.Booking
		if err := s.DB.First(&booking, *in.BookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, fmt.Errorf("load booking %d: %w", *in.BookingID, err)
		}
		if !actor.IsAdmin() && booking.UserID != actor.UserID {
			return nil, ErrForbidden
		}
		payment.Amount = booking.TotalAmount
	} else {
		var bill models.UtilityBill
		if err := s.DB.First(&bill, *in.UtilityBillID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBillNotFound
			}
			return nil, fmt.Errorf("load bill %d: %w", *in.UtilityBillID, err)
		}
		if !actor.IsAdmin() && bill.UserID != actor.UserID {
			return nil, ErrForbidden
		}
		payment.Amount = bill.TotalCost
	}

	if err := s.DB.Create(&payment).Error; err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	return &payment, nil
}

// VerifyPayment resolves a pending payment. The status flip is a conditional
// update on status='pending': losing the race (or re-verifying a resolved
// payment) yields ErrPaymentResolved and applies no side effects.
//
// verified + booking target  -> depositPaid, booking confirmed, room occupied
// rejected + booking target  -> booking cancelled, room available again
// verified + bill target     -> bill paid, paidAt stamped
// rejected + bill target     -> no side effect (non-payment does not evict)
//
// Booking side effects only apply while the booking is still pending; once
// some slip resolved it, duplicates can only be rejected.
func (s *PaymentService) VerifyPayment(adminUserID uint, paymentID uint, decision string, notes string) (*models.Payment, error) {
	if decision != models.PaymentStatusVerified && decision != models.PaymentStatusRejected {
		return nil, ErrInvalidTransition
	}

	var payment models.Payment

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&payment, paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return fmt.Errorf("load payment %d: %w", paymentID, err)
		}

		now := time.Now().UTC()
		res := tx.Model(&models.Payment{}).
			Where("id = ? AND status = ?", paymentID, models.PaymentStatusPending).
			Updates(map[string]interface{}{
				"status":      decision,
				"verified_by": adminUserID,
				"verified_at": now,
				"notes":       notes,
			})
		if res.Error != nil {
			return fmt.Errorf("resolve payment: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrPaymentResolved
		}

		switch {
		case payment.BookingID != nil:
			return s.applyBookingOutcome(tx, *payment.BookingID, decision)
		case payment.UtilityBillID != nil:
			if decision == models.PaymentStatusVerified {
				return tx.Model(&models.UtilityBill{}).
					Where("id = ?", *payment.UtilityBillID).
					Updates(map[string]interface{}{"paid": true, "paid_at": now}).Error
			}
			return nil
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.First(&payment, paymentID).Error; err != nil {
		return nil, fmt.Errorf("reload payment: %w", err)
	}
	return &payment, nil
}

func (s *PaymentService) applyBookingOutcome(tx *gorm.DB, bookingID uint, decision string) error {
	var booking models.Booking
	if err := tx.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("load booking %d: %w", bookingID, err)
	}

	// Only a pending booking takes side effects. A leftover duplicate slip
	// for an already-resolved booking may still be rejected (bookkeeping
	// only), but verifying one would resurrect a cancelled booking or
	// double-claim the room, so that rolls back.
	if booking.Status != models.BookingStatusPending {
		if decision == models.PaymentStatusVerified {
			return ErrInvalidTransition
		}
		return nil
	}

	if decision == models.PaymentStatusVerified {
		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"deposit_paid": true,
			"status":       models.BookingStatusConfirmed,
		}).Error; err != nil {
			return fmt.Errorf("confirm booking: %w", err)
		}
		return occupyRoom(tx, booking.RoomID)
	}

	// Rejected deposit slip voids the reservation and frees the room.
	if err := tx.Model(&booking).Update("status", models.BookingStatusCancelled).Error; err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	return releaseRoom(tx, booking.RoomID)
}

// GetPayment returns one payment; regular users only see their own.
func (s *PaymentService) GetPayment(actor middleware.Identity, paymentID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.Preload("Booking").Preload("UtilityBill").First(&payment, paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("load payment %d: %w", paymentID, err)
	}
	if !actor.IsAdmin() && payment.UserID != actor.UserID {
		return nil, ErrForbidden
	}
	return &payment, nil
}

// ListPayments returns the actor's payments (all of them for admins),
// optionally filtered by status.
func (s *PaymentService) ListPayments(actor middleware.Identity, status string) ([]models.Payment, error) {
	q := s.DB.Preload("User").Preload("Booking").Preload("UtilityBill").Order("created_at DESC")
	if !actor.IsAdmin() {
		q = q.Where("user_id = ?", actor.UserID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var list []models.Payment
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return list, nil
}
