package services

import "errors"

// Sentinel errors surfaced to controllers. Controllers map them onto HTTP
// statuses; services never touch the response writer.
var (
	ErrRoomNotFound    = errors.New("room_not_found")
	ErrBookingNotFound = errors.New("booking_not_found")
	ErrPaymentNotFound = errors.New("payment_not_found")
	ErrBillNotFound    = errors.New("bill_not_found")
	ErrUserNotFound    = errors.New("user_not_found")

	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid_transition")

	ErrRoomUnavailable        = errors.New("room_unavailable")
	ErrDuplicateActiveBooking = errors.New("duplicate_active_booking")
	ErrDuplicateRoomNumber    = errors.New("duplicate_room_number")
	ErrRoomHasActiveBooking   = errors.New("room_has_active_booking")
	ErrDuplicateMonth         = errors.New("duplicate_month_bill")
	ErrPaymentResolved        = errors.New("payment_already_resolved")
	ErrBillAlreadyPaid        = errors.New("bill_already_paid")

	ErrInvalidTarget = errors.New("invalid_payment_target")
)
