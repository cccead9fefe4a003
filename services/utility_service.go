package services

import (
	"errors"
	"fmt"

	"dorm-backend/middleware"
	"dorm-backend/models"

	"gorm.io/gorm"
)

// UtilityService computes monthly water/electric bills. Billing has its own
// pay/verify cycle through PaymentService; nothing here touches rooms or
// bookings.
type UtilityService struct {
	DB *gorm.DB
}

func NewUtilityService(db *gorm.DB) *UtilityService {
	return &UtilityService{DB: db}
}

type CreateBillInput struct {
	RoomID           uint
	BookingID        uint
	UserID           uint
	Month            string // YYYY-MM
	WaterUsage       float64
	ElectricityUsage float64
}

// CreateBill creates the bill for (booking, month). Costs come from the
// room's rates at creation time.
func (s *UtilityService) CreateBill(in CreateBillInput) (*models.UtilityBill, error) {
	var room models.Room
	if err := s.DB.First(&room, in.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("load room %d: %w", in.RoomID, err)
	}

	var existing int64
	if err := s.DB.Model(&models.UtilityBill{}).
		Where("booking_id = ? AND month = ?", in.BookingID, in.Month).
		Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("check existing bill: %w", err)
	}
	if existing > 0 {
		return nil, ErrDuplicateMonth
	}

	bill := models.UtilityBill{
		BookingID:        in.BookingID,
		RoomID:           in.RoomID,
		UserID:           in.UserID,
		Month:            in.Month,
		WaterUsage:       in.WaterUsage,
		WaterCost:        in.WaterUsage * room.WaterRate,
		ElectricityUsage: in.ElectricityUsage,
		ElectricityCost:  in.ElectricityUsage * room.ElectricityRate,
		Paid:             false,
	}
	bill.TotalCost = bill.WaterCost + bill.ElectricityCost

	if err := s.DB.Create(&bill).Error; err != nil {
		return nil, fmt.Errorf("create bill: %w", err)
	}
	return &bill, nil
}

type EditBillInput struct {
	Month            *string
	WaterUsage       *float64
	ElectricityUsage *float64
}

// EditBill updates usage figures and recomputes costs with the room's
// *current* rates. If the room's rates changed since the bill was created,
// the edited bill reflects the new rates. Intentional, if surprising: this
// mirrors how the business actually corrects bills.
func (s *UtilityService) EditBill(billID uint, in EditBillInput) (*models.UtilityBill, error) {
	var bill models.UtilityBill
	if err := s.DB.First(&bill, billID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, fmt.Errorf("load bill %d: %w", billID, err)
	}

	var room models.Room
	if err := s.DB.First(&room, bill.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("load room %d: %w", bill.RoomID, err)
	}

	if in.Month != nil && *in.Month != bill.Month {
		var dup int64
		if err := s.DB.Model(&models.UtilityBill{}).
			Where("booking_id = ? AND month = ?", bill.BookingID, *in.Month).
			Count(&dup).Error; err != nil {
			return nil, fmt.Errorf("check existing bill: %w", err)
		}
		if dup > 0 {
			return nil, ErrDuplicateMonth
		}
		bill.Month = *in.Month
	}
	if in.WaterUsage != nil {
		bill.WaterUsage = *in.WaterUsage
		bill.WaterCost = *in.WaterUsage * room.WaterRate
	}
	if in.ElectricityUsage != nil {
		bill.ElectricityUsage = *in.ElectricityUsage
		bill.ElectricityCost = *in.ElectricityUsage * room.ElectricityRate
	}
	bill.TotalCost = bill.WaterCost + bill.ElectricityCost

	if err := s.DB.Save(&bill).Error; err != nil {
		return nil, fmt.Errorf("save bill: %w", err)
	}
	return &bill, nil
}

// DeleteBill removes an unpaid bill. Paid bills stay for the books.
func (s *UtilityService) DeleteBill(billID uint) error {
	var bill models.UtilityBill
	if err := s.DB.First(&bill, billID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBillNotFound
		}
		return fmt.Errorf("load bill %d: %w", billID, err)
	}
	if bill.Paid {
		return ErrBillAlreadyPaid
	}
	if err := s.DB.Delete(&bill).Error; err != nil {
		return fmt.Errorf("delete bill: %w", err)
	}
	return nil
}

// ListBills returns the actor's bills; admins see everything and may filter
// by user and month.
func (s *UtilityService) ListBills(actor middleware.Identity, userID uint, month string) ([]models.UtilityBill, error) {
	q := s.DB.Preload("Room").Preload("User").Order("month DESC")
	if !actor.IsAdmin() {
		q = q.Where("user_id = ?", actor.UserID)
	} else if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	if month != "" {
		q = q.Where("month = ?", month)
	}

	var list []models.UtilityBill
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	return list, nil
}
