package services

import (
	"fmt"
	"time"

	"dorm-backend/models"

	"gorm.io/gorm"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	RoomsByStatus   map[string]int64 `json:"roomsByStatus"`
	ActiveBookings  int64            `json:"activeBookings"`
	PendingPayments int64            `json:"pendingPayments"`
	UnpaidBills     int64            `json:"unpaidBills"`
	MonthlyRevenue  float64          `json:"monthlyRevenue"`
}

// Dashboard aggregates the counters the admin landing page shows. Revenue is
// the sum of payments verified in the current calendar month.
func (s *StatsService) Dashboard(now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{RoomsByStatus: map[string]int64{}}

	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	if err := s.DB.Model(&models.Room{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count rooms: %w", err)
	}
	for _, r := range rows {
		stats.RoomsByStatus[r.Status] = r.Count
	}

	if err := s.DB.Model(&models.Booking{}).
		Where("status IN ?", models.ActiveBookingStatuses).
		Count(&stats.ActiveBookings).Error; err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	if err := s.DB.Model(&models.Payment{}).
		Where("status = ?", models.PaymentStatusPending).
		Count(&stats.PendingPayments).Error; err != nil {
		return nil, fmt.Errorf("count payments: %w", err)
	}

	if err := s.DB.Model(&models.UtilityBill{}).
		Where("paid = ?", false).
		Count(&stats.UnpaidBills).Error; err != nil {
		return nil, fmt.Errorf("count bills: %w", err)
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var revenue *float64
	if err := s.DB.Model(&models.Payment{}).
		Select("SUM(amount)").
		Where("status = ? AND verified_at >= ?", models.PaymentStatusVerified, monthStart).
		Scan(&revenue).Error; err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}
	if revenue != nil {
		stats.MonthlyRevenue = *revenue
	}

	return stats, nil
}
