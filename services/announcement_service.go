package services

import (
	"errors"
	"fmt"

	"dorm-backend/models"

	"gorm.io/gorm"
)

var ErrAnnouncementNotFound = errors.New("announcement_not_found")

type AnnouncementService struct {
	DB *gorm.DB
}

func NewAnnouncementService(db *gorm.DB) *AnnouncementService {
	return &AnnouncementService{DB: db}
}

func (s *AnnouncementService) List(activeOnly bool) ([]models.Announcement, error) {
	q := s.DB.Preload("Publisher").Order("created_at DESC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var list []models.Announcement
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return list, nil
}

func (s *AnnouncementService) Create(a *models.Announcement) error {
	if a.Priority == "" {
		a.Priority = models.AnnouncementPriorityMedium
	}
	if err := s.DB.Create(a).Error; err != nil {
		return fmt.Errorf("create announcement: %w", err)
	}
	return nil
}

func (s *AnnouncementService) Update(id uint, updates map[string]interface{}) (*models.Announcement, error) {
	delete(updates, "id")
	delete(updates, "published_by")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")

	res := s.DB.Model(&models.Announcement{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("update announcement %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrAnnouncementNotFound
	}

	var a models.Announcement
	if err := s.DB.First(&a, id).Error; err != nil {
		return nil, fmt.Errorf("reload announcement: %w", err)
	}
	return &a, nil
}

func (s *AnnouncementService) Delete(id uint) error {
	res := s.DB.Delete(&models.Announcement{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete announcement %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrAnnouncementNotFound
	}
	return nil
}
