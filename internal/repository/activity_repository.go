package repository

import (
	"fmt"

	"gorm.io/gorm"

	"tripplanner/internal/model"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(event *model.ActivityEvent) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("create activity event failed: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListByUserID(userID uint, limit int) ([]model.ActivityEvent, error) {
	if limit <= 0 {
		limit = 100
	}
	var events []model.ActivityEvent
	if err := r.db.Where("user_id = ?", userID).Order("occurred_at DESC").Limit(limit).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list activity events failed: %w", err)
	}
	return events, nil
}
