package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tripplanner/internal/model"
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) Create(trip *model.Trip) error {
	if err := r.db.Create(trip).Error; err != nil {
		return fmt.Errorf("create trip failed: %w", err)
	}
	return nil
}

// GetByID is deliberately not owner-scoped: the service distinguishes a trip
// that does not exist from one owned by another user.
func (r *TripRepository) GetByID(id uint) (*model.Trip, error) {
	var trip model.Trip
	if err := r.db.First(&trip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query trip by id failed: %w", err)
	}
	return &trip, nil
}

// ListByUserID returns the user's trips newest start date first; the id
// tie-break keeps insertion order stable for equal dates.
func (r *TripRepository) ListByUserID(userID uint) ([]model.Trip, error) {
	var trips []model.Trip
	if err := r.db.Where("user_id = ?", userID).Order("start_date DESC, id ASC").Find(&trips).Error; err != nil {
		return nil, fmt.Errorf("list trips failed: %w", err)
	}
	return trips, nil
}

func (r *TripRepository) Update(trip *model.Trip) error {
	if err := r.db.Save(trip).Error; err != nil {
		return fmt.Errorf("update trip failed: %w", err)
	}
	return nil
}

func (r *TripRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Trip{}, id).Error; err != nil {
		return fmt.Errorf("delete trip failed: %w", err)
	}
	return nil
}
