package model

import "time"

// ActivityEvent is an audit row written asynchronously by the activity
// worker whenever a trip is created, updated or deleted.
type ActivityEvent struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	TripID     uint      `gorm:"not null;index" json:"trip_id"`
	Action     string    `gorm:"size:32;not null" json:"action"`
	OccurredAt time.Time `gorm:"not null" json:"occurred_at"`
}

const (
	ActionTripCreated = "trip.created"
	ActionTripUpdated = "trip.updated"
	ActionTripDeleted = "trip.deleted"
)
