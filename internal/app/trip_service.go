package app

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"tripplanner/internal/model"
)

var (
	ErrTripNotFound = errors.New("trip not found")
	ErrTripAccess   = errors.New("access denied")
)

// tripDateFormats are the accepted wire formats for start_date and end_date.
// The first one is also the format trips serialize back with.
var tripDateFormats = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// TripStore is the keyed trip record store behind TripService.
type TripStore interface {
	Create(trip *model.Trip) error
	GetByID(id uint) (*model.Trip, error)
	ListByUserID(userID uint) ([]model.Trip, error)
	Update(trip *model.Trip) error
	Delete(id uint) error
}

// TripListCache accelerates List; every answer must be reproducible from the
// store alone, so all cache calls are best-effort.
type TripListCache interface {
	GetList(ctx context.Context, userID uint) ([]model.Trip, bool, error)
	SetList(ctx context.Context, userID uint, trips []model.Trip) error
	Invalidate(ctx context.Context, userID uint) error
}

// ActivityPublisher enqueues audit events for the activity worker.
type ActivityPublisher interface {
	Publish(ctx context.Context, event model.ActivityEvent) error
}

type TripService struct {
	trips     TripStore
	cache     TripListCache
	publisher ActivityPublisher
	now       func() time.Time
}

type CreateTripInput struct {
	UserID      uint
	Name        string
	Destination string
	StartDate   string
	EndDate     string
	Description *string
	Budget      *string
}

// UpdateTripInput carries only the fields present in the request; nil means
// "leave unchanged".
type UpdateTripInput struct {
	UserID      uint
	TripID      uint
	Name        *string
	Destination *string
	StartDate   *string
	EndDate     *string
	Description *string
	Budget      *string
}

func NewTripService(trips TripStore, cache TripListCache, publisher ActivityPublisher) *TripService {
	return &TripService{
		trips:     trips,
		cache:     cache,
		publisher: publisher,
		now:       time.Now,
	}
}

// List returns the caller's trips ordered by start date descending.
func (s *TripService) List(ctx context.Context, userID uint) ([]model.Trip, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}

	if s.cache != nil {
		if cached, hit, err := s.cache.GetList(ctx, userID); err == nil && hit {
			return cached, nil
		}
	}

	trips, err := s.trips.ListByUserID(userID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetList(ctx, userID, trips)
	}
	return trips, nil
}

// Get distinguishes an absent trip (ErrTripNotFound) from one owned by a
// different user (ErrTripAccess): existence is visible to any authenticated
// caller, the content only to the owner.
func (s *TripService) Get(ctx context.Context, userID, tripID uint) (*model.Trip, error) {
	if userID == 0 || tripID == 0 {
		return nil, ErrInvalidInput
	}
	return s.getOwned(userID, tripID)
}

func (s *TripService) Create(ctx context.Context, input CreateTripInput) (*model.Trip, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}

	start, err := parseTripDate(input.StartDate)
	if err != nil {
		return nil, ErrInvalidInput
	}
	end, err := parseTripDate(input.EndDate)
	if err != nil {
		return nil, ErrInvalidInput
	}

	now := s.now()
	trip := &model.Trip{
		UserID:      input.UserID,
		Name:        input.Name,
		Destination: input.Destination,
		StartDate:   start,
		EndDate:     end,
		Description: input.Description,
		Budget:      input.Budget,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := validateTrip(trip); err != nil {
		return nil, err
	}

	if err := s.trips.Create(trip); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, input.UserID, trip.ID, model.ActionTripCreated)
	return trip, nil
}

// Update merges the provided fields into a copy of the stored record,
// re-validates the merged result and persists it. created_at is never
// touched; updated_at moves to the current instant.
func (s *TripService) Update(ctx context.Context, input UpdateTripInput) (*model.Trip, error) {
	if input.UserID == 0 || input.TripID == 0 {
		return nil, ErrInvalidInput
	}

	existing, err := s.getOwned(input.UserID, input.TripID)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if input.Name != nil {
		merged.Name = *input.Name
	}
	if input.Destination != nil {
		merged.Destination = *input.Destination
	}
	if input.StartDate != nil {
		start, err := parseTripDate(*input.StartDate)
		if err != nil {
			return nil, ErrInvalidInput
		}
		merged.StartDate = start
	}
	if input.EndDate != nil {
		end, err := parseTripDate(*input.EndDate)
		if err != nil {
			return nil, ErrInvalidInput
		}
		merged.EndDate = end
	}
	if input.Description != nil {
		merged.Description = input.Description
	}
	if input.Budget != nil {
		merged.Budget = input.Budget
	}
	if err := validateTrip(&merged); err != nil {
		return nil, err
	}

	merged.UpdatedAt = s.now()
	if err := s.trips.Update(&merged); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, input.UserID, merged.ID, model.ActionTripUpdated)
	return &merged, nil
}

// Delete removes the record; a repeated delete on the same id reports
// ErrTripNotFound.
func (s *TripService) Delete(ctx context.Context, userID, tripID uint) error {
	if userID == 0 || tripID == 0 {
		return ErrInvalidInput
	}

	if _, err := s.getOwned(userID, tripID); err != nil {
		return err
	}
	if err := s.trips.Delete(tripID); err != nil {
		return err
	}

	s.afterMutation(ctx, userID, tripID, model.ActionTripDeleted)
	return nil
}

func (s *TripService) getOwned(userID, tripID uint) (*model.Trip, error) {
	trip, err := s.trips.GetByID(tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}
	if trip.UserID != userID {
		return nil, ErrTripAccess
	}
	return trip, nil
}

func (s *TripService) afterMutation(ctx context.Context, userID, tripID uint, action string) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
	if s.publisher != nil {
		event := model.ActivityEvent{
			UserID:     userID,
			TripID:     tripID,
			Action:     action,
			OccurredAt: s.now(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.Printf("publish activity event failed: %v", err)
		}
	}
}

// validateTrip checks the merged record as a whole so a failed update never
// persists a half-applied one. No ordering between start and end date is
// enforced; an end before the start is accepted.
func validateTrip(trip *model.Trip) error {
	if strings.TrimSpace(trip.Name) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(trip.Destination) == "" {
		return ErrInvalidInput
	}
	if trip.StartDate.IsZero() || trip.EndDate.IsZero() {
		return ErrInvalidInput
	}
	if trip.Budget != nil {
		if _, err := strconv.ParseFloat(strings.TrimSpace(*trip.Budget), 64); err != nil {
			return ErrInvalidInput
		}
	}
	return nil
}

func parseTripDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrInvalidInput
	}
	var lastErr error
	for _, layout := range tripDateFormats {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// FormatTripDate renders a trip timestamp in the wire format.
func FormatTripDate(t time.Time) string {
	return t.Format(tripDateFormats[0])
}
