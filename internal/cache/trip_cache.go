package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"tripplanner/internal/model"
)

// TripListCache keeps a short-lived copy of each user's owned trip list in
// redis. It is invalidated on every trip mutation, so a stale entry can only
// outlive a mutation by a failed DEL.
type TripListCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewTripListCache(client *redisv9.Client, ttl time.Duration) *TripListCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &TripListCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *TripListCache) GetList(ctx context.Context, userID uint) ([]model.Trip, bool, error) {
	raw, err := c.client.Get(ctx, c.listKey(userID)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get trip list failed: %w", err)
	}

	var trips []model.Trip
	if err := json.Unmarshal([]byte(raw), &trips); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached trip list failed: %w", err)
	}
	return trips, true, nil
}

func (c *TripListCache) SetList(ctx context.Context, userID uint, trips []model.Trip) error {
	payload, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("marshal trip list cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.listKey(userID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set trip list failed: %w", err)
	}
	return nil
}

func (c *TripListCache) Invalidate(ctx context.Context, userID uint) error {
	if err := c.client.Del(ctx, c.listKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis invalidate trip list failed: %w", err)
	}
	return nil
}

func (c *TripListCache) listKey(userID uint) string {
	return fmt.Sprintf("trips:user:%d", userID)
}
