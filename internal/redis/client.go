package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

// SweepSummary is the cached result of the latest outdated-items sweep,
// kept so dashboards can read it without re-running the scan.
type SweepSummary struct {
	RestaurantID uint      `json:"restaurant_id"`
	OutdatedIDs  []uint    `json:"outdated_ids"`
	CheckedAt    time.Time `json:"checked_at"`
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Delivery-callback dedup. The provider webhook is at-least-once; the first
// caller to set the key wins and later redeliveries are skipped.
func (c *Client) MarkCallbackProcessed(notificationID uint, state string, ttl time.Duration) (bool, error) {
	ctx := context.Background()
	key := fmt.Sprintf("notification_cb:%d:%s", notificationID, state)
	ok, err := c.rdb.SetNX(ctx, key, time.Now().Unix(), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark callback processed: %w", err)
	}
	return ok, nil
}

// Sweep summary caching
func (c *Client) SetSweepSummary(summary *SweepSummary, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal sweep summary: %w", err)
	}

	key := fmt.Sprintf("sweep_summary:%d", summary.RestaurantID)
	return c.rdb.Set(ctx, key, jsonData, ttl).Err()
}

// GetSweepSummary returns nil when no sweep has been cached yet.
func (c *Client) GetSweepSummary(restaurantID uint) (*SweepSummary, error) {
	ctx := context.Background()
	key := fmt.Sprintf("sweep_summary:%d", restaurantID)
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sweep summary: %w", err)
	}

	var summary SweepSummary
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sweep summary: %w", err)
	}

	return &summary, nil
}

// Temporary data management
func (c *Client) SetTempData(key string, value interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal temp data: %w", err)
	}

	return c.rdb.Set(ctx, "temp:"+key, jsonData, ttl).Err()
}

func (c *Client) GetTempData(key string, dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "temp:"+key).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("temp data not found")
		}
		return fmt.Errorf("failed to get temp data: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
