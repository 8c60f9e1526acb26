package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smatech/auth-service/internal/core/domain"
)

const listingTTL = 5 * time.Minute

// ListingCache caches role-partition user listings in Redis.
// Key format: users:role:<ROLE>
//
// Entries go through the User JSON encoding, which never carries the
// password hash; cached users are for read endpoints only, not for
// credential checks.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListingCache creates a ListingCache wrapping the given Redis client.
func NewListingCache(client *redis.Client) *ListingCache {
	return &ListingCache{client: client, ttl: listingTTL}
}

// Get returns the cached listing for a role. A missing key is (nil, false, nil).
func (c *ListingCache) Get(ctx context.Context, role domain.Role) ([]*domain.User, bool, error) {
	raw, err := c.client.Get(ctx, c.key(role)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("listing cache get: %w", err)
	}

	var users []*domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, false, fmt.Errorf("listing cache decode: %w", err)
	}
	return users, true, nil
}

// Set stores the listing for a role, expiring after the cache TTL.
func (c *ListingCache) Set(ctx context.Context, role domain.Role, users []*domain.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("listing cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(role), raw, c.ttl).Err()
}

// Invalidate drops the cached listing for a role.
func (c *ListingCache) Invalidate(ctx context.Context, role domain.Role) error {
	return c.client.Del(ctx, c.key(role)).Err()
}

func (c *ListingCache) key(role domain.Role) string {
	return fmt.Sprintf("users:role:%s", role)
}
