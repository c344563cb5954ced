package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lawnly/models"

	"github.com/go-redis/redis/v8"
)

// DraftKeyPrefix namespaces per-customer draft keys.
const DraftKeyPrefix = "bookingFormData:"

// DefaultDraftTTL is how long an abandoned draft survives.
const DefaultDraftTTL = 7 * 24 * time.Hour

// DraftRepository persists a customer's in-progress booking form so an
// interrupted session does not lose progress. Swappable so the wizard is
// testable without a live store.
type DraftRepository interface {
	Get(ctx context.Context, userID string) (*models.BookingForm, error)
	Save(ctx context.Context, userID string, form models.BookingForm) error
	Clear(ctx context.Context, userID string) error
}

// RedisDraftRepository stores drafts as JSON under a per-customer key.
type RedisDraftRepository struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisDraftRepository constructs a redis-backed draft repository.
func NewRedisDraftRepository(client *redis.Client) *RedisDraftRepository {
	return &RedisDraftRepository{Client: client, TTL: DefaultDraftTTL}
}

func (r *RedisDraftRepository) key(userID string) string {
	return DraftKeyPrefix + userID
}

// Get returns the saved draft, or nil when the customer has none.
func (r *RedisDraftRepository) Get(ctx context.Context, userID string) (*models.BookingForm, error) {
	data, err := r.Client.Get(ctx, r.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking draft: %w", err)
	}

	var form models.BookingForm
	if err := json.Unmarshal([]byte(data), &form); err != nil {
		// A corrupt draft is dropped rather than wedging the wizard.
		_ = r.Client.Del(ctx, r.key(userID)).Err()
		return nil, nil
	}
	return &form, nil
}

func (r *RedisDraftRepository) Save(ctx context.Context, userID string, form models.BookingForm) error {
	data, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	ttl := r.TTL
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	if err := r.Client.Set(ctx, r.key(userID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking draft: %w", err)
	}
	return nil
}

func (r *RedisDraftRepository) Clear(ctx context.Context, userID string) error {
	if err := r.Client.Del(ctx, r.key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear booking draft: %w", err)
	}
	return nil
}
