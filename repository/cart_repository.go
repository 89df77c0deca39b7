package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-food-ordering/apperrors"
	"go-food-ordering/models"

	"github.com/redis/go-redis/v9"
)

// cartRepository keeps one JSON blob per cart session, expiring after ttl of
// inactivity.
type cartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCartRepository(client *redis.Client, ttl time.Duration) CartRepository {
	return &cartRepository{client: client, ttl: ttl}
}

func (r *cartRepository) getKey(key string) string {
	return fmt.Sprintf("cart:session:%s", key)
}

func (r *cartRepository) Get(ctx context.Context, key string) (models.Cart, error) {
	data, err := r.client.Get(ctx, r.getKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return models.Cart{Entries: []models.CartEntry{}}, nil
	}
	if err != nil {
		return models.Cart{}, apperrors.Internal("failed to get cart", err)
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		// a corrupt cart is treated as empty, like a cleared session
		return models.Cart{Entries: []models.CartEntry{}}, nil
	}
	if cart.Entries == nil {
		cart.Entries = []models.CartEntry{}
	}
	return cart, nil
}

func (r *cartRepository) Save(ctx context.Context, key string, cart *models.Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(cart)
	if err != nil {
		return apperrors.Internal("failed to encode cart", err)
	}
	if err := r.client.Set(ctx, r.getKey(key), data, r.ttl).Err(); err != nil {
		return apperrors.Write("failed to save cart", err)
	}
	return nil
}

func (r *cartRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.getKey(key)).Err(); err != nil {
		return apperrors.Write("failed to clear cart", err)
	}
	return nil
}
