package repository

import (
	"context"
	"time"

	"go-food-ordering/models"
)

type FoodRepository interface {
	Create(ctx context.Context, food *models.Food) error
	Delete(ctx context.Context, id string) error
	// List returns foods newest first.
	List(ctx context.Context) ([]models.Food, error)
	Count(ctx context.Context) (int64, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Category, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	Get(ctx context.Context, id string) (*models.Order, error)
	// List returns every order newest first.
	List(ctx context.Context) ([]models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.Status) error
}

type UserRepository interface {
	Create(ctx context.Context, user *models.UserProfile) error
	Get(ctx context.Context, uid string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, uid, name, phone string) error
	UpdateAddress(ctx context.Context, uid, address string) error
}

type CredentialRepository interface {
	Create(ctx context.Context, cred *models.Credential) error
	FindByEmail(ctx context.Context, email string) (*models.Credential, error)
}

type SessionRepository interface {
	Create(ctx context.Context, sessionID, uid string, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Delete(ctx context.Context, sessionID string) error
}

type CartRepository interface {
	Get(ctx context.Context, key string) (models.Cart, error)
	Save(ctx context.Context, key string, cart *models.Cart) error
	Delete(ctx context.Context, key string) error
}
