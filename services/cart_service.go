package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-food-ordering/apperrors"
	"go-food-ordering/models"
	"go-food-ordering/repository"

	"github.com/shopspring/decimal"
)

const ToastDuration = 3 * time.Second

type Toast struct {
	Message    string `json:"message"`
	DurationMs int64  `json:"durationMs"`
}

type CartView struct {
	Items   []models.CartEntry `json:"items"`
	Summary models.CartSummary `json:"summary"`
}

type AddToCartResult struct {
	CartView
	Entry models.CartEntry `json:"entry"`
	Toast Toast            `json:"toast"`
}

type CartItemInput struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// CartService keeps one cart per browser session. Updates are
// read-modify-write with no locking across requests.
type CartService struct {
	carts       repository.CartRepository
	deliveryFee decimal.Decimal
	now         func() time.Time
}

func NewCartService(carts repository.CartRepository, deliveryFee int64) *CartService {
	return &CartService{carts: carts, deliveryFee: decimal.NewFromInt(deliveryFee), now: time.Now}
}

func (s *CartService) DeliveryFee() decimal.Decimal {
	return s.deliveryFee
}

func (s *CartService) Load(ctx context.Context, key string) (models.Cart, error) {
	return s.carts.Get(ctx, key)
}

func (s *CartService) Get(ctx context.Context, key string) (*CartView, error) {
	cart, err := s.carts.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return s.view(cart), nil
}

func (s *CartService) Add(ctx context.Context, key string, in CartItemInput) (*AddToCartResult, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.Validation("Item name is required.")
	}
	cart, err := s.carts.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	entry := cart.Add(name, in.Price, in.Image)
	if err := s.save(ctx, key, &cart); err != nil {
		return nil, err
	}
	return &AddToCartResult{
		CartView: *s.view(cart),
		Entry:    entry,
		Toast:    Toast{Message: name + " added to cart!", DurationMs: ToastDuration.Milliseconds()},
	}, nil
}

func (s *CartService) ChangeQuantity(ctx context.Context, key string, index, delta int) (*CartView, error) {
	return s.update(ctx, key, func(c *models.Cart) error {
		return c.ChangeQuantity(index, delta)
	})
}

func (s *CartService) Remove(ctx context.Context, key string, index int) (*CartView, error) {
	return s.update(ctx, key, func(c *models.Cart) error {
		return c.Remove(index)
	})
}

func (s *CartService) Summary(ctx context.Context, key string) (models.CartSummary, error) {
	cart, err := s.carts.Get(ctx, key)
	if err != nil {
		return models.CartSummary{}, err
	}
	return cart.Summary(s.deliveryFee), nil
}

// Clear drops the session cart after an order is placed.
func (s *CartService) Clear(ctx context.Context, key string) error {
	return s.carts.Delete(ctx, key)
}

func (s *CartService) update(ctx context.Context, key string, fn func(*models.Cart) error) (*CartView, error) {
	cart, err := s.carts.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := fn(&cart); err != nil {
		if errors.Is(err, models.ErrCartIndex) {
			return nil, apperrors.NotFound("Cart item not found.")
		}
		return nil, err
	}
	if err := s.save(ctx, key, &cart); err != nil {
		return nil, err
	}
	return s.view(cart), nil
}

func (s *CartService) save(ctx context.Context, key string, cart *models.Cart) error {
	cart.UpdatedAt = s.now().UTC()
	return s.carts.Save(ctx, key, cart)
}

func (s *CartService) view(cart models.Cart) *CartView {
	items := cart.Entries
	if items == nil {
		items = []models.CartEntry{}
	}
	return &CartView{Items: items, Summary: cart.Summary(s.deliveryFee)}
}
