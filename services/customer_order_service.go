package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"go-food-ordering/apperrors"
	"go-food-ordering/database"
	"go-food-ordering/helpers"
	"go-food-ordering/models"
	"go-food-ordering/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	OrderPlaced        = "Order Placed Successfully!"
	CheckoutIncomplete = "Please fill all details and ensure cart is not empty!"
)

type CheckoutInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type PlaceOrderResult struct {
	Order    models.Order `json:"order"`
	Message  string       `json:"message"`
	Redirect string       `json:"redirect"`
}

// OrderCard is one entry of a customer's order history.
type OrderCard struct {
	ID           string             `json:"id"`
	ShortID      string             `json:"shortId"`
	Status       models.Status      `json:"status"`
	Tone         string             `json:"tone"`
	Progress     *int               `json:"progress"`
	Items        []models.OrderItem `json:"items"`
	DisplayTotal string             `json:"displayTotal"`
	CreatedAt    *time.Time         `json:"createdAt"`
}

type MyOrders struct {
	Orders     []OrderCard     `json:"orders"`
	Total      int             `json:"total"`
	Pending    int             `json:"pending"`
	Spent      decimal.Decimal `json:"spent"`
	SpentLabel string          `json:"spentLabel"`
}

type CustomerOrderService struct {
	orders repository.OrderRepository
	cart   *CartService
	feed   Subscriber
	log    *zap.Logger
	now    func() time.Time
}

func NewCustomerOrderService(orders repository.OrderRepository, cart *CartService, feed Subscriber, log *zap.Logger) *CustomerOrderService {
	return &CustomerOrderService{orders: orders, cart: cart, feed: feed, log: log, now: time.Now}
}

// PlaceOrder snapshots the session cart into a Pending order for uid and
// empties the cart once the order is stored.
func (s *CustomerOrderService) PlaceOrder(ctx context.Context, uid, cartKey string, in CheckoutInput) (*PlaceOrderResult, error) {
	if uid == "" {
		return nil, apperrors.ErrNotAuthenticated
	}
	cart, err := s.cart.Load(ctx, cartKey)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	address := strings.TrimSpace(in.Address)
	if name == "" || phone == "" || address == "" || cart.IsEmpty() {
		return nil, apperrors.Validation(CheckoutIncomplete)
	}

	summary := cart.Summary(s.cart.DeliveryFee())
	now := s.now().UTC()
	order := models.Order{
		UserID:       uid,
		CustomerName: name,
		Phone:        phone,
		Address:      address,
		Items:        cart.OrderItems(),
		Subtotal:     summary.Subtotal.InexactFloat64(),
		DeliveryFee:  summary.DeliveryFee.InexactFloat64(),
		Total:        summary.Total.InexactFloat64(),
		Status:       models.StatusPending,
		CreatedAt:    &now,
	}
	if err := s.orders.Create(ctx, &order); err != nil {
		return nil, err
	}
	order.DisplayTotal = helpers.FormatAmount("Rs.", summary.Subtotal)

	if err := s.cart.Clear(ctx, cartKey); err != nil {
		s.log.Error("order stored but cart not cleared", zap.String("order", order.ID.Hex()), zap.Error(err))
	}
	return &PlaceOrderResult{Order: order, Message: OrderPlaced, Redirect: CustomerHome}, nil
}

func (s *CustomerOrderService) MyOrders(ctx context.Context, uid string) (*MyOrders, error) {
	if uid == "" {
		return nil, apperrors.ErrNotAuthenticated
	}
	orders, err := s.orders.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	view := BuildMyOrders(orders)
	return &view, nil
}

func (s *CustomerOrderService) WatchMyOrders(uid string, push func(*MyOrders, error)) func() {
	load := func(ctx context.Context) (*MyOrders, error) {
		return s.MyOrders(ctx, uid)
	}
	return watch(s.feed, load, push, database.OrderCollection)
}

// BuildMyOrders sorts newest first, with undated orders last, and totals the
// history. Anything not Delivered counts as pending.
func BuildMyOrders(orders []models.Order) MyOrders {
	sorted := make([]models.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return millis(sorted[i].CreatedAt) > millis(sorted[j].CreatedAt)
	})

	view := MyOrders{Orders: make([]OrderCard, 0, len(sorted)), Total: len(sorted), Spent: decimal.Zero}
	for _, o := range sorted {
		if !o.Status.IsDelivered() {
			view.Pending++
		}
		view.Spent = view.Spent.Add(helpers.ParseAmount(o.Amount()))

		card := OrderCard{
			ID:           o.ID.Hex(),
			ShortID:      o.ShortID(),
			Status:       o.DisplayStatus(),
			Tone:         o.DisplayStatus().Tone(),
			Items:        o.Items,
			DisplayTotal: o.DisplayTotal,
			CreatedAt:    o.CreatedAt,
		}
		if p, ok := o.DisplayStatus().Progress(); ok {
			card.Progress = &p
		}
		view.Orders = append(view.Orders, card)
	}
	view.SpentLabel = helpers.FormatAmount("LKR", view.Spent)
	return view
}

func millis(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.UnixMilli()
}
