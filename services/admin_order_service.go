package services

import (
	"context"
	"strings"

	"go-food-ordering/apperrors"
	"go-food-ordering/database"
	"go-food-ordering/helpers"
	"go-food-ordering/models"
	"go-food-ordering/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const StatusUpdateFailed = "Failed to update status."

type StatusOption struct {
	Value    models.Status `json:"value"`
	Selected bool          `json:"selected"`
}

// OrderRow is one line of the admin order table.
type OrderRow struct {
	ID           string         `json:"id"`
	Ref          string         `json:"ref"`
	CustomerName string         `json:"customerName"`
	ItemCount    int            `json:"itemCount"`
	DisplayTotal string         `json:"displayTotal"`
	Status       models.Status  `json:"status"`
	Tone         string         `json:"tone"`
	Options      []StatusOption `json:"options"`
}

type DashboardStats struct {
	TotalFoods    int64           `json:"totalFoods"`
	TotalOrders   int             `json:"totalOrders"`
	PendingOrders int             `json:"pendingOrders"`
	Revenue       decimal.Decimal `json:"revenue"`
	RevenueLabel  string          `json:"revenueLabel"`
}

type AdminOrderService struct {
	orders repository.OrderRepository
	foods  repository.FoodRepository
	feed   Subscriber
	log    *zap.Logger
}

func NewAdminOrderService(orders repository.OrderRepository, foods repository.FoodRepository, feed Subscriber, log *zap.Logger) *AdminOrderService {
	return &AdminOrderService{orders: orders, foods: foods, feed: feed, log: log}
}

// ListOrders returns every order newest first with a status selector
// pre-selecting the current value.
func (s *AdminOrderService) ListOrders(ctx context.Context) ([]OrderRow, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]OrderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, orderRow(o))
	}
	return rows, nil
}

func orderRow(o models.Order) OrderRow {
	name := o.CustomerName
	if name == "" {
		name = "Guest"
	}
	status := o.DisplayStatus()
	options := make([]StatusOption, 0, len(models.Statuses))
	for _, st := range models.Statuses {
		options = append(options, StatusOption{Value: st, Selected: st == status})
	}
	return OrderRow{
		ID:           o.ID.Hex(),
		Ref:          o.AdminRef(),
		CustomerName: name,
		ItemCount:    o.ItemCount(),
		DisplayTotal: o.DisplayTotal,
		Status:       status,
		Tone:         status.Tone(),
		Options:      options,
	}
}

// UpdateStatus writes any of the canonical statuses, with no transition
// rules, and returns the reloaded table.
func (s *AdminOrderService) UpdateStatus(ctx context.Context, id, status string) ([]OrderRow, error) {
	st, ok := models.ParseStatus(status)
	if !ok {
		return nil, apperrors.Validation("Unknown status: " + strings.TrimSpace(status))
	}
	if err := s.orders.UpdateStatus(ctx, id, st); err != nil {
		s.log.Error("status update failed", zap.String("order", id), zap.Error(err))
		if apperrors.KindOf(err) == apperrors.KindWrite {
			return nil, apperrors.Write(StatusUpdateFailed, err)
		}
		return nil, err
	}
	return s.ListOrders(ctx)
}

func (s *AdminOrderService) ViewOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.orders.Get(ctx, id)
}

func (s *AdminOrderService) Aggregates(ctx context.Context) (*DashboardStats, error) {
	foods, err := s.foods.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(orders)
	stats.TotalFoods = foods
	return &stats, nil
}

func (s *AdminOrderService) WatchAggregates(push func(*DashboardStats, error)) func() {
	return watch(s.feed, s.Aggregates, push, database.FoodCollection, database.OrderCollection)
}

// ComputeStats counts pending orders ignoring case and sums revenue from the
// normalised order amount.
func ComputeStats(orders []models.Order) DashboardStats {
	stats := DashboardStats{TotalOrders: len(orders), Revenue: decimal.Zero}
	for _, o := range orders {
		if o.Status.IsPending() {
			stats.PendingOrders++
		}
		stats.Revenue = stats.Revenue.Add(helpers.ParseAmount(o.Amount()))
	}
	stats.RevenueLabel = helpers.FormatAmount("Rs.", stats.Revenue)
	return stats
}
