package repository

import (
	"context"
	"errors"

	"go-food-ordering/apperrors"
	"go-food-ordering/database"
	"go-food-ordering/models"
	"go-food-ordering/realtime"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type orderRepository struct {
	base
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database, pub realtime.Publisher) OrderRepository {
	return &orderRepository{
		base: newBase(pub, database.OrderCollection),
		coll: database.OpenCollection(db, database.OrderCollection),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return apperrors.Write("order was not created", err)
	}
	r.changed()
	return nil
}

func (r *orderRepository) Get(ctx context.Context, id string) (*models.Order, error) {
	oid, err := objectID(id, "Order")
	if err != nil {
		return nil, err
	}
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	var raw bson.M
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("Order not found.")
	}
	if err != nil {
		return nil, apperrors.Internal("Error loading details.", err)
	}
	order := normalizeOrder(raw)
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{}, opts)
}

// ListByUser filters on userId only; callers sort.
func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// UpdateStatus writes status whatever the current value is.
func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	oid, err := objectID(id, "Order")
	if err != nil {
		return err
	}
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status}}}},
	)
	if err != nil {
		return apperrors.Write("Failed to update status.", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFound("Order not found.")
	}
	r.changed()
	return nil
}

func (r *orderRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Order, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, apperrors.Internal("error occurred while listing orders", err)
	}
	var raws []bson.M
	if err := cursor.All(ctx, &raws); err != nil {
		return nil, apperrors.Internal("error occurred while decoding orders", err)
	}
	orders := make([]models.Order, 0, len(raws))
	for _, raw := range raws {
		orders = append(orders, normalizeOrder(raw))
	}
	return orders, nil
}
