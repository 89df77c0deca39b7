package repository

import (
	"context"

	"go-food-ordering/apperrors"
	"go-food-ordering/database"
	"go-food-ordering/models"
	"go-food-ordering/realtime"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type foodRepository struct {
	base
	coll *mongo.Collection
}

func NewFoodRepository(db *mongo.Database, pub realtime.Publisher) FoodRepository {
	return &foodRepository{
		base: newBase(pub, database.FoodCollection),
		coll: database.OpenCollection(db, database.FoodCollection),
	}
}

func (r *foodRepository) Create(ctx context.Context, food *models.Food) error {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	if food.ID.IsZero() {
		food.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, food); err != nil {
		return apperrors.Write("Food item was not created", err)
	}
	r.changed()
	return nil
}

func (r *foodRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id, "Food")
	if err != nil {
		return err
	}
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperrors.Write("Food item was not deleted", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NotFound("Food not found.")
	}
	r.changed()
	return nil
}

func (r *foodRepository) List(ctx context.Context) ([]models.Food, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.Internal("error occurred while listing the food items", err)
	}
	foods := []models.Food{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, apperrors.Internal("error occurred while decoding the food items", err)
	}
	return foods, nil
}

func (r *foodRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, apperrors.Internal("error occurred while counting the food items", err)
	}
	return n, nil
}
