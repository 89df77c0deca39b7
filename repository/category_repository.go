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

type categoryRepository struct {
	base
	coll *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database, pub realtime.Publisher) CategoryRepository {
	return &categoryRepository{
		base: newBase(pub, database.CategoryCollection),
		coll: database.OpenCollection(db, database.CategoryCollection),
	}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, category); err != nil {
		return apperrors.Write("Error adding category", err)
	}
	r.changed()
	return nil
}

// Delete removes only the category document. Foods naming it are untouched.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id, "Category")
	if err != nil {
		return err
	}
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperrors.Write("Category was not deleted", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NotFound("Category not found.")
	}
	r.changed()
	return nil
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.Internal("error occurred while listing categories", err)
	}
	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, apperrors.Internal("error occurred while decoding categories", err)
	}
	return categories, nil
}
