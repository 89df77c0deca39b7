package repository

import (
	"context"
	"errors"

	"go-food-ordering/apperrors"
	"go-food-ordering/database"
	"go-food-ordering/models"
	"go-food-ordering/realtime"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type userRepository struct {
	base
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database, pub realtime.Publisher) UserRepository {
	return &userRepository{
		base: newBase(pub, database.UserCollection),
		coll: database.OpenCollection(db, database.UserCollection),
	}
}

func (r *userRepository) Create(ctx context.Context, user *models.UserProfile) error {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return apperrors.Write("User item was not created", err)
	}
	r.changed()
	return nil
}

func (r *userRepository) Get(ctx context.Context, uid string) (*models.UserProfile, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	var raw bson.M
	err := r.coll.FindOne(ctx, bson.M{"_id": uid}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("User not found.")
	}
	if err != nil {
		return nil, apperrors.Internal("Error loading profile.", err)
	}
	user := normalizeUser(raw)
	return &user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, uid, name, phone string) error {
	return r.set(ctx, uid, bson.D{{Key: "name", Value: name}, {Key: "phone", Value: phone}}, "Error updating profile.")
}

func (r *userRepository) UpdateAddress(ctx context.Context, uid, address string) error {
	return r.set(ctx, uid, bson.D{{Key: "address", Value: address}}, "Error saving address.")
}

func (r *userRepository) set(ctx context.Context, uid string, fields bson.D, failMsg string) error {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": uid}, bson.D{{Key: "$set", Value: fields}})
	if err != nil {
		return apperrors.Write(failMsg, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFound("User not found.")
	}
	r.changed()
	return nil
}
