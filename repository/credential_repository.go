package repository

import (
	"context"
	"errors"
	"strings"

	"go-food-ordering/apperrors"
	"go-food-ordering/database"
	"go-food-ordering/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const emailInUse = "The email address is already in use by another account."

type credentialRepository struct {
	base
	coll *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) CredentialRepository {
	return &credentialRepository{
		base: newBase(nil, database.CredentialCollection),
		coll: database.OpenCollection(db, database.CredentialCollection),
	}
}

func (r *credentialRepository) Create(ctx context.Context, cred *models.Credential) error {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	cred.Email = normalizeEmail(cred.Email)
	count, err := r.coll.CountDocuments(ctx, bson.M{"email": cred.Email})
	if err != nil {
		return apperrors.Internal("error occured while checking for the email", err)
	}
	if count > 0 {
		return apperrors.Auth(emailInUse, nil)
	}

	if cred.ID.IsZero() {
		cred.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, cred); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Auth(emailInUse, err)
		}
		return apperrors.Write("User item was not created", err)
	}
	return nil
}

func (r *credentialRepository) FindByEmail(ctx context.Context, email string) (*models.Credential, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	var cred models.Credential
	err := r.coll.FindOne(ctx, bson.M{"email": normalizeEmail(email)}).Decode(&cred)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("user not found")
	}
	if err != nil {
		return nil, apperrors.Internal("error occured while looking up the email", err)
	}
	return &cred, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
