package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/arcuspath/backend/model"
)

type VouchRepository interface {
	Create(ctx context.Context, v *model.Vouch) error
	FindByProviderAndUser(ctx context.Context, providerID, userID string) (*model.Vouch, error)
	CountActiveByProvider(ctx context.Context, providerID string) (int, error)
	Deactivate(ctx context.Context, id string) error
}

type mongoVouchRepo struct {
	col *mongo.Collection
}

func NewMongoVouchRepo(db *mongo.Database) VouchRepository {
	return &mongoVouchRepo{col: db.Collection("vouches")}
}

func (r *mongoVouchRepo) Create(ctx context.Context, v *model.Vouch) error {
	_, err := r.col.InsertOne(ctx, v)
	return err
}

func (r *mongoVouchRepo) FindByProviderAndUser(ctx context.Context, providerID, userID string) (*model.Vouch, error) {
	var v model.Vouch
	err := r.col.FindOne(ctx, bson.M{"provider_id": providerID, "user_id": userID}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *mongoVouchRepo) CountActiveByProvider(ctx context.Context, providerID string) (int, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"provider_id": providerID, "active": true})
	return int(n), err
}

func (r *mongoVouchRepo) Deactivate(ctx context.Context, id string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"active": false}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
