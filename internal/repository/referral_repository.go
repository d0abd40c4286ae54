package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/arcuspath/backend/model"
)

type ReferralRepository interface {
	CreateCode(ctx context.Context, c *model.ReferralCode) error
	FindCodeByOwner(ctx context.Context, ownerID string) (*model.ReferralCode, error)
	FindCode(ctx context.Context, code string) (*model.ReferralCode, error)
	RecordUse(ctx context.Context, u *model.ReferralUse) error
	FindUseByReferee(ctx context.Context, refereeID string) (*model.ReferralUse, error)
	StatsForCode(ctx context.Context, code string) (total, converted int, err error)
}

type mongoReferralRepo struct {
	codes *mongo.Collection
	uses  *mongo.Collection
}

func NewMongoReferralRepo(db *mongo.Database) ReferralRepository {
	return &mongoReferralRepo{
		codes: db.Collection("referral_codes"),
		uses:  db.Collection("referral_uses"),
	}
}

func (r *mongoReferralRepo) CreateCode(ctx context.Context, c *model.ReferralCode) error {
	_, err := r.codes.InsertOne(ctx, c)
	return err
}

func (r *mongoReferralRepo) FindCodeByOwner(ctx context.Context, ownerID string) (*model.ReferralCode, error) {
	var c model.ReferralCode
	err := r.codes.FindOne(ctx, bson.M{"owner_id": ownerID}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mongoReferralRepo) FindCode(ctx context.Context, code string) (*model.ReferralCode, error) {
	var c model.ReferralCode
	err := r.codes.FindOne(ctx, bson.M{"code": code}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mongoReferralRepo) RecordUse(ctx context.Context, u *model.ReferralUse) error {
	_, err := r.uses.InsertOne(ctx, u)
	return err
}

func (r *mongoReferralRepo) FindUseByReferee(ctx context.Context, refereeID string) (*model.ReferralUse, error) {
	var u model.ReferralUse
	err := r.uses.FindOne(ctx, bson.M{"referee_id": refereeID}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *mongoReferralRepo) StatsForCode(ctx context.Context, code string) (int, int, error) {
	total, err := r.uses.CountDocuments(ctx, bson.M{"code": code})
	if err != nil {
		return 0, 0, err
	}
	converted, err := r.uses.CountDocuments(ctx, bson.M{"code": code, "converted": true})
	if err != nil {
		return 0, 0, err
	}
	return int(total), int(converted), nil
}
