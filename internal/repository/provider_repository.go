package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/arcuspath/backend/internal/cursor"
	"github.com/arcuspath/backend/model"
)

var ErrNotFound = errors.New("repository: not found")

// ProviderRepository is the record-store contract for provider entities. The
// search engine only reads through FindAllActive; the write methods serve
// the application and moderation paths.
type ProviderRepository interface {
	FindAllActive(ctx context.Context) ([]model.Provider, error)
	FindByID(ctx context.Context, id string) (*model.Provider, error)
	FindByOwner(ctx context.Context, ownerUserID string) ([]model.Provider, error)
	Create(ctx context.Context, p *model.Provider) error
	Update(ctx context.Context, p *model.Provider) error
	// ListByStatus pages through providers in a given status with a keyset
	// cursor, oldest first. An empty cursor starts from the beginning.
	ListByStatus(ctx context.Context, status model.ProviderStatus, limit int64, cur string) ([]model.Provider, string, error)
}

type mongoProviderRepo struct {
	col *mongo.Collection
}

func NewMongoProviderRepo(db *mongo.Database) ProviderRepository {
	return &mongoProviderRepo{col: db.Collection("providers")}
}

func (r *mongoProviderRepo) FindAllActive(ctx context.Context) ([]model.Provider, error) {
	cur, err := r.col.Find(ctx, bson.M{"status": model.StatusActive})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []model.Provider
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoProviderRepo) FindByID(ctx context.Context, id string) (*model.Provider, error) {
	var p model.Provider
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoProviderRepo) FindByOwner(ctx context.Context, ownerUserID string) ([]model.Provider, error) {
	cur, err := r.col.Find(ctx, bson.M{"owner_user_id": ownerUserID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []model.Provider
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoProviderRepo) Create(ctx context.Context, p *model.Provider) error {
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *mongoProviderRepo) Update(ctx context.Context, p *model.Provider) error {
	p.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoProviderRepo) ListByStatus(ctx context.Context, status model.ProviderStatus, limit int64, cur string) ([]model.Provider, string, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	match := bson.M{"status": status}
	if cur != "" {
		if t, id, err := cursor.DecodeQueueCursor(cur); err == nil {
			match["$or"] = []bson.M{
				{"created_at": bson.M{"$gt": t}},
				{"created_at": t, "_id": bson.M{"$gt": id}},
			}
		}
	}

	findOpt := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(limit + 1)

	c, err := r.col.Find(ctx, match, findOpt)
	if err != nil {
		return nil, "", err
	}
	defer c.Close(ctx)

	var items []model.Provider
	if err := c.All(ctx, &items); err != nil {
		return nil, "", err
	}

	var next string
	if int64(len(items)) == limit+1 {
		items = items[:len(items)-1]
		last := items[len(items)-1]
		next = cursor.EncodeQueueCursor(last.CreatedAt, last.ID)
	}
	return items, next, nil
}
