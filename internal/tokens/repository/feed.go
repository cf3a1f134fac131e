package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	tokenserrors "swasthya/internal/tokens/errors"
	"swasthya/internal/store"
	"swasthya/pkg/config"
	"swasthya/pkg/model"
)

type FeedRepository interface {
	// IncrementLast atomically bumps last_token for the feed key, creating
	// the feed on first allocation, and returns the new value.
	IncrementLast(ctx context.Context, key, doctorID, date string) (int, error)
	SetCurrent(ctx context.Context, key, doctorID, date string, value int) error
	Find(ctx context.Context, key string) (*model.TokenFeed, error)
}

type mongoFeedRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoFeedRepository(cfg *config.Config) FeedRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoFeedRepository{
		cfg:        cfg,
		collection: db.Collection(store.CollectionTokenFeeds),
	}
}

func (r *mongoFeedRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

// The read-modify-write is collapsed into a single server-side $inc so two
// concurrent allocations for one doctor+date can never observe the same
// last_token. The unique index on _key makes the first-allocation upsert
// race surface as a duplicate key error instead of a second document.
func (r *mongoFeedRepository) IncrementLast(ctx context.Context, key, doctorID, date string) (int, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	update := bson.M{
		"$inc": bson.M{"last_token": 1},
		"$set": bson.M{"updated_at": now},
		"$setOnInsert": bson.M{
			"doctor_id":     doctorID,
			"date":          date,
			"current_token": 0,
			"created_at":    now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var feed model.TokenFeed
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_key": key}, update, opts).Decode(&feed)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, tokenserrors.ErrAllocationConflict
		}
		return 0, fmt.Errorf("failed to increment token feed %s: %w", key, err)
	}

	return feed.LastToken, nil
}

func (r *mongoFeedRepository) SetCurrent(ctx context.Context, key, doctorID, date string, value int) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	update := bson.M{
		"$set": bson.M{
			"doctor_id":     doctorID,
			"date":          date,
			"current_token": value,
			"updated_at":    now,
		},
		"$setOnInsert": bson.M{"last_token": 0, "created_at": now},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_key": key}, update, options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// A concurrent allocation created the feed first; apply the
			// pointer to the now-existing document.
			_, err = r.collection.UpdateOne(ctx, bson.M{"_key": key}, bson.M{
				"$set": bson.M{"current_token": value, "updated_at": now},
			})
		}
		if err != nil {
			return fmt.Errorf("failed to set current token for %s: %w", key, err)
		}
	}
	return nil
}

func (r *mongoFeedRepository) Find(ctx context.Context, key string) (*model.TokenFeed, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var feed model.TokenFeed
	err := r.collection.FindOne(ctx, bson.M{"_key": key}).Decode(&feed)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, tokenserrors.ErrFeedNotFound
		}
		return nil, fmt.Errorf("failed to find token feed %s: %w", key, err)
	}

	return &feed, nil
}
