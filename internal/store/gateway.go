package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"swasthya/pkg/config"
)

// Document is a schemaless record as read from or written to a collection.
type Document = bson.M

// Gateway is the generic create/read/update/upsert surface every domain
// endpoint persists through. Timestamp stamping is owned here: Insert sets
// created_at and updated_at, every mutation refreshes updated_at.
type Gateway interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
	Find(ctx context.Context, collection string, filter Document, limit int64) ([]Document, error)
	FindByID(ctx context.Context, collection, id string) (Document, error)
	FindOne(ctx context.Context, collection string, filter Document) (Document, error)
	Update(ctx context.Context, collection, id string, patch Document) error
	Push(ctx context.Context, collection, id, field string, value any) error
	Upsert(ctx context.Context, collection string, filter, patch Document) (Document, error)
	IncrementField(ctx context.Context, collection, id, field string, delta int) error
}

type mongoGateway struct {
	cfg *config.Config
	db  *mongo.Database
}

func NewMongoGateway(cfg *config.Config) Gateway {
	return &mongoGateway{
		cfg: cfg,
		db:  cfg.Client.Mongo.Database(cfg.MongoDatabaseName),
	}
}

func (g *mongoGateway) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
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

// toDocument flattens a typed model into a Document so timestamps can be
// stamped next to the caller's fields.
func toDocument(doc any) (Document, error) {
	if d, ok := doc.(Document); ok {
		out := make(Document, len(d))
		for k, v := range d {
			out[k] = v
		}
		return out, nil
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	var out Document
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return out, nil
}

func stringifyID(doc Document) Document {
	if doc == nil {
		return nil
	}
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["_id"] = oid.Hex()
	}
	return doc
}

func (g *mongoGateway) Insert(ctx context.Context, collection string, doc any) (string, error) {
	ctx, cancel := g.withTimeout(ctx, g.cfg.WriteTimeout)
	defer cancel()

	data, err := toDocument(doc)
	if err != nil {
		return "", err
	}
	delete(data, "_id")

	now := time.Now().UTC().Truncate(time.Millisecond)
	data["created_at"] = now
	data["updated_at"] = now

	result, err := g.db.Collection(collection).InsertOne(ctx, data)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted ID type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

func (g *mongoGateway) Find(ctx context.Context, collection string, filter Document, limit int64) ([]Document, error) {
	ctx, cancel := g.withTimeout(ctx, g.cfg.ReadTimeout)
	defer cancel()

	if filter == nil {
		filter = Document{}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := g.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var docs []Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode documents from %s: %w", collection, err)
	}

	for i := range docs {
		docs[i] = stringifyID(docs[i])
	}
	return docs, nil
}

func (g *mongoGateway) FindByID(ctx context.Context, collection, id string) (Document, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	return g.FindOne(ctx, collection, Document{"_id": objectID})
}

func (g *mongoGateway) FindOne(ctx context.Context, collection string, filter Document) (Document, error) {
	ctx, cancel := g.withTimeout(ctx, g.cfg.ReadTimeout)
	defer cancel()

	var doc Document
	err := g.db.Collection(collection).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find in %s: %w", collection, err)
	}

	return stringifyID(doc), nil
}

func (g *mongoGateway) Update(ctx context.Context, collection, id string, patch Document) error {
	ctx, cancel := g.withTimeout(ctx, g.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	set := make(Document, len(patch)+1)
	for k, v := range patch {
		set[k] = v
	}
	set["updated_at"] = time.Now().UTC().Truncate(time.Millisecond)

	result, err := g.db.Collection(collection).UpdateOne(ctx, Document{"_id": objectID}, Document{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", collection, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *mongoGateway) Push(ctx context.Context, collection, id, field string, value any) error {
	ctx, cancel := g.withTimeout(ctx, g.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	update := Document{
		"$push": Document{field: value},
		"$set":  Document{"updated_at": time.Now().UTC().Truncate(time.Millisecond)},
	}

	result, err := g.db.Collection(collection).UpdateOne(ctx, Document{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to push to %s.%s: %w", collection, field, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *mongoGateway) Upsert(ctx context.Context, collection string, filter, patch Document) (Document, error) {
	ctx, cancel := g.withTimeout(ctx, g.cfg.WriteTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	set := make(Document, len(patch)+1)
	for k, v := range patch {
		set[k] = v
	}
	set["updated_at"] = now

	update := Document{
		"$set":         set,
		"$setOnInsert": Document{"created_at": now},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc Document
	err := g.db.Collection(collection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert into %s: %w", collection, err)
	}

	return stringifyID(doc), nil
}

func (g *mongoGateway) IncrementField(ctx context.Context, collection, id, field string, delta int) error {
	ctx, cancel := g.withTimeout(ctx, g.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	update := Document{
		"$inc": Document{field: delta},
		"$set": Document{"updated_at": time.Now().UTC().Truncate(time.Millisecond)},
	}

	result, err := g.db.Collection(collection).UpdateOne(ctx, Document{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to increment %s.%s: %w", collection, field, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
