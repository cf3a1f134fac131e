package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"swasthya/internal/migrations/mongo/validators"
	"swasthya/internal/store"
)

var (
	// The unique key index is what makes token allocation safe: concurrent
	// first allocations for the same doctor and day collide here instead of
	// creating two counters.
	TokenFeedIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "_key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "doctor_id", Value: 1}, {Key: "date", Value: 1}}},
	}

	BookingsIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "doctor_id", Value: 1}, {Key: "date", Value: 1}}},
	}

	UsersIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "location", Value: 1}, {Key: "blood_group", Value: 1}}},
	}

	SOSSettingsIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	FamilyProfilesIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	BloodRequestsIndexes = []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "location", Value: 1},
			{Key: "blood_group", Value: 1},
			{Key: "status", Value: 1},
		}},
	}

	NoticesIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "region", Value: 1}}},
	}

	OrdersIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	HospitalsIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "city", Value: 1}}},
	}

	DoctorsIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "hospital_id", Value: 1}, {Key: "department", Value: 1}}},
	}
)

func RunMigration(ctx context.Context, client *mongo.Client, dbName string) error {
	db := client.Database(dbName)
	fmt.Printf("🚀 Running Mongo migrations on database: %s\n", dbName)

	collections := map[string]struct {
		Indexes   []mongo.IndexModel
		Validator bson.M
	}{
		store.CollectionTokenFeeds: {
			Indexes:   TokenFeedIndexes,
			Validator: validators.TokenFeedValidator,
		},
		store.CollectionBookings: {
			Indexes:   BookingsIndexes,
			Validator: validators.BookingValidator,
		},
		store.CollectionUsers:          {Indexes: UsersIndexes},
		store.CollectionSOSSettings:    {Indexes: SOSSettingsIndexes},
		store.CollectionFamilyProfiles: {Indexes: FamilyProfilesIndexes},
		store.CollectionBloodRequests:  {Indexes: BloodRequestsIndexes},
		store.CollectionNotices:        {Indexes: NoticesIndexes},
		store.CollectionOrders:         {Indexes: OrdersIndexes},
		store.CollectionHospitals:      {Indexes: HospitalsIndexes},
		store.CollectionDoctors:        {Indexes: DoctorsIndexes},
	}

	for name, def := range collections {
		if err := ensureCollection(ctx, db, name, def.Validator); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", name, err)
		}
		if err := ensureIndexes(ctx, db, name, def.Indexes); err != nil {
			return fmt.Errorf("failed to ensure indexes for %s: %w", name, err)
		}
	}

	fmt.Println("✅ All migrations applied successfully.")
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		fmt.Printf("🆕 Creating collection: %s\n", name)
		opts := options.CreateCollection()
		if validator != nil {
			opts.SetValidator(validator)
		}
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
		return nil
	}

	if validator != nil {
		fmt.Printf("ℹ️ Collection %s already exists — updating validator if needed\n", name)
		command := bson.D{
			{Key: "collMod", Value: name},
			{Key: "validator", Value: validator},
		}
		if err := db.RunCommand(ctx, command).Err(); err != nil {
			fmt.Printf("⚠️ Warning: failed updating validator for %s: %v\n", name, err)
		}
	}

	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, name string, models []mongo.IndexModel) error {
	if len(models) == 0 {
		return nil
	}
	coll := db.Collection(name)
	if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
		return err
	}
	fmt.Printf("📚 Ensured indexes for %s\n", name)
	return nil
}
