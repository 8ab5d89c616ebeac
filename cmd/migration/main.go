package main

import (
	"arogya-service/internal/app/config"
	"arogya-service/internal/app/drivers/database"
	"arogya-service/internal/pkg/constvars"
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Creates the unique indexes backing the registration upserts. Safe to run
// repeatedly; existing indexes are left in place.
func main() {
	driverConfig := config.NewDriverConfig()
	client := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer client.Disconnect(ctx)

	db := client.Database(driverConfig.MongoDB.DbName)

	createIndexes(ctx, db.Collection(constvars.MongoCollectionPatients), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	createIndexes(ctx, db.Collection(constvars.MongoCollectionAshaWorkers), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "mobile", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "asha_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	createIndexes(ctx, db.Collection(constvars.MongoCollectionSubmissions), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "submission_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created", Value: -1}},
		},
	})

	log.Println("Indexes created")
}

func createIndexes(ctx context.Context, collection *mongo.Collection, indexes []mongo.IndexModel) {
	names, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Fatalf("Error creating indexes on %s: %v", collection.Name(), err)
	}
	log.Printf("Created indexes on %s: %v", collection.Name(), names)
}
