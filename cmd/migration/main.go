package main

import (
	"context"
	"log"
	"preplan-service/internal/app/config"
	"preplan-service/internal/app/drivers/database"
	"preplan-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensures the indexes the service queries against. Safe to run repeatedly,
// CreateMany is a no-op for indexes that already exist.
func main() {
	driverConfig := config.NewDriverConfig()

	mongoClient := database.NewMongoDB(driverConfig)
	db := mongoClient.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	indexesByCollection := map[string][]mongo.IndexModel{
		constvars.MongoCollectionUsers: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		constvars.MongoCollectionSections: {
			{Keys: bson.D{{Key: "courseCode", Value: 1}, {Key: "sectionLabel", Value: 1}}},
		},
		constvars.MongoCollectionRoutines: {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		},
		constvars.MongoCollectionSwaps: {
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "authorId", Value: 1}}},
		},
		constvars.MongoCollectionFaculty: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	}

	total := 0
	for collection, indexes := range indexesByCollection {
		names, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes)
		if err != nil {
			log.Fatalf("Error creating indexes on %s: %v", collection, err)
		}
		total += len(names)
	}

	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Fatalf("Error disconnecting from MongoDB: %v", err)
	}

	log.Printf("Ensured %d indexes!\n", total)
}
