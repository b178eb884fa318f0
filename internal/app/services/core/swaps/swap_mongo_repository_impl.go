package swaps

import (
	"context"
	"preplan-service/internal/app/models"
	"preplan-service/internal/pkg/constvars"
	"preplan-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SwapMongoRepository struct {
	Collection *mongo.Collection
}

func NewSwapMongoRepository(db *mongo.Client, dbName string) SwapRepository {
	return &SwapMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSwaps),
	}
}

func (r *SwapMongoRepository) CreateSwap(ctx context.Context, swap *models.Swap) (swapID string, err error) {
	result, err := r.Collection.InsertOne(ctx, swap)
	if err != nil {
		return "", exceptions.ErrMongoFailedToInsert(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *SwapMongoRepository) FindSwaps(ctx context.Context, status string, page, pageSize int) ([]models.Swap, int, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoFailedToFind(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoFailedToFind(err)
	}
	defer cursor.Close(ctx)

	var swaps []models.Swap
	if err := cursor.All(ctx, &swaps); err != nil {
		return nil, 0, exceptions.ErrMongoFailedToFind(err)
	}
	return swaps, int(total), nil
}

func (r *SwapMongoRepository) FindByID(ctx context.Context, swapID string) (*models.Swap, error) {
	objectID, err := primitive.ObjectIDFromHex(swapID)
	if err != nil {
		return nil, nil
	}

	var swap models.Swap
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&swap)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoFailedToFindOne(err)
	}
	return &swap, nil
}

func (r *SwapMongoRepository) UpdateSwap(ctx context.Context, swap *models.Swap) error {
	objectID, err := primitive.ObjectIDFromHex(swap.ID)
	if err != nil {
		return exceptions.ErrMongoFailedToUpdate(err)
	}

	update := bson.M{"$set": bson.M{
		"status":          swap.Status,
		"interestedUsers": swap.InterestedUsers,
		"updatedAt":       swap.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoFailedToUpdate(err)
	}
	return nil
}

func (r *SwapMongoRepository) DeleteByID(ctx context.Context, swapID string) error {
	objectID, err := primitive.ObjectIDFromHex(swapID)
	if err != nil {
		return exceptions.ErrMongoFailedToDelete(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoFailedToDelete(err)
	}
	return nil
}
