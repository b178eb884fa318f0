package routines

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

type RoutineMongoRepository struct {
	Collection *mongo.Collection
}

func NewRoutineMongoRepository(db *mongo.Client, dbName string) RoutineRepository {
	return &RoutineMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionRoutines),
	}
}

func (r *RoutineMongoRepository) CreateRoutine(ctx context.Context, routine *models.Routine) (routineID string, err error) {
	result, err := r.Collection.InsertOne(ctx, routine)
	if err != nil {
		return "", exceptions.ErrMongoFailedToInsert(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *RoutineMongoRepository) FindByUserID(ctx context.Context, userID string) ([]models.Routine, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoFailedToFind(err)
	}
	defer cursor.Close(ctx)

	var routines []models.Routine
	if err := cursor.All(ctx, &routines); err != nil {
		return nil, exceptions.ErrMongoFailedToFind(err)
	}
	return routines, nil
}

func (r *RoutineMongoRepository) FindByID(ctx context.Context, routineID string) (*models.Routine, error) {
	objectID, err := primitive.ObjectIDFromHex(routineID)
	if err != nil {
		return nil, nil
	}

	var routine models.Routine
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&routine)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoFailedToFindOne(err)
	}
	return &routine, nil
}

func (r *RoutineMongoRepository) DeleteByID(ctx context.Context, routineID string) error {
	objectID, err := primitive.ObjectIDFromHex(routineID)
	if err != nil {
		return exceptions.ErrMongoFailedToDelete(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoFailedToDelete(err)
	}
	return nil
}
