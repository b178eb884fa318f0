package imports

import (
	"context"
	"preplan-service/internal/app/models"
	"preplan-service/internal/pkg/constvars"
	"preplan-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FacultyMongoRepository struct {
	Collection *mongo.Collection
}

func NewFacultyMongoRepository(db *mongo.Client, dbName string) FacultyRepository {
	return &FacultyMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionFaculty),
	}
}

func (r *FacultyMongoRepository) UpsertFaculty(ctx context.Context, faculty *models.Faculty) error {
	filter := bson.M{"email": faculty.Email}
	update := bson.M{
		"$set": bson.M{
			"name":      faculty.Name,
			"imageUrl":  faculty.ImageURL,
			"updatedAt": faculty.UpdatedAt,
		},
		"$setOnInsert": bson.M{"createdAt": faculty.CreatedAt},
	}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoFailedToUpdate(err)
	}
	return nil
}

func (r *FacultyMongoRepository) FindAll(ctx context.Context) ([]models.Faculty, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoFailedToFind(err)
	}
	defer cursor.Close(ctx)

	var faculty []models.Faculty
	if err := cursor.All(ctx, &faculty); err != nil {
		return nil, exceptions.ErrMongoFailedToFind(err)
	}
	return faculty, nil
}
