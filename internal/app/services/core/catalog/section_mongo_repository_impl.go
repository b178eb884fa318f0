package catalog

import (
	"context"
	"preplan-service/internal/app/models"
	"preplan-service/internal/pkg/constvars"
	"preplan-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SectionMongoRepository struct {
	Collection *mongo.Collection
}

func NewSectionMongoRepository(db *mongo.Client, dbName string) SectionRepository {
	return &SectionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSections),
	}
}

func (r *SectionMongoRepository) UpsertSections(ctx context.Context, sections []models.CatalogSection) error {
	if len(sections) == 0 {
		return nil
	}

	writeModels := make([]mongo.WriteModel, 0, len(sections))
	for _, section := range sections {
		writeModels = append(writeModels,
			mongo.NewReplaceOneModel().
				SetFilter(bson.M{"_id": section.SectionID}).
				SetReplacement(section).
				SetUpsert(true),
		)
	}

	_, err := r.Collection.BulkWrite(ctx, writeModels, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return exceptions.ErrMongoFailedToUpdate(err)
	}
	return nil
}

func (r *SectionMongoRepository) FindSections(ctx context.Context, courseQuery string, page, pageSize int) ([]models.CatalogSection, int, error) {
	filter := bson.M{}
	if courseQuery != "" {
		filter["courseCode"] = bson.M{"$regex": courseQuery, "$options": "i"}
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoFailedToFind(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "courseCode", Value: 1}, {Key: "sectionLabel", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoFailedToFind(err)
	}
	defer cursor.Close(ctx)

	var sections []models.CatalogSection
	if err := cursor.All(ctx, &sections); err != nil {
		return nil, 0, exceptions.ErrMongoFailedToFind(err)
	}
	return sections, int(total), nil
}

func (r *SectionMongoRepository) FindByID(ctx context.Context, sectionID int) (*models.CatalogSection, error) {
	var section models.CatalogSection
	err := r.Collection.FindOne(ctx, bson.M{"_id": sectionID}).Decode(&section)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoFailedToFindOne(err)
	}
	return &section, nil
}

func (r *SectionMongoRepository) FindByIDs(ctx context.Context, sectionIDs []int) ([]models.CatalogSection, error) {
	if len(sectionIDs) == 0 {
		return nil, nil
	}

	cursor, err := r.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": sectionIDs}})
	if err != nil {
		return nil, exceptions.ErrMongoFailedToFind(err)
	}
	defer cursor.Close(ctx)

	var sections []models.CatalogSection
	if err := cursor.All(ctx, &sections); err != nil {
		return nil, exceptions.ErrMongoFailedToFind(err)
	}
	return sections, nil
}
