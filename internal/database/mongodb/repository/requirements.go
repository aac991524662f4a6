package repository

import (
	"context"
	"time"

	"talentops/internal/core"
	client "talentops/internal/database/client"
	"talentops/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RequirementRepository struct {
	collection *mongo.Collection
}

func NewRequirementRepository(mongoClient *client.MongoClient) *RequirementRepository {
	repository := &RequirementRepository{
		collection: mongoClient.Collection(core.MongoCollectionRequirements),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *RequirementRepository) ensureIndexes(contextValue context.Context) error {
	_, err := repository.collection.Indexes().CreateMany(contextValue, model.RequirementIndexes)
	return err
}

func (repository *RequirementRepository) Create(contextValue context.Context, requirement *model.Requirement) (_ *model.Requirement, returnedError error) {
	nowUTC := time.Now().UTC()
	if requirement.ID.IsZero() {
		requirement.ID = primitive.NewObjectID()
	}
	requirement.CreatedAt = nowUTC
	requirement.UpdatedAt = nowUTC

	if _, returnedError = repository.collection.InsertOne(contextValue, requirement); returnedError != nil {
		return nil, returnedError
	}
	return requirement, nil
}

func (repository *RequirementRepository) GetByID(contextValue context.Context, requirementIdentifier primitive.ObjectID) (_ *model.Requirement, returnedError error) {
	var requirement model.Requirement
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": requirementIdentifier}).Decode(&requirement); returnedError != nil {
		return nil, translateError(returnedError, "requirement", requirementIdentifier)
	}
	return &requirement, nil
}
