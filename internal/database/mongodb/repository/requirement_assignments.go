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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RequirementAssignmentRepository struct {
	collection *mongo.Collection
}

func NewRequirementAssignmentRepository(mongoClient *client.MongoClient) *RequirementAssignmentRepository {
	repository := &RequirementAssignmentRepository{
		collection: mongoClient.Collection(core.MongoCollectionRequirementAssignments),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *RequirementAssignmentRepository) ensureIndexes(contextValue context.Context) error {
	_, err := repository.collection.Indexes().CreateMany(contextValue, model.RequirementAssignmentIndexes)
	return err
}

func (repository *RequirementAssignmentRepository) Create(contextValue context.Context, assignment *model.RequirementAssignment) (_ *model.RequirementAssignment, returnedError error) {
	nowUTC := time.Now().UTC()
	if assignment.ID.IsZero() {
		assignment.ID = primitive.NewObjectID()
	}
	if assignment.Status == "" {
		assignment.Status = core.AssignmentActive
	}
	if assignment.AssignedDate.IsZero() {
		assignment.AssignedDate = core.DateOf(nowUTC)
	}
	assignment.CreatedAt = nowUTC
	assignment.UpdatedAt = nowUTC

	if _, returnedError = repository.collection.InsertOne(contextValue, assignment); returnedError != nil {
		return nil, returnedError
	}
	return assignment, nil
}

func (repository *RequirementAssignmentRepository) ListActiveByRecruiter(contextValue context.Context, recruiterIdentifier primitive.ObjectID) (_ []*model.RequirementAssignment, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue,
		bson.M{"recruiterId": recruiterIdentifier, "status": core.AssignmentActive},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if findError != nil {
		return nil, findError
	}
	return decodeAll[model.RequirementAssignment](contextValue, cursor)
}
