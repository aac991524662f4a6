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

type ResumeSubmissionRepository struct {
	collection *mongo.Collection
}

func NewResumeSubmissionRepository(mongoClient *client.MongoClient) *ResumeSubmissionRepository {
	repository := &ResumeSubmissionRepository{
		collection: mongoClient.Collection(core.MongoCollectionResumeSubmissions),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *ResumeSubmissionRepository) ensureIndexes(contextValue context.Context) error {
	_, err := repository.collection.Indexes().CreateMany(contextValue, model.ResumeSubmissionIndexes)
	return err
}

func (repository *ResumeSubmissionRepository) Create(contextValue context.Context, submission *model.ResumeSubmission) (_ *model.ResumeSubmission, returnedError error) {
	if returnedError = submission.DeriveSubmittedOn(); returnedError != nil {
		return nil, returnedError
	}
	if submission.ID.IsZero() {
		submission.ID = primitive.NewObjectID()
	}
	submission.CreatedAt = time.Now().UTC()

	if _, returnedError = repository.collection.InsertOne(contextValue, submission); returnedError != nil {
		return nil, returnedError
	}
	return submission, nil
}

// CountByRecruiterOnDate submittedOn 以字串存放，直接等值比對
func (repository *ResumeSubmissionRepository) CountByRecruiterOnDate(contextValue context.Context, recruiterIdentifier primitive.ObjectID, date core.CalendarDate) (_ int, returnedError error) {
	count, countError := repository.collection.CountDocuments(contextValue, bson.M{
		"recruiterId": recruiterIdentifier,
		"submittedOn": date.String(),
	})
	if countError != nil {
		return 0, countError
	}
	return int(count), nil
}
