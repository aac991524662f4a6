package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"talentops/internal/core"
	"talentops/internal/database"
	client "talentops/internal/database/client"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoDBRepositories 將各 collection repository 組成 database.Repositories
func NewMongoDBRepositories(
	employeeRepository *EmployeeRepository,
	requirementRepository *RequirementRepository,
	assignmentRepository *RequirementAssignmentRepository,
	submissionRepository *ResumeSubmissionRepository,
	targetMappingRepository *TargetMappingRepository,
	snapshotRepository *DailyMetricsSnapshotRepository,
) *database.Repositories {
	return &database.Repositories{
		Employees:      employeeRepository,
		Requirements:   requirementRepository,
		Assignments:    assignmentRepository,
		Submissions:    submissionRepository,
		TargetMappings: targetMappingRepository,
		Snapshots:      snapshotRepository,
	}
}

const indexBuildTimeout = 30 * time.Second

// indexCreator mongo.IndexView 的最小介面
type indexCreator interface {
	CreateMany(ctx context.Context, models []mongo.IndexModel, opts ...*options.CreateIndexesOptions) ([]string, error)
}

func createIndexes(contextValue context.Context, indexes indexCreator, collection core.MongoCollection, models []mongo.IndexModel) error {
	if _, err := indexes.CreateMany(contextValue, models); err != nil {
		return fmt.Errorf("create indexes on %s: %w", collection, err)
	}
	return nil
}

// NewRepositories 由單一 MongoClient 建立全部 repository
func NewRepositories(mongoClient *client.MongoClient) (*database.Repositories, error) {
	snapshotRepository, err := NewDailyMetricsSnapshotRepository(mongoClient)
	if err != nil {
		return nil, err
	}
	repositories := NewMongoDBRepositories(
		NewEmployeeRepository(mongoClient),
		NewRequirementRepository(mongoClient),
		NewRequirementAssignmentRepository(mongoClient),
		NewResumeSubmissionRepository(mongoClient),
		NewTargetMappingRepository(mongoClient),
		snapshotRepository,
	)
	repositories.Pinger = mongoClient
	return repositories, nil
}

func withUpdatedAt(update bson.M) bson.M {
	// 確保 $currentDate 存在
	currentDate, ok := update["$currentDate"].(bson.M)
	if !ok || currentDate == nil {
		currentDate = bson.M{}
	}
	currentDate["updatedAt"] = true
	update["$currentDate"] = currentDate
	return update
}

// translateError mongo.ErrNoDocuments → database.ErrNotFound
func translateError(err error, entity string, id fmt.Stringer) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s %s: %w", entity, id, database.ErrNotFound)
	}
	return err
}

func decodeAll[T any](contextValue context.Context, cursor *mongo.Cursor) (_ []*T, returnedError error) {
	defer cursor.Close(contextValue)

	var results []*T
	for cursor.Next(contextValue) {
		var item T
		if decodeError := cursor.Decode(&item); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &item)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}
