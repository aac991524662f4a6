package repository

import (
	"context"
	"time"

	"talentops/internal/core"
	"talentops/internal/database"
	client "talentops/internal/database/client"
	"talentops/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DailyMetricsSnapshotRepository struct {
	collection *mongo.Collection
}

// NewDailyMetricsSnapshotRepository unique (date, scopeType, scopeId) 建立失敗時不回傳 repository
func NewDailyMetricsSnapshotRepository(mongoClient *client.MongoClient) (*DailyMetricsSnapshotRepository, error) {
	repository := &DailyMetricsSnapshotRepository{
		collection: mongoClient.Collection(core.MongoCollectionDailyMetricsSnapshots),
	}
	contextValue, cancel := context.WithTimeout(context.Background(), indexBuildTimeout)
	defer cancel()
	if err := repository.ensureIndexes(contextValue); err != nil {
		return nil, err
	}
	return repository, nil
}

func (repository *DailyMetricsSnapshotRepository) ensureIndexes(contextValue context.Context) error {
	return createIndexes(contextValue, repository.collection.Indexes(), core.MongoCollectionDailyMetricsSnapshots, model.DailyMetricsSnapshotIndexes)
}

// keyFilter scopeId 一律明確寫入（organization 為 null），{"scopeId": nil} 只會命中 null
func keyFilter(date core.CalendarDate, scopeType core.ScopeType, scopeID *primitive.ObjectID) bson.M {
	filter := bson.M{
		"date":      date.String(),
		"scopeType": scopeType,
		"scopeId":   nil,
	}
	if scopeID != nil {
		filter["scopeId"] = *scopeID
	}
	return filter
}

// Upsert 單一原子操作：唯一索引確保併發寫入收斂為一筆
func (repository *DailyMetricsSnapshotRepository) Upsert(contextValue context.Context, snapshot *model.DailyMetricsSnapshot) (_ *model.DailyMetricsSnapshot, returnedError error) {
	filter := keyFilter(snapshot.Date, snapshot.ScopeType, snapshot.ScopeID)
	update := withUpdatedAt(bson.M{
		"$set": bson.M{
			"delivered":        snapshot.Delivered,
			"defaulted":        snapshot.Defaulted,
			"requirementCount": snapshot.RequirementCount,
		},
		"$setOnInsert": bson.M{
			"createdAt": time.Now().UTC(),
		},
	})
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored model.DailyMetricsSnapshot
	returnedError = repository.collection.FindOneAndUpdate(contextValue, filter, update, opts).Decode(&stored)
	if mongo.IsDuplicateKeyError(returnedError) {
		// 兩個 upsert 同時插入時，落敗者改走更新路徑
		returnedError = repository.collection.FindOneAndUpdate(contextValue, filter, update, opts).Decode(&stored)
	}
	if returnedError != nil {
		return nil, returnedError
	}
	return &stored, nil
}

func (repository *DailyMetricsSnapshotRepository) Get(contextValue context.Context, key database.SnapshotKey) (_ *model.DailyMetricsSnapshot, returnedError error) {
	var snapshot model.DailyMetricsSnapshot
	returnedError = repository.collection.FindOne(contextValue, keyFilter(key.Date, key.ScopeType, key.ScopeID)).Decode(&snapshot)
	if returnedError != nil {
		return nil, translateError(returnedError, "snapshot", key.Date)
	}
	return &snapshot, nil
}

func (repository *DailyMetricsSnapshotRepository) ListByDateRange(contextValue context.Context, query database.SnapshotRange) (_ []*model.DailyMetricsSnapshot, returnedError error) {
	filter := keyFilter(query.Start, query.ScopeType, query.ScopeID)
	filter["date"] = bson.M{"$gte": query.Start.String(), "$lte": query.End.String()}

	cursor, findError := repository.collection.Find(contextValue, filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}),
	)
	if findError != nil {
		return nil, findError
	}
	return decodeAll[model.DailyMetricsSnapshot](contextValue, cursor)
}
