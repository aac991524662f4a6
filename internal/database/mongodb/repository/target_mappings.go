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

type TargetMappingRepository struct {
	collection *mongo.Collection
}

func NewTargetMappingRepository(mongoClient *client.MongoClient) *TargetMappingRepository {
	repository := &TargetMappingRepository{
		collection: mongoClient.Collection(core.MongoCollectionTargetMappings),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *TargetMappingRepository) ensureIndexes(contextValue context.Context) error {
	_, err := repository.collection.Indexes().CreateMany(contextValue, model.TargetMappingIndexes)
	return err
}

func (repository *TargetMappingRepository) Create(contextValue context.Context, mapping *model.TargetMapping) (_ *model.TargetMapping, returnedError error) {
	nowUTC := time.Now().UTC()
	if mapping.ID.IsZero() {
		mapping.ID = primitive.NewObjectID()
	}
	mapping.CreatedAt = nowUTC
	mapping.UpdatedAt = nowUTC

	if _, returnedError = repository.collection.InsertOne(contextValue, mapping); returnedError != nil {
		return nil, returnedError
	}
	return mapping, nil
}

func (repository *TargetMappingRepository) GetByID(contextValue context.Context, mappingIdentifier primitive.ObjectID) (_ *model.TargetMapping, returnedError error) {
	var mapping model.TargetMapping
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": mappingIdentifier}).Decode(&mapping); returnedError != nil {
		return nil, translateError(returnedError, "target mapping", mappingIdentifier)
	}
	return &mapping, nil
}

func (repository *TargetMappingRepository) ListByTeamLead(contextValue context.Context, teamLeadIdentifier primitive.ObjectID) (_ []*model.TargetMapping, returnedError error) {
	return repository.list(contextValue, bson.M{"teamLeadId": teamLeadIdentifier})
}

func (repository *TargetMappingRepository) ListByTeamMember(contextValue context.Context, teamMemberIdentifier primitive.ObjectID) (_ []*model.TargetMapping, returnedError error) {
	return repository.list(contextValue, bson.M{"teamMemberId": teamMemberIdentifier})
}

func (repository *TargetMappingRepository) list(contextValue context.Context, filter bson.M) (_ []*model.TargetMapping, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter,
		options.Find().SetSort(bson.D{{Key: "year", Value: -1}, {Key: "quarter", Value: -1}}),
	)
	if findError != nil {
		return nil, findError
	}
	return decodeAll[model.TargetMapping](contextValue, cursor)
}

func (repository *TargetMappingRepository) UpdateAchievement(contextValue context.Context, mappingIdentifier primitive.ObjectID, achievement database.Achievement) (_ *model.TargetMapping, returnedError error) {
	set := bson.M{}
	if achievement.TargetAchieved != nil {
		set["targetAchieved"] = *achievement.TargetAchieved
	}
	if achievement.Incentives != nil {
		set["incentives"] = *achievement.Incentives
	}
	if achievement.Closures != nil {
		set["closures"] = *achievement.Closures
	}
	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}

	var mapping model.TargetMapping
	returnedError = repository.collection.FindOneAndUpdate(contextValue,
		bson.M{"_id": mappingIdentifier},
		withUpdatedAt(update),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mapping)
	if returnedError != nil {
		return nil, translateError(returnedError, "target mapping", mappingIdentifier)
	}
	return &mapping, nil
}
