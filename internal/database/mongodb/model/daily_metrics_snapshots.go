package model

import (
	"time"

	"talentops/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DailyMetricsSnapshot 以 (date, scopeType, scopeId) 為唯一鍵；organization 的 scopeId 固定為 null
type DailyMetricsSnapshot struct {
	ID               primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Date             core.CalendarDate   `json:"date" bson:"date"`
	ScopeType        core.ScopeType      `json:"scopeType" bson:"scopeType"`
	ScopeID          *primitive.ObjectID `json:"scopeId" bson:"scopeId"`
	Delivered        int                 `json:"delivered" bson:"delivered"`
	Defaulted        int                 `json:"defaulted" bson:"defaulted"`
	RequirementCount int                 `json:"requirementCount" bson:"requirementCount"`
	CreatedAt        time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt" bson:"updatedAt"`
}

var DailyMetricsSnapshotIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "date", Value: 1}, {Key: "scopeType", Value: 1}, {Key: "scopeId", Value: 1}},
		Options: options.Index().SetName("uniq_date_scopeType_scopeId").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "scopeType", Value: 1}, {Key: "scopeId", Value: 1}, {Key: "date", Value: -1}},
		Options: options.Index().SetName("idx_scopeType_scopeId_date"),
	},
}
