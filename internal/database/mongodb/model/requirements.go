package model

import (
	"time"

	"talentops/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Requirement 客戶職缺；archived 之後不再計入每日目標
type Requirement struct {
	ID              primitive.ObjectID  `json:"id" bson:"_id"`
	Title           string              `json:"title" bson:"title"`
	Criticality     core.Criticality    `json:"criticality" bson:"criticality"`
	Toughness       core.Toughness      `json:"toughness" bson:"toughness"`
	TalentAdvisorID *primitive.ObjectID `json:"talentAdvisorId,omitempty" bson:"talentAdvisorId,omitempty"`
	TeamLead        string              `json:"teamLead,omitempty" bson:"teamLead,omitempty"`
	Archived        bool                `json:"archived" bson:"archived"`
	ArchivedAt      *time.Time          `json:"archivedAt,omitempty" bson:"archivedAt,omitempty"`
	CreatedAt       time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt" bson:"updatedAt"`
}

var RequirementIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "archived", Value: 1}},
		Options: options.Index().SetName("idx_archived"),
	},
	{
		Keys:    bson.D{{Key: "talentAdvisorId", Value: 1}},
		Options: options.Index().SetName("idx_talentAdvisorId"),
	},
}
