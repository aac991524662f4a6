package model

import (
	"time"

	"talentops/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TargetMapping 主管對成員設定的季度目標與實績
type TargetMapping struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	TeamLeadID     primitive.ObjectID `json:"teamLeadId" bson:"teamLeadId"`
	TeamMemberID   primitive.ObjectID `json:"teamMemberId" bson:"teamMemberId"`
	Quarter        core.Quarter       `json:"quarter" bson:"quarter"`
	Year           int                `json:"year" bson:"year"`
	MinimumTarget  float64            `json:"minimumTarget" bson:"minimumTarget"`
	TargetAchieved float64            `json:"targetAchieved" bson:"targetAchieved"`
	Incentives     float64            `json:"incentives" bson:"incentives"`
	Closures       int                `json:"closures" bson:"closures"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var TargetMappingIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "teamLeadId", Value: 1}, {Key: "year", Value: -1}},
		Options: options.Index().SetName("idx_teamLeadId_year"),
	},
	{
		Keys:    bson.D{{Key: "teamMemberId", Value: 1}, {Key: "year", Value: -1}},
		Options: options.Index().SetName("idx_teamMemberId_year"),
	},
}
