package model

import (
	"time"

	"talentops/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RequirementAssignment struct {
	ID            primitive.ObjectID    `json:"id" bson:"_id"`
	RequirementID primitive.ObjectID    `json:"requirementId" bson:"requirementId"`
	RecruiterID   primitive.ObjectID    `json:"recruiterId" bson:"recruiterId"`
	Status        core.AssignmentStatus `json:"status" bson:"status"`
	AssignedDate  core.CalendarDate     `json:"assignedDate" bson:"assignedDate"`
	CreatedAt     time.Time             `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt" bson:"updatedAt"`
}

var RequirementAssignmentIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "recruiterId", Value: 1}, {Key: "status", Value: 1}},
		Options: options.Index().SetName("idx_recruiterId_status"),
	},
	{
		Keys:    bson.D{{Key: "requirementId", Value: 1}},
		Options: options.Index().SetName("idx_requirementId"),
	},
}
