package model

import (
	"time"

	"talentops/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Employee 兩層組織：成員以 reportToEmployeeId 指向所屬主管
type Employee struct {
	ID                 primitive.ObjectID  `json:"id" bson:"_id"`
	DisplayName        string              `json:"displayName" bson:"displayName"`
	Email              string              `json:"email,omitempty" bson:"email,omitempty"`
	Role               core.EmployeeRole   `json:"role" bson:"role"`
	ReportToEmployeeID *primitive.ObjectID `json:"reportToEmployeeId,omitempty" bson:"reportToEmployeeId,omitempty"`
	Status             core.EmployeeStatus `json:"status" bson:"status"`
	CreatedAt          time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt" bson:"updatedAt"`
}

var EmployeeIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("uniq_email").SetUnique(true).SetSparse(true),
	},
	{
		Keys:    bson.D{{Key: "reportToEmployeeId", Value: 1}},
		Options: options.Index().SetName("idx_reportToEmployeeId"),
	},
	{
		Keys:    bson.D{{Key: "role", Value: 1}, {Key: "status", Value: 1}},
		Options: options.Index().SetName("idx_role_status"),
	},
}
