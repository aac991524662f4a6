package model

import (
	"errors"
	"time"

	"talentops/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrMissingSubmittedAt = errors.New("resume submission requires submittedAt")

// ResumeSubmission 只新增不修改；submittedOn 於寫入時由 submittedAt 推得（UTC 日期）
type ResumeSubmission struct {
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	RequirementID primitive.ObjectID `json:"requirementId" bson:"requirementId"`
	RecruiterID   primitive.ObjectID `json:"recruiterId" bson:"recruiterId"`
	CandidateName string             `json:"candidateName,omitempty" bson:"candidateName,omitempty"`
	Status        string             `json:"status,omitempty" bson:"status,omitempty"`
	SubmittedAt   time.Time          `json:"submittedAt" bson:"submittedAt"`
	SubmittedOn   core.CalendarDate  `json:"submittedOn" bson:"submittedOn"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

// DeriveSubmittedOn 寫入前呼叫；submittedAt 轉為 UTC 並覆寫 submittedOn
func (submission *ResumeSubmission) DeriveSubmittedOn() error {
	if submission.SubmittedAt.IsZero() {
		return ErrMissingSubmittedAt
	}
	submission.SubmittedAt = submission.SubmittedAt.UTC()
	submission.SubmittedOn = core.DateOf(submission.SubmittedAt)
	return nil
}

var ResumeSubmissionIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "recruiterId", Value: 1}, {Key: "submittedOn", Value: 1}},
		Options: options.Index().SetName("idx_recruiterId_submittedOn"),
	},
	{
		Keys:    bson.D{{Key: "requirementId", Value: 1}},
		Options: options.Index().SetName("idx_requirementId"),
	},
}
