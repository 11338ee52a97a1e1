package model

import "time"

// ProjectMaturity is the summary pushed onto a project when one of its
// assessments completes.
type ProjectMaturity struct {
	OverallScore      float64       `json:"overallScore" bson:"overallScore"`
	MaturityLevel     MaturityLevel `json:"maturityLevel" bson:"maturityLevel"`
	WeakestCategoryID string        `json:"weakestCategoryId,omitempty" bson:"weakestCategoryId,omitempty"`
	LastAssessedAt    time.Time     `json:"lastAssessedAt" bson:"lastAssessedAt"`
	LastAssessmentID  string        `json:"lastAssessmentId" bson:"lastAssessmentId"`
}

// Project is the owning record an assessment reports into
type Project struct {
	ID          string           `json:"id" bson:"_id,omitempty"`
	OwnerID     string           `json:"ownerId" bson:"ownerId"`
	Name        string           `json:"name" bson:"name"`
	Description string           `json:"description,omitempty" bson:"description,omitempty"`
	Maturity    *ProjectMaturity `json:"maturity,omitempty" bson:"maturity,omitempty"`
	CreatedAt   time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt" bson:"updatedAt"`
}
