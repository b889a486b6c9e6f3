package models

import "time"

// Application statuses form a simple forward-moving pipeline.
const (
	ApplicationApplied     = "applied"
	ApplicationShortlisted = "shortlisted"
	ApplicationInterview   = "interview"
	ApplicationOffered     = "offered"
	ApplicationRejected    = "rejected"
	ApplicationWithdrawn   = "withdrawn"
)

// Application links a student to a job posting.
type Application struct {
	ID           string    `json:"id" bson:"id"`
	JobID        string    `json:"jobId" bson:"jobId"`
	StudentID    string    `json:"studentId" bson:"studentId"`
	UniversityID string    `json:"universityId" bson:"universityId"`
	CompanyID    string    `json:"companyId" bson:"companyId"`
	Status       string    `json:"status" bson:"status"`
	CoverNote    string    `json:"coverNote,omitempty" bson:"coverNote,omitempty"`
	AppliedAt    time.Time `json:"appliedAt" bson:"appliedAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}
