package models

import "time"

// Job statuses.
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

// Job is a posting created by a company.
type Job struct {
	ID             string    `json:"id" bson:"id"`
	CompanyID      string    `json:"companyId" bson:"companyId"`
	Title          string    `json:"title" bson:"title"`
	Description    string    `json:"description" bson:"description"`
	Location       string    `json:"location" bson:"location"`
	JobType        string    `json:"jobType" bson:"jobType"` // full-time, internship, contract
	RequiredSkills []string  `json:"requiredSkills" bson:"requiredSkills"`
	RequiredDegree string    `json:"requiredDegree,omitempty" bson:"requiredDegree,omitempty"`
	MinCGPA        float64   `json:"minCgpa" bson:"minCgpa"`
	SalaryRange    string    `json:"salaryRange,omitempty" bson:"salaryRange,omitempty"`
	Status         string    `json:"status" bson:"status"`
	Deadline       time.Time `json:"deadline" bson:"deadline"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}

// JobFilter narrows job listings.
type JobFilter struct {
	CompanyID string `form:"companyId"`
	JobType   string `form:"jobType"`
	Location  string `form:"location"`
	Skill     string `form:"skill"`
	Status    string `form:"status"`
	Limit     int64  `form:"limit"`
}

// JobMatch pairs a job with its computed fit score for one student.
type JobMatch struct {
	Job           Job      `json:"job"`
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
}
