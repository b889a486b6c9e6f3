package models

import "time"

// SkillProgress tracks a student's self-reported proficiency in one skill.
type SkillProgress struct {
	Name        string    `json:"name" bson:"name"`
	Level       int       `json:"level" bson:"level"` // 1..5
	LastUpdated time.Time `json:"lastUpdated" bson:"lastUpdated"`
}

// SkillGapReport compares a student's skills with a job's requirements.
type SkillGapReport struct {
	StudentID     string   `json:"studentId"`
	JobID         string   `json:"jobId"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
	Coverage      float64  `json:"coverage"` // 0..1 share of required skills covered
}
