package models

import "time"

// Student is the central profile document for a candidate.
type Student struct {
	ID              string          `json:"id" bson:"id"`
	UniversityID    string          `json:"universityId" bson:"universityId"`
	Name            string          `json:"name" bson:"name"`
	Email           string          `json:"email" bson:"email"`
	PasswordHash    string          `json:"-" bson:"passwordHash"`
	TokenHash       string          `json:"-" bson:"tokenHash,omitempty"`
	Degree          string          `json:"degree" bson:"degree"`
	Branch          string          `json:"branch" bson:"branch"`
	GraduationYear  int             `json:"graduationYear" bson:"graduationYear"`
	CGPA            float64         `json:"cgpa" bson:"cgpa"`
	Skills          []string        `json:"skills" bson:"skills"`
	SkillProgress   []SkillProgress `json:"skillProgress,omitempty" bson:"skillProgress,omitempty"`
	ResumeText      string          `json:"resumeText,omitempty" bson:"resumeText,omitempty"`
	PlacementStatus string          `json:"placementStatus" bson:"placementStatus"`
	CreatedAt       time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// Placement status values tracked on a student profile.
const (
	PlacementUnplaced     = "unplaced"
	PlacementInterviewing = "interviewing"
	PlacementPlaced       = "placed"
)

// StudentRegistrationData carries the fields accepted at signup.
type StudentRegistrationData struct {
	UniversityID   string  `json:"universityId" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required,min=8"`
	Degree         string  `json:"degree"`
	Branch         string  `json:"branch"`
	GraduationYear int     `json:"graduationYear"`
	CGPA           float64 `json:"cgpa"`
}

// StudentUpdateRequest carries a partial profile update.
type StudentUpdateRequest struct {
	ID             string   `json:"id"`
	Name           string   `json:"name,omitempty"`
	Degree         string   `json:"degree,omitempty"`
	Branch         string   `json:"branch,omitempty"`
	GraduationYear int      `json:"graduationYear,omitempty"`
	CGPA           float64  `json:"cgpa,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	ResumeText     string   `json:"resumeText,omitempty"`
}
