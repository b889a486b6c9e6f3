package models

import "time"

// University represents a placement-cell account.
type University struct {
	ID           string    `json:"id" bson:"id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	TokenHash    string    `json:"-" bson:"tokenHash,omitempty"`
	Location     string    `json:"location" bson:"location"`
	Website      string    `json:"website,omitempty" bson:"website,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// UniversityRegistrationData carries the fields accepted at signup.
type UniversityRegistrationData struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Location string `json:"location"`
	Website  string `json:"website"`
}

// PlacementStats is the aggregated dashboard snapshot for one university.
type PlacementStats struct {
	UniversityID      string           `json:"universityId"`
	TotalStudents     int64            `json:"totalStudents"`
	PlacedStudents    int64            `json:"placedStudents"`
	TotalApplications int64            `json:"totalApplications"`
	ByStatus          map[string]int64 `json:"byStatus"`
	PlacementRate     float64          `json:"placementRate"`
	GeneratedAt       time.Time        `json:"generatedAt"`
}
