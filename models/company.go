package models

import "time"

// Company represents a recruiter account that owns job postings.
type Company struct {
	ID           string    `json:"id" bson:"id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	TokenHash    string    `json:"-" bson:"tokenHash,omitempty"`
	Industry     string    `json:"industry" bson:"industry"`
	Website      string    `json:"website,omitempty" bson:"website,omitempty"`
	About        string    `json:"about,omitempty" bson:"about,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CompanyRegistrationData carries the fields accepted at signup.
type CompanyRegistrationData struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Industry string `json:"industry"`
	Website  string `json:"website"`
	About    string `json:"about"`
}
