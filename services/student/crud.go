package student

import (
	"fmt"

	"campushire/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetStudentByID retrieves a student profile.
func (s *DefaultStudentService) GetStudentByID(studentID string) (*models.Student, error) {
	return s.Repo.GetByID(studentID)
}

// GetStudentByEmail retrieves a student profile by email.
func (s *DefaultStudentService) GetStudentByEmail(email string) (*models.Student, error) {
	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("student with email %s not found", email)
	}
	return rec, nil
}

// UpdateStudent applies a partial profile update and returns the fresh document.
func (s *DefaultStudentService) UpdateStudent(req models.StudentUpdateRequest) (*models.Student, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("student id is required")
	}

	updateDoc := bson.M{}
	if req.Name != "" {
		updateDoc["name"] = req.Name
	}
	if req.Degree != "" {
		updateDoc["degree"] = req.Degree
	}
	if req.Branch != "" {
		updateDoc["branch"] = req.Branch
	}
	if req.GraduationYear != 0 {
		updateDoc["graduationYear"] = req.GraduationYear
	}
	if req.CGPA != 0 {
		updateDoc["cgpa"] = req.CGPA
	}
	if req.Skills != nil {
		updateDoc["skills"] = req.Skills
	}
	if req.ResumeText != "" {
		updateDoc["resumeText"] = req.ResumeText
	}
	if len(updateDoc) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	if err := s.Repo.UpdateSetDocument(req.ID, updateDoc); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(req.ID)
}

// DeleteStudent removes a student account.
func (s *DefaultStudentService) DeleteStudent(studentID string) error {
	return s.Repo.Delete(studentID)
}

// UpdateSkills replaces the student's skill list.
func (s *DefaultStudentService) UpdateSkills(studentID string, skills []string) (*models.Student, error) {
	if err := s.Repo.UpdateSetDocument(studentID, bson.M{"skills": skills}); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(studentID)
}

// SetPlacementStatus moves a student through the placement pipeline.
func (s *DefaultStudentService) SetPlacementStatus(studentID, status string) error {
	switch status {
	case models.PlacementUnplaced, models.PlacementInterviewing, models.PlacementPlaced:
	default:
		return fmt.Errorf("unknown placement status %q", status)
	}
	return s.Repo.UpdateSetDocument(studentID, bson.M{"placementStatus": status})
}

// GetStudentsByUniversity lists a university's students.
func (s *DefaultStudentService) GetStudentsByUniversity(universityID string) ([]models.Student, error) {
	return s.Repo.GetByUniversity(universityID)
}
