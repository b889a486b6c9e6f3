package job

import (
	"context"
	"fmt"
	"time"

	"campushire/models"
	"campushire/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// allowedTransitions maps each application status to the statuses a company
// may move it to. Withdrawal is student-initiated and handled separately.
var allowedTransitions = map[string][]string{
	models.ApplicationApplied:     {models.ApplicationShortlisted, models.ApplicationInterview, models.ApplicationRejected},
	models.ApplicationShortlisted: {models.ApplicationInterview, models.ApplicationRejected},
	models.ApplicationInterview:   {models.ApplicationOffered, models.ApplicationRejected},
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Apply submits a student's application to an open job. Duplicate
// applications to the same job are rejected.
func (s *DefaultJobService) Apply(ctx context.Context, studentID, jobID, coverNote string) (*models.Application, error) {
	job, err := s.Jobs.GetByID(jobID)
	if err != nil {
		return nil, fmt.Errorf("job not found: %w", err)
	}
	if job.Status != models.JobStatusOpen {
		return nil, fmt.Errorf("job %s is no longer accepting applications", jobID)
	}
	if !job.Deadline.IsZero() && time.Now().After(job.Deadline) {
		return nil, fmt.Errorf("the application deadline for this job has passed")
	}

	student, err := s.Students.GetByID(studentID)
	if err != nil {
		return nil, fmt.Errorf("student not found: %w", err)
	}

	exists, err := s.Applications.ExistsForStudentAndJob(studentID, jobID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("you have already applied to this job")
	}

	app := &models.Application{
		ID:           uuid.New().String(),
		JobID:        jobID,
		StudentID:    studentID,
		UniversityID: student.UniversityID,
		CompanyID:    job.CompanyID,
		Status:       models.ApplicationApplied,
		CoverNote:    coverNote,
	}
	if err := s.Applications.Create(app); err != nil {
		return nil, fmt.Errorf("failed to submit application: %w", err)
	}

	s.Notifier.NotifyApplicationUpdate(ctx, *app, job.Title)
	return app, nil
}

// WithdrawApplication lets a student pull back a still-active application.
func (s *DefaultJobService) WithdrawApplication(ctx context.Context, studentID, applicationID string) error {
	app, err := s.Applications.GetByID(applicationID)
	if err != nil {
		return err
	}
	if app.StudentID != studentID {
		return fmt.Errorf("application %s does not belong to this student", applicationID)
	}
	switch app.Status {
	case models.ApplicationOffered, models.ApplicationRejected, models.ApplicationWithdrawn:
		return fmt.Errorf("application is already %s and cannot be withdrawn", app.Status)
	}
	return s.Applications.UpdateStatus(applicationID, models.ApplicationWithdrawn)
}

// UpdateApplicationStatus moves an application through the pipeline and
// notifies the student. An offer also flips the student's placement status
// and announces the placement to the university channel.
func (s *DefaultJobService) UpdateApplicationStatus(ctx context.Context, applicationID, status string) error {
	app, err := s.Applications.GetByID(applicationID)
	if err != nil {
		return err
	}
	if !transitionAllowed(app.Status, status) {
		return fmt.Errorf("cannot move application from %s to %s", app.Status, status)
	}

	if err := s.Applications.UpdateStatus(applicationID, status); err != nil {
		return err
	}
	app.Status = status

	job, err := s.Jobs.GetByID(app.JobID)
	if err != nil {
		utils.GetLogger().Warn("Application update: job lookup failed",
			zap.String("jobId", app.JobID), zap.Error(err))
		job = &models.Job{ID: app.JobID}
	}
	s.Notifier.NotifyApplicationUpdate(ctx, *app, job.Title)

	switch status {
	case models.ApplicationInterview:
		s.markPlacementStatus(app.StudentID, models.PlacementInterviewing)
	case models.ApplicationOffered:
		s.markPlacementStatus(app.StudentID, models.PlacementPlaced)
		s.announcePlacement(ctx, app, job.Title)
	}
	return nil
}

func (s *DefaultJobService) markPlacementStatus(studentID, status string) {
	if err := s.Students.UpdateSetDocument(studentID, bson.M{"placementStatus": status}); err != nil {
		utils.GetLogger().Warn("Failed to update placement status",
			zap.String("studentId", studentID),
			zap.String("status", status),
			zap.Error(err))
	}
}

func (s *DefaultJobService) announcePlacement(ctx context.Context, app *models.Application, jobTitle string) {
	student, err := s.Students.GetByID(app.StudentID)
	if err != nil {
		utils.GetLogger().Warn("Placement announcement: student lookup failed",
			zap.String("studentId", app.StudentID), zap.Error(err))
		return
	}
	s.Notifier.NotifyPlacement(ctx, app.UniversityID, student.Name, jobTitle)
}

// GetApplicationsByStudent lists a student's applications, newest first.
func (s *DefaultJobService) GetApplicationsByStudent(studentID string) ([]models.Application, error) {
	return s.Applications.GetByStudent(studentID)
}

// GetApplicationsByJob lists applications received for a posting.
func (s *DefaultJobService) GetApplicationsByJob(jobID string) ([]models.Application, error) {
	return s.Applications.GetByJob(jobID)
}
