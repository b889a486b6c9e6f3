package job

import (
	"context"
	"fmt"

	"campushire/models"
	"campushire/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PostJob stores a new posting and fans job-match notifications out to
// students whose profile clears the match threshold.
func (s *DefaultJobService) PostJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	if job.CompanyID == "" {
		return nil, fmt.Errorf("company id is required")
	}
	if job.Title == "" {
		return nil, fmt.Errorf("job title is required")
	}

	job.ID = uuid.New().String()
	job.Status = models.JobStatusOpen

	if err := s.Jobs.Create(job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	// Fan-out runs off the request path; a slow or failing scan must not
	// delay the posting response.
	go s.notifyMatchingStudents(*job)

	return job, nil
}

func (s *DefaultJobService) notifyMatchingStudents(job models.Job) {
	logger := utils.GetLogger()

	students, err := s.Students.GetAll()
	if err != nil {
		logger.Error("Job match fan-out: failed to list students",
			zap.String("jobId", job.ID), zap.Error(err))
		return
	}

	notified := 0
	for i := range students {
		st := &students[i]
		if st.PlacementStatus == models.PlacementPlaced {
			continue
		}
		score, matched, _ := ScoreJob(st, &job)
		if score < MatchNotifyThreshold {
			continue
		}
		s.Notifier.NotifyJobMatch(context.Background(), st.ID, job, score, matched)
		notified++
	}

	logger.Info("Job match fan-out complete",
		zap.String("jobId", job.ID),
		zap.Int("candidates", len(students)),
		zap.Int("notified", notified))
}

// UpdateJob saves changes to an existing posting.
func (s *DefaultJobService) UpdateJob(job *models.Job) error {
	return s.Jobs.Update(job)
}

// CloseJob marks a posting closed so it no longer accepts applications.
func (s *DefaultJobService) CloseJob(jobID string) error {
	job, err := s.Jobs.GetByID(jobID)
	if err != nil {
		return err
	}
	job.Status = models.JobStatusClosed
	return s.Jobs.Update(job)
}

// DeleteJob removes a posting.
func (s *DefaultJobService) DeleteJob(jobID string) error {
	return s.Jobs.Delete(jobID)
}

// GetJobByID retrieves one posting.
func (s *DefaultJobService) GetJobByID(jobID string) (*models.Job, error) {
	return s.Jobs.GetByID(jobID)
}

// ListJobs returns postings matching the filter.
func (s *DefaultJobService) ListJobs(filter models.JobFilter) ([]models.Job, error) {
	return s.Jobs.List(filter)
}

// GetJobsByCompany lists a company's postings.
func (s *DefaultJobService) GetJobsByCompany(companyID string) ([]models.Job, error) {
	return s.Jobs.GetByCompany(companyID)
}
