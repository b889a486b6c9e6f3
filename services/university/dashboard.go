package university

import (
	"context"
	"fmt"
	"time"

	"campushire/models"
	"campushire/utils"

	"go.uber.org/zap"
)

// PlacementDashboard aggregates the live placement snapshot for a university.
func (s *DefaultUniversityService) PlacementDashboard(universityID string) (*models.PlacementStats, error) {
	if universityID == "" {
		return nil, fmt.Errorf("university id is required")
	}

	total, err := s.Students.CountByUniversity(universityID)
	if err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}
	placed, err := s.Students.CountByUniversityAndStatus(universityID, models.PlacementPlaced)
	if err != nil {
		return nil, fmt.Errorf("failed to count placed students: %w", err)
	}
	applications, err := s.Applications.CountByUniversity(universityID)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}
	byStatus, err := s.Applications.CountByUniversityGroupedByStatus(universityID)
	if err != nil {
		return nil, fmt.Errorf("failed to group applications: %w", err)
	}

	stats := &models.PlacementStats{
		UniversityID:      universityID,
		TotalStudents:     total,
		PlacedStudents:    placed,
		TotalApplications: applications,
		ByStatus:          byStatus,
		GeneratedAt:       time.Now().UTC(),
	}
	if total > 0 {
		stats.PlacementRate = float64(placed) / float64(total)
	}
	return stats, nil
}

// BroadcastAnnouncement fans an announcement out to every student of the
// university and returns how many students were targeted.
func (s *DefaultUniversityService) BroadcastAnnouncement(ctx context.Context, universityID, title, body string) (int, error) {
	if title == "" || body == "" {
		return 0, fmt.Errorf("announcement title and body are required")
	}

	students, err := s.Students.GetByUniversity(universityID)
	if err != nil {
		return 0, fmt.Errorf("failed to list students: %w", err)
	}

	ids := make([]string, 0, len(students))
	for _, st := range students {
		ids = append(ids, st.ID)
	}
	s.Notifier.Announce(ctx, ids, title, body)

	utils.GetLogger().Info("Announcement dispatched",
		zap.String("universityId", universityID),
		zap.Int("recipients", len(ids)))
	return len(ids), nil
}
