package skill

import (
	"context"
	"fmt"
	"strings"
	"time"

	"campushire/models"
)

// BuildGapReport computes the gap between a student's skills and a job's
// requirements. Matching is case-insensitive.
func BuildGapReport(student *models.Student, job *models.Job) models.SkillGapReport {
	have := make(map[string]bool, len(student.Skills))
	for _, s := range student.Skills {
		have[strings.ToLower(strings.TrimSpace(s))] = true
	}

	report := models.SkillGapReport{
		StudentID: student.ID,
		JobID:     job.ID,
	}
	for _, req := range job.RequiredSkills {
		if have[strings.ToLower(strings.TrimSpace(req))] {
			report.MatchedSkills = append(report.MatchedSkills, req)
		} else {
			report.MissingSkills = append(report.MissingSkills, req)
		}
	}
	if len(job.RequiredSkills) == 0 {
		report.Coverage = 1
	} else {
		report.Coverage = float64(len(report.MatchedSkills)) / float64(len(job.RequiredSkills))
	}
	return report
}

// AnalyzeGap builds a gap report for a student against one job and pushes a
// skill-development notification when skills are missing.
func (s *DefaultSkillService) AnalyzeGap(ctx context.Context, studentID, jobID string) (*models.SkillGapReport, error) {
	student, err := s.Students.GetByID(studentID)
	if err != nil {
		return nil, fmt.Errorf("student not found: %w", err)
	}
	job, err := s.Jobs.GetByID(jobID)
	if err != nil {
		return nil, fmt.Errorf("job not found: %w", err)
	}

	report := BuildGapReport(student, job)
	s.Notifier.NotifySkillDevelopment(ctx, studentID, report)
	return &report, nil
}

// UpdateProgress upserts one skill's proficiency level on the student profile
// and makes sure the skill appears in the flat skill list.
func (s *DefaultSkillService) UpdateProgress(studentID string, progress models.SkillProgress) (*models.Student, error) {
	if progress.Name == "" {
		return nil, fmt.Errorf("skill name is required")
	}
	if progress.Level < 1 || progress.Level > 5 {
		return nil, fmt.Errorf("skill level must be between 1 and 5")
	}
	progress.LastUpdated = time.Now().UTC()

	student, err := s.Students.GetByID(studentID)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i, p := range student.SkillProgress {
		if strings.EqualFold(p.Name, progress.Name) {
			student.SkillProgress[i] = progress
			replaced = true
			break
		}
	}
	if !replaced {
		student.SkillProgress = append(student.SkillProgress, progress)
	}

	inList := false
	for _, name := range student.Skills {
		if strings.EqualFold(name, progress.Name) {
			inList = true
			break
		}
	}
	if !inList {
		student.Skills = append(student.Skills, progress.Name)
	}

	if err := s.Students.Update(student); err != nil {
		return nil, err
	}
	return student, nil
}
