package job

import (
	"sort"
	"strings"

	"campushire/models"
)

// Score weights. Skill overlap dominates; academic fit tops the score up.
const (
	skillWeight  = 70.0
	cgpaWeight   = 15.0
	degreeWeight = 15.0

	// MatchNotifyThreshold is the minimum score at which a new posting
	// triggers a job-match notification for a student.
	MatchNotifyThreshold = 40.0
)

// ScoreJob computes how well a student fits a job, 0..100, along with the
// matched and missing required skills.
func ScoreJob(student *models.Student, job *models.Job) (float64, []string, []string) {
	matched, missing := splitSkills(student.Skills, job.RequiredSkills)

	score := 0.0
	if len(job.RequiredSkills) == 0 {
		score += skillWeight
	} else {
		score += skillWeight * float64(len(matched)) / float64(len(job.RequiredSkills))
	}
	if job.MinCGPA == 0 || student.CGPA >= job.MinCGPA {
		score += cgpaWeight
	}
	if job.RequiredDegree == "" || strings.EqualFold(job.RequiredDegree, student.Degree) {
		score += degreeWeight
	}
	return score, matched, missing
}

// splitSkills partitions required skills into matched and missing,
// case-insensitively. The returned slices preserve the job's ordering.
func splitSkills(studentSkills, requiredSkills []string) (matched, missing []string) {
	have := make(map[string]bool, len(studentSkills))
	for _, s := range studentSkills {
		have[strings.ToLower(strings.TrimSpace(s))] = true
	}
	for _, req := range requiredSkills {
		if have[strings.ToLower(strings.TrimSpace(req))] {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}
	return matched, missing
}

// MatchJobsForStudent scores every open posting for a student and returns
// matches sorted by score, best first.
func (s *DefaultJobService) MatchJobsForStudent(studentID string) ([]models.JobMatch, error) {
	student, err := s.Students.GetByID(studentID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.Jobs.GetOpen()
	if err != nil {
		return nil, err
	}

	matches := make([]models.JobMatch, 0, len(jobs))
	for _, j := range jobs {
		score, matchedSkills, missingSkills := ScoreJob(student, &j)
		matches = append(matches, models.JobMatch{
			Job:           j,
			Score:         score,
			MatchedSkills: matchedSkills,
			MissingSkills: missingSkills,
		})
	}
	sort.SliceStable(matches, func(i, k int) bool { return matches[i].Score > matches[k].Score })
	return matches, nil
}
