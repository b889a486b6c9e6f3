package job

import (
	"reflect"
	"testing"

	"campushire/models"
)

func TestScoreJob(t *testing.T) {
	tests := []struct {
		name        string
		student     models.Student
		job         models.Job
		wantScore   float64
		wantMatched []string
		wantMissing []string
	}{
		{
			name:        "full match",
			student:     models.Student{Skills: []string{"Go", "SQL"}, CGPA: 8.5, Degree: "B.Tech"},
			job:         models.Job{RequiredSkills: []string{"Go", "SQL"}, MinCGPA: 7.0, RequiredDegree: "B.Tech"},
			wantScore:   100,
			wantMatched: []string{"Go", "SQL"},
		},
		{
			name:        "half the skills",
			student:     models.Student{Skills: []string{"Go"}, CGPA: 8.5, Degree: "B.Tech"},
			job:         models.Job{RequiredSkills: []string{"Go", "SQL"}, MinCGPA: 7.0, RequiredDegree: "B.Tech"},
			wantScore:   65,
			wantMatched: []string{"Go"},
			wantMissing: []string{"SQL"},
		},
		{
			name:        "cgpa below cutoff",
			student:     models.Student{Skills: []string{"Go", "SQL"}, CGPA: 6.0, Degree: "B.Tech"},
			job:         models.Job{RequiredSkills: []string{"Go", "SQL"}, MinCGPA: 7.0, RequiredDegree: "B.Tech"},
			wantScore:   85,
			wantMatched: []string{"Go", "SQL"},
		},
		{
			name:        "degree mismatch",
			student:     models.Student{Skills: []string{"Go", "SQL"}, CGPA: 8.5, Degree: "B.Sc"},
			job:         models.Job{RequiredSkills: []string{"Go", "SQL"}, MinCGPA: 7.0, RequiredDegree: "B.Tech"},
			wantScore:   85,
			wantMatched: []string{"Go", "SQL"},
		},
		{
			name:        "no required skills counts as full skill fit",
			student:     models.Student{CGPA: 8.5, Degree: "B.Tech"},
			job:         models.Job{MinCGPA: 7.0, RequiredDegree: "B.Tech"},
			wantScore:   100,
			wantMatched: nil,
		},
		{
			name:        "skill match is case insensitive",
			student:     models.Student{Skills: []string{"go", " sql "}, CGPA: 8.5},
			job:         models.Job{RequiredSkills: []string{"Go", "SQL"}},
			wantScore:   100,
			wantMatched: []string{"Go", "SQL"},
		},
		{
			name:        "nothing matches",
			student:     models.Student{Skills: []string{"Rust"}, CGPA: 5.0, Degree: "B.A."},
			job:         models.Job{RequiredSkills: []string{"Go", "SQL"}, MinCGPA: 7.0, RequiredDegree: "B.Tech"},
			wantScore:   0,
			wantMissing: []string{"Go", "SQL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, matched, missing := ScoreJob(&tt.student, &tt.job)
			if score != tt.wantScore {
				t.Errorf("score = %v, want %v", score, tt.wantScore)
			}
			if !reflect.DeepEqual(matched, tt.wantMatched) {
				t.Errorf("matched = %v, want %v", matched, tt.wantMatched)
			}
			if !reflect.DeepEqual(missing, tt.wantMissing) {
				t.Errorf("missing = %v, want %v", missing, tt.wantMissing)
			}
		})
	}
}

func TestTransitionAllowed(t *testing.T) {
	allowed := []struct{ from, to string }{
		{models.ApplicationApplied, models.ApplicationShortlisted},
		{models.ApplicationApplied, models.ApplicationInterview},
		{models.ApplicationApplied, models.ApplicationRejected},
		{models.ApplicationShortlisted, models.ApplicationInterview},
		{models.ApplicationInterview, models.ApplicationOffered},
	}
	for _, tr := range allowed {
		if !transitionAllowed(tr.from, tr.to) {
			t.Errorf("expected %s -> %s to be allowed", tr.from, tr.to)
		}
	}

	denied := []struct{ from, to string }{
		{models.ApplicationApplied, models.ApplicationOffered},
		{models.ApplicationOffered, models.ApplicationRejected},
		{models.ApplicationRejected, models.ApplicationInterview},
		{models.ApplicationWithdrawn, models.ApplicationShortlisted},
		{models.ApplicationInterview, models.ApplicationApplied},
	}
	for _, tr := range denied {
		if transitionAllowed(tr.from, tr.to) {
			t.Errorf("expected %s -> %s to be denied", tr.from, tr.to)
		}
	}
}
