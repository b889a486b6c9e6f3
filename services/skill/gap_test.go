package skill

import (
	"reflect"
	"testing"

	"campushire/models"
)

func TestBuildGapReport(t *testing.T) {
	tests := []struct {
		name         string
		skills       []string
		required     []string
		wantMatched  []string
		wantMissing  []string
		wantCoverage float64
	}{
		{
			name:         "full coverage",
			skills:       []string{"Go", "Docker"},
			required:     []string{"Go", "Docker"},
			wantMatched:  []string{"Go", "Docker"},
			wantCoverage: 1,
		},
		{
			name:         "partial coverage",
			skills:       []string{"Go"},
			required:     []string{"Go", "Docker", "Kubernetes"},
			wantMatched:  []string{"Go"},
			wantMissing:  []string{"Docker", "Kubernetes"},
			wantCoverage: 1.0 / 3.0,
		},
		{
			name:         "case and whitespace insensitive",
			skills:       []string{"  go ", "DOCKER"},
			required:     []string{"Go", "Docker"},
			wantMatched:  []string{"Go", "Docker"},
			wantCoverage: 1,
		},
		{
			name:         "no required skills means full coverage",
			skills:       []string{"Go"},
			required:     nil,
			wantCoverage: 1,
		},
		{
			name:         "no overlap",
			skills:       []string{"Rust"},
			required:     []string{"Go", "Docker"},
			wantMissing:  []string{"Go", "Docker"},
			wantCoverage: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student := &models.Student{ID: "stu-1", Skills: tt.skills}
			job := &models.Job{ID: "job-1", RequiredSkills: tt.required}

			report := BuildGapReport(student, job)

			if report.StudentID != "stu-1" || report.JobID != "job-1" {
				t.Errorf("report ids = %s/%s, want stu-1/job-1", report.StudentID, report.JobID)
			}
			if !reflect.DeepEqual(report.MatchedSkills, tt.wantMatched) {
				t.Errorf("matched = %v, want %v", report.MatchedSkills, tt.wantMatched)
			}
			if !reflect.DeepEqual(report.MissingSkills, tt.wantMissing) {
				t.Errorf("missing = %v, want %v", report.MissingSkills, tt.wantMissing)
			}
			if report.Coverage != tt.wantCoverage {
				t.Errorf("coverage = %v, want %v", report.Coverage, tt.wantCoverage)
			}
		})
	}
}
