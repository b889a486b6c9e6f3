package university

import (
	"testing"

	"campushire/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeStudentRepo struct {
	total    int64
	placed   int64
	students []models.Student
}

func (f *fakeStudentRepo) Create(*models.Student) error { return nil }
func (f *fakeStudentRepo) Update(*models.Student) error { return nil }
func (f *fakeStudentRepo) UpdateSetDocument(string, bson.M) error { return nil }
func (f *fakeStudentRepo) Delete(string) error { return nil }
func (f *fakeStudentRepo) GetByID(string) (*models.Student, error) { return nil, nil }
func (f *fakeStudentRepo) GetByEmail(string) (*models.Student, error) { return nil, nil }
func (f *fakeStudentRepo) GetAll() ([]models.Student, error) { return f.students, nil }
func (f *fakeStudentRepo) CountByUniversity(string) (int64, error) { return f.total, nil }
func (f *fakeStudentRepo) GetByIDWithProjection(string, bson.M) (*models.Student, error) {
	return nil, nil
}
func (f *fakeStudentRepo) GetByUniversity(string) ([]models.Student, error) {
	return f.students, nil
}
func (f *fakeStudentRepo) CountByUniversityAndStatus(string, string) (int64, error) {
	return f.placed, nil
}

type fakeApplicationRepo struct {
	total    int64
	byStatus map[string]int64
}

func (f *fakeApplicationRepo) Create(*models.Application) error { return nil }
func (f *fakeApplicationRepo) GetByID(string) (*models.Application, error) { return nil, nil }
func (f *fakeApplicationRepo) GetByStudent(string) ([]models.Application, error) { return nil, nil }
func (f *fakeApplicationRepo) GetByJob(string) ([]models.Application, error) { return nil, nil }
func (f *fakeApplicationRepo) ExistsForStudentAndJob(string, string) (bool, error) {
	return false, nil
}
func (f *fakeApplicationRepo) UpdateStatus(string, string) error { return nil }
func (f *fakeApplicationRepo) CountByUniversity(string) (int64, error) { return f.total, nil }
func (f *fakeApplicationRepo) CountByUniversityGroupedByStatus(string) (map[string]int64, error) {
	return f.byStatus, nil
}

func TestPlacementDashboard(t *testing.T) {
	svc := &DefaultUniversityService{
		Students: &fakeStudentRepo{total: 40, placed: 10},
		Applications: &fakeApplicationRepo{
			total: 120,
			byStatus: map[string]int64{
				models.ApplicationApplied: 90,
				models.ApplicationOffered: 10,
			},
		},
	}

	stats, err := svc.PlacementDashboard("uni-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.UniversityID != "uni-1" {
		t.Errorf("universityId = %s, want uni-1", stats.UniversityID)
	}
	if stats.TotalStudents != 40 || stats.PlacedStudents != 10 {
		t.Errorf("students = %d/%d placed, want 40/10", stats.TotalStudents, stats.PlacedStudents)
	}
	if stats.TotalApplications != 120 {
		t.Errorf("applications = %d, want 120", stats.TotalApplications)
	}
	if stats.PlacementRate != 0.25 {
		t.Errorf("placementRate = %v, want 0.25", stats.PlacementRate)
	}
	if stats.ByStatus[models.ApplicationOffered] != 10 {
		t.Errorf("byStatus[offered] = %d, want 10", stats.ByStatus[models.ApplicationOffered])
	}
	if stats.GeneratedAt.IsZero() {
		t.Error("generatedAt should be set")
	}
}

func TestPlacementDashboardEmptyUniversity(t *testing.T) {
	svc := &DefaultUniversityService{
		Students:     &fakeStudentRepo{},
		Applications: &fakeApplicationRepo{byStatus: map[string]int64{}},
	}

	stats, err := svc.PlacementDashboard("uni-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.PlacementRate != 0 {
		t.Errorf("placementRate = %v, want 0 for empty university", stats.PlacementRate)
	}
}

func TestPlacementDashboardRequiresID(t *testing.T) {
	svc := &DefaultUniversityService{
		Students:     &fakeStudentRepo{},
		Applications: &fakeApplicationRepo{},
	}
	if _, err := svc.PlacementDashboard(""); err == nil {
		t.Fatal("expected an error for missing university id")
	}
}
