package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/school-records/internal/domain"
	"github.com/msomdec/school-records/internal/repository/sqlite"
	"github.com/msomdec/school-records/internal/service"
)

func newTestGradeService(t *testing.T) (*service.GradeService, *sqlite.DB, int64, int64) {
	t.Helper()
	db := newTestDB(t)
	ctx := context.Background()

	formationID := seedFormationForTest(t, db, 4)
	if err := db.Students().Save(ctx, &domain.Student{ID: "S1001", FirstName: "John", LastName: "Doe"}); err != nil {
		t.Fatalf("seed student: %v", err)
	}
	e := &domain.Enrollment{StudentID: "S1001", FormationID: formationID, EnrollmentYear: 2023}
	if err := db.Enrollments().Save(ctx, e); err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}
	s := &domain.Subject{Name: "Algorithms", Credits: 6, Year: 1, FormationID: formationID}
	if err := db.Subjects().Save(ctx, s); err != nil {
		t.Fatalf("seed subject: %v", err)
	}

	svc := service.NewGradeService(db.Grades(), db.Enrollments(), db.Subjects())
	return svc, db, e.ID, s.ID
}

func TestGradeService_Save(t *testing.T) {
	svc, _, enrollmentID, subjectID := newTestGradeService(t)
	ctx := context.Background()

	value := 15.0
	g := &domain.Grade{EnrollmentID: enrollmentID, SubjectID: subjectID, Value: &value}
	if err := svc.Save(ctx, g); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if g.ID == 0 {
		t.Fatal("expected grade ID to be set")
	}
}

func TestGradeService_Save_NegativeValue(t *testing.T) {
	svc, _, enrollmentID, subjectID := newTestGradeService(t)

	value := -1.0
	g := &domain.Grade{EnrollmentID: enrollmentID, SubjectID: subjectID, Value: &value}
	err := svc.Save(context.Background(), g)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGradeService_Save_SubjectOutsideFormation(t *testing.T) {
	svc, db, enrollmentID, _ := newTestGradeService(t)
	ctx := context.Background()

	// Subject in a different formation than the enrollment.
	dept := &domain.Department{Name: "Mathematics"}
	if err := db.Departments().Save(ctx, dept); err != nil {
		t.Fatalf("seed department: %v", err)
	}
	other := &domain.Formation{Name: "Statistics", DurationYears: 3, DepartmentID: dept.ID}
	if err := db.Formations().Save(ctx, other); err != nil {
		t.Fatalf("seed formation: %v", err)
	}
	foreign := &domain.Subject{Name: "Probability", Credits: 5, Year: 1, FormationID: other.ID}
	if err := db.Subjects().Save(ctx, foreign); err != nil {
		t.Fatalf("seed subject: %v", err)
	}

	value := 11.0
	g := &domain.Grade{EnrollmentID: enrollmentID, SubjectID: foreign.ID, Value: &value}
	err := svc.Save(ctx, g)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for subject outside formation, got %v", err)
	}
}

func TestGradeService_Save_MissingEnrollmentPassesThrough(t *testing.T) {
	svc, _, _, subjectID := newTestGradeService(t)

	g := &domain.Grade{EnrollmentID: 9999, SubjectID: subjectID}
	err := svc.Save(context.Background(), g)
	if !errors.Is(err, domain.ErrIntegrity) {
		t.Fatalf("expected ErrIntegrity, got %v", err)
	}
}
