package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/school-records/internal/domain"
	"github.com/msomdec/school-records/internal/repository/sqlite"
)

func gradeFixture(t *testing.T) (db *sqlite.DB, enrollmentID, subjectID int64) {
	t.Helper()
	db = newTestDB(t)
	deptID := seedDepartment(t, db, "Computer Science")
	formationID := seedFormation(t, db, "Software Engineering", 4, deptID)
	seedStudent(t, db, "S1001", "John", "Doe")
	enrollmentID = seedEnrollment(t, db, "S1001", formationID, 2023)
	subjectID = seedSubject(t, db, "Algorithms", 6, 1, formationID)
	return db, enrollmentID, subjectID
}

func TestGradeRepo_Save(t *testing.T) {
	db, enrollmentID, subjectID := gradeFixture(t)
	ctx := context.Background()

	value := 14.5
	g := &domain.Grade{EnrollmentID: enrollmentID, SubjectID: subjectID, Value: &value}
	if err := db.Grades().Save(ctx, g); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if g.ID == 0 {
		t.Fatal("expected grade ID to be set after save")
	}

	got, err := db.Grades().GetByID(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Value == nil || *got.Value != 14.5 {
		t.Fatalf("expected value 14.5, got %v", got.Value)
	}
}

func TestGradeRepo_Save_UngradedValue(t *testing.T) {
	db, enrollmentID, subjectID := gradeFixture(t)
	ctx := context.Background()

	g := &domain.Grade{EnrollmentID: enrollmentID, SubjectID: subjectID}
	if err := db.Grades().Save(ctx, g); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := db.Grades().GetByID(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Value != nil {
		t.Fatalf("expected nil value for ungraded subject, got %v", *got.Value)
	}
}

func TestGradeRepo_Save_MissingReferences(t *testing.T) {
	db := newTestDB(t)

	value := 10.0
	g := &domain.Grade{EnrollmentID: 1, SubjectID: 1, Value: &value}
	err := db.Grades().Save(context.Background(), g)
	if !errors.Is(err, domain.ErrIntegrity) {
		t.Fatalf("expected ErrIntegrity for missing references, got %v", err)
	}
}

func TestGradeRepo_Save_Update(t *testing.T) {
	db, enrollmentID, subjectID := gradeFixture(t)
	ctx := context.Background()

	value := 9.0
	g := &domain.Grade{EnrollmentID: enrollmentID, SubjectID: subjectID, Value: &value}
	if err := db.Grades().Save(ctx, g); err != nil {
		t.Fatalf("Save: %v", err)
	}

	retake := 12.0
	g.Value = &retake
	if err := db.Grades().Save(ctx, g); err != nil {
		t.Fatalf("Save update: %v", err)
	}

	got, err := db.Grades().GetByID(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Value == nil || *got.Value != 12.0 {
		t.Fatalf("expected value 12.0, got %v", got.Value)
	}
}

func TestGradeRepo_Listings(t *testing.T) {
	db, enrollmentID, subjectID := gradeFixture(t)
	ctx := context.Background()

	value := 16.0
	if err := db.Grades().Save(ctx, &domain.Grade{EnrollmentID: enrollmentID, SubjectID: subjectID, Value: &value}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	byEnrollment, err := db.Grades().ListByEnrollment(ctx, enrollmentID)
	if err != nil {
		t.Fatalf("ListByEnrollment: %v", err)
	}
	if len(byEnrollment) != 1 {
		t.Fatalf("expected 1 grade for enrollment, got %d", len(byEnrollment))
	}

	bySubject, err := db.Grades().ListBySubject(ctx, subjectID)
	if err != nil {
		t.Fatalf("ListBySubject: %v", err)
	}
	if len(bySubject) != 1 {
		t.Fatalf("expected 1 grade for subject, got %d", len(bySubject))
	}
}

func TestGradeRepo_Delete_MissingIsNoop(t *testing.T) {
	db := newTestDB(t)

	if err := db.Grades().Delete(context.Background(), 99999); err != nil {
		t.Fatalf("Delete of absent id: %v", err)
	}
}
