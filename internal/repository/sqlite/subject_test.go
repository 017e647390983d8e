package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/school-records/internal/domain"
)

func TestSubjectRepo_Save(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	deptID := seedDepartment(t, db, "Computer Science")
	formationID := seedFormation(t, db, "Software Engineering", 4, deptID)

	s := &domain.Subject{Name: "Algorithms", Credits: 6, Year: 1, FormationID: formationID}
	if err := db.Subjects().Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if s.ID == 0 {
		t.Fatal("expected subject ID to be set after save")
	}
}

func TestSubjectRepo_Save_MissingFormation(t *testing.T) {
	db := newTestDB(t)

	s := &domain.Subject{Name: "Orphaned", Credits: 3, Year: 1, FormationID: 54321}
	err := db.Subjects().Save(context.Background(), s)
	if !errors.Is(err, domain.ErrIntegrity) {
		t.Fatalf("expected ErrIntegrity for missing formation, got %v", err)
	}
}

func TestSubjectRepo_Save_Update(t *testing.T) {
	db := newTestDB(t)
	repo := db.Subjects()
	ctx := context.Background()

	deptID := seedDepartment(t, db, "Computer Science")
	formationID := seedFormation(t, db, "Software Engineering", 4, deptID)
	id := seedSubject(t, db, "Algorithms", 6, 1, formationID)

	updated := &domain.Subject{ID: id, Name: "Algorithms", Credits: 5, Year: 1, FormationID: formationID}
	if err := repo.Save(ctx, updated); err != nil {
		t.Fatalf("Save update: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Credits != 5 {
		t.Fatalf("expected 5 credits, got %d", got.Credits)
	}
}

func TestSubjectRepo_ListByFormationAndYear(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	deptID := seedDepartment(t, db, "Computer Science")
	formationID := seedFormation(t, db, "Software Engineering", 4, deptID)
	seedSubject(t, db, "Algorithms", 6, 1, formationID)
	seedSubject(t, db, "Databases", 4, 1, formationID)
	seedSubject(t, db, "Compilers", 6, 3, formationID)

	year1, err := db.Subjects().ListByFormationAndYear(ctx, formationID, 1)
	if err != nil {
		t.Fatalf("ListByFormationAndYear: %v", err)
	}
	if len(year1) != 2 {
		t.Fatalf("expected 2 first-year subjects, got %d", len(year1))
	}
	for _, s := range year1 {
		if s.Year != 1 {
			t.Fatalf("subject %q has year %d, want 1", s.Name, s.Year)
		}
	}
}

func TestSubjectRepo_Delete_MissingIsNoop(t *testing.T) {
	db := newTestDB(t)

	if err := db.Subjects().Delete(context.Background(), 99999); err != nil {
		t.Fatalf("Delete of absent id: %v", err)
	}
}
