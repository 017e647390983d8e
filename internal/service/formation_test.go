package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/school-records/internal/domain"
	"github.com/msomdec/school-records/internal/service"
)

func TestFormationService_Save(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	dept := &domain.Department{Name: "Computer Science"}
	if err := db.Departments().Save(ctx, dept); err != nil {
		t.Fatalf("seed department: %v", err)
	}

	svc := service.NewFormationService(db.Formations())
	f := &domain.Formation{Name: "Software Engineering", DurationYears: 4, DepartmentID: dept.ID}
	if err := svc.Save(ctx, f); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if f.ID == 0 {
		t.Fatal("expected formation ID to be set")
	}
}

func TestFormationService_Save_Invalid(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewFormationService(db.Formations())
	ctx := context.Background()

	tests := []struct {
		name      string
		formation domain.Formation
	}{
		{"empty name", domain.Formation{DurationYears: 3, DepartmentID: 1}},
		{"zero duration", domain.Formation{Name: "X", DepartmentID: 1}},
		{"no department", domain.Formation{Name: "X", DurationYears: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.formation
			err := svc.Save(ctx, &f)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
