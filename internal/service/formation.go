package service

import (
	"context"
	"fmt"

	"github.com/msomdec/school-records/internal/domain"
)

// FormationService handles formation CRUD and input validation.
type FormationService struct {
	formations domain.FormationRepository
}

// NewFormationService creates a new FormationService.
func NewFormationService(formations domain.FormationRepository) *FormationService {
	return &FormationService{formations: formations}
}

func (s *FormationService) Save(ctx context.Context, f *domain.Formation) error {
	if f.Name == "" {
		return fmt.Errorf("%w: formation name is required", domain.ErrInvalidInput)
	}
	if f.DurationYears < 1 {
		return fmt.Errorf("%w: duration must be at least 1 year", domain.ErrInvalidInput)
	}
	if f.DepartmentID == 0 {
		return fmt.Errorf("%w: a department must be chosen", domain.ErrInvalidInput)
	}
	return s.formations.Save(ctx, f)
}

func (s *FormationService) Delete(ctx context.Context, id int64) error {
	return s.formations.Delete(ctx, id)
}

func (s *FormationService) GetByID(ctx context.Context, id int64) (*domain.Formation, error) {
	return s.formations.GetByID(ctx, id)
}

func (s *FormationService) List(ctx context.Context) ([]domain.Formation, error) {
	return s.formations.List(ctx)
}

func (s *FormationService) ListByDepartment(ctx context.Context, departmentID int64) ([]domain.Formation, error) {
	return s.formations.ListByDepartment(ctx, departmentID)
}
