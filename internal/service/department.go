package service

import (
	"context"
	"fmt"

	"github.com/msomdec/school-records/internal/domain"
)

// DepartmentService handles department CRUD and input validation.
type DepartmentService struct {
	departments domain.DepartmentRepository
}

// NewDepartmentService creates a new DepartmentService.
func NewDepartmentService(departments domain.DepartmentRepository) *DepartmentService {
	return &DepartmentService{departments: departments}
}

// Save validates and persists a department. Integrity violations from the
// store pass through unwrapped so callers can match domain.ErrIntegrity.
func (s *DepartmentService) Save(ctx context.Context, d *domain.Department) error {
	if d.Name == "" {
		return fmt.Errorf("%w: department name is required", domain.ErrInvalidInput)
	}
	return s.departments.Save(ctx, d)
}

func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	return s.departments.Delete(ctx, id)
}

func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	return s.departments.GetByID(ctx, id)
}

func (s *DepartmentService) GetByName(ctx context.Context, name string) (*domain.Department, error) {
	return s.departments.GetByName(ctx, name)
}

func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.departments.List(ctx)
}
