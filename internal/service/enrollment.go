package service

import (
	"context"
	"fmt"

	"github.com/msomdec/school-records/internal/domain"
)

// EnrollmentService handles enrollment CRUD and input validation.
type EnrollmentService struct {
	enrollments domain.EnrollmentRepository
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(enrollments domain.EnrollmentRepository) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments}
}

// Save validates and persists an enrollment. Duplicate enrollments are not
// pre-checked; the repository surfaces the uniqueness violation.
func (s *EnrollmentService) Save(ctx context.Context, e *domain.Enrollment) error {
	if e.StudentID == "" {
		return fmt.Errorf("%w: a student must be chosen", domain.ErrInvalidInput)
	}
	if e.FormationID == 0 {
		return fmt.Errorf("%w: a formation must be chosen", domain.ErrInvalidInput)
	}
	if e.EnrollmentYear < 1 {
		return fmt.Errorf("%w: enrollment year is required", domain.ErrInvalidInput)
	}
	return s.enrollments.Save(ctx, e)
}

func (s *EnrollmentService) Delete(ctx context.Context, id int64) error {
	return s.enrollments.Delete(ctx, id)
}

func (s *EnrollmentService) GetByID(ctx context.Context, id int64) (*domain.Enrollment, error) {
	return s.enrollments.GetByID(ctx, id)
}

func (s *EnrollmentService) GetByStudentAndFormation(ctx context.Context, studentID string, formationID int64) (*domain.Enrollment, error) {
	return s.enrollments.GetByStudentAndFormation(ctx, studentID, formationID)
}

func (s *EnrollmentService) List(ctx context.Context) ([]domain.Enrollment, error) {
	return s.enrollments.List(ctx)
}

func (s *EnrollmentService) ListByStudent(ctx context.Context, studentID string) ([]domain.Enrollment, error) {
	return s.enrollments.ListByStudent(ctx, studentID)
}

func (s *EnrollmentService) ListByFormation(ctx context.Context, formationID int64) ([]domain.Enrollment, error) {
	return s.enrollments.ListByFormation(ctx, formationID)
}
