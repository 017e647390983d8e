package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/school-records/internal/domain"
)

// GradeService handles grade CRUD and input validation.
type GradeService struct {
	grades      domain.GradeRepository
	enrollments domain.EnrollmentRepository
	subjects    domain.SubjectRepository
}

// NewGradeService creates a new GradeService.
func NewGradeService(grades domain.GradeRepository, enrollments domain.EnrollmentRepository, subjects domain.SubjectRepository) *GradeService {
	return &GradeService{grades: grades, enrollments: enrollments, subjects: subjects}
}

// Save validates and persists a grade. A grade ties a subject to an
// enrollment, so the subject must belong to the formation the enrollment
// is for; that cross-table rule is not expressible as a store constraint.
func (s *GradeService) Save(ctx context.Context, g *domain.Grade) error {
	if g.EnrollmentID == 0 {
		return fmt.Errorf("%w: an enrollment must be chosen", domain.ErrInvalidInput)
	}
	if g.SubjectID == 0 {
		return fmt.Errorf("%w: a subject must be chosen", domain.ErrInvalidInput)
	}
	if g.Value != nil && *g.Value < 0 {
		return fmt.Errorf("%w: grade cannot be negative", domain.ErrInvalidInput)
	}

	enrollment, err := s.enrollments.GetByID(ctx, g.EnrollmentID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	subject, err := s.subjects.GetByID(ctx, g.SubjectID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	// Missing rows are left to the store's foreign key checks.
	if enrollment != nil && subject != nil && subject.FormationID != enrollment.FormationID {
		return fmt.Errorf("%w: subject %q is not part of formation %d",
			domain.ErrInvalidInput, subject.Name, enrollment.FormationID)
	}

	return s.grades.Save(ctx, g)
}

func (s *GradeService) Delete(ctx context.Context, id int64) error {
	return s.grades.Delete(ctx, id)
}

func (s *GradeService) GetByID(ctx context.Context, id int64) (*domain.Grade, error) {
	return s.grades.GetByID(ctx, id)
}

func (s *GradeService) ListByEnrollment(ctx context.Context, enrollmentID int64) ([]domain.Grade, error) {
	return s.grades.ListByEnrollment(ctx, enrollmentID)
}

func (s *GradeService) ListBySubject(ctx context.Context, subjectID int64) ([]domain.Grade, error) {
	return s.grades.ListBySubject(ctx, subjectID)
}
