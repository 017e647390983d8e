package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/school-records/internal/domain"
)

// SubjectService handles subject CRUD and input validation.
type SubjectService struct {
	subjects   domain.SubjectRepository
	formations domain.FormationRepository
}

// NewSubjectService creates a new SubjectService.
func NewSubjectService(subjects domain.SubjectRepository, formations domain.FormationRepository) *SubjectService {
	return &SubjectService{subjects: subjects, formations: formations}
}

// Save validates and persists a subject. The year-of-study bound is not a
// store constraint, so it is checked here against the owning formation.
func (s *SubjectService) Save(ctx context.Context, subj *domain.Subject) error {
	if subj.Name == "" {
		return fmt.Errorf("%w: subject name is required", domain.ErrInvalidInput)
	}
	if subj.Credits < 1 {
		return fmt.Errorf("%w: credits must be at least 1", domain.ErrInvalidInput)
	}
	if subj.Year < 1 {
		return fmt.Errorf("%w: year must be at least 1", domain.ErrInvalidInput)
	}
	if subj.FormationID == 0 {
		return fmt.Errorf("%w: a formation must be chosen", domain.ErrInvalidInput)
	}

	formation, err := s.formations.GetByID(ctx, subj.FormationID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	// A missing formation is left to the store's foreign key check.
	if formation != nil && subj.Year > formation.DurationYears {
		return fmt.Errorf("%w: year %d exceeds the %d-year duration of formation %q",
			domain.ErrInvalidInput, subj.Year, formation.DurationYears, formation.Name)
	}

	return s.subjects.Save(ctx, subj)
}

func (s *SubjectService) Delete(ctx context.Context, id int64) error {
	return s.subjects.Delete(ctx, id)
}

func (s *SubjectService) GetByID(ctx context.Context, id int64) (*domain.Subject, error) {
	return s.subjects.GetByID(ctx, id)
}

func (s *SubjectService) List(ctx context.Context) ([]domain.Subject, error) {
	return s.subjects.List(ctx)
}

func (s *SubjectService) ListByFormationAndYear(ctx context.Context, formationID int64, year int) ([]domain.Subject, error) {
	return s.subjects.ListByFormationAndYear(ctx, formationID, year)
}
