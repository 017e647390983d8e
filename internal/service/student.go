package service

import (
	"context"
	"fmt"

	"github.com/msomdec/school-records/internal/domain"
)

// StudentService handles student CRUD and input validation.
type StudentService struct {
	students domain.StudentRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(students domain.StudentRepository) *StudentService {
	return &StudentService{students: students}
}

func (s *StudentService) Save(ctx context.Context, st *domain.Student) error {
	if st.ID == "" {
		return fmt.Errorf("%w: student ID is required", domain.ErrInvalidInput)
	}
	if st.FirstName == "" {
		return fmt.Errorf("%w: first name is required", domain.ErrInvalidInput)
	}
	if st.LastName == "" {
		return fmt.Errorf("%w: last name is required", domain.ErrInvalidInput)
	}
	return s.students.Save(ctx, st)
}

func (s *StudentService) Delete(ctx context.Context, id string) error {
	return s.students.Delete(ctx, id)
}

func (s *StudentService) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	return s.students.GetByID(ctx, id)
}

func (s *StudentService) List(ctx context.Context) ([]domain.Student, error) {
	return s.students.List(ctx)
}
