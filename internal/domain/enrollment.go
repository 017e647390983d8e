package domain

import "context"

// Enrollment links one student to one formation for a given starting year.
// A student enrolls in a formation at most once; the pair
// (StudentID, FormationID) is unique and immutable after creation. Only
// EnrollmentYear may change on an existing enrollment.
type Enrollment struct {
	ID             int64
	StudentID      string
	FormationID    int64
	EnrollmentYear int
}

type EnrollmentRepository interface {
	Save(ctx context.Context, e *Enrollment) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Enrollment, error)
	GetByStudentAndFormation(ctx context.Context, studentID string, formationID int64) (*Enrollment, error)
	List(ctx context.Context) ([]Enrollment, error)
	ListByStudent(ctx context.Context, studentID string) ([]Enrollment, error)
	ListByFormation(ctx context.Context, formationID int64) ([]Enrollment, error)
}
