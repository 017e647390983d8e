package domain

import "context"

// Grade records the score a student obtained in one subject within one
// enrollment. Value is nil while the subject is taken but not yet graded.
type Grade struct {
	ID           int64
	EnrollmentID int64
	SubjectID    int64
	Value        *float64
}

type GradeRepository interface {
	Save(ctx context.Context, g *Grade) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Grade, error)
	ListByEnrollment(ctx context.Context, enrollmentID int64) ([]Grade, error)
	ListBySubject(ctx context.Context, subjectID int64) ([]Grade, error)
}
