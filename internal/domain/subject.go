package domain

import "context"

// Subject is a credit-bearing course taught within a formation during a
// specific year of study (1..DurationYears of the owning formation).
type Subject struct {
	ID          int64
	Name        string
	Credits     int
	Year        int
	FormationID int64
}

type SubjectRepository interface {
	Save(ctx context.Context, s *Subject) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Subject, error)
	List(ctx context.Context) ([]Subject, error)
	ListByFormationAndYear(ctx context.Context, formationID int64, year int) ([]Subject, error)
}
