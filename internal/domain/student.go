package domain

import "context"

// Student is identified by an institutional ID supplied by the caller,
// not generated by the store.
type Student struct {
	ID        string
	FirstName string
	LastName  string
}

type StudentRepository interface {
	// Save upserts by student ID: insert when absent, update in place when
	// a row with the same ID already exists.
	Save(ctx context.Context, s *Student) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Student, error)
	List(ctx context.Context) ([]Student, error)
}
