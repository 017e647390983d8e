package domain

import "context"

// Department is an academic department. Its name is unique across the school.
type Department struct {
	ID   int64
	Name string
}

type DepartmentRepository interface {
	// Save inserts the department when ID is zero, otherwise updates the
	// existing row. The generated ID is written back on insert.
	Save(ctx context.Context, d *Department) error
	// Delete removes the department. Deleting an absent ID is a no-op.
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Department, error)
	GetByName(ctx context.Context, name string) (*Department, error)
	List(ctx context.Context) ([]Department, error)
}
