package domain

import "context"

// Formation is a multi-year program of study offered by a department.
type Formation struct {
	ID            int64
	Name          string
	DurationYears int
	DepartmentID  int64
}

type FormationRepository interface {
	Save(ctx context.Context, f *Formation) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Formation, error)
	List(ctx context.Context) ([]Formation, error)
	ListByDepartment(ctx context.Context, departmentID int64) ([]Formation, error)
}
