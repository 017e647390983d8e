package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/school-records/internal/domain"
)

// departmentRepo implements domain.DepartmentRepository using SQLite.
type departmentRepo struct {
	db *sql.DB
}

func (r *departmentRepo) Save(ctx context.Context, d *domain.Department) error {
	if d.ID == 0 {
		result, err := r.db.ExecContext(ctx,
			"INSERT INTO departments (name) VALUES (?)", d.Name)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: department name %q already exists", domain.ErrIntegrity, d.Name)
			}
			return fmt.Errorf("insert department: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get department id: %w", err)
		}
		d.ID = id
		return nil
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE departments SET name = ? WHERE department_id = ?", d.Name, d.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: department name %q already exists", domain.ErrIntegrity, d.Name)
		}
		return fmt.Errorf("update department: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *departmentRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM departments WHERE department_id = ?", id); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: department %d is still referenced by formations", domain.ErrIntegrity, id)
		}
		return fmt.Errorf("delete department: %w", err)
	}
	return nil
}

func (r *departmentRepo) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	d := &domain.Department{}
	err := r.db.QueryRowContext(ctx,
		"SELECT department_id, name FROM departments WHERE department_id = ?", id,
	).Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query department by id: %w", err)
	}
	return d, nil
}

func (r *departmentRepo) GetByName(ctx context.Context, name string) (*domain.Department, error) {
	d := &domain.Department{}
	err := r.db.QueryRowContext(ctx,
		"SELECT department_id, name FROM departments WHERE name = ?", name,
	).Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query department by name: %w", err)
	}
	return d, nil
}

func (r *departmentRepo) List(ctx context.Context) ([]domain.Department, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT department_id, name FROM departments")
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var departments []domain.Department
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}
