package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/school-records/internal/domain"
)

// formationRepo implements domain.FormationRepository using SQLite.
type formationRepo struct {
	db *sql.DB
}

func (r *formationRepo) Save(ctx context.Context, f *domain.Formation) error {
	if f.ID == 0 {
		result, err := r.db.ExecContext(ctx,
			`INSERT INTO formations (name, duration_years, department_id)
			 VALUES (?, ?, ?)`,
			f.Name, f.DurationYears, f.DepartmentID,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: department %d does not exist", domain.ErrIntegrity, f.DepartmentID)
			}
			return fmt.Errorf("insert formation: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get formation id: %w", err)
		}
		f.ID = id
		return nil
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE formations SET name = ?, duration_years = ?, department_id = ?
		 WHERE formation_id = ?`,
		f.Name, f.DurationYears, f.DepartmentID, f.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: department %d does not exist", domain.ErrIntegrity, f.DepartmentID)
		}
		return fmt.Errorf("update formation: %w", err)
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

func (r *formationRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM formations WHERE formation_id = ?", id); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: formation %d is still referenced by subjects or enrollments", domain.ErrIntegrity, id)
		}
		return fmt.Errorf("delete formation: %w", err)
	}
	return nil
}

func (r *formationRepo) GetByID(ctx context.Context, id int64) (*domain.Formation, error) {
	f := &domain.Formation{}
	err := r.db.QueryRowContext(ctx,
		`SELECT formation_id, name, duration_years, department_id
		 FROM formations WHERE formation_id = ?`, id,
	).Scan(&f.ID, &f.Name, &f.DurationYears, &f.DepartmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query formation by id: %w", err)
	}
	return f, nil
}

func (r *formationRepo) List(ctx context.Context) ([]domain.Formation, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT formation_id, name, duration_years, department_id FROM formations")
	if err != nil {
		return nil, fmt.Errorf("list formations: %w", err)
	}
	defer rows.Close()
	return scanFormations(rows)
}

func (r *formationRepo) ListByDepartment(ctx context.Context, departmentID int64) ([]domain.Formation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT formation_id, name, duration_years, department_id
		 FROM formations WHERE department_id = ?`, departmentID)
	if err != nil {
		return nil, fmt.Errorf("list formations by department: %w", err)
	}
	defer rows.Close()
	return scanFormations(rows)
}

func scanFormations(rows *sql.Rows) ([]domain.Formation, error) {
	var formations []domain.Formation
	for rows.Next() {
		var f domain.Formation
		if err := rows.Scan(&f.ID, &f.Name, &f.DurationYears, &f.DepartmentID); err != nil {
			return nil, fmt.Errorf("scan formation: %w", err)
		}
		formations = append(formations, f)
	}
	return formations, rows.Err()
}
