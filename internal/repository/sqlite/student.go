package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/school-records/internal/domain"
)

// studentRepo implements domain.StudentRepository using SQLite.
type studentRepo struct {
	db *sql.DB
}

// Save is a single atomic upsert keyed on the caller-supplied student ID.
// There is no select-then-decide probe; SQLite resolves the conflict.
func (r *studentRepo) Save(ctx context.Context, s *domain.Student) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO students (student_id, first_name, last_name)
		 VALUES (?, ?, ?)
		 ON CONFLICT(student_id) DO UPDATE SET
		   first_name = excluded.first_name,
		   last_name = excluded.last_name`,
		s.ID, s.FirstName, s.LastName,
	)
	if err != nil {
		return fmt.Errorf("upsert student: %w", err)
	}
	return nil
}

func (r *studentRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM students WHERE student_id = ?", id); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: student %s is still referenced by enrollments", domain.ErrIntegrity, id)
		}
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	s := &domain.Student{}
	err := r.db.QueryRowContext(ctx,
		`SELECT student_id, first_name, last_name
		 FROM students WHERE student_id = ?`, id,
	).Scan(&s.ID, &s.FirstName, &s.LastName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query student by id: %w", err)
	}
	return s, nil
}

func (r *studentRepo) List(ctx context.Context) ([]domain.Student, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT student_id, first_name, last_name FROM students")
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var students []domain.Student
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
