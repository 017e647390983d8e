package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/school-records/internal/domain"
)

// enrollmentRepo implements domain.EnrollmentRepository using SQLite.
type enrollmentRepo struct {
	db *sql.DB
}

// Save inserts a new enrollment or, for an existing one, updates only the
// enrollment year. Student and formation are immutable after creation.
// Duplicate detection relies entirely on the UNIQUE(student_id, formation_id)
// constraint; there is no pre-check.
func (r *enrollmentRepo) Save(ctx context.Context, e *domain.Enrollment) error {
	if e.ID == 0 {
		result, err := r.db.ExecContext(ctx,
			`INSERT INTO enrollments (student_id, formation_id, enrollment_year)
			 VALUES (?, ?, ?)`,
			e.StudentID, e.FormationID, e.EnrollmentYear,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: student %s is already enrolled in formation %d", domain.ErrIntegrity, e.StudentID, e.FormationID)
			}
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: student %s or formation %d does not exist", domain.ErrIntegrity, e.StudentID, e.FormationID)
			}
			return fmt.Errorf("insert enrollment: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get enrollment id: %w", err)
		}
		e.ID = id
		return nil
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE enrollments SET enrollment_year = ? WHERE enrollment_id = ?",
		e.EnrollmentYear, e.ID,
	)
	if err != nil {
		return fmt.Errorf("update enrollment: %w", err)
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

func (r *enrollmentRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM enrollments WHERE enrollment_id = ?", id); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: enrollment %d is still referenced by grades", domain.ErrIntegrity, id)
		}
		return fmt.Errorf("delete enrollment: %w", err)
	}
	return nil
}

func (r *enrollmentRepo) GetByID(ctx context.Context, id int64) (*domain.Enrollment, error) {
	e := &domain.Enrollment{}
	err := r.db.QueryRowContext(ctx,
		`SELECT enrollment_id, student_id, formation_id, enrollment_year
		 FROM enrollments WHERE enrollment_id = ?`, id,
	).Scan(&e.ID, &e.StudentID, &e.FormationID, &e.EnrollmentYear)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query enrollment by id: %w", err)
	}
	return e, nil
}

func (r *enrollmentRepo) GetByStudentAndFormation(ctx context.Context, studentID string, formationID int64) (*domain.Enrollment, error) {
	e := &domain.Enrollment{}
	err := r.db.QueryRowContext(ctx,
		`SELECT enrollment_id, student_id, formation_id, enrollment_year
		 FROM enrollments WHERE student_id = ? AND formation_id = ?`,
		studentID, formationID,
	).Scan(&e.ID, &e.StudentID, &e.FormationID, &e.EnrollmentYear)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query enrollment by student and formation: %w", err)
	}
	return e, nil
}

func (r *enrollmentRepo) List(ctx context.Context) ([]domain.Enrollment, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT enrollment_id, student_id, formation_id, enrollment_year FROM enrollments")
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()
	return scanEnrollments(rows)
}

func (r *enrollmentRepo) ListByStudent(ctx context.Context, studentID string) ([]domain.Enrollment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT enrollment_id, student_id, formation_id, enrollment_year
		 FROM enrollments WHERE student_id = ?`, studentID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments by student: %w", err)
	}
	defer rows.Close()
	return scanEnrollments(rows)
}

func (r *enrollmentRepo) ListByFormation(ctx context.Context, formationID int64) ([]domain.Enrollment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT enrollment_id, student_id, formation_id, enrollment_year
		 FROM enrollments WHERE formation_id = ?`, formationID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments by formation: %w", err)
	}
	defer rows.Close()
	return scanEnrollments(rows)
}

func scanEnrollments(rows *sql.Rows) ([]domain.Enrollment, error) {
	var enrollments []domain.Enrollment
	for rows.Next() {
		var e domain.Enrollment
		if err := rows.Scan(&e.ID, &e.StudentID, &e.FormationID, &e.EnrollmentYear); err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}
