package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/school-records/internal/domain"
)

// gradeRepo implements domain.GradeRepository using SQLite.
type gradeRepo struct {
	db *sql.DB
}

func (r *gradeRepo) Save(ctx context.Context, g *domain.Grade) error {
	if g.ID == 0 {
		result, err := r.db.ExecContext(ctx,
			`INSERT INTO grades (enrollment_id, subject_id, grade)
			 VALUES (?, ?, ?)`,
			g.EnrollmentID, g.SubjectID, g.Value,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: enrollment %d or subject %d does not exist", domain.ErrIntegrity, g.EnrollmentID, g.SubjectID)
			}
			return fmt.Errorf("insert grade: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get grade id: %w", err)
		}
		g.ID = id
		return nil
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE grades SET enrollment_id = ?, subject_id = ?, grade = ?
		 WHERE grade_id = ?`,
		g.EnrollmentID, g.SubjectID, g.Value, g.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: enrollment %d or subject %d does not exist", domain.ErrIntegrity, g.EnrollmentID, g.SubjectID)
		}
		return fmt.Errorf("update grade: %w", err)
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

func (r *gradeRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM grades WHERE grade_id = ?", id); err != nil {
		return fmt.Errorf("delete grade: %w", err)
	}
	return nil
}

func (r *gradeRepo) GetByID(ctx context.Context, id int64) (*domain.Grade, error) {
	g := &domain.Grade{}
	err := r.db.QueryRowContext(ctx,
		`SELECT grade_id, enrollment_id, subject_id, grade
		 FROM grades WHERE grade_id = ?`, id,
	).Scan(&g.ID, &g.EnrollmentID, &g.SubjectID, &g.Value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query grade by id: %w", err)
	}
	return g, nil
}

func (r *gradeRepo) ListByEnrollment(ctx context.Context, enrollmentID int64) ([]domain.Grade, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT grade_id, enrollment_id, subject_id, grade
		 FROM grades WHERE enrollment_id = ?`, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("list grades by enrollment: %w", err)
	}
	defer rows.Close()
	return scanGrades(rows)
}

func (r *gradeRepo) ListBySubject(ctx context.Context, subjectID int64) ([]domain.Grade, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT grade_id, enrollment_id, subject_id, grade
		 FROM grades WHERE subject_id = ?`, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list grades by subject: %w", err)
	}
	defer rows.Close()
	return scanGrades(rows)
}

func scanGrades(rows *sql.Rows) ([]domain.Grade, error) {
	var grades []domain.Grade
	for rows.Next() {
		var g domain.Grade
		if err := rows.Scan(&g.ID, &g.EnrollmentID, &g.SubjectID, &g.Value); err != nil {
			return nil, fmt.Errorf("scan grade: %w", err)
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}
