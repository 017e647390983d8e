package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/school-records/internal/domain"
)

// subjectRepo implements domain.SubjectRepository using SQLite.
type subjectRepo struct {
	db *sql.DB
}

func (r *subjectRepo) Save(ctx context.Context, s *domain.Subject) error {
	if s.ID == 0 {
		result, err := r.db.ExecContext(ctx,
			`INSERT INTO subjects (name, credits, year, formation_id)
			 VALUES (?, ?, ?, ?)`,
			s.Name, s.Credits, s.Year, s.FormationID,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: formation %d does not exist", domain.ErrIntegrity, s.FormationID)
			}
			return fmt.Errorf("insert subject: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get subject id: %w", err)
		}
		s.ID = id
		return nil
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE subjects SET name = ?, credits = ?, year = ?, formation_id = ?
		 WHERE subject_id = ?`,
		s.Name, s.Credits, s.Year, s.FormationID, s.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: formation %d does not exist", domain.ErrIntegrity, s.FormationID)
		}
		return fmt.Errorf("update subject: %w", err)
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

func (r *subjectRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM subjects WHERE subject_id = ?", id); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: subject %d is still referenced by grades", domain.ErrIntegrity, id)
		}
		return fmt.Errorf("delete subject: %w", err)
	}
	return nil
}

func (r *subjectRepo) GetByID(ctx context.Context, id int64) (*domain.Subject, error) {
	s := &domain.Subject{}
	err := r.db.QueryRowContext(ctx,
		`SELECT subject_id, name, credits, year, formation_id
		 FROM subjects WHERE subject_id = ?`, id,
	).Scan(&s.ID, &s.Name, &s.Credits, &s.Year, &s.FormationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query subject by id: %w", err)
	}
	return s, nil
}

func (r *subjectRepo) List(ctx context.Context) ([]domain.Subject, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT subject_id, name, credits, year, formation_id FROM subjects")
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	defer rows.Close()
	return scanSubjects(rows)
}

func (r *subjectRepo) ListByFormationAndYear(ctx context.Context, formationID int64, year int) ([]domain.Subject, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT subject_id, name, credits, year, formation_id
		 FROM subjects WHERE formation_id = ? AND year = ?`, formationID, year)
	if err != nil {
		return nil, fmt.Errorf("list subjects by formation and year: %w", err)
	}
	defer rows.Close()
	return scanSubjects(rows)
}

func scanSubjects(rows *sql.Rows) ([]domain.Subject, error) {
	var subjects []domain.Subject
	for rows.Next() {
		var s domain.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.Credits, &s.Year, &s.FormationID); err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}
