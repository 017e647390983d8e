package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/msomdec/school-records/internal/domain"
	"github.com/msomdec/school-records/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection and hands out entity repositories.
type DB struct {
	SqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// The containing directory is created if it does not exist. WAL mode and
// foreign key enforcement are enabled.
func New(dbPath string) (*DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Foreign keys are off by default in SQLite; the integrity contract
	// depends on them.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies all pending schema migrations. Safe to call on every
// startup; already applied migrations are skipped.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.SqlDB)
}

func (db *DB) Close() error {
	return db.SqlDB.Close()
}

func (db *DB) Departments() domain.DepartmentRepository {
	return &departmentRepo{db: db.SqlDB}
}

func (db *DB) Formations() domain.FormationRepository {
	return &formationRepo{db: db.SqlDB}
}

func (db *DB) Students() domain.StudentRepository {
	return &studentRepo{db: db.SqlDB}
}

func (db *DB) Subjects() domain.SubjectRepository {
	return &subjectRepo{db: db.SqlDB}
}

func (db *DB) Enrollments() domain.EnrollmentRepository {
	return &enrollmentRepo{db: db.SqlDB}
}

func (db *DB) Grades() domain.GradeRepository {
	return &gradeRepo{db: db.SqlDB}
}
