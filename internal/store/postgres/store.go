// Package postgres backs the repositories with PostgreSQL through gorm. The
// schema is owned by the embedded migrations, not by AutoMigrate.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leave"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leaveusage"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/teacher"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

func New(db *gorm.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger.Named("store.postgres")}
}

func (s *Store) Teachers() teacher.Repository {
	return teacher.NewRepository(s.db)
}

func (s *Store) Leaves() leave.Repository {
	return leave.NewRepository(s.db)
}

func (s *Store) Usage() leaveusage.Repository {
	return leaveusage.NewRepository(s.db)
}

// Migrate applies every pending migration.
func (s *Store) Migrate() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return RunMigrations(sqlDB, s.logger)
}

func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("database migration left dirty", zap.Uint("version", version))
	} else {
		logger.Info("database migrations applied", zap.Uint("version", version))
	}
	return nil
}

// Seed inserts the sample teachers that are not present yet, each with an
// all-zero usage record.
func (s *Store) Seed(ctx context.Context) error {
	teachers := s.Teachers()
	usage := s.Usage()

	for _, sample := range teacher.SampleTeachers() {
		t := sample
		_, err := teachers.FindByCode(ctx, t.TeacherCode)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := teachers.Create(ctx, &t); err != nil {
			return err
		}
		if _, err := usage.Apply(ctx, t.ID, leaveusage.TypeCasual, 0); err != nil {
			return err
		}
		s.logger.Info("sample teacher created", zap.String("teacher_code", t.TeacherCode))
	}
	return nil
}
